package lesson

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies the full lesson list once at start-up.
type Source interface {
	Load(ctx context.Context) ([]Lesson, error)
}

var ErrUnknownSource = errors.New("unknown catalog source")

//go:embed data/lessons.yaml
var embeddedLessons []byte

type catalogDocument struct {
	Lessons []Lesson `yaml:"lessons" json:"lessons"`
}

// EmbeddedSource reads the catalog compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) ([]Lesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lessons, err := decodeYAML(embeddedLessons)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return lessons, nil
}

// FileSource reads a YAML or JSON catalog from disk. The format is picked by
// file extension.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Lesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	var lessons []Lesson
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		lessons, err = decodeYAML(data)
	case ".json":
		lessons, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog file %q", ErrUnknownSource, filepath.Base(s.Path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.Path, err)
	}
	return lessons, nil
}

func decodeYAML(data []byte) ([]Lesson, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Lessons, nil
}

func decodeJSON(data []byte) ([]Lesson, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Lessons, nil
}

// LoadCatalog reads src and wraps the result in a Catalog.
func LoadCatalog(ctx context.Context, src Source) (*Catalog, error) {
	lessons, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(lessons), nil
}
