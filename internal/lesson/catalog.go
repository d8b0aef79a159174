package lesson

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Catalog is the ordered, immutable list of lessons supplied by a Source.
type Catalog struct {
	lessons []Lesson
	index   map[string]int
}

// NewCatalog copies lessons into a catalog. Lessons without an id get a
// deterministic one derived from their title and position so that the same
// input always yields the same ids.
func NewCatalog(lessons []Lesson) *Catalog {
	c := &Catalog{
		lessons: make([]Lesson, len(lessons)),
		index:   make(map[string]int, len(lessons)),
	}
	copy(c.lessons, lessons)
	for i := range c.lessons {
		if strings.TrimSpace(c.lessons[i].ID) == "" {
			c.lessons[i].ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(lessonKey(i, c.lessons[i]))).String()
		}
		c.index[c.lessons[i].ID] = i
	}
	return c
}

func lessonKey(pos int, l Lesson) string {
	return fmt.Sprintf("lesson:%d:%d:%s", pos, l.Age, l.Title)
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lessons)
}

// All returns a copy of every lesson in catalog order.
func (c *Catalog) All() []Lesson {
	if c == nil {
		return nil
	}
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Get looks a lesson up by id.
func (c *Catalog) Get(id string) (Lesson, bool) {
	if c == nil {
		return Lesson{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Lesson{}, false
	}
	return c.lessons[i], true
}

// Filter returns the lessons for one age tier, preserving catalog order.
// The result is empty, not nil-with-error, when nothing matches.
func (c *Catalog) Filter(age Age) []Lesson {
	if c == nil {
		return []Lesson{}
	}
	return FilterByAge(c.lessons, age)
}

// FilterByAge is the free-function form of Catalog.Filter.
func FilterByAge(lessons []Lesson, age Age) []Lesson {
	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Age == age {
			out = append(out, l)
		}
	}
	return out
}

// maxSearchDistance bounds how far a query word may be from a title word
// before the lesson stops matching.
const maxSearchDistance = 2

// Search ranks lessons by how closely query matches words of their title or
// category. Substring hits rank first, then the smallest edit distance; ties
// keep input order. Lessons that match nothing are dropped.
func Search(lessons []Lesson, query string) []Lesson {
	terms := words(query)
	if len(terms) == 0 {
		out := make([]Lesson, len(lessons))
		copy(out, lessons)
		return out
	}
	type hit struct {
		pos   int
		score int
	}
	var hits []hit
	for i, l := range lessons {
		if score, ok := matchScore(l, terms); ok {
			hits = append(hits, hit{pos: i, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })
	out := make([]Lesson, 0, len(hits))
	for _, h := range hits {
		out = append(out, lessons[h.pos])
	}
	return out
}

func matchScore(l Lesson, terms []string) (int, bool) {
	haystack := strings.ToLower(l.Title + " " + l.Category)
	candidates := words(haystack)
	total := 0
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			continue
		}
		best := -1
		for _, w := range candidates {
			d := levenshtein.ComputeDistance(term, w)
			if best < 0 || d < best {
				best = d
			}
		}
		if best < 0 || best > maxSearchDistance {
			return 0, false
		}
		total += best
	}
	return total, true
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
