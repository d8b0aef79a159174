package lesson

import (
	"errors"
	"fmt"
	"strconv"
)

// Age is one of the child age tiers the programme is written for.
type Age int

// Ages lists the supported tiers, youngest first.
var Ages = []Age{3, 4, 5, 6}

// DefaultAge is the tier selected when a session starts.
const DefaultAge Age = 3

var ErrUnknownAge = errors.New("unknown age tier")

// Valid reports whether a is a supported tier.
func (a Age) Valid() bool {
	for _, t := range Ages {
		if t == a {
			return true
		}
	}
	return false
}

func (a Age) String() string {
	return strconv.Itoa(int(a)) + " years"
}

// ParseAge converts a tier number into an Age.
func ParseAge(n int) (Age, error) {
	a := Age(n)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAge, n)
	}
	return a, nil
}

// Known category labels. The set is open: lessons may carry any label.
const (
	CategoryEmotions      = "Emotions"
	CategoryCommunication = "Communication"
	CategoryMotor         = "Motor skills"
	CategoryCognition     = "Cognition"
	CategoryCreativity    = "Creativity"
	CategorySocialization = "Socialization"
)

// Step is one stage of a lesson's procedure.
type Step struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Duration     int      `yaml:"duration" json:"duration"`
	Instructions []string `yaml:"instructions,omitempty" json:"instructions,omitempty"`
}

// HasInstructions reports whether the step carries a sub-instruction list.
func (s Step) HasInstructions() bool { return len(s.Instructions) > 0 }

// Lesson is a single lesson plan. Records are read-only once loaded.
type Lesson struct {
	ID              string   `yaml:"id" json:"id"`
	Age             Age      `yaml:"age" json:"age"`
	Category        string   `yaml:"category" json:"category"`
	Month           string   `yaml:"month" json:"month"`
	Week            int      `yaml:"week" json:"week"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	Duration        int      `yaml:"duration" json:"duration"`
	Goal            string   `yaml:"goal" json:"goal"`
	Materials       []string `yaml:"materials" json:"materials"`
	Steps           []Step   `yaml:"steps" json:"steps"`
	Adaptations     []string `yaml:"adaptations" json:"adaptations"`
	ExpectedResults []string `yaml:"expectedResults" json:"expectedResults"`
}
