package models

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SuiteSpec defines a benchmark suite: which endpoint to call, which
// models to evaluate, and the labeled queries per category.
type SuiteSpec struct {
	Name       string   `yaml:"name"`
	Endpoint   string   `yaml:"endpoint,omitempty"`
	TimeoutSec int      `yaml:"timeout_seconds,omitempty"`
	Models     []string `yaml:"models,omitempty"`
	// FallbackModel is pulled when no models are installed on the endpoint.
	FallbackModel string              `yaml:"fallback_model,omitempty"`
	Options       map[string]any      `yaml:"options,omitempty"`
	Categories    map[string][]string `yaml:"categories"`
	Reports       []ReportConfig      `yaml:"reports,omitempty"`
}

// ReportConfig selects an output renderer by kind with free-form
// parameters, decoded by the reporting package.
type ReportConfig struct {
	Kind       string         `yaml:"type"`
	Parameters map[string]any `yaml:"config,omitempty"`
}

// Suite defaults applied by Validate.
const (
	DefaultEndpoint      = "http://localhost:11434"
	DefaultTimeoutSec    = 60
	DefaultFallbackModel = "gemma:2b"
)

// Validate checks internal consistency and fills defaulted fields.
func (s *SuiteSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite: name is required")
	}
	if len(s.Categories) == 0 {
		return fmt.Errorf("suite %q: at least one category is required", s.Name)
	}
	for cat, queries := range s.Categories {
		if !IsKnownCategory(cat) {
			return fmt.Errorf("suite %q: unknown category %q (known: %s)",
				s.Name, cat, strings.Join(KnownCategories, ", "))
		}
		if len(queries) == 0 {
			return fmt.Errorf("suite %q: category %q has no queries", s.Name, cat)
		}
	}
	for _, rc := range s.Reports {
		if rc.Kind == "" {
			return fmt.Errorf("suite %q: report entry missing type", s.Name)
		}
	}
	if s.Endpoint == "" {
		s.Endpoint = DefaultEndpoint
	}
	if s.TimeoutSec <= 0 {
		s.TimeoutSec = DefaultTimeoutSec
	}
	if s.FallbackModel == "" {
		s.FallbackModel = DefaultFallbackModel
	}
	return nil
}

// CategoryNames returns the suite's categories sorted lexicographically,
// giving the runner a stable iteration order.
func (s *SuiteSpec) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalQueries returns the number of queries across all categories.
func (s *SuiteSpec) TotalQueries() int {
	n := 0
	for _, queries := range s.Categories {
		n += len(queries)
	}
	return n
}

// LoadSuiteSpec loads and validates a suite from a YAML file.
func LoadSuiteSpec(path string) (*SuiteSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec SuiteSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// DefaultSuite returns the built-in intent-classification suite: five
// queries for each of the seven non-trivial categories.
func DefaultSuite() *SuiteSpec {
	spec := &SuiteSpec{
		Name: "intent-classification",
		Options: map[string]any{
			"temperature": 0,
		},
		Categories: map[string][]string{
			"weather": {
				"Do I need a jacket in Seattle tonight?",
				"What's the wind speed in Chicago?",
				"Will it rain in Houston this weekend?",
				"Is it snowing in Denver right now?",
				"How hot is it in Phoenix today?",
			},
			"time": {
				"What time is it in Berlin?",
				"Give me the current time in Tokyo.",
				"What's the local time in São Paulo?",
				"Tell me the time in UTC.",
				"Time now in Johannesburg?",
			},
			"map": {
				"Where is the Eiffel Tower located?",
				"Give me directions to Central Park.",
				"Find the nearest coffee shop to me.",
				"What country is the Great Pyramid of Giza in?",
				"Which continent is Egypt in?",
			},
			"llm": {
				"What is the capital of France?",
				"Tell me something interesting about ancient Rome.",
				"What year did the Berlin Wall fall?",
				"Who painted the Mona Lisa?",
				"How many continents are there on Earth?",
			},
			"web_search": {
				"Search for the latest news on AI.",
				"Find the population of Canada.",
				"Who won the last Super Bowl?",
				"What's the stock price of Nvidia right now?",
				"Search for recent news about electric vehicles.",
			},
			"math": {
				"What's 2+2?",
				"Calculate the square root of 16.",
				"If a car travels 60 miles in 1 hour, how far does it travel in 2.5 hours?",
				"What is 20% of $150?",
				"Multiply 23 by 7.",
			},
			"date": {
				"What's today's date?",
				"Whats the date in New Zealand today?",
				"What day of the week was January 1, 2000?",
				"How many days are there until Christmas?",
				"What's the date 10 days from now?",
			},
		},
	}
	// Validate fills the endpoint/timeout/fallback defaults.
	if err := spec.Validate(); err != nil {
		panic(fmt.Sprintf("default suite is invalid: %v", err))
	}
	return spec
}
