// Package wizard collects suite settings interactively for the init
// command.
package wizard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/intentwire/intentbench/internal/models"
)

// SuiteAnswers holds the fields collected during the interactive form.
type SuiteAnswers struct {
	Name       string
	Endpoint   string
	Models     []string
	Categories []string
}

// RunSuiteWizard runs an interactive huh form to collect suite
// settings. If initialName is non-empty, it pre-populates the name
// field.
func RunSuiteWizard(initialName string) (*SuiteAnswers, error) {
	var (
		name      = initialName
		endpoint  = models.DefaultEndpoint
		modelsRaw string
	)
	categories := append([]string{}, defaultCategoryChoices()...)

	categoryOptions := make([]huh.Option[string], 0, len(models.KnownCategories))
	for _, c := range models.KnownCategories {
		if c == models.LabelUnknown {
			continue
		}
		categoryOptions = append(categoryOptions, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Suite name").
				Description("A short name for this benchmark suite").
				Placeholder("intent-classification").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("suite name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Ollama endpoint").
				Description("Base URL of the Ollama HTTP API").
				Value(&endpoint).
				Validate(func(s string) error {
					if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
						return fmt.Errorf("endpoint must start with http:// or https://")
					}
					return nil
				}),
			huh.NewInput().
				Title("Models").
				Description("Comma-separated model identifiers (empty = all installed)").
				Placeholder("gemma:2b, llama3:8b").
				Value(&modelsRaw),
			huh.NewMultiSelect[string]().
				Title("Categories").
				Description("Intent categories to benchmark").
				Options(categoryOptions...).
				Value(&categories).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("select at least one category")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	answers := &SuiteAnswers{
		Name:       strings.TrimSpace(name),
		Endpoint:   strings.TrimSpace(endpoint),
		Categories: categories,
	}
	for _, m := range strings.Split(modelsRaw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			answers.Models = append(answers.Models, m)
		}
	}
	sort.Strings(answers.Categories)

	return answers, nil
}

// BuildSuite turns wizard answers into a suite spec, seeding each
// selected category with the built-in queries.
func BuildSuite(answers *SuiteAnswers) (*models.SuiteSpec, error) {
	defaults := models.DefaultSuite()

	spec := &models.SuiteSpec{
		Name:       answers.Name,
		Endpoint:   answers.Endpoint,
		Models:     answers.Models,
		Options:    defaults.Options,
		Categories: map[string][]string{},
	}
	for _, c := range answers.Categories {
		queries, ok := defaults.Categories[c]
		if !ok {
			return nil, fmt.Errorf("no built-in queries for category %q", c)
		}
		spec.Categories[c] = append([]string{}, queries...)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func defaultCategoryChoices() []string {
	defaults := models.DefaultSuite()
	return defaults.CategoryNames()
}
