package models

// Intent labels with special meaning in the result log.
const (
	// LabelUnknown is the default predicted label when a model's response
	// carried no intent field.
	LabelUnknown = "unknown"
	// LabelParseError marks attempts whose model response could not be
	// parsed as the expected JSON object.
	LabelParseError = "error"
)

// KnownCategories is the closed set of ground-truth intent categories.
var KnownCategories = []string{
	"weather", "time", "map", "llm", "web_search", "math", "date", "unknown",
}

// AttemptRecord is one evaluation of a (model, category, query) triple,
// stored as a single JSON line in the result log.
type AttemptRecord struct {
	Model      string  `json:"model"`
	Category   string  `json:"category"`
	Query      string  `json:"query"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration"`
}

// Normalize applies the documented field defaults in place: an empty
// predicted label becomes LabelUnknown. Confidence and duration already
// default to 0 via JSON decoding.
func (r *AttemptRecord) Normalize() {
	if r.Intent == "" {
		r.Intent = LabelUnknown
	}
}

// Correct reports whether the predicted label exactly matches the
// ground-truth category. Comparison is case-sensitive and applies no
// normalization.
func (r *AttemptRecord) Correct() bool {
	return r.Intent == r.Category
}

// IsKnownCategory reports whether name is in the closed category set.
func IsKnownCategory(name string) bool {
	for _, c := range KnownCategories {
		if c == name {
			return true
		}
	}
	return false
}
