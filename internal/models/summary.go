package models

// Summary is the analysis output document written to summary.json.
// It is built once per run and never mutated afterwards.
type Summary struct {
	PerCategory   map[string]CategoryWinner `json:"per_category"`
	OverallWinner OverallWinner             `json:"overall_winner"`
	// ModelPerformance holds one row per model, sorted by model identifier.
	ModelPerformance []ModelPerformance `json:"model_performance_summary"`
}

// CategoryWinner describes the best model within one intent category,
// selected by lowest average Brier score.
type CategoryWinner struct {
	BestModel       string  `json:"best_model"`
	BrierScore      float64 `json:"brier_score"`
	Accuracy        float64 `json:"accuracy"`
	AverageDuration float64 `json:"average_duration"`
}

// OverallWinner describes the best model across all categories.
type OverallWinner struct {
	Model           string  `json:"model"`
	BrierScore      float64 `json:"brier_score"`
	Accuracy        float64 `json:"accuracy"`
	AverageDuration float64 `json:"average_duration"`
}

// ModelPerformance is one row of the per-model summary table.
type ModelPerformance struct {
	Model                string  `json:"model"`
	CorrectPredictions   int     `json:"correct_predictions"`
	IncorrectPredictions int     `json:"incorrect_predictions"`
	Accuracy             float64 `json:"accuracy"`
	BrierScore           float64 `json:"brier_score"`
	AverageDuration      float64 `json:"average_duration"`
}
