// Package analysis folds a sequence of attempt records into per-category
// and overall model statistics and selects winners by lowest average
// Brier score.
package analysis

import (
	"math"
	"sort"

	"github.com/intentwire/intentbench/internal/metrics"
	"github.com/intentwire/intentbench/internal/models"
)

// groupStats accumulates the running sums for one (scope, model) group.
type groupStats struct {
	count    int
	correct  int
	brierSum float64
	durSum   float64
}

func (g *groupStats) add(rec models.AttemptRecord) {
	correct := rec.Correct()
	g.count++
	if correct {
		g.correct++
	}
	g.brierSum += metrics.BrierScore(rec.Confidence, correct)
	g.durSum += rec.Duration
}

// avgBrier returns the group's average Brier score, or +Inf for a group
// with no attempts so that it can never win.
func (g *groupStats) avgBrier() float64 {
	if g.count == 0 {
		return math.Inf(1)
	}
	return g.brierSum / float64(g.count)
}

func (g *groupStats) accuracy() float64 {
	if g.count == 0 {
		return 0
	}
	return float64(g.correct) / float64(g.count)
}

func (g *groupStats) avgDuration() float64 {
	if g.count == 0 {
		return 0
	}
	return g.durSum / float64(g.count)
}

// Aggregate computes the full summary document from a record sequence in
// one pass. Every record contributes to exactly one category group and
// one overall group; aggregation is order-independent. An empty input
// yields a summary with no categories, no winner, and an empty table.
func Aggregate(records []models.AttemptRecord) *models.Summary {
	perCategory := map[string]map[string]*groupStats{}
	overall := map[string]*groupStats{}

	for _, rec := range records {
		byModel, ok := perCategory[rec.Category]
		if !ok {
			byModel = map[string]*groupStats{}
			perCategory[rec.Category] = byModel
		}
		catGroup, ok := byModel[rec.Model]
		if !ok {
			catGroup = &groupStats{}
			byModel[rec.Model] = catGroup
		}
		catGroup.add(rec)

		overGroup, ok := overall[rec.Model]
		if !ok {
			overGroup = &groupStats{}
			overall[rec.Model] = overGroup
		}
		overGroup.add(rec)
	}

	summary := &models.Summary{
		PerCategory:      map[string]models.CategoryWinner{},
		ModelPerformance: []models.ModelPerformance{},
	}

	for category, byModel := range perCategory {
		model, ok := selectWinner(byModel)
		if !ok {
			continue
		}
		g := byModel[model]
		summary.PerCategory[category] = models.CategoryWinner{
			BestModel:       model,
			BrierScore:      metrics.Round4(g.avgBrier()),
			Accuracy:        metrics.Round4(g.accuracy()),
			AverageDuration: metrics.Round2(g.avgDuration()),
		}
	}

	if model, ok := selectWinner(overall); ok {
		g := overall[model]
		summary.OverallWinner = models.OverallWinner{
			Model:           model,
			BrierScore:      metrics.Round4(g.avgBrier()),
			Accuracy:        metrics.Round4(g.accuracy()),
			AverageDuration: metrics.Round2(g.avgDuration()),
		}
	}

	for _, model := range sortedKeys(overall) {
		g := overall[model]
		summary.ModelPerformance = append(summary.ModelPerformance, models.ModelPerformance{
			Model:                model,
			CorrectPredictions:   g.correct,
			IncorrectPredictions: g.count - g.correct,
			Accuracy:             metrics.Round4(g.accuracy()),
			BrierScore:           metrics.Round4(g.avgBrier()),
			AverageDuration:      metrics.Round2(g.avgDuration()),
		})
	}

	return summary
}

// selectWinner picks the model with the lowest average Brier score.
// Models are visited in sorted order and only a strictly lower score
// replaces the current leader, so exact ties go to the first model seen
// and the result is reproducible across runs. A model with no attempts
// has an infinite average and cannot win. Returns ok=false when the
// scope has no winnable groups at all.
func selectWinner(groups map[string]*groupStats) (string, bool) {
	best := ""
	lowest := math.Inf(1)
	for _, model := range sortedKeys(groups) {
		if avg := groups[model].avgBrier(); avg < lowest {
			lowest = avg
			best = model
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func sortedKeys(groups map[string]*groupStats) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
