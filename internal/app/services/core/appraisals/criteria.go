package appraisals

import (
	"guidingpath-service/internal/app/models"
	"math"
)

const EvaluationUnrated = "Unrated"

// DefaultEvaluationCriteria is used when no criteria are configured in the
// database. Ranges are inclusive and meet at two decimal places.
func DefaultEvaluationCriteria() []models.EvaluationCriterion {
	return []models.EvaluationCriterion{
		{Label: "Poor", MinScore: 1.00, MaxScore: 1.79, Order: 1},
		{Label: "Fair", MinScore: 1.80, MaxScore: 2.59, Order: 2},
		{Label: "Good", MinScore: 2.60, MaxScore: 3.39, Order: 3},
		{Label: "Very Good", MinScore: 3.40, MaxScore: 4.19, Order: 4},
		{Label: "Excellent", MinScore: 4.20, MaxScore: 5.00, Order: 5},
	}
}

// Evaluate returns the label of the first criterion containing score.
func Evaluate(criteria []models.EvaluationCriterion, score float64) string {
	for _, criterion := range criteria {
		if criterion.Contains(score) {
			return criterion.Label
		}
	}
	return EvaluationUnrated
}

// Mean averages scores rounded to two decimal places.
func Mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, score := range scores {
		total += score
	}
	return round2(float64(total) / float64(len(scores)))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
