package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// EvaluationCriterion maps an inclusive score range onto a display label.
type EvaluationCriterion struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Label    string             `json:"label" bson:"label"`
	MinScore float64            `json:"min_score" bson:"minScore"`
	MaxScore float64            `json:"max_score" bson:"maxScore"`
	Order    int                `json:"order" bson:"order"`
}

func (c EvaluationCriterion) Contains(score float64) bool {
	return score >= c.MinScore && score <= c.MaxScore
}
