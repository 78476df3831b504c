package responses

type AppraisalEvaluation struct {
	AppraisalID       string                        `json:"appraisal_id"`
	StudentID         string                        `json:"student_id,omitempty"`
	OverallScore      float64                       `json:"overall_score"`
	OverallEvaluation string                        `json:"overall_evaluation"`
	Categories        []AppraisalCategoryEvaluation `json:"categories"`
}

type AppraisalCategoryEvaluation struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Evaluation string  `json:"evaluation"`
}
