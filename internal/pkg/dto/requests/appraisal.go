package requests

type EvaluateAppraisalRequest struct {
	AppraisalID string                     `json:"appraisal_id" validate:"required"`
	StudentID   string                     `json:"student_id"`
	Categories  []AppraisalCategoryAnswers `json:"categories" validate:"required,min=1,dive"`
}

type AppraisalCategoryAnswers struct {
	Name   string `json:"name" validate:"required"`
	Scores []int  `json:"scores" validate:"required,min=1,dive,gte=1,lte=5"`
}
