package contracts

import (
	"context"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/dto/responses"
)

type AppraisalUsecase interface {
	Evaluate(ctx context.Context, request *requests.EvaluateAppraisalRequest) (*responses.AppraisalEvaluation, error)
}

type EvaluationCriteriaRepository interface {
	FindAll(ctx context.Context) ([]models.EvaluationCriterion, error)
}
