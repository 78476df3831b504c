package appraisals

import (
	"context"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/dto/responses"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type appraisalUsecase struct {
	EvaluationCriteriaRepository contracts.EvaluationCriteriaRepository
	Log                          *zap.Logger
}

var (
	appraisalUsecaseInstance contracts.AppraisalUsecase
	onceAppraisalUsecase     sync.Once
)

func NewAppraisalUsecase(
	evaluationCriteriaRepository contracts.EvaluationCriteriaRepository,
	logger *zap.Logger,
) contracts.AppraisalUsecase {
	onceAppraisalUsecase.Do(func() {
		instance := &appraisalUsecase{
			EvaluationCriteriaRepository: evaluationCriteriaRepository,
			Log:                          logger,
		}
		appraisalUsecaseInstance = instance
	})
	return appraisalUsecaseInstance
}

// Evaluate scores a completed appraisal. Each category gets the mean of its
// Likert answers; the overall score is the mean of the category scores.
func (uc *appraisalUsecase) Evaluate(ctx context.Context, request *requests.EvaluateAppraisalRequest) (*responses.AppraisalEvaluation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appraisalUsecase.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppraisalIDKey, request.AppraisalID),
		zap.Int(constvars.LoggingCategoryCountKey, len(request.Categories)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("appraisalUsecase.Evaluate invalid submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	criteria := uc.loadCriteria(ctx)

	response := &responses.AppraisalEvaluation{
		AppraisalID: request.AppraisalID,
		StudentID:   request.StudentID,
		Categories:  make([]responses.AppraisalCategoryEvaluation, 0, len(request.Categories)),
	}
	categoryTotal := 0.0
	for _, category := range request.Categories {
		score := Mean(category.Scores)
		categoryTotal += score
		response.Categories = append(response.Categories, responses.AppraisalCategoryEvaluation{
			Name:       category.Name,
			Score:      score,
			Evaluation: Evaluate(criteria, score),
		})
	}
	response.OverallScore = round2(categoryTotal / float64(len(request.Categories)))
	response.OverallEvaluation = Evaluate(criteria, response.OverallScore)

	uc.Log.Info("appraisalUsecase.Evaluate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppraisalIDKey, request.AppraisalID),
	)
	return response, nil
}

// loadCriteria falls back to the defaults when the collection is empty or
// cannot be read.
func (uc *appraisalUsecase) loadCriteria(ctx context.Context) []models.EvaluationCriterion {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	criteria, err := uc.EvaluationCriteriaRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Warn("appraisalUsecase.loadCriteria error reading criteria, using defaults",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return DefaultEvaluationCriteria()
	}
	if len(criteria) == 0 {
		return DefaultEvaluationCriteria()
	}

	uc.Log.Info("appraisalUsecase.loadCriteria loaded criteria",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCriteriaCountKey, len(criteria)),
	)
	return criteria
}
