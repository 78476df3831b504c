package controllers

import (
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AppraisalController struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	AppraisalUsecase contracts.AppraisalUsecase
}

func NewAppraisalController(logger *zap.Logger, internalConfig *config.InternalConfig, appraisalUsecase contracts.AppraisalUsecase) *AppraisalController {
	return &AppraisalController{
		Log:              logger,
		InternalConfig:   internalConfig,
		AppraisalUsecase: appraisalUsecase,
	}
}

func (ctrl *AppraisalController) Evaluate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppraisalController.Evaluate requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AppraisalController.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.EvaluateAppraisalRequest
	if err := decodeJSONBody(r, &request); err != nil {
		ctrl.Log.Error("AppraisalController.Evaluate error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeEvaluateAppraisalRequest(&request)

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	// Validation happens in the usecase so the CLI shares it.
	response, err := ctrl.AppraisalUsecase.Evaluate(ctx, &request)
	if err != nil {
		ctrl.Log.Error("AppraisalController.Evaluate AppraisalUsecase.Evaluate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("AppraisalController.Evaluate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppraisalIDKey, response.AppraisalID),
		zap.Int(constvars.LoggingCategoryCountKey, len(response.Categories)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EvaluateAppraisalSuccessMessage, response)
}
