package controllers

import (
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, internalConfig *config.InternalConfig, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetDaySlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.GetDaySlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	date := chi.URLParam(r, constvars.URLParamDate)
	ctrl.Log.Info("AvailabilityController.GetDaySlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	if err := utils.ValidateVar(date, "required,date_only"); err != nil {
		ctrl.Log.Error("AvailabilityController.GetDaySlots invalid date parameter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamDate))
		return
	}

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.GetDaySlots(ctx, date)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.GetDaySlots AvailabilityUsecase.GetDaySlots error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("AvailabilityController.GetDaySlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, response.AvailableCount),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDaySlotsSuccessMessage, response)
}

func (ctrl *AvailabilityController) GetMonthCalendar(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AvailabilityController.GetMonthCalendar requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	month := chi.URLParam(r, constvars.URLParamMonth)
	ctrl.Log.Info("AvailabilityController.GetMonthCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMonthKey, month),
	)

	if err := utils.ValidateVar(month, "required,month_key"); err != nil {
		ctrl.Log.Error("AvailabilityController.GetMonthCalendar invalid month parameter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamMonth))
		return
	}

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.GetMonthCalendar(ctx, month)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.GetMonthCalendar AvailabilityUsecase.GetMonthCalendar error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("AvailabilityController.GetMonthCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Days)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMonthCalendarSuccessMessage, response)
}
