package controllers

import (
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, internalConfig *config.InternalConfig, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		InternalConfig:     internalConfig,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.CreateAppointmentRequest
	if err := decodeJSONBody(r, &request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateAppointmentRequest(&request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.BookFromRequest(ctx, &request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment AppointmentUsecase.BookFromRequest error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.Appointment.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	var request requests.RescheduleAppointmentRequest
	if err := decodeJSONBody(r, &request); err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.AppointmentID = appointmentID
	utils.SanitizeRescheduleAppointmentRequest(&request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Reschedule(ctx, &request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment AppointmentUsecase.Reschedule error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("AppointmentController.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.Appointment.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindToday(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindToday requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AppointmentController.FindToday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindToday(ctx)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindToday AppointmentUsecase.FindToday error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("AppointmentController.FindToday succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Appointments)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTodayAppointmentsSuccessMessage, response)
}
