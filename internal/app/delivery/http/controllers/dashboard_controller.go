package controllers

import (
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, internalConfig *config.InternalConfig, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		InternalConfig:   internalConfig,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetReport(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("DashboardController.GetReport requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DashboardController.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := newRequestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetReport(ctx)
	if err != nil {
		ctrl.Log.Error("DashboardController.GetReport DashboardUsecase.GetReport error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("DashboardController.GetReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, response.TotalAppointments),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardReportSuccessMessage, response)
}
