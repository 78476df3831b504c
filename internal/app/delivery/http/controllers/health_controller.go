package controllers

import (
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
		"env":     ctrl.InternalConfig.App.Env,
		"version": ctrl.InternalConfig.App.Version,
	})
}
