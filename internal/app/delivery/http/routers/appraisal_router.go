package routers

import (
	"guidingpath-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppraisalRoutes(router chi.Router, appraisalController *controllers.AppraisalController) {
	router.Post("/evaluate", appraisalController.Evaluate)
}
