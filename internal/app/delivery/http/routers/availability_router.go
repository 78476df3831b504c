package routers

import (
	"guidingpath-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Get("/days/{date}", availabilityController.GetDaySlots)
	router.Get("/months/{month}", availabilityController.GetMonthCalendar)
}
