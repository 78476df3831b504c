package routers

import (
	"guidingpath-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/today", appointmentController.FindToday)
	router.Post("/{id}/reschedule", appointmentController.RescheduleAppointment)
}
