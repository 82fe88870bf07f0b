package http

import (
	"net/http"

	"beauty-booking-backend/internal/delivery/http/handler"
	"beauty-booking-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	establishmentHandler *handler.EstablishmentHandler
	serviceHandler       *handler.ServiceHandler
	staffHandler         *handler.StaffHandler
	scheduleHandler      *handler.ScheduleHandler
	availabilityHandler  *handler.AvailabilityHandler
	appointmentHandler   *handler.AppointmentHandler
	corsMiddleware       *middleware.CORSMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

func NewRouter(
	establishmentHandler *handler.EstablishmentHandler,
	serviceHandler *handler.ServiceHandler,
	staffHandler *handler.StaffHandler,
	scheduleHandler *handler.ScheduleHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		establishmentHandler: establishmentHandler,
		serviceHandler:       serviceHandler,
		staffHandler:         staffHandler,
		scheduleHandler:      scheduleHandler,
		availabilityHandler:  availabilityHandler,
		appointmentHandler:   appointmentHandler,
		corsMiddleware:       corsMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Establishments
	api.HandleFunc("/establishments", r.establishmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/establishments", r.establishmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/establishments/{id}", r.establishmentHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/establishments/{id}", r.establishmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/establishments/{id}", r.establishmentHandler.Delete).Methods(http.MethodDelete)

	// Services
	api.HandleFunc("/establishments/{id}/services", r.serviceHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/establishments/{id}/services", r.serviceHandler.ListByEstablishment).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	// Staff
	api.HandleFunc("/establishments/{id}/staff", r.staffHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/establishments/{id}/staff", r.staffHandler.ListByEstablishment).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}", r.staffHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}", r.staffHandler.Delete).Methods(http.MethodDelete)

	// Weekly schedule and time off
	api.HandleFunc("/staff/{id}/schedule", r.scheduleHandler.SaveSchedule).Methods(http.MethodPut)
	api.HandleFunc("/staff/{id}/schedule", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/time-off", r.scheduleHandler.CreateTimeOff).Methods(http.MethodPost)
	api.HandleFunc("/staff/{id}/time-off", r.scheduleHandler.ListTimeOff).Methods(http.MethodGet)
	api.HandleFunc("/time-off/{id}", r.scheduleHandler.DeleteTimeOff).Methods(http.MethodDelete)

	// Availability
	api.HandleFunc("/staff/{id}/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPost)
	api.HandleFunc("/staff/{id}/appointments", r.appointmentHandler.ListByStaffAndDate).Methods(http.MethodGet)
	api.HandleFunc("/establishments/{id}/appointments", r.appointmentHandler.ListByEstablishment).Methods(http.MethodGet)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
