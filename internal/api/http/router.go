package http

import (
	"net/http"
	"time"

	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// NewRouter wires all back-office routes onto a gorilla/mux router.
func NewRouter(vehicles service.VehicleService, rentals service.RentalService, protocols service.ProtocolService) *mux.Router {
	validate := validator.New()

	vehicleHandler := NewVehicleHandler(vehicles, validate)
	rentalHandler := NewRentalHandler(rentals, validate)
	protocolHandler := NewProtocolHandler(protocols, validate)

	router := mux.NewRouter()
	router.Use(requestLogging)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/vehicles", vehicleHandler.Create).Methods("POST")
	api.HandleFunc("/vehicles", vehicleHandler.List).Methods("GET")
	api.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods("GET")
	api.HandleFunc("/vehicles/{id}", vehicleHandler.Update).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", vehicleHandler.Delete).Methods("DELETE")

	api.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	api.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	api.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods("POST")
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods("GET")
	api.HandleFunc("/rentals/{id}", rentalHandler.Update).Methods("PUT")
	api.HandleFunc("/rentals/{id}/cancel", rentalHandler.Cancel).Methods("POST")

	api.HandleFunc("/rentals/{id}/handover", protocolHandler.CreateHandover).Methods("POST")
	api.HandleFunc("/rentals/{id}/handover", protocolHandler.GetHandover).Methods("GET")
	api.HandleFunc("/rentals/{id}/settlement/preview", protocolHandler.PreviewSettlement).Methods("POST")
	api.HandleFunc("/rentals/{id}/return", protocolHandler.FinalizeReturn).Methods("POST")
	api.HandleFunc("/rentals/{id}/return", protocolHandler.GetReturn).Methods("GET")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
