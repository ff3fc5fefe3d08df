package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Cheertaboi/basket-coupon-service/internal/api/handlers"
	"github.com/Cheertaboi/basket-coupon-service/internal/api/middleware"
	"github.com/Cheertaboi/basket-coupon-service/internal/service"
)

// NewRouter builds the HTTP router for the coupon-service
func NewRouter(store service.CouponStore, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	couponHandler := handlers.NewCouponHandler(service.NewCouponService(store))

	r.Route("/api/v1/coupons", func(r chi.Router) {
		r.Get("/", couponHandler.GetCoupons)
		r.Post("/", couponHandler.CreateCoupon)
		r.Post("/{code}/apply", couponHandler.Apply)
	})

	r.Handle("/metrics", promhttp.Handler())

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
