package handlers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Cheertaboi/basket-coupon-service/internal/service"
)

var applyOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "coupon_service",
	Name:      "apply_total",
	Help:      "Coupon applications by outcome.",
}, []string{"outcome"})

func init() {
	prometheus.MustRegister(applyOutcomes)
}

func observeApply(err error) {
	outcome := "applied"
	if err != nil {
		outcome = service.KindOf(err).String()
	}
	applyOutcomes.WithLabelValues(outcome).Inc()
}
