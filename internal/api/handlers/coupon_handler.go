package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/basket-coupon-service/internal/models"
	"github.com/Cheertaboi/basket-coupon-service/internal/service"
)

// --- Request / Response DTOs ---

// Amounts are accepted as JSON numbers or strings and always written as
// strings with exactly two fractional digits.

type CouponRequest struct {
	Code           string              `json:"code"`
	Discount       decimal.NullDecimal `json:"discount"`
	MinBasketValue decimal.NullDecimal `json:"minBasketValue"`
}

type CouponResponse struct {
	Code           string `json:"code"`
	Discount       string `json:"discount"`
	MinBasketValue string `json:"minBasketValue"`
}

type BasketRequest struct {
	Value decimal.NullDecimal `json:"value"`
}

type BasketResponse struct {
	Value                 string `json:"value"`
	AppliedDiscount       string `json:"appliedDiscount"`
	ApplicationSuccessful bool   `json:"applicationSuccessful"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CouponService is the part of service.CouponService the handlers use.
type CouponService interface {
	Apply(ctx context.Context, value decimal.Decimal, code string) (models.Basket, error)
	CreateCoupon(ctx context.Context, in service.CreateCouponInput) (models.Coupon, error)
	GetCoupons(ctx context.Context, codes []string) ([]models.Coupon, error)
}

// --- Handler struct & constructor ---

type CouponHandler struct {
	service CouponService
}

func NewCouponHandler(svc CouponService) *CouponHandler {
	return &CouponHandler{service: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// maxBodyBytes caps request bodies; no valid payload comes near it.
const maxBodyBytes = 1 << 16

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func money(d decimal.Decimal) string {
	return models.Normalize(d).StringFixed(models.MoneyPlaces)
}

func toCouponResponse(c models.Coupon) CouponResponse {
	return CouponResponse{
		Code:           c.Code,
		Discount:       money(c.Discount),
		MinBasketValue: money(c.MinBasketValue),
	}
}

func toBasketResponse(b models.Basket) BasketResponse {
	return BasketResponse{
		Value:                 money(b.Value),
		AppliedDiscount:       money(b.AppliedDiscount),
		ApplicationSuccessful: b.ApplicationSuccessful,
	}
}

// writeServiceError maps a service outcome to its status code. Anything that
// is not a domain outcome is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())
	kind := service.KindOf(err)
	switch kind {
	case service.KindInvalidRequest:
		logger.Warn().Str("kind", kind.String()).Msg(err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case service.KindNotFound:
		logger.Warn().Str("kind", kind.String()).Msg(err.Error())
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case service.KindConflict:
		logger.Warn().Str("kind", kind.String()).Msg(err.Error())
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error().Err(err).Msg("coupon service failure")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
	}
}

// --- Handlers ---

// Apply handles POST /api/v1/coupons/{code}/apply
func (h *CouponHandler) Apply(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	logger := zerolog.Ctx(r.Context())

	var req BasketRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_body"})
		return
	}
	if !req.Value.Valid {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "basket value is required"})
		return
	}
	if !models.AmountInRange(req.Value.Decimal) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "basket value is out of range"})
		return
	}

	logger.Info().Str("code", code).Str("value", req.Value.Decimal.String()).Msg("applying coupon to basket")

	basket, err := h.service.Apply(r.Context(), req.Value.Decimal, code)
	observeApply(err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.Info().Str("code", code).Str("value", money(basket.Value)).Msg("applied coupon to basket")
	writeJSON(w, http.StatusAccepted, toBasketResponse(basket))
}

// CreateCoupon handles POST /api/v1/coupons
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req CouponRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_body"})
		return
	}
	if req.Code != "" && (!req.Discount.Valid || !req.MinBasketValue.Valid) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "discount and minBasketValue are required"})
		return
	}

	logger.Info().Str("code", req.Code).Msg("creating coupon")

	coupon, err := h.service.CreateCoupon(r.Context(), service.CreateCouponInput{
		Code:           req.Code,
		Discount:       req.Discount.Decimal,
		MinBasketValue: req.MinBasketValue.Decimal,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.Info().Str("code", coupon.Code).Msg("coupon created")
	writeJSON(w, http.StatusOK, toCouponResponse(coupon))
}

// GetCoupons handles GET /api/v1/coupons?codes=a,b
// The parameter may also be repeated: ?codes=a&codes=b
func (h *CouponHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["codes"]
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "codes required"})
		return
	}

	var codes []string
	for _, v := range values {
		for _, code := range strings.Split(v, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
	}

	zerolog.Ctx(r.Context()).Info().Strs("codes", codes).Msg("getting coupons")

	coupons, err := h.service.GetCoupons(r.Context(), codes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		resp = append(resp, toCouponResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
