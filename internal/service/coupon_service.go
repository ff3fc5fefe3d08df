package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/basket-coupon-service/internal/models"
)

//go:generate mockgen -source=./coupon_service.go -package=mocks -destination=./mocks/coupon_store.mock.go

// CouponStore is the persistence contract the service needs. Save must reject
// an existing code with models.ErrDuplicateCode; FindByCode returns nil, nil
// when the code is unknown.
type CouponStore interface {
	Save(ctx context.Context, c models.Coupon) (models.Coupon, error)
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	FindByCodes(ctx context.Context, codes []string) ([]models.Coupon, error)
}

type CreateCouponInput struct {
	Code           string
	Discount       decimal.Decimal
	MinBasketValue decimal.Decimal
}

type CouponService struct {
	store CouponStore
}

func NewCouponService(store CouponStore) *CouponService {
	return &CouponService{store: store}
}

// Apply runs the eligibility rule for code against a basket worth value.
// When the rule rejects the basket the unchanged basket is returned together
// with a Conflict error.
func (s *CouponService) Apply(ctx context.Context, value decimal.Decimal, code string) (models.Basket, error) {
	if !models.AmountInRange(value) {
		return models.Basket{}, invalidRequest("basket value is out of range")
	}
	coupon, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return models.Basket{}, fmt.Errorf("find coupon %s: %w", code, err)
	}
	if coupon == nil {
		return models.Basket{}, notFound(fmt.Sprintf("coupon code %s not found", code))
	}

	basket := models.ApplyCoupon(models.NewBasket(value), *coupon)
	if !basket.ApplicationSuccessful {
		return basket, conflict(fmt.Sprintf("could not apply coupon code %s to basket", code))
	}
	return basket, nil
}

// CreateCoupon persists a new coupon with normalized amounts. Uniqueness is
// left entirely to the store: there is no existence check before the write.
func (s *CouponService) CreateCoupon(ctx context.Context, in CreateCouponInput) (models.Coupon, error) {
	if in.Code == "" {
		return models.Coupon{}, invalidRequest("coupon code cannot be null or empty")
	}
	if !models.AmountInRange(in.Discount) {
		return models.Coupon{}, invalidRequest("coupon discount is out of range")
	}
	if !models.AmountInRange(in.MinBasketValue) {
		return models.Coupon{}, invalidRequest("coupon min basket value is out of range")
	}
	if in.Discount.IsNegative() {
		return models.Coupon{}, invalidRequest("coupon discount cannot be negative")
	}
	if in.MinBasketValue.IsNegative() {
		return models.Coupon{}, invalidRequest("coupon min basket value cannot be negative")
	}

	coupon := models.Coupon{
		Code:           in.Code,
		Discount:       in.Discount,
		MinBasketValue: in.MinBasketValue,
	}.Normalized()
	// rounding can carry 99999999.995 up to the bound
	if !models.AmountInRange(coupon.Discount) || !models.AmountInRange(coupon.MinBasketValue) {
		return models.Coupon{}, invalidRequest("coupon amount is out of range after rounding")
	}

	saved, err := s.store.Save(ctx, coupon)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateCode) {
			return models.Coupon{}, conflict(fmt.Sprintf("coupon code %s already exists", in.Code))
		}
		return models.Coupon{}, fmt.Errorf("save coupon %s: %w", in.Code, err)
	}
	return saved, nil
}

// GetCoupons returns the stored coupons among codes. Unknown codes are
// skipped and the order follows the store, not codes.
func (s *CouponService) GetCoupons(ctx context.Context, codes []string) ([]models.Coupon, error) {
	if len(codes) == 0 {
		return []models.Coupon{}, nil
	}
	coupons, err := s.store.FindByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("find coupons: %w", err)
	}
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	return coupons, nil
}
