package repository

import (
	"context"
	"sync"

	"github.com/Cheertaboi/basket-coupon-service/internal/models"
)

// MemoryCouponRepo keeps coupons in process memory. Lookups return coupons in
// insertion order.
type MemoryCouponRepo struct {
	mu     sync.RWMutex
	nextID int64
	order  []string
	byCode map[string]models.Coupon
}

func NewMemoryCouponRepo() *MemoryCouponRepo {
	return &MemoryCouponRepo{
		byCode: make(map[string]models.Coupon),
	}
}

func (r *MemoryCouponRepo) Save(ctx context.Context, c models.Coupon) (models.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return models.Coupon{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[c.Code]; ok {
		return models.Coupon{}, models.ErrDuplicateCode
	}
	r.nextID++
	c.ID = r.nextID
	r.byCode[c.Code] = c
	r.order = append(r.order, c.Code)
	return c, nil
}

func (r *MemoryCouponRepo) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryCouponRepo) FindByCodes(ctx context.Context, codes []string) ([]models.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		wanted[code] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	coupons := []models.Coupon{}
	for _, code := range r.order {
		if _, ok := wanted[code]; ok {
			coupons = append(coupons, r.byCode[code])
		}
	}
	return coupons, nil
}
