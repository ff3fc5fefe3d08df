package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Cheertaboi/basket-coupon-service/internal/concurrency"
	"github.com/Cheertaboi/basket-coupon-service/internal/models"
)

// Postgres SQLSTATE for unique_violation.
const uniqueViolation pq.ErrorCode = "23505"

const (
	DefaultLookupBatch       = 500
	defaultLookupConcurrency = 4
)

type CouponRepo struct {
	db          *sql.DB
	lookupBatch int
}

func NewCouponRepo(db *sql.DB, lookupBatch int) *CouponRepo {
	if lookupBatch <= 0 {
		lookupBatch = DefaultLookupBatch
	}
	return &CouponRepo{db: db, lookupBatch: lookupBatch}
}

// Save inserts c and relies on the unique constraint on code to reject
// duplicates, which are reported as models.ErrDuplicateCode.
func (r *CouponRepo) Save(ctx context.Context, c models.Coupon) (models.Coupon, error) {
	query := `
		INSERT INTO coupons (code, discount, min_basket_value)
		VALUES ($1, $2, $3)
		RETURNING id, discount, min_basket_value
	`

	err := r.db.QueryRowContext(ctx, query, c.Code, c.Discount, c.MinBasketValue).
		Scan(&c.ID, &c.Discount, &c.MinBasketValue)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.Coupon{}, models.ErrDuplicateCode
		}
		return models.Coupon{}, fmt.Errorf("insert coupon: %w", err)
	}
	return c, nil
}

func (r *CouponRepo) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var c models.Coupon

	query := `
		SELECT id, code, discount, min_basket_value
		FROM coupons
		WHERE code = $1;
	`

	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&c.ID,
		&c.Code,
		&c.Discount,
		&c.MinBasketValue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select coupon: %w", err)
	}
	return &c, nil
}

// FindByCodes returns the coupons whose code is in codes. Large inputs are
// queried in batches; results keep batch order, then insertion order.
func (r *CouponRepo) FindByCodes(ctx context.Context, codes []string) ([]models.Coupon, error) {
	codes = distinctCodes(codes)
	if len(codes) == 0 {
		return []models.Coupon{}, nil
	}

	// each worker writes only its own index
	batches := make([][]models.Coupon, (len(codes)+r.lookupBatch-1)/r.lookupBatch)
	err := concurrency.ForEachChunk(ctx, codes, r.lookupBatch, defaultLookupConcurrency,
		func(ctx context.Context, index int, chunk []string) error {
			found, err := r.findBatch(ctx, chunk)
			if err != nil {
				return err
			}
			batches[index] = found
			return nil
		})
	if err != nil {
		return nil, err
	}

	coupons := []models.Coupon{}
	for _, b := range batches {
		coupons = append(coupons, b...)
	}
	return coupons, nil
}

func (r *CouponRepo) findBatch(ctx context.Context, codes []string) ([]models.Coupon, error) {
	query := `
		SELECT id, code, discount, min_basket_value
		FROM coupons
		WHERE code = ANY($1)
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(codes))
	if err != nil {
		return nil, fmt.Errorf("select coupons: %w", err)
	}
	defer rows.Close()

	var coupons []models.Coupon
	for rows.Next() {
		var c models.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Discount, &c.MinBasketValue); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupons: %w", err)
	}
	return coupons, nil
}

// distinctCodes drops empty and repeated codes, keeping first occurrence order.
func distinctCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
