package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/basket-coupon-service/internal/models"
)

var couponColumns = []string{"id", "code", "discount", "min_basket_value"}

func TestCouponRepo_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "duplicate code",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("INSERT INTO coupons .*").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_unique_code"})
				return mockDB
			},
			wantErr: models.ErrDuplicateCode,
		},
		{
			name: "database error",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("INSERT INTO coupons .*").
					WillReturnError(errors.New("connection refused"))
				return mockDB
			},
			wantErr: errors.New("insert coupon: connection refused"),
		},
		{
			name: "inserted",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("INSERT INTO coupons .*").
					WithArgs("code-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "discount", "min_basket_value"}).
						AddRow(int64(7), "10.01", "20.00"))
				return mockDB
			},
			wantID: 7,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewCouponRepo(tc.mock(t), 0)
			c, err := repo.Save(context.Background(), newCoupon("code-1", "10.01", "20"))
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, models.ErrDuplicateCode) {
					assert.ErrorIs(t, err, models.ErrDuplicateCode)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, c.ID)
			assert.Equal(t, "code-1", c.Code)
			assert.Equal(t, "20.00", c.MinBasketValue.StringFixed(2))
		})
	}
}

func TestCouponRepo_FindByCode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectQuery("SELECT id, code, discount, min_basket_value FROM coupons WHERE code = .*").
			WithArgs("code-1").
			WillReturnRows(sqlmock.NewRows(couponColumns).AddRow(int64(1), "code-1", "10.01", "20.00"))

		c, err := NewCouponRepo(db, 0).FindByCode(context.Background(), "code-1")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "code-1", c.Code)
		assert.True(t, decimal.RequireFromString("10.01").Equal(c.Discount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectQuery("SELECT .* FROM coupons .*").
			WithArgs("code-x").
			WillReturnRows(sqlmock.NewRows(couponColumns))

		c, err := NewCouponRepo(db, 0).FindByCode(context.Background(), "code-x")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("database error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectQuery("SELECT .* FROM coupons .*").
			WillReturnError(sql.ErrConnDone)

		_, err = NewCouponRepo(db, 0).FindByCode(context.Background(), "code-1")
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestCouponRepo_FindByCodes(t *testing.T) {
	t.Run("single batch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectQuery("SELECT .* FROM coupons WHERE code = ANY.*").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(couponColumns).
				AddRow(int64(1), "code-1", "10.01", "20.00").
				AddRow(int64(2), "code-2", "100.00", "200.00"))

		coupons, err := NewCouponRepo(db, 0).FindByCodes(context.Background(), []string{"code-1", "code-2", "code-1", ""})
		require.NoError(t, err)
		require.Len(t, coupons, 2)
		assert.Equal(t, "code-1", coupons[0].Code)
		assert.Equal(t, "code-2", coupons[1].Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.MatchExpectationsInOrder(false)
		for i := 0; i < 2; i++ {
			mock.ExpectQuery("SELECT .* FROM coupons WHERE code = ANY.*").
				WillReturnRows(sqlmock.NewRows(couponColumns))
		}

		coupons, err := NewCouponRepo(db, 2).FindByCodes(context.Background(), []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Empty(t, coupons)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batches keep input order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.MatchExpectationsInOrder(false)
		mock.ExpectQuery("SELECT .* FROM coupons WHERE code = ANY.*").
			WithArgs(`{"c"}`).
			WillReturnRows(sqlmock.NewRows(couponColumns).AddRow(int64(1), "c", "1.00", "2.00"))
		mock.ExpectQuery("SELECT .* FROM coupons WHERE code = ANY.*").
			WithArgs(`{"a","b"}`).
			WillReturnRows(sqlmock.NewRows(couponColumns).
				AddRow(int64(2), "a", "1.00", "2.00").
				AddRow(int64(3), "b", "1.00", "2.00"))

		coupons, err := NewCouponRepo(db, 2).FindByCodes(context.Background(), []string{"a", "b", "c"})
		require.NoError(t, err)
		got := make([]string, 0, len(coupons))
		for _, c := range coupons {
			got = append(got, c.Code)
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no codes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		coupons, err := NewCouponRepo(db, 0).FindByCodes(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, coupons)
		assert.Empty(t, coupons)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDistinctCodes(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, distinctCodes([]string{"b", "", "a", "b"}))
}
