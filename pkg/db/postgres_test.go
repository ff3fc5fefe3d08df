package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	testCases := []struct {
		name    string
		execErr error
		wantErr string
	}{
		{name: "created"},
		{name: "failed", execErr: errors.New("permission denied"), wantErr: "migrate: permission denied"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			exp := mock.ExpectExec("CREATE TABLE IF NOT EXISTS coupons .* CONSTRAINT idx_unique_code UNIQUE \\(code\\)")
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 0))
			}

			err = Migrate(context.Background(), db)
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
