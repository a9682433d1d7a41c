package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/internal/domain"
)

var columns = []string{"id", "policy_name", "description", "full_refund_hours", "partial_refund_percent"}

func TestRepository_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(mock sqlmock.Sqlmock)
		want    *domain.CancellationPolicy
		wantErr error
	}{
		{
			name: "success",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, policy_name, description, full_refund_hours, partial_refund_percent FROM cancellation_policies WHERE id = \$1`).
					WithArgs(int64(3)).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(3), "Moderate", "Full refund 7 days before", int64(168), int64(50)))
			},
			want: &domain.CancellationPolicy{
				ID:                   3,
				Name:                 "Moderate",
				Description:          "Full refund 7 days before",
				FullRefundHours:      168,
				PartialRefundPercent: 50,
			},
		},
		{
			name: "nullable_columns",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM cancellation_policies`).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(3), "Strict", nil, nil, nil))
			},
			want: &domain.CancellationPolicy{ID: 3, Name: "Strict"},
		},
		{
			name: "not_found",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM cancellation_policies`).WillReturnRows(sqlmock.NewRows(columns))
			},
			wantErr: ErrPolicyNotFound,
		},
		{
			name: "query_error",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM cancellation_policies`).WillReturnError(errors.New("connection refused"))
			},
			wantErr: ErrScanRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.prepare(mock)

			got, err := NewRepository(db).GetByID(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
