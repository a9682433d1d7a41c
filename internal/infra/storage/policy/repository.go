package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/pkg/dbmetrics"
	"github.com/planbeau/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий политик отмены
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик отмены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает политику отмены по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"policy_name",
		"description",
		"full_refund_hours",
		"partial_refund_percent",
	).
		From("cancellation_policies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		policy        domain.CancellationPolicy
		description   sql.NullString
		fullRefund    sql.NullInt64
		partialRefund sql.NullInt64
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.Name,
		&description,
		&fullRefund,
		&partialRefund,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan policy: %v", ErrScanRow, err)
	}

	policy.Description = description.String
	policy.FullRefundHours = int(fullRefund.Int64)
	policy.PartialRefundPercent = int(partialRefund.Int64)

	return &policy, nil
}
