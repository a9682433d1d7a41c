package offering

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/pkg/dbmetrics"
	"github.com/planbeau/booking-service/pkg/psqlbuilder"
)

// Пакеты и услуги хранятся в разных таблицах с одинаковым набором колонок
var tables = map[domain.OfferingKind]string{
	domain.KindPackage: "vendor_packages",
	domain.KindService: "vendor_services",
}

var columns = []string{
	"id",
	"vendor_profile_id",
	"name",
	"price",
	"base_rate",
	"sale_price",
	"pricing_model",
	"min_attendees",
	"max_attendees",
	"duration_minutes",
}

// Repository репозиторий пакетов и услуг вендоров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs получает предложения вендора по списку ID.
// Чужие и несуществующие ID молча пропускаются, вызывающий сравнивает количество.
func (r *Repository) GetByIDs(ctx context.Context, vendorID int64, kind domain.OfferingKind, ids []int64) ([]domain.Offering, error) {
	if len(ids) == 0 {
		return []domain.Offering{}, nil
	}

	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"vendor_profile_id": vendorID}).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC")

	return r.query(ctx, "GetByIDs", kind, builder)
}

// ListByVendor получает все активные предложения вендора указанного типа
func (r *Repository) ListByVendor(ctx context.Context, vendorID int64, kind domain.OfferingKind) ([]domain.Offering, error) {
	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"vendor_profile_id": vendorID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC")

	return r.query(ctx, "ListByVendor", kind, builder)
}

func (r *Repository) query(ctx context.Context, op string, kind domain.OfferingKind, builder squirrel.SelectBuilder) ([]domain.Offering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	offerings := make([]domain.Offering, 0)
	for rows.Next() {
		o, err := scanOffering(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		offerings = append(offerings, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return offerings, nil
}

func scanOffering(rows *sql.Rows, kind domain.OfferingKind) (domain.Offering, error) {
	var (
		o                           domain.Offering
		price, baseRate, salePrice  sql.NullFloat64
		pricingModel                sql.NullString
		minAtt, maxAtt, durationMin sql.NullInt64
	)

	err := rows.Scan(
		&o.ID,
		&o.VendorID,
		&o.Name,
		&price,
		&baseRate,
		&salePrice,
		&pricingModel,
		&minAtt,
		&maxAtt,
		&durationMin,
	)
	if err != nil {
		return domain.Offering{}, err
	}

	o.Kind = kind
	o.Price = price.Float64
	o.BaseRate = baseRate.Float64
	o.PricingModel = domain.ParsePricingModel(pricingModel.String)
	if salePrice.Valid {
		o.SalePrice = &salePrice.Float64
	}
	o.MinAttendees = nullIntPtr(minAtt)
	o.MaxAttendees = nullIntPtr(maxAtt)
	o.DurationMinutes = nullIntPtr(durationMin)

	return o, nil
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
