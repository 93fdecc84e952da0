package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
)

// ListShippingMethodsQueryHandler reads pages of shipping methods.
type ListShippingMethodsQueryHandler struct {
	db *gorm.DB
}

// NewListShippingMethodsQueryHandler creates a handler for method listings.
// Requires a GORM database connection for query execution.
func NewListShippingMethodsQueryHandler(db *gorm.DB) ListShippingMethodsQueryHandler {
	return ListShippingMethodsQueryHandler{db: db}
}

// Handle executes the listing ordered by kind then description.
func (h ListShippingMethodsQueryHandler) Handle(
	ctx context.Context,
	query ListShippingMethodsQuery,
) ([]MethodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	methods := make([]MethodResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			description,
			estimated_days,
			cost
		FROM shipping_methods
		ORDER BY kind, description
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var method MethodResponse
		var id uuid.UUID
		var kind string

		err = rows.Scan(&id, &kind, &method.Description, &method.EstimatedDays, &method.Cost)
		if err != nil {
			return nil, err
		}

		if method.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if method.Kind, err = shippingmethod.KindFromString(kind); err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
