package queries

import (
	"context"

	"gorm.io/gorm"

	"orderdesk/internal/core/domain/services"
)

// ProductDemandQueryHandler aggregates line quantities per product.
// Visible to Dispatch, Accounts, and Admin.
type ProductDemandQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewProductDemandQueryHandler creates a handler for demand aggregation.
func NewProductDemandQueryHandler(db *gorm.DB) ProductDemandQueryHandler {
	return ProductDemandQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the aggregation over orders created inside the range.
func (h ProductDemandQueryHandler) Handle(ctx context.Context, query ProductDemandQuery) (ProductDemandQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductDemandQueryResponse{}, err
	}

	if err := h.policy.Authorize(query.ActorRole(), services.OpViewReports); err != nil {
		return ProductDemandQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.product_name,
			SUM(i.ordered_qty) AS total_qty,
			COUNT(DISTINCT i.order_id) AS order_count
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.created_at >= ? AND o.created_at < ?
		GROUP BY i.product_name
		ORDER BY total_qty DESC, i.product_name ASC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return ProductDemandQueryResponse{}, err
	}
	defer rows.Close()

	ranking := make([]ProductDemandRow, 0)
	for rows.Next() {
		var row ProductDemandRow
		if err = rows.Scan(&row.ProductName, &row.TotalQty, &row.OrderCount); err != nil {
			return ProductDemandQueryResponse{}, err
		}
		ranking = append(ranking, row)
	}
	if err = rows.Err(); err != nil {
		return ProductDemandQueryResponse{}, err
	}

	limit := query.TopN()
	if limit == 0 || limit > len(ranking) {
		limit = len(ranking)
	}

	resp := ProductDemandQueryResponse{
		Highest: make([]ProductDemandRow, limit),
		Lowest:  make([]ProductDemandRow, limit),
	}
	copy(resp.Highest, ranking[:limit])
	for i := 0; i < limit; i++ {
		resp.Lowest[i] = ranking[len(ranking)-1-i]
	}

	return resp, nil
}
