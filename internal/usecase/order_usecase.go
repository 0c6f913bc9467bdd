package usecase

import (
	"context"
	"net/http"

	"app/internal/catalog"
	"app/internal/domain/model"
)

// OrderUsecaseは注文履歴の読み取りだけ。
// 注文作成・決済はこのサービスでは扱わない。
type OrderUsecase struct {
	catalog *catalog.Catalog
}

// DI
func NewOrderUsecase(c *catalog.Catalog) *OrderUsecase {
	return &OrderUsecase{catalog: c}
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int           `json:"total"`
}

func (u *OrderUsecase) ListOrders(ctx context.Context, userID string) (OrderListOutput, error) {
	if userID == "" {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items := u.catalog.OrdersByUserID(userID)
	return OrderListOutput{
		Items: items,
		Total: len(items),
	}, nil
}
