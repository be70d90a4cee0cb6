package ports

import (
	"context"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
)

// OrderSubmitter — один исходящий вызов создания заказа на платформе.
// Ошибка возвращается только при транспортном сбое; все остальные слои
// отказа доезжают внутри RemoteOrderResult и классифицируются выше.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, shop domain.ShopContext, req *domain.OrderRequest) (*domain.RemoteOrderResult, error)
}
