package ports

import (
	"context"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
)

// RequestValidator — проверка обязательных полей COD-заявки.
type RequestValidator interface {
	// Validate — ошибка, если заявка неполная.
	Validate(ctx context.Context, req *domain.OrderRequest) error
	// Missing — имена отсутствующих полей (пустой срез у полной заявки).
	Missing(req *domain.OrderRequest) []string
}
