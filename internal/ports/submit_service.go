package ports

import (
	"context"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
)

// OrderSubmitService — конвейер обработки COD-заявки.
// Ошибок не возвращает: любой исход выражается Outcome со стабильным кодом.
type OrderSubmitService interface {
	Submit(ctx context.Context, in domain.Submission) domain.Outcome
}
