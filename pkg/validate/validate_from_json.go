package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
)

// ValidateRequestFromJSON — разбор и валидация COD-заявки из JSON.
// Принимает и обычный объект, и двойное кодирование (JSON-строку с JSON).
func ValidateRequestFromJSON(ctx context.Context, validator ports.RequestValidator, raw []byte) (*domain.OrderRequest, error) {
	req, err := domain.ParseOrderRequest(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
