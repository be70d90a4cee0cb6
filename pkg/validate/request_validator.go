package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
)

// Проверка, что RequestValidator удовлетворяет интерфейсу порта.
var _ ports.RequestValidator = (*RequestValidator)(nil)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации заявки.
var ErrInvalidRequest = errors.New("order request validation failed")

// RequestValidator — проверка обязательных полей COD-заявки.
// Единственный структурный инвариант входа — присутствие полей;
// типы уже приведены на этапе разбора JSON.
type RequestValidator struct{}

func NewRequestValidator() *RequestValidator { return &RequestValidator{} }

// Missing — имена отсутствующих обязательных полей в порядке контракта.
func (v *RequestValidator) Missing(req *domain.OrderRequest) []string {
	if req == nil {
		return []string{"name", "phone", "address", "city", "variantId", "quantity"}
	}

	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(req.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(req.VariantID.String()) == "" {
		missing = append(missing, "variantId")
	}
	if req.Quantity.Int() <= 0 {
		missing = append(missing, "quantity")
	}
	return missing
}

// Validate — ошибка ErrInvalidRequest с перечнем полей, если заявка неполная.
func (v *RequestValidator) Validate(_ context.Context, req *domain.OrderRequest) error {
	if missing := v.Missing(req); len(missing) > 0 {
		return fmt.Errorf("%w: отсутствуют поля: %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}
