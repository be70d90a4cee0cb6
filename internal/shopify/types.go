package shopify

import (
	"encoding/json"
	"strings"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
)

// orderCreateMutation — единственная мутация, которую выполняет клиент.
// Selection set сразу возвращает идентификацию и статус заказа,
// чтобы не делать дочитывающий запрос.
const orderCreateMutation = `mutation orderCreate($order: OrderCreateOrderInput!) {
  orderCreate(order: $order) {
    userErrors {
      field
      message
    }
    order {
      id
      name
      displayFinancialStatus
      customer {
        id
        firstName
        phone
      }
      shippingAddress {
        firstName
        address1
        city
        phone
      }
      billingAddress {
        firstName
        address1
        city
        phone
      }
    }
  }
}`

const variantGIDPrefix = "gid://shopify/ProductVariant/"

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphqlResponse — верхний конверт ответа Admin API.
// errors декодируется лениво: при HTTP-ошибках платформа может вернуть
// объект вместо списка (REST-форма), и это не должно ронять разбор.
type graphqlResponse struct {
	Errors json.RawMessage `json:"errors"`
	Data   *struct {
		OrderCreate *domain.OrderCreateResult `json:"orderCreate"`
	} `json:"data"`
}

// variantGID — глобально-именованный идентификатор варианта.
// Уже полный gid пропускается как есть.
func variantGID(id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return variantGIDPrefix + id
}

// buildOrderInput — вход мутации из COD-заявки: одна позиция, upsert покупателя,
// одинаковые адреса доставки и оплаты, фиксированные note и статус PENDING.
func buildOrderInput(req *domain.OrderRequest) map[string]any {
	address := map[string]any{
		"firstName": req.Name,
		"address1":  req.Address,
		"city":      req.City,
		"phone":     req.Phone,
	}

	return map[string]any{
		"lineItems": []any{
			map[string]any{
				"variantId": variantGID(req.VariantID.String()),
				"quantity":  req.Quantity.Int(),
			},
		},
		"customer": map[string]any{
			"toUpsert": map[string]any{
				"firstName": req.Name,
				"phone":     req.Phone,
			},
		},
		"shippingAddress": address,
		"billingAddress":  address,
		"note":            "COD order via storefront app proxy",
		"financialStatus": "PENDING",
	}
}

// parseProtocolErrors — список протокольных ошибок, если errors — массив.
func parseProtocolErrors(raw json.RawMessage) []domain.GraphQLError {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil
	}
	var errs []domain.GraphQLError
	if err := json.Unmarshal(raw, &errs); err != nil {
		return nil
	}
	return errs
}
