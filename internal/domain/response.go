package domain

import "net/http"

// Стабильные машинные коды внешнего контракта.
// Написание (CamelCase у локальных отказов, SCREAMING_SNAKE у удалённых слоёв)
// зафиксировано контрактом с витриной и не меняется.
const (
	CodeMethodNotAllowed    = "MethodNotAllowed"
	CodeRateLimitExceeded   = "RateLimitExceeded"
	CodeInvalidProxyRequest = "InvalidProxyRequest"
	CodeInvalidShopDomain   = "InvalidShopDomain"
	CodeBadRequestBody      = "BadRequestBody"
	CodeMissingFields       = "MissingFields"
	CodeServerMisconfigured = "ServerMisconfigured"

	CodeShopifyInvalidResponse     = "SHOPIFY_INVALID_RESPONSE"
	CodeShopifyHTTPError           = "SHOPIFY_HTTP_ERROR"
	CodeCustomerPhoneTaken         = "CUSTOMER_PHONE_TAKEN"
	CodeGraphQLError               = "GRAPHQL_ERROR"
	CodeMissingOrderCreate         = "MISSING_ORDER_CREATE"
	CodeOrderCreateValidationError = "ORDER_CREATE_VALIDATION_ERROR"
	CodeNoOrderReturned            = "NO_ORDER_RETURNED"
	CodeInternalServerError        = "INTERNAL_SERVER_ERROR"
)

// Envelope — единственная форма ответа клиенту.
type Envelope struct {
	Success         bool          `json:"success"`
	Error           string        `json:"error,omitempty"`
	Message         string        `json:"message,omitempty"`
	Details         any           `json:"details,omitempty"`
	OrderID         string        `json:"orderId,omitempty"`
	FinancialStatus string        `json:"financialStatus,omitempty"`
	Order           *CreatedOrder `json:"order,omitempty"`
}

// Outcome — классифицированный итог обработки: HTTP-статус плюс конверт.
type Outcome struct {
	Status int
	Body   Envelope
}

// Failure — конверт отказа без подробностей.
func Failure(status int, code, message string) Outcome {
	return Outcome{
		Status: status,
		Body:   Envelope{Success: false, Error: code, Message: message},
	}
}

// FailureDetails — конверт отказа с полем details.
func FailureDetails(status int, code, message string, details any) Outcome {
	out := Failure(status, code, message)
	out.Body.Details = details
	return out
}

// Created — успешный конверт с данными созданного заказа.
func Created(order *CreatedOrder) Outcome {
	env := Envelope{
		Success: true,
		Message: "order created",
		Order:   order,
	}
	if order != nil {
		env.OrderID = order.ID
		env.FinancialStatus = order.DisplayFinancialStatus
	}
	return Outcome{Status: http.StatusOK, Body: env}
}
