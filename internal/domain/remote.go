package domain

// RemoteOrderResult — классифицируемый итог удалённого вызова orderCreate.
// Ровно одно из состояний: не-JSON тело (JSON=false), HTTP-ошибка (StatusCode),
// протокольные ошибки (Errors), отсутствие payload (OrderCreate=nil),
// бизнес-ошибки (OrderCreate.UserErrors) или успех (OrderCreate.Order).
// Транспортный сбой сюда не попадает — он возвращается ошибкой из клиента.
type RemoteOrderResult struct {
	StatusCode int
	JSON       bool
	RawBody    string // усечённое тело: диагностика и распознавание известных бизнес-отказов

	Errors      []GraphQLError
	OrderCreate *OrderCreateResult
}

// GraphQLError — ошибка протокольного уровня из верхнего списка errors.
type GraphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// Code — код ошибки из extensions (может быть пустым).
func (e GraphQLError) Code() string { return e.Extensions.Code }

// UserError — бизнес-ошибка валидации внутри успешного протокольного ответа.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// OrderCreateResult — payload мутации orderCreate.
type OrderCreateResult struct {
	UserErrors []UserError   `json:"userErrors"`
	Order      *CreatedOrder `json:"order"`
}
