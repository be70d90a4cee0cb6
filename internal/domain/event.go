package domain

import "time"

// OrderCreatedEvent — событие об успешно созданном заказе для шины аудита.
type OrderCreatedEvent struct {
	OrderID         string    `json:"order_id"`
	Shop            string    `json:"shop"`
	FinancialStatus string    `json:"financial_status,omitempty"`
	VariantID       string    `json:"variant_id"`
	Quantity        int       `json:"quantity"`
	RequestID       string    `json:"request_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
