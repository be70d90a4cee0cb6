package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ShopDomainSuffix — обязательный суффикс витринного домена платформы.
const ShopDomainSuffix = ".myshopify.com"

// OrderRequest — разобранное тело COD-заявки, пришедшее через app proxy.
// Вход недоверенный: variantId и quantity могут прийти строкой или числом.
type OrderRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	VariantID FlexID  `json:"variantId"`
	Quantity  FlexInt `json:"quantity"`
}

// FlexID — идентификатор, принимающий в JSON строку или число.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(s, &v); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(s, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// FlexInt — целое, принимающее в JSON число или числовую строку.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(s, &v); err != nil {
			return err
		}
		s = []byte(strings.TrimSpace(v))
	}
	if len(s) == 0 {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return fmt.Errorf("not an integer: %q", string(s))
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// ParseOrderRequest — разбор тела запроса.
// Тело может прийти как объект JSON или как JSON-строка, содержащая JSON
// (двойное кодирование на стороне витрины).
func ParseOrderRequest(raw []byte) (*OrderRequest, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	// двойное кодирование: сначала снимаем внешнюю строку
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		data = []byte(inner)
	}

	var req OrderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return &req, nil
}

// ShopContext — домен магазина и токен доступа для вызова Admin API.
type ShopContext struct {
	Domain      string
	AccessToken string
}

// Complete — обе части конфигурации заданы и домен корректен.
func (s ShopContext) Complete() bool {
	return s.Domain != "" && s.AccessToken != "" && strings.HasSuffix(s.Domain, ShopDomainSuffix)
}

// CreatedOrder — созданный заказ в том виде, в котором его вернула платформа.
type CreatedOrder struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name,omitempty"`
	DisplayFinancialStatus string         `json:"displayFinancialStatus,omitempty"`
	Customer               *OrderCustomer `json:"customer,omitempty"`
	ShippingAddress        *OrderAddress  `json:"shippingAddress,omitempty"`
	BillingAddress         *OrderAddress  `json:"billingAddress,omitempty"`
}

type OrderCustomer struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type OrderAddress struct {
	FirstName string `json:"firstName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
