package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
)

// maxResponseSize — предел чтения тела ответа Admin API (10MB).
const maxResponseSize = 10 * 1024 * 1024

// rawBodyLimit — сколько не-JSON тела сохраняем для диагностики.
const rawBodyLimit = 2048

// Проверка, что Client удовлетворяет порту отправителя заказов.
var _ ports.OrderSubmitter = (*Client)(nil)

// Client — клиент Admin GraphQL API: одна мутация orderCreate на запрос,
// без ретраев; таймаут — только тот, что задан транспорту.
type Client struct {
	httpClient *http.Client
	apiVersion string
	log        ports.Logger
}

func NewClient(apiVersion string, timeout time.Duration, log ports.Logger) *Client {
	if apiVersion == "" {
		apiVersion = "2024-10"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiVersion: apiVersion,
		log:        log,
	}
}

// SetTransport — подмена HTTP-транспорта (нужна тестам).
func (c *Client) SetTransport(rt http.RoundTripper) { c.httpClient.Transport = rt }

func (c *Client) endpoint(shopDomain string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shopDomain, c.apiVersion)
}

// CreateOrder — выполняет ровно один исходящий вызов orderCreate.
// Ошибка возвращается только при транспортном сбое или невозможности
// собрать/прочитать запрос; остальные слои отказа доезжают в результате.
func (c *Client) CreateOrder(ctx context.Context, shop domain.ShopContext, req *domain.OrderRequest) (*domain.RemoteOrderResult, error) {
	payload := graphqlRequest{
		Query:     orderCreateMutation,
		Variables: map[string]any{"order": buildOrderInput(req)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal orderCreate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(shop.Domain), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build orderCreate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Shopify-Access-Token", shop.AccessToken)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("shopify request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read shopify response: %w", err)
	}
	c.log.Infof(ctx, "shopify orderCreate shop=%s status=%d took=%s", shop.Domain, resp.StatusCode, time.Since(start))

	result := &domain.RemoteOrderResult{
		StatusCode: resp.StatusCode,
		RawBody:    truncate(string(raw), rawBodyLimit),
	}

	// Интерпретация тела определяется заявленным content type:
	// всё, что не JSON, — непригодный ответ и дальше не разбирается.
	if mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mediaType != "application/json" {
		c.log.Warnf(ctx, "shopify non-json response shop=%s status=%d content_type=%q", shop.Domain, resp.StatusCode, resp.Header.Get("Content-Type"))
		return result, nil
	}

	var decoded graphqlResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// заявлен JSON, тело не разбирается — считаем ответ непригодным
		c.log.Warnf(ctx, "shopify undecodable json shop=%s status=%d err=%v", shop.Domain, resp.StatusCode, err)
		return result, nil
	}

	result.JSON = true
	result.Errors = parseProtocolErrors(decoded.Errors)
	if decoded.Data != nil {
		result.OrderCreate = decoded.Data.OrderCreate
	}
	return result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
