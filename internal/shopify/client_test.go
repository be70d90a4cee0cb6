package shopify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/shopify"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func testRequest() *domain.OrderRequest {
	return &domain.OrderRequest{
		Name:      "Ivan",
		Phone:     "+79990001122",
		Address:   "Lenina 1",
		City:      "Moscow",
		VariantID: domain.FlexID("42"),
		Quantity:  domain.FlexInt(2),
	}
}

func shopFor(srv *httptest.Server) domain.ShopContext {
	return domain.ShopContext{
		Domain:      strings.TrimPrefix(srv.URL, "http://"),
		AccessToken: "shpat_test",
	}
}

// roundTripperTo — направляет любой запрос в httptest-сервер, сохраняя
// исходный URL для проверок (https из клиента в тестах не поднимаем).
type roundTripperTo struct {
	srv *httptest.Server
}

func (rt roundTripperTo) RoundTrip(req *http.Request) (*http.Response, error) {
	proxied := req.Clone(req.Context())
	proxied.URL.Scheme = "http"
	proxied.URL.Host = strings.TrimPrefix(rt.srv.URL, "http://")
	return http.DefaultTransport.RoundTrip(proxied)
}

func newClientFor(t *testing.T, srv *httptest.Server) *shopify.Client {
	t.Helper()
	c := shopify.NewClient("2024-10", 0, noopLogger{})
	c.SetTransport(roundTripperTo{srv: srv})
	return c
}

func TestCreateOrder_BuildsMutationAndHeaders(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"orderCreate":{"userErrors":[],"order":{"id":"gid://shopify/Order/1","displayFinancialStatus":"PENDING"}}}}`))
	}))
	defer srv.Close()

	c := newClientFor(t, srv)
	res, err := c.CreateOrder(context.Background(), domain.ShopContext{Domain: "demo.myshopify.com", AccessToken: "shpat_test"}, testRequest())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	if gotPath != "/admin/api/2024-10/graphql.json" {
		t.Fatalf("wrong path: %q", gotPath)
	}
	if gotToken != "shpat_test" {
		t.Fatalf("wrong access token header: %q", gotToken)
	}

	query, _ := gotBody["query"].(string)
	if !strings.Contains(query, "orderCreate") || !strings.Contains(query, "userErrors") {
		t.Fatalf("mutation text wrong: %s", query)
	}

	vars := gotBody["variables"].(map[string]any)
	order := vars["order"].(map[string]any)
	items := order["lineItems"].([]any)
	item := items[0].(map[string]any)
	if item["variantId"] != "gid://shopify/ProductVariant/42" {
		t.Fatalf("variant gid wrong: %v", item["variantId"])
	}
	if item["quantity"] != float64(2) {
		t.Fatalf("quantity wrong: %v", item["quantity"])
	}
	if order["financialStatus"] != "PENDING" {
		t.Fatalf("financialStatus wrong: %v", order["financialStatus"])
	}
	shipping := order["shippingAddress"].(map[string]any)
	if shipping["city"] != "Moscow" || shipping["address1"] != "Lenina 1" {
		t.Fatalf("shipping address wrong: %v", shipping)
	}

	if !res.JSON || res.OrderCreate == nil || res.OrderCreate.Order == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.OrderCreate.Order.ID != "gid://shopify/Order/1" {
		t.Fatalf("order id wrong: %q", res.OrderCreate.Order.ID)
	}
}

func TestCreateOrder_NonJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := newClientFor(t, srv)
	res, err := c.CreateOrder(context.Background(), shopFor(srv), testRequest())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if res.JSON {
		t.Fatalf("html body must not be treated as JSON")
	}
	if !strings.Contains(res.RawBody, "maintenance") {
		t.Fatalf("raw body must be kept for diagnostics: %q", res.RawBody)
	}
}

func TestCreateOrder_UndecodableJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := newClientFor(t, srv)
	res, err := c.CreateOrder(context.Background(), shopFor(srv), testRequest())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if res.JSON {
		t.Fatalf("undecodable body must be classified as non-JSON")
	}
}

func TestCreateOrder_ProtocolErrorsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"Throttled","extensions":{"code":"THROTTLED"}}]}`))
	}))
	defer srv.Close()

	c := newClientFor(t, srv)
	res, err := c.CreateOrder(context.Background(), shopFor(srv), testRequest())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if !res.JSON || len(res.Errors) != 1 {
		t.Fatalf("want one protocol error, got %+v", res)
	}
	if res.Errors[0].Code() != "THROTTLED" {
		t.Fatalf("wrong code: %q", res.Errors[0].Code())
	}
}

// REST-форма errors (объект, не список) не должна ронять разбор.
func TestCreateOrder_ObjectErrorsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":{"customer.phone":["has already been taken"]}}`))
	}))
	defer srv.Close()

	c := newClientFor(t, srv)
	res, err := c.CreateOrder(context.Background(), shopFor(srv), testRequest())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if !res.JSON {
		t.Fatalf("object errors body is still JSON")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("object form must not parse as protocol errors: %+v", res.Errors)
	}
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status must be propagated, got %d", res.StatusCode)
	}
	if !strings.Contains(res.RawBody, "has already been taken") {
		t.Fatalf("raw body must carry the business rejection: %q", res.RawBody)
	}
}

func TestCreateOrder_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // сервер уже закрыт — транспортный сбой

	c := newClientFor(t, srv)
	if _, err := c.CreateOrder(context.Background(), shopFor(srv), testRequest()); err == nil {
		t.Fatalf("want transport error")
	}
}
