package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
	"github.com/Gunvolt24/shopify_cod/pkg/ctxmeta"
	"github.com/Gunvolt24/shopify_cod/pkg/metrics"
)

// Проверка, что SubmitService удовлетворяет порту конвейера.
var _ ports.OrderSubmitService = (*SubmitService)(nil)

// SubmitService — конвейер приёма COD-заявки (без знаний о транспорте):
// лимитер → проверки запроса → один вызов платформы → классификация итога.
type SubmitService struct {
	limiter   ports.RateLimiter
	validator ports.RequestValidator
	submitter ports.OrderSubmitter
	events    ports.EventPublisher // может быть nil — события отключены
	log       ports.Logger
	shop      domain.ShopContext
	now       func() time.Time
}

// NewSubmitService — DI-конструктор.
func NewSubmitService(
	limiter ports.RateLimiter,
	validator ports.RequestValidator,
	submitter ports.OrderSubmitter,
	events ports.EventPublisher,
	log ports.Logger,
	shop domain.ShopContext,
) *SubmitService {
	return &SubmitService{
		limiter:   limiter,
		validator: validator,
		submitter: submitter,
		events:    events,
		log:       log,
		shop:      shop,
		now:       time.Now,
	}
}

// Submit — обработка одной заявки от начала до конца.
// Никогда не возвращает ошибку: любой исход — это Outcome со стабильным кодом.
func (s *SubmitService) Submit(ctx context.Context, in domain.Submission) domain.Outcome {
	out := s.submit(ctx, in)
	metrics.OrderSubmissions.WithLabelValues(resultLabel(out)).Inc()
	return out
}

func (s *SubmitService) submit(ctx context.Context, in domain.Submission) domain.Outcome {
	// Лимитер опрашивается и обновляется до любой другой работы.
	if !s.limiter.Allow(in.ClientID, s.now()) {
		s.log.Warnf(ctx, "rate limited client=%s", in.ClientID)
		return domain.Failure(http.StatusTooManyRequests, domain.CodeRateLimitExceeded,
			"too many requests, please retry later")
	}

	// Параметры app proxy. Подпись проверяется только на присутствие:
	// криптографическая верификация не выполняется (известный пробел, DESIGN.md).
	if in.Shop == "" || in.Signature == "" {
		return domain.Failure(http.StatusForbidden, domain.CodeInvalidProxyRequest,
			"missing app proxy parameters")
	}
	if !strings.HasSuffix(in.Shop, domain.ShopDomainSuffix) {
		return domain.Failure(http.StatusForbidden, domain.CodeInvalidShopDomain,
			"shop is not a valid storefront domain")
	}

	req, err := domain.ParseOrderRequest(in.RawBody)
	if err != nil {
		s.log.Warnf(ctx, "bad request body client=%s err=%v", in.ClientID, err)
		return domain.Failure(http.StatusBadRequest, domain.CodeBadRequestBody,
			"request body is not valid JSON")
	}

	if missing := s.validator.Missing(req); len(missing) > 0 {
		return domain.FailureDetails(http.StatusBadRequest, domain.CodeMissingFields,
			"required fields are missing", missing)
	}

	// Отказ деплоя, а не клиента — отдельный код и статус.
	if !s.shop.Complete() {
		s.log.Errorf(ctx, "shop config incomplete: domain or access token missing")
		return domain.Failure(http.StatusInternalServerError, domain.CodeServerMisconfigured,
			"server is not configured for order submission")
	}

	// Единственный исходящий вызов; ретраев нет.
	result, err := s.submitter.CreateOrder(ctx, s.shop, req)
	if err != nil {
		metrics.ShopifyResponses.WithLabelValues("transport_error").Inc()
		s.log.Errorf(ctx, "shopify call failed shop=%s err=%v", s.shop.Domain, err)
		return domain.Failure(http.StatusInternalServerError, domain.CodeInternalServerError,
			"unexpected error while submitting the order")
	}

	out := Classify(result)
	if out.Body.Success {
		s.publishEvent(ctx, in.Shop, req, out.Body)
	}
	return out
}

// Classify — классификация итога удалённого вызова.
// Порядок слоёв фиксирован, срабатывает первое совпадение.
func Classify(res *domain.RemoteOrderResult) domain.Outcome {
	// 1. транспорт дошёл, но пригодных данных нет
	if !res.JSON {
		metrics.ShopifyResponses.WithLabelValues("non_json").Inc()
		return domain.Failure(http.StatusBadGateway, domain.CodeShopifyInvalidResponse,
			"order platform did not return a usable response")
	}

	// 2. HTTP-уровень; известный бизнес-отказ про занятый телефон — отдельно
	if res.StatusCode < 200 || res.StatusCode > 299 {
		metrics.ShopifyResponses.WithLabelValues("http_error").Inc()
		if phoneTaken(res.RawBody) {
			return domain.Failure(http.StatusConflict, domain.CodeCustomerPhoneTaken,
				"customer phone number is already in use")
		}
		status := res.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		return domain.Failure(status, domain.CodeShopifyHTTPError,
			fmt.Sprintf("order platform returned HTTP %d", res.StatusCode))
	}

	// 3. протокольные ошибки верхнего уровня
	if len(res.Errors) > 0 {
		metrics.ShopifyResponses.WithLabelValues("graphql_error").Inc()
		first := res.Errors[0]
		code := first.Code()
		if code == "" {
			code = domain.CodeGraphQLError
		}
		return domain.FailureDetails(statusForProtocolCode(first.Code()), code,
			first.Message, res.Errors)
	}

	// 4. успешный ответ без ожидаемого payload
	if res.OrderCreate == nil {
		metrics.ShopifyResponses.WithLabelValues("missing_payload").Inc()
		return domain.Failure(http.StatusBadGateway, domain.CodeMissingOrderCreate,
			"order platform response is missing orderCreate")
	}

	// 5. бизнес-ошибки валидации мутации
	if len(res.OrderCreate.UserErrors) > 0 {
		metrics.ShopifyResponses.WithLabelValues("user_errors").Inc()
		return domain.FailureDetails(http.StatusBadRequest, domain.CodeOrderCreateValidationError,
			"order was rejected by platform validation", res.OrderCreate.UserErrors)
	}

	// 6. payload есть, заказа нет
	if res.OrderCreate.Order == nil {
		metrics.ShopifyResponses.WithLabelValues("no_order").Inc()
		return domain.Failure(http.StatusBadGateway, domain.CodeNoOrderReturned,
			"order platform returned no order")
	}

	// 7. успех
	metrics.ShopifyResponses.WithLabelValues("ok").Inc()
	return domain.Created(res.OrderCreate.Order)
}

func statusForProtocolCode(code string) int {
	switch code {
	case "THROTTLED", "MAX_COST_EXCEEDED":
		return http.StatusTooManyRequests
	case "ACCESS_DENIED":
		return http.StatusForbidden
	case "INTERNAL_SERVER_ERROR":
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// phoneTaken — известный отказ платформы "телефон уже занят" в теле HTTP-ошибки.
func phoneTaken(body string) bool {
	low := strings.ToLower(body)
	return strings.Contains(low, "phone") && strings.Contains(low, "taken")
}

func (s *SubmitService) publishEvent(ctx context.Context, shop string, req *domain.OrderRequest, env domain.Envelope) {
	if s.events == nil {
		return
	}
	rid, _ := ctxmeta.RequestIDFromContext(ctx)
	event := domain.OrderCreatedEvent{
		OrderID:         env.OrderID,
		Shop:            shop,
		FinancialStatus: env.FinancialStatus,
		VariantID:       req.VariantID.String(),
		Quantity:        req.Quantity.Int(),
		RequestID:       rid,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.events.PublishOrderCreated(ctx, event); err != nil {
		s.log.Warnf(ctx, "publish order event failed order_id=%s err=%v", event.OrderID, err)
	}
}

func resultLabel(out domain.Outcome) string {
	if out.Body.Success {
		return "success"
	}
	return out.Body.Error
}
