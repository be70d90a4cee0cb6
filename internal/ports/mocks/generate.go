//go:generate mockgen -source=../rate_limiter.go      -destination=./mock_rate_limiter.go      -package=mocks
//go:generate mockgen -source=../request_validator.go -destination=./mock_request_validator.go -package=mocks
//go:generate mockgen -source=../order_submitter.go   -destination=./mock_order_submitter.go   -package=mocks
//go:generate mockgen -source=../event_publisher.go   -destination=./mock_event_publisher.go   -package=mocks
//go:generate mockgen -source=../submit_service.go    -destination=./mock_submit_service.go    -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks

package mocks
