package ports

import "time"

// RateLimiter — лимитер частоты по идентификатору клиента.
// Требования к реализации: проверка и запись времени — одна атомарная операция,
// чтобы два одновременных запроса одного клиента не прошли оба.
type RateLimiter interface {
	// Allow — true, если запрос допущен; при допуске время now фиксируется
	// как якорь окна. При отказе состояние не меняется.
	Allow(identifier string, now time.Time) bool
}
