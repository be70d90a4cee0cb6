package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/shopify_cod/internal/ports"
	"github.com/Gunvolt24/shopify_cod/pkg/metrics"
)

// Проверка, что Store удовлетворяет порту лимитера.
var _ ports.RateLimiter = (*Store)(nil)

// Store — in-memory лимитер с фиксированным окном, якорящимся
// по первому допущенному запросу серии. Состояние живёт только в процессе:
// переживание рестартов и работа в несколько инстансов — осознанно вне задачи.
type Store struct {
	mu      sync.Mutex
	entries map[string]time.Time // идентификатор → якорь допущенного окна
	window  time.Duration
}

func NewStore(window time.Duration) *Store {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Store{
		entries: make(map[string]time.Time),
		window:  window,
	}
}

func (s *Store) Window() time.Duration { return s.window }

// Allow — атомарный check-and-record:
//   - записи нет → фиксируем now, допускаем;
//   - окно не истекло → отказ, запись не трогаем (якорь не скользит);
//   - окно истекло (ровно window и более) → перезаписываем якорь, допускаем.
//
// Проверка и запись выполняются под одним мьютексом, чтобы два одновременных
// запроса одного идентификатора не прошли оба.
func (s *Store) Allow(identifier string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.entries[identifier]; ok && now.Sub(last) < s.window {
		metrics.RateLimited.Inc()
		return false
	}

	s.entries[identifier] = now
	metrics.RateLimitEntries.Set(float64(len(s.entries)))
	return true
}

// Len — количество отслеживаемых идентификаторов.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup — удаляет записи, чьё окно уже истекло.
// Такая запись в любом случае была бы допущена, поэтому чистка
// не меняет решений лимитера — только ограничивает рост карты.
func (s *Store) Cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, last := range s.entries {
		if now.Sub(last) >= s.window {
			delete(s.entries, id)
		}
	}
	metrics.RateLimitEntries.Set(float64(len(s.entries)))
}

// StartJanitor — периодическая чистка истёкших записей.
// Останавливается отменой контекста.
func (s *Store) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				s.Cleanup(now)
			}
		}
	}()
}
