package httpx

import (
	"net/http"
	"strings"
)

// UnknownClient — плейсхолдер, когда адрес клиента определить не удалось.
const UnknownClient = "unknown"

// ClientIdentifier — идентификатор клиента для лимитера:
// первый элемент X-Forwarded-For, иначе адрес соединения, иначе "unknown".
// Значение не валидируется как адрес — используется только как ключ.
func ClientIdentifier(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return UnknownClient
}
