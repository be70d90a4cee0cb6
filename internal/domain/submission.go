package domain

// Submission — входящая заявка, как её извлёк транспортный слой.
type Submission struct {
	ClientID  string // идентификатор клиента для лимитера
	Shop      string // query-параметр shop
	Signature string // query-параметр signature (проверяется только присутствие)
	RawBody   []byte
}
