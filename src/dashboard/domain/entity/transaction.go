package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus representa el estado de una transacción de venta
type TransactionStatus string

const (
	StatusApproved TransactionStatus = "APPROVED"
	StatusPending  TransactionStatus = "PENDING"
	StatusDeclined TransactionStatus = "DECLINED"
)

// IsValid indica si el estado es uno de los tres valores conocidos
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusDeclined:
		return true
	default:
		return false
	}
}

// Transaction representa una venta individual registrada por el operador
// Inmutable una vez creada: el dataset nunca se modifica in-place,
// siempre se reemplaza completo vía MergeDataset
type Transaction struct {
	ID      string            `json:"id"`
	Product string            `json:"product"`
	Date    time.Time         `json:"date"`    // Timestamp con precisión de segundos
	Amount  decimal.Decimal   `json:"amount"`  // Monto de la venta (> 0)
	Status  TransactionStatus `json:"status"`
}

// NewTransaction crea una nueva transacción validando sus campos
// El ID se genera con prefijo tr_ + UUID v4
func NewTransaction(product string, amount decimal.Decimal, status TransactionStatus, date time.Time) (*Transaction, error) {
	// Validaciones básicas
	if strings.TrimSpace(product) == "" {
		return nil, ErrProductRequired
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if date.IsZero() {
		return nil, ErrDateRequired
	}

	return &Transaction{
		ID:      "tr_" + uuid.New().String(),
		Product: strings.TrimSpace(product),
		Date:    date.Truncate(time.Second),
		Amount:  amount,
		Status:  status,
	}, nil
}

// Day retorna el día calendario de la transacción (hora local)
func (t *Transaction) Day() Day {
	return NewDay(t.Date)
}

// IsApproved indica si la transacción fue aprobada
func (t *Transaction) IsApproved() bool {
	return t.Status == StatusApproved
}
