package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the settlement state of a Transaction.
type TransactionStatus string

const (
	// TransactionStatusPending is the default status for new transactions.
	TransactionStatusPending TransactionStatus = "pending"

	// TransactionStatusSettled marks a transaction as consolidated.
	TransactionStatusSettled TransactionStatus = "settled"

	// TransactionStatusCancelled marks a transaction as void.
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// TransactionStatuses lists every accepted status in declaration order.
var TransactionStatuses = []TransactionStatus{
	TransactionStatusPending,
	TransactionStatusSettled,
	TransactionStatusCancelled,
}

// ErrEmptyClientID is returned when a transaction has no client reference.
var ErrEmptyClientID = errors.New("client ID cannot be empty")

// Valid reports whether s is one of TransactionStatuses.
func (s TransactionStatus) Valid() bool {
	for _, known := range TransactionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Transaction is a financial event tied to a Client.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	Detail    string            `json:"detail"`
	Status    TransactionStatus `json:"status"`
	ClientID  uuid.UUID         `json:"client"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewTransaction creates a Transaction for the given client. An empty status
// defaults to pending.
func NewTransaction(detail string, status TransactionStatus, clientID uuid.UUID) (*Transaction, error) {
	if status == "" {
		status = TransactionStatusPending
	}

	now := time.Now().UTC()
	tx := &Transaction{
		ID:        uuid.New(),
		Detail:    strings.TrimSpace(detail),
		Status:    status,
		ClientID:  clientID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate checks if the Transaction has valid data.
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}

	if strings.TrimSpace(t.Detail) == "" {
		return ErrEmptyDetail
	}

	if !t.Status.Valid() {
		return ErrInvalidTransactionStatus
	}

	if t.ClientID == uuid.Nil {
		return ErrEmptyClientID
	}

	return nil
}
