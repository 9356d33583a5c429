package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyCategoryID is returned when a client has no category reference.
var ErrEmptyCategoryID = errors.New("category ID cannot be empty")

// Client is a categorized entity that transactions are booked against.
//
// CategoryID is a reference only; its existence is not checked on write.
// Clients are never removed, deletion flips Active to false.
type Client struct {
	ID         uuid.UUID `json:"id"`
	Detail     string    `json:"detail"`
	Active     bool      `json:"active"`
	CategoryID uuid.UUID `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewClient creates an active Client in the given category.
func NewClient(detail string, categoryID uuid.UUID) (*Client, error) {
	now := time.Now().UTC()
	client := &Client{
		ID:         uuid.New(),
		Detail:     strings.TrimSpace(detail),
		Active:     true,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

// Validate checks if the Client has valid data.
func (c *Client) Validate() error {
	if c.ID == uuid.Nil {
		return ErrInvalidID
	}

	if strings.TrimSpace(c.Detail) == "" {
		return ErrEmptyDetail
	}

	if c.CategoryID == uuid.Nil {
		return ErrEmptyCategoryID
	}

	return nil
}
