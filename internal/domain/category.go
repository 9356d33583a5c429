package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is a plain label that clients are filed under.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a Category with a fresh ID.
func NewCategory(detail string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		ID:        uuid.New(),
		Detail:    strings.TrimSpace(detail),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrInvalidID
	}

	if strings.TrimSpace(c.Detail) == "" {
		return ErrEmptyDetail
	}

	return nil
}
