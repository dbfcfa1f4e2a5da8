// Package repository stores registered availability ranges.
package repository

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("availability not found")

// Record is a stored range, dates as YYYY-MM-DD.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch holds the fields to change, nil fields are kept.
type Patch struct {
	Name *string
	From *string
	To   *string
}

func (p Patch) apply(record *Record) {
	if p.Name != nil {
		record.Name = *p.Name
	}
	if p.From != nil {
		record.From = *p.From
	}
	if p.To != nil {
		record.To = *p.To
	}
}

// Repository is implemented by every storage backend.
// List returns records in registration order.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Add(ctx context.Context, record Record) error
	Update(ctx context.Context, id string, patch Patch) (*Record, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Record, error)
}
