package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// History is a single recorded measurement owned by a user. Value is intended
// to be positive; this layer documents that intent but does not enforce it.
type History struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	OccurredAt time.Time  `json:"occurredAt"`
	Value      float64    `json:"value"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// HistoryCreateRequest carries the two required fields for a new record.
type HistoryCreateRequest struct {
	OccurredAt time.Time `json:"occurredAt"`
	Value      float64   `json:"value"`
}

// HistoryUpdateRequest is a partial update: nil fields are left untouched.
type HistoryUpdateRequest struct {
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
	Value      *float64   `json:"value,omitempty"`
}

// HistoryTotalResponse carries the aggregate over a set of history values.
type HistoryTotalResponse struct {
	Total float64 `json:"total"`
}

// HistoryListRequest asks for one page of records. Cursor is the opaque token
// from a previous HistoryListResponse; empty starts from the newest record.
type HistoryListRequest struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// HistoryListResponse returns one page plus the cursor for the next one.
// NextCursor is empty on the last page.
type HistoryListResponse struct {
	Items      []History `json:"items"`
	NextCursor string    `json:"nextCursor,omitempty"`
}

// TotalOf sums the values of items into a HistoryTotalResponse. Accumulation
// goes through decimal so long runs of float additions do not drift.
func TotalOf(items []History) HistoryTotalResponse {
	sum := decimal.Zero
	for _, h := range items {
		sum = sum.Add(decimal.NewFromFloat(h.Value))
	}
	total, _ := sum.Float64()
	return HistoryTotalResponse{Total: total}
}
