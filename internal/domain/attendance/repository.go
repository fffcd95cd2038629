package attendance

import (
	"context"
)

// Repository is the store adapter for attendance records. The backing
// store keeps two locations per record: an append-only per-employee log
// (never read back) and a date-queryable top-level set.
type Repository interface {
	// ListByDate returns every record whose date key equals dateKey.
	// An empty result is not an error.
	ListByDate(ctx context.Context, dateKey string) ([]Record, error)

	// Insert writes the record to the per-employee log and then to the
	// top-level set, in that order. The two writes are sequenced, not
	// atomic: when the second fails after the first succeeded the log is
	// left with an orphaned entry. Returns the record with its assigned
	// ID and CreatedAt.
	Insert(ctx context.Context, rec Record) (Record, error)

	// Update overwrites the top-level record by ID. Returns
	// ErrRecordNotFound when the ID no longer exists.
	Update(ctx context.Context, rec Record) error
}
