package store

import "time"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is caller-supplied skip/limit pagination. There is no server-side
// cursor; every request carries its own offset.
type Page struct {
	Skip  int64
	Limit int64
}

// NewPage clamps skip/limit into their valid ranges.
func NewPage(skip, limit int64) Page {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Skip: skip, Limit: limit}
}

// DateRange filters on a date field; a zero bound is left open.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}
