// internal/app/system/paging/paging.go
package paging

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPage and DefaultLimit apply when the caller omits page/limit or
// sends something that is not a positive integer.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a 1-based offset window over a collection.
type Page struct {
	Number int64
	Limit  int64
}

// Parse reads raw page/limit query values. Absent, non-numeric, zero and
// negative values fall back to the defaults. maxLimit clamps Limit when it
// is positive; 0 leaves the page size unbounded.
func Parse(page, limit string, maxLimit int64) Page {
	p := Page{
		Number: parsePositive(page, DefaultPage),
		Limit:  parsePositive(limit, DefaultLimit),
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

func parsePositive(s string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Skip returns the number of documents before this page, (Number-1)*Limit.
// It saturates at math.MaxInt64 instead of overflowing.
func (p Page) Skip() int64 {
	if p.Number <= 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt64/p.Limit {
		return math.MaxInt64
	}
	return (p.Number - 1) * p.Limit
}
