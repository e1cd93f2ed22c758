package paging

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		maxLimit int64
		want     Page
	}{
		{name: "absent", want: Page{Number: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "25", want: Page{Number: 3, Limit: 25}},
		{name: "zero", page: "0", limit: "0", want: Page{Number: 1, Limit: 10}},
		{name: "negative", page: "-2", limit: "-5", want: Page{Number: 1, Limit: 10}},
		{name: "non-numeric", page: "abc", limit: "ten", want: Page{Number: 1, Limit: 10}},
		{name: "fractional", page: "2.5", limit: "1.5", want: Page{Number: 1, Limit: 10}},
		{name: "whitespace", page: " 2 ", limit: " 5", want: Page{Number: 2, Limit: 5}},
		{name: "unbounded limit", limit: "100000", want: Page{Number: 1, Limit: 100000}},
		{name: "clamped limit", limit: "500", maxLimit: 100, want: Page{Number: 1, Limit: 100}},
		{name: "limit under max", limit: "50", maxLimit: 100, want: Page{Number: 1, Limit: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.page, tt.limit, tt.maxLimit)
			if got != tt.want {
				t.Errorf("Parse(%q, %q, %d) = %+v, want %+v", tt.page, tt.limit, tt.maxLimit, got, tt.want)
			}
		})
	}
}

func TestPage_Skip(t *testing.T) {
	tests := []struct {
		page Page
		want int64
	}{
		{Page{Number: 1, Limit: 10}, 0},
		{Page{Number: 2, Limit: 10}, 10},
		{Page{Number: 5, Limit: 7}, 28},
		{Page{Number: math.MaxInt64, Limit: 10}, math.MaxInt64},
	}
	for _, tt := range tests {
		if got := tt.page.Skip(); got != tt.want {
			t.Errorf("%+v.Skip() = %d, want %d", tt.page, got, tt.want)
		}
	}
}
