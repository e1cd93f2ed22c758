// internal/app/system/search/search.go
package search

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Term is a parsed free-text search value.
//
// Pattern is the raw text with regex metacharacters quoted, so a search for
// "a.b" matches the literal substring instead of any character. Number is
// set when the whole term is an integer, enabling equality matches on
// numeric fields.
type Term struct {
	Raw     string
	Pattern string
	Number  *int64
}

// Parse trims raw and derives the text pattern and optional number.
func Parse(raw string) Term {
	raw = strings.TrimSpace(raw)
	t := Term{Raw: raw}
	if raw == "" {
		return t
	}
	t.Pattern = regexp.QuoteMeta(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t.Number = &n
	}
	return t
}

// Empty reports whether there is nothing to search for.
func (t Term) Empty() bool { return t.Raw == "" }

// Filter builds a $match document: any of textFields matching Pattern
// case-insensitively, or, for integer terms, any of numberFields equal to
// Number. An empty term yields an empty filter that matches everything.
func (t Term) Filter(textFields, numberFields []string) bson.M {
	if t.Empty() {
		return bson.M{}
	}
	or := make([]bson.M, 0, len(textFields)+len(numberFields))
	for _, f := range textFields {
		or = append(or, bson.M{f: bson.M{"$regex": t.Pattern, "$options": "i"}})
	}
	if t.Number != nil {
		for _, f := range numberFields {
			or = append(or, bson.M{f: *t.Number})
		}
	}
	return bson.M{"$or": or}
}
