package filterstate

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-pg/urlstruct"
)

// Defaults. A state equal to the defaults serializes to nothing, keeping the
// external representation minimal.
const (
	DefaultCategory = "all"
	DefaultPage     = 1
)

const (
	categoryParam = "category"
	pageParam     = "page"
)

// State is the user-facing filter pair, round-trippable through its
// serialized key-value representation.
type State struct {
	Category string
	Page     int
}

func Default() State {
	return State{Category: DefaultCategory, Page: DefaultPage}
}

func (s State) normalized() State {
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	return s
}

// params is the urlstruct decoding target; field names map to the
// "category" and "page" keys, unknown keys are ignored.
type params struct {
	Category string
	Page     int
}

// Parse reconstructs a State from its serialized representation. Absent keys
// mean the defaults; a malformed page falls back to 1 without discarding the
// category.
func Parse(ctx context.Context, values url.Values) State {
	var p params
	if err := urlstruct.Unmarshal(ctx, values, &p); err != nil {
		p = params{Category: values.Get(categoryParam)}
	}

	return State{Category: p.Category, Page: p.Page}.normalized()
}

// Values serializes the state, emitting only keys that differ from their
// defaults.
func (s State) Values() url.Values {
	s = s.normalized()

	values := url.Values{}
	if s.Category != DefaultCategory {
		values.Set(categoryParam, s.Category)
	}
	if s.Page != DefaultPage {
		values.Set(pageParam, strconv.Itoa(s.Page))
	}
	return values
}
