// Package lookup models the degree-program reference data a selection field
// renders from. The result is an explicit three-state variant instead of
// loading/error flags bundled next to the data.
package lookup

import (
	"fmt"

	"github.com/thesisdesk/backend/proglist"
)

type resultKind int

const (
	kindLoading resultKind = iota
	kindEmpty
	kindPopulated
)

// Result is {Loading | Empty | Populated(items)}. The zero value is Loading,
// which is what a freshly mounted selector shows until the fetch resolves.
type Result struct {
	kind  resultKind
	items []proglist.DegreeProgram
}

func Loading() Result {
	return Result{kind: kindLoading}
}

// Loaded wraps a fetch result: zero items collapse to Empty.
func Loaded(items []proglist.DegreeProgram) Result {
	if len(items) == 0 {
		return Result{kind: kindEmpty}
	}
	return Result{kind: kindPopulated, items: items}
}

func (r Result) IsLoading() bool {
	return r.kind == kindLoading
}

func (r Result) IsEmpty() bool {
	return r.kind == kindEmpty
}

func (r Result) IsPopulated() bool {
	return r.kind == kindPopulated
}

// Items returns the fetched programs. Nil unless populated.
func (r Result) Items() []proglist.DegreeProgram {
	return r.items
}

// Option is one selectable entry: Value is what gets written into the draft,
// Label is what the user reads.
type Option struct {
	Value string
	Label string
}

// Options renders the populated items as selectable entries, labeled
// "code, name". Nil unless populated.
func (r Result) Options() []Option {
	if r.kind != kindPopulated {
		return nil
	}
	opts := make([]Option, len(r.items))
	for i, p := range r.items {
		opts[i] = Option{
			Value: p.Code,
			Label: fmt.Sprintf("%s, %s", p.Code, p.Name),
		}
	}
	return opts
}
