package store

import "github.com/idilsaglam/todoboard/internal/model"

// Filtered returns the todos passing the current filter in fetch order.
func Filtered(s State) []model.Todo {
	out := make([]model.Todo, 0, len(s.Todos))
	for _, t := range s.Todos {
		if s.Filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// PageCount is ceil(len(Filtered)/PageSize); zero when nothing matches.
func PageCount(s State) int {
	n := len(Filtered(s))
	return (n + PageSize - 1) / PageSize
}

// PageSlice is Filtered[(Page-1)*PageSize : Page*PageSize], cut to what
// exists. A page past the end yields an empty slice.
func PageSlice(s State) []model.Todo {
	f := Filtered(s)
	lo := (s.Page - 1) * PageSize
	hi := s.Page * PageSize
	if lo < 0 {
		lo = 0
	}
	if hi > len(f) {
		hi = len(f)
	}
	if lo >= hi {
		return []model.Todo{}
	}
	return f[lo:hi]
}

// HasPrev reports whether the "Previous" control is enabled.
func HasPrev(s State) bool { return s.Page > 1 }

// HasNext reports whether the "Next" control is enabled.
func HasNext(s State) bool { return s.Page < PageCount(s) }
