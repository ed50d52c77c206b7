package model

import (
	"fmt"
	"strings"
)

// Todo is a task record owned by the remote /todos collection.
// UserID is nil when the todo is unassigned and encodes as JSON null.
type Todo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	UserID    *string `json:"user_id"`
}

// AssignedTo reports whether the todo is assigned to userID.
func (t Todo) AssignedTo(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}

// Clone returns a copy that shares no memory with t.
func (t Todo) Clone() Todo {
	if t.UserID != nil {
		id := *t.UserID
		t.UserID = &id
	}
	return t
}

// User is an assignee. Read-only from the client's point of view.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Filter selects which todos the table shows.
type Filter string

const (
	// FilterAll shows every todo.
	FilterAll Filter = "all"
	// FilterCompleted shows only completed todos.
	FilterCompleted Filter = "completed"
	// FilterUncompleted shows only open todos.
	FilterUncompleted Filter = "uncompleted"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterUncompleted}

// Match reports whether t passes the filter.
func (f Filter) Match(t Todo) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterUncompleted:
		return !t.Completed
	default:
		return true
	}
}

// Next cycles all -> completed -> uncompleted -> all.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Label is the human-facing name ("All", "Completed", ...).
func (f Filter) Label() string {
	s := string(f)
	if s == "" {
		s = string(FilterAll)
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseFilter accepts the filter names case-insensitively; empty means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterCompleted, FilterUncompleted:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all|completed|uncompleted)", s)
}

// StringPtr is a small helper for optional fields such as Todo.UserID.
func StringPtr(s string) *string { return &s }
