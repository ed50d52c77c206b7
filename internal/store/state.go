// Package store holds the client-side list state: fetched todos and users,
// the active filter and page, the inline edit draft and the new-todo form.
//
// Every function is a pure reducer: it takes a State and returns the next one.
package store

import (
	"errors"
	"strings"

	"github.com/idilsaglam/todoboard/internal/model"
)

// PageSize is the number of todos per table page.
const PageSize = 5

// ErrEmptyTitle is returned when the new-todo title is blank after trimming.
var ErrEmptyTitle = errors.New("empty title")

// Form is the pending new-todo input. UserID "" means unassigned.
type Form struct {
	Title  string
	UserID string
}

// State is the client-side view of the remote collections plus view state.
// Reducers return a new State and never touch the network.
type State struct {
	Todos  []model.Todo
	Users  []model.User
	Filter model.Filter
	Page   int

	// Draft is the todo open for inline editing, if any.
	Draft *model.Todo
	Form  Form

	// Pending is true while a create request is in flight.
	Pending bool
}

// New returns the initial state: nothing fetched, filter all, page 1.
func New() State {
	return State{Filter: model.FilterAll, Page: 1}
}

func SetTodos(s State, todos []model.Todo) State {
	s.Todos = todos
	return s
}

func SetUsers(s State, users []model.User) State {
	s.Users = users
	return s
}

// SetFilter changes the filter and keeps the current page as-is.
func SetFilter(s State, f model.Filter) State {
	s.Filter = f
	return s
}

// SetPage moves to page p. Bounds are enforced by the pager controls
// (HasPrev/HasNext), not here.
func SetPage(s State, p int) State {
	s.Page = p
	return s
}

func NextPage(s State) State {
	if !HasNext(s) {
		return s
	}
	return SetPage(s, s.Page+1)
}

func PrevPage(s State) State {
	if !HasPrev(s) {
		return s
	}
	return SetPage(s, s.Page-1)
}

func SetFormTitle(s State, title string) State {
	s.Form.Title = title
	return s
}

func SetFormUser(s State, userID string) State {
	s.Form.UserID = userID
	return s
}

func ClearForm(s State) State {
	s.Form = Form{}
	return s
}

func SetPending(s State, pending bool) State {
	s.Pending = pending
	return s
}

// NewTodoFromForm builds the create payload from the form.
func NewTodoFromForm(s State) (model.Todo, error) {
	title := strings.TrimSpace(s.Form.Title)
	if title == "" {
		return model.Todo{}, ErrEmptyTitle
	}
	t := model.Todo{ID: "", Title: title, Completed: false}
	if s.Form.UserID != "" {
		t.UserID = model.StringPtr(s.Form.UserID)
	}
	return t, nil
}

// BeginEdit opens a draft copy of t, replacing any existing draft.
func BeginEdit(s State, t model.Todo) State {
	d := t.Clone()
	s.Draft = &d
	return s
}

func CancelEdit(s State) State {
	s.Draft = nil
	return s
}

// Editing reports whether the todo with id is the one in the draft.
func Editing(s State, id string) bool {
	return s.Draft != nil && s.Draft.ID == id
}

func SetDraftTitle(s State, title string) State {
	if s.Draft == nil {
		return s
	}
	d := s.Draft.Clone()
	d.Title = title
	s.Draft = &d
	return s
}

// SetDraftUser assigns the draft to userID; "" unassigns.
func SetDraftUser(s State, userID string) State {
	if s.Draft == nil {
		return s
	}
	d := s.Draft.Clone()
	d.UserID = nil
	if userID != "" {
		d.UserID = model.StringPtr(userID)
	}
	s.Draft = &d
	return s
}

// FindTodo looks a todo up by id in the fetched set.
func FindTodo(s State, id string) (model.Todo, bool) {
	for _, t := range s.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// UserName resolves a todo assignee for display.
func UserName(s State, userID *string) string {
	if userID == nil {
		return "Unassigned"
	}
	for _, u := range s.Users {
		if u.ID == *userID {
			return u.Name
		}
	}
	return "Unassigned"
}

// NextUserID cycles "" -> users[0] -> ... -> users[n-1] -> "".
func NextUserID(s State, current string) string {
	if len(s.Users) == 0 {
		return ""
	}
	if current == "" {
		return s.Users[0].ID
	}
	for i, u := range s.Users {
		if u.ID == current {
			if i+1 < len(s.Users) {
				return s.Users[i+1].ID
			}
			return ""
		}
	}
	return ""
}
