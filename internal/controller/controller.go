// Package controller turns user intents into remote calls and folds the
// outcomes back into the list state.
//
// Effects (FetchTodos, Create, ...) perform exactly one HTTP call and return a
// Result. Apply is the pure half: it maps a Result onto the next State, the
// notice to show and whether the todo collection must be re-fetched. The TUI
// runs effects as commands; the synchronous operations below chain the two
// halves for the CLI.
package controller

import (
	"context"
	"errors"

	"github.com/idilsaglam/todoboard/internal/api"
	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/notify"
	"github.com/idilsaglam/todoboard/internal/store"
)

// Client is the subset of the API the controller needs.
type Client interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateTodo(ctx context.Context, t model.Todo) error
	UpdateTodo(ctx context.Context, t model.Todo) error
	DeleteTodo(ctx context.Context, id string) error
}

type Op int

const (
	OpFetchTodos Op = iota
	OpFetchUsers
	OpCreate
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpFetchTodos:
		return "fetch todos"
	case OpFetchUsers:
		return "fetch users"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Result is the outcome of one effect.
type Result struct {
	Op    Op
	ID    string
	Todos []model.Todo
	Users []model.User
	Err   error
}

type Controller struct {
	client   Client
	notifier notify.Notifier
}

// New returns a controller. A nil notifier drops notices.
func New(c Client, n notify.Notifier) *Controller {
	if n == nil {
		n = notify.Func(func(notify.Notice) {})
	}
	return &Controller{client: c, notifier: n}
}

func (c *Controller) FetchTodos(ctx context.Context) Result {
	todos, err := c.client.ListTodos(ctx)
	return Result{Op: OpFetchTodos, Todos: todos, Err: err}
}

func (c *Controller) FetchUsers(ctx context.Context) Result {
	users, err := c.client.ListUsers(ctx)
	return Result{Op: OpFetchUsers, Users: users, Err: err}
}

// Create sends t as a new todo with completed forced to false.
func (c *Controller) Create(ctx context.Context, t model.Todo) Result {
	t.ID = ""
	t.Completed = false
	return Result{Op: OpCreate, Err: c.client.CreateTodo(ctx, t)}
}

func (c *Controller) Update(ctx context.Context, t model.Todo) Result {
	return Result{Op: OpUpdate, ID: t.ID, Err: c.client.UpdateTodo(ctx, t)}
}

func (c *Controller) Delete(ctx context.Context, id string) Result {
	return Result{Op: OpDelete, ID: id, Err: c.client.DeleteTodo(ctx, id)}
}

// Apply folds r into s. notice is nil when the outcome is silent (loads).
func Apply(s store.State, r Result) (next store.State, notice *notify.Notice, refetch bool) {
	switch r.Op {
	case OpFetchTodos:
		if r.Err == nil {
			s = store.SetTodos(s, r.Todos)
		}
		return s, nil, false

	case OpFetchUsers:
		if r.Err == nil {
			s = store.SetUsers(s, r.Users)
		}
		return s, nil, false

	case OpCreate:
		s = store.SetPending(s, false)
		if r.Err != nil {
			return s, noticeOf(notify.Fail(notify.MsgAddFailed)), false
		}
		return store.ClearForm(s), noticeOf(notify.OK(notify.MsgAdded)), true

	case OpUpdate:
		if r.Err != nil {
			if api.IsNotFound(r.Err) && store.Editing(s, r.ID) {
				return store.CancelEdit(s), noticeOf(notify.Fail(notify.MsgGone)), true
			}
			return s, noticeOf(notify.Fail(notify.MsgUpdFailed)), false
		}
		return store.CancelEdit(s), noticeOf(notify.OK(notify.MsgUpdated)), true

	case OpDelete:
		if r.Err != nil {
			return s, noticeOf(notify.Fail(notify.MsgDelFailed)), false
		}
		return s, noticeOf(notify.OK(notify.MsgDeleted)), true
	}
	return s, nil, false
}

func noticeOf(n notify.Notice) *notify.Notice { return &n }

// ErrNoDraft is returned by SaveEdit when nothing is being edited.
var ErrNoDraft = errors.New("no todo is being edited")

// Load fetches todos and users. A failed fetch keeps the prior data.
func (c *Controller) Load(ctx context.Context, s store.State) store.State {
	s, _, _ = Apply(s, c.FetchTodos(ctx))
	s, _, _ = Apply(s, c.FetchUsers(ctx))
	return s
}

// AddTodo validates the form and creates a todo from it.
func (c *Controller) AddTodo(ctx context.Context, s store.State) store.State {
	t, err := store.NewTodoFromForm(s)
	if err != nil {
		c.notifier.Notify(notify.Fail(notify.MsgEmptyTitle))
		return s
	}
	return c.finish(ctx, s, c.Create(ctx, t))
}

// UpdateTodo replaces the remote todo with t.
func (c *Controller) UpdateTodo(ctx context.Context, s store.State, t model.Todo) store.State {
	return c.finish(ctx, s, c.Update(ctx, t))
}

// ToggleCompletion flips t.Completed and leaves every other field alone.
func (c *Controller) ToggleCompletion(ctx context.Context, s store.State, t model.Todo) store.State {
	return c.UpdateTodo(ctx, s, Toggled(t))
}

func (c *Controller) DeleteTodo(ctx context.Context, s store.State, id string) store.State {
	return c.finish(ctx, s, c.Delete(ctx, id))
}

func (c *Controller) BeginEdit(s store.State, t model.Todo) store.State {
	return store.BeginEdit(s, t)
}

func (c *Controller) CancelEdit(s store.State) store.State {
	return store.CancelEdit(s)
}

// SaveEdit persists the draft. It is UpdateTodo with the draft's values.
func (c *Controller) SaveEdit(ctx context.Context, s store.State) (store.State, error) {
	if s.Draft == nil {
		return s, ErrNoDraft
	}
	return c.UpdateTodo(ctx, s, s.Draft.Clone()), nil
}

// Toggled returns a copy of t with Completed flipped.
func Toggled(t model.Todo) model.Todo {
	t = t.Clone()
	t.Completed = !t.Completed
	return t
}

func (c *Controller) finish(ctx context.Context, s store.State, r Result) store.State {
	s, n, refetch := Apply(s, r)
	if refetch {
		s, _, _ = Apply(s, c.FetchTodos(ctx))
	}
	if n != nil {
		c.notifier.Notify(*n)
	}
	return s
}
