package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/idilsaglam/todoboard/internal/api"
	"github.com/idilsaglam/todoboard/internal/api/apitest"
	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/notify"
	"github.com/idilsaglam/todoboard/internal/store"
)

func setup(t *testing.T, seed ...model.Todo) (*apitest.Server, *Controller, *notify.Recorder) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	srv.Seed(seed...)
	rec := &notify.Recorder{}
	return srv, New(api.New(srv.URL), rec), rec
}

func lastNotice(t *testing.T, rec *notify.Recorder) notify.Notice {
	t.Helper()
	n, ok := rec.Last()
	if !ok {
		t.Fatalf("expected a notice")
	}
	return n
}

func TestLoad_PopulatesTodosAndUsers(t *testing.T) {
	srv, c, rec := setup(t, model.Todo{ID: "1", Title: "A"})

	s := c.Load(context.Background(), store.New())
	if len(s.Todos) != 1 || len(s.Users) != 3 {
		t.Fatalf("unexpected state: %d todos, %d users", len(s.Todos), len(s.Users))
	}
	if srv.Count(apitest.ListTodos) != 1 || srv.Count(apitest.ListUsers) != 1 {
		t.Fatalf("expected one fetch per collection")
	}
	if len(rec.Notices) != 0 {
		t.Fatalf("load must be silent, got %v", rec.Notices)
	}
}

func TestLoad_FailureKeepsPriorState(t *testing.T) {
	srv, c, rec := setup(t)
	srv.Fail(apitest.ListTodos, http.StatusInternalServerError)
	srv.Fail(apitest.ListUsers, http.StatusInternalServerError)

	prior := store.SetTodos(store.New(), []model.Todo{{ID: "x", Title: "kept"}})
	s := c.Load(context.Background(), prior)
	if len(s.Todos) != 1 || s.Todos[0].ID != "x" {
		t.Fatalf("prior todos lost: %+v", s.Todos)
	}
	if len(rec.Notices) != 0 {
		t.Fatalf("load failures are silent, got %v", rec.Notices)
	}
}

func TestAddTodo_BlankTitleNeverCallsServer(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		srv, c, rec := setup(t)
		s := c.AddTodo(context.Background(), store.SetFormTitle(store.New(), title))

		if srv.Count(apitest.CreateTodo) != 0 || srv.Count(apitest.ListTodos) != 0 {
			t.Fatalf("title %q: unexpected network call", title)
		}
		if n := lastNotice(t, rec); n.Kind != notify.Failure || n.Text != notify.MsgEmptyTitle {
			t.Fatalf("title %q: got notice %+v", title, n)
		}
		if s.Form.Title != title {
			t.Fatalf("form must be left untouched")
		}
	}
}

func TestAddTodo_SendsBodyClearsFormAndRefetchesOnce(t *testing.T) {
	srv, c, rec := setup(t)
	s := c.AddTodo(context.Background(), store.SetFormTitle(store.New(), "Buy milk"))

	want := `{"id":"","title":"Buy milk","completed":false,"user_id":null}`
	if got := string(srv.LastBody(apitest.CreateTodo)); got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
	if srv.Count(apitest.ListTodos) != 1 {
		t.Fatalf("expected exactly one re-fetch, got %d", srv.Count(apitest.ListTodos))
	}
	if s.Form != (store.Form{}) {
		t.Fatalf("form not cleared: %+v", s.Form)
	}
	if len(s.Todos) != 1 || s.Todos[0].Title != "Buy milk" {
		t.Fatalf("re-fetched todos missing new item: %+v", s.Todos)
	}
	if n := lastNotice(t, rec); n.Kind != notify.Success || n.Text != notify.MsgAdded {
		t.Fatalf("got notice %+v", n)
	}
}

func TestAddTodo_FailureKeepsForm(t *testing.T) {
	srv, c, rec := setup(t)
	srv.Fail(apitest.CreateTodo, http.StatusInternalServerError)

	in := store.SetFormUser(store.SetFormTitle(store.New(), "Buy milk"), "2")
	s := c.AddTodo(context.Background(), in)
	if s.Form != in.Form {
		t.Fatalf("form cleared on failure: %+v", s.Form)
	}
	if srv.Count(apitest.ListTodos) != 0 {
		t.Fatalf("failure must not re-fetch")
	}
	if n := lastNotice(t, rec); n.Text != notify.MsgAddFailed {
		t.Fatalf("got notice %+v", n)
	}
}

func TestToggleCompletion_FlipsOnlyCompleted(t *testing.T) {
	orig := model.Todo{ID: "1", Title: "A", UserID: model.StringPtr("2")}
	srv, c, rec := setup(t, orig)
	s := c.Load(context.Background(), store.New())
	before := srv.Count(apitest.ListTodos)

	s = c.ToggleCompletion(context.Background(), s, s.Todos[0])
	got := srv.Todos()[0]
	if !got.Completed || got.Title != "A" || !got.AssignedTo("2") {
		t.Fatalf("unexpected server todo %+v", got)
	}
	if !s.Todos[0].Completed {
		t.Fatalf("state not refreshed: %+v", s.Todos[0])
	}
	if srv.Count(apitest.ListTodos)-before != 1 {
		t.Fatalf("expected one re-fetch after update")
	}
	if n := lastNotice(t, rec); n.Text != notify.MsgUpdated {
		t.Fatalf("got notice %+v", n)
	}
}

func TestSaveEdit_ClearsDraftOnSuccess(t *testing.T) {
	_, c, _ := setup(t, model.Todo{ID: "1", Title: "A"})
	s := c.Load(context.Background(), store.New())
	s = c.BeginEdit(s, s.Todos[0])
	s = store.SetDraftTitle(s, "B")
	s = store.SetDraftUser(s, "3")

	s, err := c.SaveEdit(context.Background(), s)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Draft != nil {
		t.Fatalf("draft not cleared")
	}
	if s.Todos[0].Title != "B" || !s.Todos[0].AssignedTo("3") {
		t.Fatalf("unexpected todo %+v", s.Todos[0])
	}
}

func TestSaveEdit_FailureKeepsDraft(t *testing.T) {
	srv, c, rec := setup(t, model.Todo{ID: "1", Title: "A"})
	s := c.Load(context.Background(), store.New())
	s = store.SetDraftTitle(c.BeginEdit(s, s.Todos[0]), "B")
	srv.Fail(apitest.UpdateTodo, http.StatusInternalServerError)

	s, _ = c.SaveEdit(context.Background(), s)
	if s.Draft == nil || s.Draft.Title != "B" {
		t.Fatalf("draft lost on failure: %+v", s.Draft)
	}
	if n := lastNotice(t, rec); n.Text != notify.MsgUpdFailed {
		t.Fatalf("got notice %+v", n)
	}
}

func TestSaveEdit_DeletedElsewhereDropsDraft(t *testing.T) {
	srv, c, rec := setup(t, model.Todo{ID: "1", Title: "A"})
	s := c.Load(context.Background(), store.New())
	s = c.BeginEdit(s, s.Todos[0])
	srv.Seed()

	s, _ = c.SaveEdit(context.Background(), s)
	if s.Draft != nil {
		t.Fatalf("stale draft kept")
	}
	if len(s.Todos) != 0 {
		t.Fatalf("expected refreshed empty list, got %+v", s.Todos)
	}
	if n := lastNotice(t, rec); n.Kind != notify.Failure || n.Text != notify.MsgGone {
		t.Fatalf("got notice %+v", n)
	}
}

func TestSaveEdit_WithoutDraft(t *testing.T) {
	_, c, _ := setup(t)
	if _, err := c.SaveEdit(context.Background(), store.New()); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}
}

func TestCancelEdit_DoesNotPersist(t *testing.T) {
	srv, c, _ := setup(t, model.Todo{ID: "1", Title: "A"})
	s := c.Load(context.Background(), store.New())
	s = store.SetDraftTitle(c.BeginEdit(s, s.Todos[0]), "B")
	s = c.CancelEdit(s)

	if s.Draft != nil || srv.Count(apitest.UpdateTodo) != 0 || srv.Todos()[0].Title != "A" {
		t.Fatalf("cancel must drop the draft without a request")
	}
}

func TestDeleteTodo(t *testing.T) {
	srv, c, rec := setup(t, model.Todo{ID: "1", Title: "A"}, model.Todo{ID: "2", Title: "B"})
	s := c.Load(context.Background(), store.New())
	before := srv.Count(apitest.ListTodos)

	s = c.DeleteTodo(context.Background(), s, "1")
	if len(s.Todos) != 1 || s.Todos[0].ID != "2" {
		t.Fatalf("unexpected todos %+v", s.Todos)
	}
	if srv.Count(apitest.ListTodos)-before != 1 {
		t.Fatalf("expected one re-fetch")
	}
	if n := lastNotice(t, rec); n.Text != notify.MsgDeleted {
		t.Fatalf("got notice %+v", n)
	}

	s = c.DeleteTodo(context.Background(), s, "nope")
	if n := lastNotice(t, rec); n.Kind != notify.Failure || n.Text != notify.MsgDelFailed {
		t.Fatalf("got notice %+v", n)
	}
	if len(s.Todos) != 1 {
		t.Fatalf("failed delete changed state")
	}
}

func TestApply_CreateClearsPending(t *testing.T) {
	s := store.SetPending(store.New(), true)
	s, _, _ = Apply(s, Result{Op: OpCreate, Err: errors.New("boom")})
	if s.Pending {
		t.Fatalf("pending must be cleared after the create resolves")
	}
}

func TestApply_NotFoundWithoutMatchingDraftIsPlainFailure(t *testing.T) {
	s := store.BeginEdit(store.New(), model.Todo{ID: "other"})
	err := &api.StatusError{Method: http.MethodPut, Path: "/todos/1", Code: http.StatusNotFound}

	s, n, refetch := Apply(s, Result{Op: OpUpdate, ID: "1", Err: err})
	if refetch || n == nil || n.Text != notify.MsgUpdFailed {
		t.Fatalf("unexpected outcome: %+v refetch=%v", n, refetch)
	}
	if s.Draft == nil {
		t.Fatalf("unrelated draft dropped")
	}
}
