package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/idilsaglam/todoboard/internal/api/apitest"
	"github.com/idilsaglam/todoboard/internal/model"
)

func TestClient_CRUDRoundTrip(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	c := New(srv.URL)
	ctx := context.Background()

	if err := c.CreateTodo(ctx, model.Todo{Title: "Buy milk"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	todos, err := c.ListTodos(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "Buy milk" || todos[0].ID == "" {
		t.Fatalf("unexpected todos: %+v", todos)
	}

	upd := todos[0]
	upd.Completed = true
	upd.UserID = model.StringPtr("2")
	if err := c.UpdateTodo(ctx, upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := srv.Todos()[0]
	if !got.Completed || !got.AssignedTo("2") {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := c.DeleteTodo(ctx, upd.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := len(srv.Todos()); n != 0 {
		t.Fatalf("expected empty collection, have %d", n)
	}
}

func TestClient_CreateBodyShape(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	if err := New(srv.URL).CreateTodo(context.Background(), model.Todo{Title: "Buy milk"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	want := `{"id":"","title":"Buy milk","completed":false,"user_id":null}`
	if got := string(srv.LastBody(apitest.CreateTodo)); got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestClient_ListUsers(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	users, err := New(srv.URL + "/").ListUsers(context.Background())
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 3 || users[0].Name != "Alice" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestClient_NonOKIsStatusError(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	c := New(srv.URL)

	err := c.UpdateTodo(context.Background(), model.Todo{ID: "missing", Title: "x"})
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	srv.Fail(apitest.ListTodos, http.StatusInternalServerError)
	_, err = c.ListTodos(context.Background())
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 StatusError, got %v", err)
	}
	if IsNotFound(err) {
		t.Fatalf("500 must not read as not found")
	}
}

func TestClient_TransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := New(url).ListTodos(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestClient_UndecodableListFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).ListTodos(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNew_DefaultsBaseURL(t *testing.T) {
	if c := New("  "); c.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q", c.BaseURL)
	}
}
