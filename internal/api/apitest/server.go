// Package apitest serves an in-memory /todos + /users API for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/idilsaglam/todoboard/internal/model"
)

// DefaultUsers mirrors the fixture users the real server ships with.
var DefaultUsers = []model.User{
	{ID: "1", Name: "Alice"},
	{ID: "2", Name: "Bob"},
	{ID: "3", Name: "Charlie"},
}

// Server is a fake todo backend. Routes can be forced to fail with Fail.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	todos    []model.Todo
	users    []model.User
	counts   map[string]int
	failing  map[string]int
	lastBody map[string][]byte
}

func NewServer() *Server {
	s := &Server{
		users:    append([]model.User(nil), DefaultUsers...),
		counts:   map[string]int{},
		failing:  map[string]int{},
		lastBody: map[string][]byte{},
	}

	r := mux.NewRouter()
	r.HandleFunc("/todos", s.listTodos).Methods(http.MethodGet)
	r.HandleFunc("/todos", s.createTodo).Methods(http.MethodPost)
	r.HandleFunc("/todos/{id}", s.updateTodo).Methods(http.MethodPut)
	r.HandleFunc("/todos/{id}", s.deleteTodo).Methods(http.MethodDelete)
	r.HandleFunc("/users", s.listUsers).Methods(http.MethodGet)
	r.Use(s.record)

	s.Server = httptest.NewServer(r)
	return s
}

// Route keys used by Count, Fail and LastBody.
const (
	ListTodos  = "GET /todos"
	CreateTodo = "POST /todos"
	UpdateTodo = "PUT /todos/{id}"
	DeleteTodo = "DELETE /todos/{id}"
	ListUsers  = "GET /users"
)

// Seed replaces the stored todos.
func (s *Server) Seed(todos ...model.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append([]model.Todo(nil), todos...)
}

// Todos returns a snapshot of the stored todos.
func (s *Server) Todos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Todo{}, s.todos...)
}

// Count returns how many requests hit route.
func (s *Server) Count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[route]
}

// Fail makes route answer with status until Fail(route, 0) is called.
func (s *Server) Fail(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failing, route)
		return
	}
	s.failing[route] = status
}

// LastBody is the raw JSON body last sent to route.
func (s *Server) LastBody(route string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBody[route]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = r.Method + " " + tpl
			}
		}
		s.mu.Lock()
		s.counts[route]++
		status := s.failing[route]
		s.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]string{"detail": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listTodos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Todos())
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	users := append([]model.User(nil), s.users...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	t, raw, ok := decodeTodo(w, r)
	if !ok {
		return
	}
	t.ID = uuid.NewString()

	s.mu.Lock()
	s.lastBody[CreateTodo] = raw
	s.todos = append(s.todos, t)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, raw, ok := decodeTodo(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastBody[UpdateTodo] = raw
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Title = t.Title
			s.todos[i].Completed = t.Completed
			s.todos[i].UserID = t.UserID
			writeJSON(w, http.StatusOK, s.todos[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Todo not found"})
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Todo not found"})
}

func decodeTodo(w http.ResponseWriter, r *http.Request) (model.Todo, []byte, bool) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return model.Todo{}, nil, false
	}
	var t model.Todo
	if err := json.Unmarshal(raw, &t); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return model.Todo{}, nil, false
	}
	return t, raw, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
