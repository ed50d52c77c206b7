package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/controller"
	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/store"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// session wires a controller to the command's output streams.
type session struct {
	ctl     *controller.Controller
	printer *ui.Printer
}

func newSession(cmd *cobra.Command, app *App) session {
	p := &ui.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	return session{ctl: controller.New(app.client(), p), printer: p}
}

// load fetches both collections. Unlike the TUI, scripted commands treat a
// failed fetch as an error instead of showing stale data.
func (s session) load(ctx context.Context) (store.State, error) {
	st := store.New()
	for _, r := range []controller.Result{s.ctl.FetchTodos(ctx), s.ctl.FetchUsers(ctx)} {
		if r.Err != nil {
			return st, fmt.Errorf("%s: %w", r.Op, r.Err)
		}
		st, _, _ = controller.Apply(st, r)
	}
	return st, nil
}

func (s session) done() error {
	if s.printer.Failed() {
		return errReported
	}
	return nil
}

// resolveTodo accepts a todo id or a 1-based index into the fetched list.
func resolveTodo(st store.State, ref string) (model.Todo, error) {
	ref = strings.TrimSpace(ref)
	if t, ok := store.FindTodo(st, ref); ok {
		return t, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(st.Todos) {
			return model.Todo{}, fmt.Errorf("index out of range: have %d, got %d", len(st.Todos), n)
		}
		return st.Todos[n-1], nil
	}
	return model.Todo{}, errNotFound("todo", ref)
}

func resolveUser(st store.State, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	for _, u := range st.Users {
		if u.ID == ref || strings.EqualFold(u.Name, ref) {
			return u.ID, nil
		}
	}
	return "", errNotFound("user", ref)
}

func newListCmd(app *App) *cobra.Command {
	var (
		filter string
		page   int
		asJSON bool
		pretty bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos (filtered, one page at a time)",
		Args:    exactArgs(0, "ls [--filter all|completed|uncompleted] [--page n]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return usageError{err}
			}
			s := newSession(cmd, app)
			st, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			st = store.SetPage(store.SetFilter(st, f), page)
			if asJSON {
				return writeJSON(cmd, store.PageSlice(st), pretty)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderList(st))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(model.FilterAll), "all|completed|uncompleted")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (5 todos per page)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the page as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new todo (title can be multiple words)",
		Args:  minArgs(1, "add <title...> [--user id|name]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, app)
			st := store.SetFormTitle(store.New(), strings.Join(args, " "))
			if user != "" {
				loaded, err := s.load(cmd.Context())
				if err != nil {
					return err
				}
				id, err := resolveUser(loaded, user)
				if err != nil {
					return err
				}
				st = store.SetFormUser(st, id)
			}
			s.ctl.AddTodo(cmd.Context(), st)
			return s.done()
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Assign to user (id or name)")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id|index>",
		Short: "Toggle completion of a todo",
		Args:  exactArgs(1, "done <id|index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, app)
			st, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			t, err := resolveTodo(st, args[0])
			if err != nil {
				return err
			}
			s.ctl.ToggleCompletion(cmd.Context(), st, t)
			return s.done()
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var (
		title    string
		user     string
		unassign bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id|index>",
		Short: "Change a todo's title or assignee",
		Args:  exactArgs(1, "edit <id|index> [--title t] [--user id|name | --unassign]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if user != "" && unassign {
				return usageError{fmt.Errorf("--user and --unassign are mutually exclusive")}
			}
			s := newSession(cmd, app)
			st, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			t, err := resolveTodo(st, args[0])
			if err != nil {
				return err
			}
			st = s.ctl.BeginEdit(st, t)
			if cmd.Flags().Changed("title") {
				st = store.SetDraftTitle(st, title)
			}
			switch {
			case unassign:
				st = store.SetDraftUser(st, "")
			case user != "":
				id, err := resolveUser(st, user)
				if err != nil {
					return err
				}
				st = store.SetDraftUser(st, id)
			}
			if _, err := s.ctl.SaveEdit(cmd.Context(), st); err != nil {
				return err
			}
			return s.done()
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&user, "user", "", "Assign to user (id or name)")
	cmd.Flags().BoolVar(&unassign, "unassign", false, "Remove the assignee")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|index>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    exactArgs(1, "rm <id|index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, app)
			st, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			t, err := resolveTodo(st, args[0])
			if err != nil {
				return err
			}
			s.ctl.DeleteTodo(cmd.Context(), st, t.ID)
			return s.done()
		},
	}
}

func newUsersCmd(app *App) *cobra.Command {
	var asJSON, pretty bool
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users todos can be assigned to",
		Args:  exactArgs(0, "users"),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newSession(cmd, app).ctl.FetchUsers(cmd.Context())
			if r.Err != nil {
				return fmt.Errorf("%s: %w", r.Op, r.Err)
			}
			if asJSON {
				return writeJSON(cmd, r.Users, pretty)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderUsers(r.Users))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print users as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

// writeJSON writes strict JSON; empty lists encode as [].
func writeJSON(cmd *cobra.Command, v any, pretty bool) error {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
