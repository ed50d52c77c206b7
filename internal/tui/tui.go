package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoboard/internal/controller"
	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/notify"
	"github.com/idilsaglam/todoboard/internal/store"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// Options tune the interactive view.
type Options struct {
	// SaveTheme persists the theme after a toggle. Optional.
	SaveTheme func(ui.Mode) error
}

type focus int

const (
	focusTable focus = iota
	focusForm
	focusEdit
)

// resultMsg carries the outcome of a remote call back to the event loop.
type resultMsg controller.Result

// noticeDoneMsg hides the toast with the same seq.
type noticeDoneMsg struct{ seq int }

const noticeTTL = 3 * time.Second

type modelTUI struct {
	ctx  context.Context
	ctl  *controller.Controller
	opt  Options
	st   store.State
	keys keyMap

	focus  focus
	cursor int // row within the current page

	title textinput.Model // new todo title
	edit  textinput.Model // draft title

	help     help.Model
	spin     spinner.Model
	inflight int

	notice    *notify.Notice
	noticeSeq int
	noticeTTL time.Duration
	animate   bool
}

// Run starts the interactive view and blocks until the user quits.
func Run(ctx context.Context, ctl *controller.Controller, opt Options) error {
	p := tea.NewProgram(newModel(ctx, ctl, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, ctl *controller.Controller, opt Options) modelTUI {
	m := modelTUI{
		ctx:       ctx,
		ctl:       ctl,
		opt:       opt,
		st:        store.New(),
		keys:      defaultKeys(),
		help:      help.New(),
		spin:      spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		noticeTTL: noticeTTL,
		animate:   true,
	}

	m.title = textinput.New()
	m.title.Prompt = "> "
	m.title.Placeholder = "Enter todo title"
	m.title.CharLimit = 200

	m.edit = textinput.New()
	m.edit.Prompt = ""
	m.edit.CharLimit = 200

	// Init fires both collection fetches.
	m.inflight = 2
	return m
}

func (m modelTUI) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchTodos(), m.fetchUsers()}
	if m.animate {
		cmds = append(cmds, m.spin.Tick)
	}
	return tea.Batch(cmds...)
}

// effects; each runs off the event loop and reports back as resultMsg

func (m modelTUI) fetchTodos() tea.Cmd {
	ctx, ctl := m.ctx, m.ctl
	return func() tea.Msg { return resultMsg(ctl.FetchTodos(ctx)) }
}

func (m modelTUI) fetchUsers() tea.Cmd {
	ctx, ctl := m.ctx, m.ctl
	return func() tea.Msg { return resultMsg(ctl.FetchUsers(ctx)) }
}

func (m modelTUI) create() tea.Cmd {
	t, err := store.NewTodoFromForm(m.st)
	if err != nil {
		return nil
	}
	ctx, ctl := m.ctx, m.ctl
	return func() tea.Msg { return resultMsg(ctl.Create(ctx, t)) }
}

func (m modelTUI) update(t model.Todo) tea.Cmd {
	ctx, ctl := m.ctx, m.ctl
	return func() tea.Msg { return resultMsg(ctl.Update(ctx, t)) }
}

func (m modelTUI) remove(id string) tea.Cmd {
	ctx, ctl := m.ctx, m.ctl
	return func() tea.Msg { return resultMsg(ctl.Delete(ctx, id)) }
}

func (m *modelTUI) showNotice(n notify.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	if n.Kind == notify.Failure {
		log.Printf("tui: %s", n.Text)
	}
	if m.noticeTTL <= 0 {
		return nil
	}
	seq := m.noticeSeq
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg { return noticeDoneMsg{seq: seq} })
}
