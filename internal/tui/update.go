package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoboard/internal/controller"
	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/notify"
	"github.com/idilsaglam/todoboard/internal/store"
	"github.com/idilsaglam/todoboard/internal/ui"
)

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if w := msg.Width - 12; w > 10 {
			m.title.Width = w
			m.edit.Width = w / 2
		}
		return m, nil

	case resultMsg:
		return m.applyResult(controller.Result(msg))

	case noticeDoneMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.animate {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.focus {
		case focusForm:
			return m.updateForm(msg)
		case focusEdit:
			return m.updateEdit(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

// applyResult folds a finished call into the state; a successful mutation
// schedules exactly one re-fetch of the todo collection.
func (m modelTUI) applyResult(r controller.Result) (tea.Model, tea.Cmd) {
	if m.inflight > 0 {
		m.inflight--
	}
	if r.Err != nil {
		log.Printf("tui: %s: %v", r.Op, r.Err)
	}

	st, n, refetch := controller.Apply(m.st, r)
	m.st = st

	if r.Op == controller.OpCreate && r.Err == nil {
		m.title.SetValue("")
	}
	if m.focus == focusEdit && m.st.Draft == nil {
		m.focus = focusTable
		m.edit.Blur()
	}
	m.clampCursor()

	var cmds []tea.Cmd
	if n != nil {
		cmds = append(cmds, m.showNotice(*n))
	}
	if refetch {
		m.inflight++
		cmds = append(cmds, m.fetchTodos())
	}
	return m, tea.Batch(cmds...)
}

func (m modelTUI) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(store.PageSlice(m.st))-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Prev):
		if store.HasPrev(m.st) {
			m.st = store.PrevPage(m.st)
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Next):
		if store.HasNext(m.st) {
			m.st = store.NextPage(m.st)
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Filter):
		m.st = store.SetFilter(m.st, m.st.Filter.Next())
		m.clampCursor()

	case key.Matches(msg, m.keys.Add):
		m.focus = focusForm
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.inflight++
			return m, m.update(controller.Toggled(t))
		}

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.st = store.BeginEdit(m.st, t)
			m.focus = focusEdit
			m.edit.SetValue(t.Title)
			m.edit.CursorEnd()
			return m, m.edit.Focus()
		}

	case key.Matches(msg, m.keys.Del):
		if t, ok := m.selected(); ok {
			m.inflight++
			return m, m.remove(t.ID)
		}

	case key.Matches(msg, m.keys.Theme):
		mode := ui.Toggle()
		if m.opt.SaveTheme != nil {
			if err := m.opt.SaveTheme(mode); err != nil {
				log.Printf("tui: save theme: %v", err)
			}
		}

	case key.Matches(msg, m.keys.Reload):
		m.inflight += 2
		return m, tea.Batch(m.fetchTodos(), m.fetchUsers())
	}
	return m, nil
}

func (m modelTUI) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusTable
		m.title.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Assignee):
		m.st = store.SetFormUser(m.st, store.NextUserID(m.st, m.st.Form.UserID))
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		// one create at a time; repeated enter while pending is dropped
		if m.st.Pending {
			return m, nil
		}
		if _, err := store.NewTodoFromForm(m.st); err != nil {
			return m, m.showNotice(notify.Fail(notify.MsgEmptyTitle))
		}
		cmd := m.create()
		m.st = store.SetPending(m.st, true)
		m.inflight++
		return m, cmd
	}

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	m.st = store.SetFormTitle(m.st, m.title.Value())
	return m, cmd
}

func (m modelTUI) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.st = store.CancelEdit(m.st)
		m.focus = focusTable
		m.edit.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Assignee):
		if d := m.st.Draft; d != nil {
			cur := ""
			if d.UserID != nil {
				cur = *d.UserID
			}
			m.st = store.SetDraftUser(m.st, store.NextUserID(m.st, cur))
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.st.Draft == nil {
			return m, nil
		}
		m.inflight++
		return m, m.update(m.st.Draft.Clone())
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.st = store.SetDraftTitle(m.st, m.edit.Value())
	return m, cmd
}

func (m modelTUI) selected() (model.Todo, bool) {
	page := store.PageSlice(m.st)
	if m.cursor < 0 || m.cursor >= len(page) {
		return model.Todo{}, false
	}
	return page[m.cursor], true
}

func (m *modelTUI) clampCursor() {
	n := len(store.PageSlice(m.st))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
