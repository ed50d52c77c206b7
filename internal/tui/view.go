package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoboard/internal/notify"
	"github.com/idilsaglam/todoboard/internal/store"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// titleWidth caps the Title column in terminal cells.
const titleWidth = 60

func (m modelTUI) View() string {
	t := ui.Current()

	sections := []string{
		m.header(),
		m.formView(),
		t.Muted.Render("Filter: ") + t.Accent.Render(m.st.Filter.Label()),
		m.tableView(),
		m.pagerView(),
	}
	if n := m.noticeView(); n != "" {
		sections = append(sections, n)
	}
	if m.focus == focusTable {
		sections = append(sections, m.help.View(m.keys))
	} else {
		sections = append(sections, m.help.View(inputKeys{m.keys}))
	}
	return ui.Panel(sections)
}

func (m modelTUI) header() string {
	t := ui.Current()
	done, pending := stats(m.st)
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todo App"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Total"), len(m.st.Todos),
	)
	h += "   " + t.Muted.Render("theme: "+string(t.Mode))
	if m.inflight > 0 {
		h += "  " + m.spin.View()
	}
	return h
}

func (m modelTUI) formView() string {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if m.focus == focusForm {
		box = box.BorderForeground(lipgloss.Color("12"))
	}

	assignee := store.UserName(m.st, userRef(m.st.Form.UserID))
	if m.st.Form.UserID == "" {
		assignee = "Select User"
	}
	add := "[ Add Todo ]"
	if m.st.Pending {
		add = t.Muted.Render("[ Adding… ]")
	}
	lines := []string{
		t.Title.Render("Create Todo Item"),
		"Title",
		m.title.View(),
		"Assign to user  " + t.Accent.Render("‹ "+assignee+" ›"),
		add,
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m modelTUI) tableView() string {
	t := ui.Current()
	page := store.PageSlice(m.st)
	if len(page) == 0 {
		return t.Muted.Render("no todos")
	}

	rows := make([][]string, 0, len(page))
	for _, td := range page {
		if store.Editing(m.st, td.ID) {
			d := m.st.Draft
			rows = append(rows, []string{
				m.edit.View(),
				"‹ " + store.UserName(m.st, d.UserID) + " ›",
				ui.Box(td.Completed),
			})
			continue
		}
		title := ui.Truncate(td.Title, titleWidth)
		if td.Completed {
			title = t.Done.Render(title)
		}
		rows = append(rows, []string{title, store.UserName(m.st, td.UserID), ui.Box(td.Completed)})
	}

	sel := -1
	if m.focus == focusTable {
		sel = m.cursor
	}
	return ui.Table([]string{"Title", "Assigned User", "Status"}, rows, sel)
}

func (m modelTUI) pagerView() string {
	t := ui.Current()
	prev, next := "‹ Previous", "Next ›"
	if !store.HasPrev(m.st) {
		prev = t.Muted.Render(prev)
	}
	if !store.HasNext(m.st) {
		next = t.Muted.Render(next)
	}
	return fmt.Sprintf("%s   Page %d of %d   %s", prev, m.st.Page, store.PageCount(m.st), next)
}

func (m modelTUI) noticeView() string {
	if m.notice == nil {
		return ""
	}
	t := ui.Current()
	if m.notice.Kind == notify.Failure {
		return t.Error.Render("✖ " + m.notice.Text)
	}
	return t.Success.Render("✔ " + m.notice.Text)
}

func stats(s store.State) (done, pending int) {
	for _, it := range s.Todos {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func userRef(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
