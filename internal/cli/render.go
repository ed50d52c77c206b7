package cli

import (
	"fmt"

	"github.com/idilsaglam/todoboard/internal/model"
	"github.com/idilsaglam/todoboard/internal/store"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// titleWidth caps the Title column in terminal cells.
const titleWidth = 80

// renderList draws the header, progress, current page and pager in a panel.
func renderList(st store.State) string {
	t := ui.Current()
	d, p := stats(st.Todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(st.Todos),
	)

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(d, d+p, 28)),
		t.Muted.Render("Filter: ") + t.Accent.Render(st.Filter.Label()),
		"",
	}

	page := store.PageSlice(st)
	if len(page) == 0 {
		lines = append(lines, t.Muted.Render("no todos"))
	} else {
		rows := make([][]string, 0, len(page))
		for _, td := range page {
			title := ui.Truncate(td.Title, titleWidth)
			if td.Completed {
				title = t.Done.Render(title)
			}
			rows = append(rows, []string{indexOf(st, td.ID), title, store.UserName(st, td.UserID), ui.Box(td.Completed)})
		}
		lines = append(lines, ui.Table([]string{"#", "Title", "Assigned User", "Status"}, rows, -1))
	}

	lines = append(lines, "", fmt.Sprintf("Page %d of %d", st.Page, store.PageCount(st)))
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return ui.Panel(lines)
}

func renderUsers(users []model.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Name})
	}
	return ui.Table([]string{"ID", "Name"}, rows, -1)
}

// indexOf is the 1-based position in the full list, usable as a ref.
func indexOf(st store.State, id string) string {
	for i, t := range st.Todos {
		if t.ID == id {
			return fmt.Sprint(i + 1)
		}
	}
	return "?"
}

func stats(todos []model.Todo) (done, pending int) {
	for _, it := range todos {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
