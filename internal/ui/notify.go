package ui

import (
	"fmt"
	"io"

	"github.com/idilsaglam/todoboard/internal/notify"
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render("✔ "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+msg))
}

// Printer prints notices: successes to Out, failures to Err.
type Printer struct {
	Out, Err io.Writer

	failed bool
}

func (p *Printer) Notify(n notify.Notice) {
	if n.Kind == notify.Failure {
		p.failed = true
		Fail(p.Err, n.Text)
		return
	}
	OK(p.Out, n.Text)
}

// Failed reports whether a failure notice was printed.
func (p *Printer) Failed() bool { return p.failed }
