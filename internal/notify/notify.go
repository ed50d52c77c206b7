// Package notify is the transient feedback surface for user actions.
package notify

type Kind int

const (
	Success Kind = iota
	Failure
)

func (k Kind) String() string {
	if k == Failure {
		return "failure"
	}
	return "success"
}

// Notice is one piece of feedback shown to the user.
type Notice struct {
	Kind Kind
	Text string
}

func OK(text string) Notice   { return Notice{Kind: Success, Text: text} }
func Fail(text string) Notice { return Notice{Kind: Failure, Text: text} }

// Messages shown for each action outcome.
const (
	MsgEmptyTitle = "Please enter a todo title"
	MsgAdded      = "Todo added successfully"
	MsgAddFailed  = "Failed to add todo"
	MsgUpdated    = "Todo updated successfully"
	MsgUpdFailed  = "Failed to update todo"
	MsgGone       = "Todo no longer exists"
	MsgDeleted    = "Todo deleted successfully"
	MsgDelFailed  = "Failed to delete todo"
)

type Notifier interface {
	Notify(Notice)
}

// Func adapts a plain function to Notifier.
type Func func(Notice)

func (f Func) Notify(n Notice) { f(n) }

// Recorder keeps every notice it receives.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Notify(n Notice) { r.Notices = append(r.Notices, n) }

// Last returns the most recent notice, if any.
func (r *Recorder) Last() (Notice, bool) {
	if len(r.Notices) == 0 {
		return Notice{}, false
	}
	return r.Notices[len(r.Notices)-1], true
}

// Failed reports whether any failure notice was recorded.
func (r *Recorder) Failed() bool {
	for _, n := range r.Notices {
		if n.Kind == Failure {
			return true
		}
	}
	return false
}
