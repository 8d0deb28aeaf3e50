// Package term surfaces notifications on the terminal.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
)

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// Notifier prints notices to a writer, one per line. Unlike the verbose
// logger, notices always print: they are the console's user-facing toasts.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier creates a notifier writing to stderr.
func NewNotifier() *Notifier {
	return &Notifier{out: os.Stderr}
}

// NewNotifierTo creates a notifier writing to w. Useful for testing.
func NewNotifierTo(w io.Writer) *Notifier {
	return &Notifier{out: w}
}

// Notify delivers a notice to the user.
func (n *Notifier) Notify(notice domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", prefix(notice.Level), notice.Message)
}

func prefix(level domain.NotificationLevel) string {
	switch level {
	case domain.NotificationSuccess:
		return "[ok]"
	case domain.NotificationFailure:
		return "[failed]"
	default:
		return "[info]"
	}
}
