package notify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	// NotificationTag de-duplicates reminders so the host replaces a
	// still-visible reminder instead of stacking a new one.
	NotificationTag = "recurring-reminder"

	// NotificationTitleFormat takes the pending-today task count.
	NotificationTitleFormat = "You have %d tasks left today!"

	// NotificationBody is the fixed reminder body text.
	NotificationBody = "Stay on track perfectly."
)

// Notifier is the host capability for showing reminders. Implementations
// own the permission state; RequestPermission asks the user at most once
// and returns the current state unchanged when already settled.
type Notifier interface {
	Permission() Permission
	RequestPermission() Permission
	Show(title, body, tag string) error
}

// TerminalNotifier asks for permission on the terminal and prints
// reminders to it. It is the CLI's stand-in for a host notification
// surface.
type TerminalNotifier struct {
	mu         sync.Mutex
	in         io.Reader
	out        io.Writer
	permission Permission
}

// NewTerminalNotifier creates a terminal-backed notifier reading the
// permission answer from in and printing reminders to out.
func NewTerminalNotifier(in io.Reader, out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{
		in:         in,
		out:        out,
		permission: PermissionUnasked,
	}
}

// Permission returns the current permission state.
func (n *TerminalNotifier) Permission() Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.permission
}

// RequestPermission prompts the user unless the question is already
// settled. An unreadable answer counts as denied.
func (n *TerminalNotifier) RequestPermission() Permission {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.permission.Settled() {
		return n.permission
	}

	fmt.Fprint(n.out, "Allow doit to show task reminders? [y/N]: ")

	answer, err := bufio.NewReader(n.in).ReadString('\n')
	if err != nil && answer == "" {
		n.permission = PermissionDenied
		return n.permission
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		n.permission = PermissionGranted
	default:
		n.permission = PermissionDenied
	}
	return n.permission
}

// Show prints the reminder to the terminal.
func (n *TerminalNotifier) Show(title, body, tag string) error {
	_, err := fmt.Fprintf(n.out, "\n[%s] %s\n%s\n", tag, title, body)
	return err
}
