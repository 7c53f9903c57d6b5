package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermission_Settled(t *testing.T) {
	assert.False(t, PermissionUnasked.Settled())
	assert.True(t, PermissionGranted.Settled())
	assert.True(t, PermissionDenied.Settled())
}

func TestTerminalNotifier_RequestPermission(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected Permission
	}{
		{"should grant on y", "y\n", PermissionGranted},
		{"should grant on yes", "yes\n", PermissionGranted},
		{"should grant case-insensitively", "YES\n", PermissionGranted},
		{"should deny on n", "n\n", PermissionDenied},
		{"should deny on empty answer", "\n", PermissionDenied},
		{"should deny on garbage", "maybe\n", PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n := NewTerminalNotifier(strings.NewReader(tt.answer), &out)

			assert.Equal(t, PermissionUnasked, n.Permission())
			assert.Equal(t, tt.expected, n.RequestPermission())
			assert.Equal(t, tt.expected, n.Permission())
			assert.Contains(t, out.String(), "Allow doit to show task reminders?")
		})
	}
}

func TestTerminalNotifier_RequestPermission_Idempotent(t *testing.T) {
	var out bytes.Buffer
	n := NewTerminalNotifier(strings.NewReader("y\n"), &out)

	require.Equal(t, PermissionGranted, n.RequestPermission())
	promptedOnce := out.Len()

	// A settled permission is returned as-is, with no second prompt even
	// though the reader is exhausted.
	assert.Equal(t, PermissionGranted, n.RequestPermission())
	assert.Equal(t, promptedOnce, out.Len())
}

func TestTerminalNotifier_RequestPermission_UnreadableInput(t *testing.T) {
	var out bytes.Buffer
	n := NewTerminalNotifier(strings.NewReader(""), &out)

	assert.Equal(t, PermissionDenied, n.RequestPermission())
}

func TestTerminalNotifier_Show(t *testing.T) {
	var out bytes.Buffer
	n := NewTerminalNotifier(strings.NewReader(""), &out)

	require.NoError(t, n.Show("You have 3 tasks left today!", NotificationBody, NotificationTag))

	assert.Contains(t, out.String(), "[recurring-reminder]")
	assert.Contains(t, out.String(), "You have 3 tasks left today!")
	assert.Contains(t, out.String(), "Stay on track perfectly.")
}
