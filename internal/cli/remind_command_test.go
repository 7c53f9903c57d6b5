package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabrez-nitr/doit/internal/domain"
)

func TestRemindCommand_Execute(t *testing.T) {
	t.Run("denied permission turns reminders off", func(t *testing.T) {
		app, _, out := setupTestApp(t)
		app.in = strings.NewReader("n\n")

		err := NewRemindCommand(app).Execute(context.Background(), nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Reminders are off")
	})

	t.Run("granted permission runs the loop until cancelled", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		app.in = strings.NewReader("y\n")

		_, err := mock.AddTask(context.Background(), "Pending", domain.PriorityMedium, domain.Today())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		cmd := NewRemindCommand(app)
		cmd.Interval = 10 * time.Millisecond
		require.NoError(t, cmd.Execute(ctx, nil))

		assert.Contains(t, out.String(), "Reminders on")
		assert.Contains(t, out.String(), "You have 1 tasks left today!")
	})
}
