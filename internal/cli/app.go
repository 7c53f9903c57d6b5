package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/config"
	"github.com/tabrez-nitr/doit/internal/domain"
)

// App carries the shared dependencies of every command handler.
type App struct {
	api    api.API
	config *config.Config
	in     io.Reader
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return NewAppWithConfig(apiInstance, nil)
}

// NewAppWithConfig creates a new CLI application instance with configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// parseDayArg resolves a date argument. Empty and "today" mean the current
// local day; "tomorrow" is supported because deadline entry uses it a lot.
func parseDayArg(s string) (domain.Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.Today(), nil
	case "tomorrow":
		return domain.Today().AddDays(1), nil
	default:
		return domain.ParseDay(s)
	}
}

// checkbox renders the completion marker of a list line.
func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
