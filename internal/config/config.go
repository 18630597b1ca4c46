package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/atomicstack/pinta/internal/app"
	"github.com/atomicstack/pinta/internal/directory"
	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

// ErrHelpShown is returned when the command line asked for help or the
// version instead of a run.
var ErrHelpShown = errors.New("help shown")

// Version is stamped at build time.
var Version = "dev"

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envStartDir   = "PINTA_START_DIR"
	envShowHidden = "PINTA_SHOW_HIDDEN"
	envExclude    = "PINTA_EXCLUDE"
	envSocket     = "PINTA_SOCKET"
	envTick       = "PINTA_TICK"
	envSearchMode = "PINTA_SEARCH_MODE"
	envWatch      = "PINTA_WATCH"
	envNoColor    = "NO_COLOR"
	envLogFile    = "PINTA_LOG_FILE"
	envTrace      = "PINTA_TRACE"
)

// LoadArgs parses args (including the program name) and writes any help
// output to out.
func LoadArgs(ctx context.Context, args []string, out io.Writer) (Config, error) {
	var (
		startDir   string
		showHidden bool
		exclude    []string
		socket     string
		tick       time.Duration
		searchMode string
		watch      bool
		noColor    bool
		logFile    string
		trace      bool
		positional []string
		ran        bool
	)

	cmd := &cli.Command{
		Name:      "pinta",
		Usage:     "browse directories and jump into tmux sessions",
		UsageText: "pinta [options] [directory]",
		Version:   Version,
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "start-dir",
				Usage:       "directory to open (defaults to the working directory)",
				Sources:     cli.EnvVars(envStartDir),
				Destination: &startDir,
			},
			&cli.BoolFlag{
				Name:        "show-hidden",
				Aliases:     []string{"a"},
				Usage:       "list dotfiles from the start",
				Sources:     cli.EnvVars(envShowHidden),
				Destination: &showHidden,
			},
			&cli.StringSliceFlag{
				Name:        "exclude",
				Aliases:     []string{"x"},
				Usage:       "glob of entry names to leave out (repeatable)",
				Sources:     cli.EnvVars(envExclude),
				Destination: &exclude,
			},
			&cli.StringFlag{
				Name:        "socket",
				Aliases:     []string{"S"},
				Usage:       "path to the tmux socket (overrides environment detection)",
				Sources:     cli.EnvVars(envSocket),
				Destination: &socket,
			},
			&cli.DurationFlag{
				Name:        "tick",
				Usage:       "redraw interval",
				Sources:     cli.EnvVars(envTick),
				Value:       250 * time.Millisecond,
				Destination: &tick,
			},
			&cli.StringFlag{
				Name:        "search-mode",
				Usage:       "how search matches names (substring, fuzzy)",
				Sources:     cli.EnvVars(envSearchMode),
				Value:       "substring",
				Destination: &searchMode,
			},
			&cli.BoolFlag{
				Name:        "watch",
				Usage:       "re-list the directory when it changes on disk",
				Sources:     cli.EnvVars(envWatch),
				Destination: &watch,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable colours (also set by NO_COLOR)",
				Destination: &noColor,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to the log file",
				Sources:     cli.EnvVars(envLogFile),
				Destination: &logFile,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "enable verbose JSON trace logging",
				Sources:     cli.EnvVars(envTrace),
				Destination: &trace,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ran = true
			positional = c.Args().Slice()
			return nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		return Config{}, err
	}
	if !ran {
		return Config{}, ErrHelpShown
	}
	if len(positional) > 1 {
		return Config{}, fmt.Errorf("expected at most one directory, got %d", len(positional))
	}
	if len(positional) == 1 && startDir == "" {
		startDir = positional[0]
	}
	if v, ok := os.LookupEnv(envNoColor); ok && v != "" {
		noColor = true
	}

	cfg := Config{
		App: app.Config{
			StartDir:   startDir,
			ShowHidden: showHidden,
			Exclude:    exclude,
			SocketPath: socket,
			Tick:       tick,
			SearchMode: strings.ToLower(strings.TrimSpace(searchMode)),
			Watch:      watch,
			NoColor:    noColor,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"startDir":   startDir,
			"showHidden": strconv.FormatBool(showHidden),
			"exclude":    strings.Join(exclude, ","),
			"socket":     socket,
			"tick":       tick.String(),
			"searchMode": searchMode,
			"watch":      strconv.FormatBool(watch),
			"noColor":    strconv.FormatBool(noColor),
			"logFile":    logFile,
			"trace":      strconv.FormatBool(trace),
		},
		Args: append([]string(nil), positional...),
	}

	return cfg, nil
}

// Validate rejects values that parse but cannot work.
func Validate(cfg Config) error {
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.Tick)
	}
	if _, err := uistate.MatcherFor(cfg.App.SearchMode); err != nil {
		return err
	}
	if err := directory.ValidatePatterns(cfg.App.Exclude); err != nil {
		return err
	}
	return nil
}
