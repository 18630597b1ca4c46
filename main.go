package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/term"

	"github.com/atomicstack/pinta/internal/app"
	"github.com/atomicstack/pinta/internal/config"
	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/logging/events"
	"github.com/atomicstack/pinta/internal/tmux"
)

// Exit codes: 0 after a hand-off to tmux, a plain quit or --help; 1 when
// the browser fails at runtime; 2 when the command line is unusable.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadArgs(ctx, args, stdout)
	if errors.Is(err, config.ErrHelpShown) {
		return exitOK
	}
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "pinta: %v\n", err)
		return exitConfig
	}

	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "pinta: %v\n", err)
		return exitRuntime
	}
	return exitOK
}

// startupTracePayload records what pinta was started with and the tmux and
// terminal it found, so a trace log explains an empty session pane or a
// cramped layout.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"version":  config.Version,
		"tmux":     probeTmux(cfg.App.SocketPath),
		"terminal": probeTerminal(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type tmuxDetails struct {
	Binary string `json:"binary,omitempty"`
	Socket string `json:"socket,omitempty"`
	Nested bool   `json:"nested"`
	Error  string `json:"error,omitempty"`
}

func probeTmux(socketFlag string) tmuxDetails {
	info := tmuxDetails{Nested: os.Getenv("TMUX") != ""}
	bin, err := exec.LookPath("tmux")
	if err != nil {
		info.Error = err.Error()
	}
	info.Binary = bin
	if socket, err := tmux.ResolveSocketPath(socketFlag); err == nil {
		info.Socket = socket
	} else if info.Error == "" {
		info.Error = err.Error()
	}
	return info
}

type terminalDetails struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// probeTerminal reports the size of the first standard descriptor that is a
// terminal. Bubble Tea draws on stdout, so it is tried first.
func probeTerminal() terminalDetails {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			return terminalDetails{Source: f.Name(), Width: width, Height: height}
		}
	}
	return terminalDetails{}
}
