// Package cli implements the flat command-line surface: the task
// shorthand is the joined arguments, or all of stdin when no
// arguments are given. There are no subcommands and no flags; the
// tool is meant to be bound to a keyboard-shortcut launcher.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"godspeed/internal/backend/godspeed"
	"godspeed/internal/config"
	"godspeed/internal/exitcode"
	"godspeed/internal/notify"
	"godspeed/internal/pipeline"
	"godspeed/internal/queue"
	"godspeed/internal/refcache"
	"godspeed/internal/service"
)

// Run executes one invocation and returns the process exit code.
// svc may be nil, in which case the HTTP backend is constructed from
// the config credential; tests inject a fake instead. An empty input
// is not an error: the invocation still replays the retry queue.
func Run(ctx context.Context, cfg *config.Config, svc service.Service, notifier notify.Notifier, args []string, stdin io.Reader, out, errOut io.Writer) int {
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create data directory: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.HasAPIKey() {
		notifier.Notify(config.EnvAPIKey + " environment variable not set")
		fmt.Fprintf(errOut, "error: %s environment variable not set\n", config.EnvAPIKey)
		return exitcode.AuthError
	}

	if svc == nil {
		svc = godspeed.New(ctx, cfg.APIKey)
	}

	input := readInput(args, stdin)

	lists := refcache.NewResolver(cfg.ListsPath(), svc.FetchLists)
	labels := refcache.NewResolver(cfg.LabelsPath(), svc.FetchLabels)
	p := pipeline.New(svc, notifier, lists, labels, queue.New(cfg.QueuePath()))

	err := p.Run(ctx, input)
	switch {
	case err == nil:
		if input != "" {
			fmt.Fprintln(out, "ok")
		}
		return exitcode.Success
	case errors.Is(err, pipeline.ErrMultipleLists):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: failed to send task: %v (queued for retry)\n", err)
		return exitcode.BackendError
	}
}

// readInput joins the arguments, or reads all of stdin with trailing
// whitespace trimmed when there are none.
func readInput(args []string, stdin io.Reader) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return ""
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace)
}
