package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Runner runs external commands, echoing each invocation as "[command]..."
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	echo   *color.Color
	env    []string
}

// Option is a functional option for Runner configuration
type Option func(*Runner)

// WithStdout sets the writer for command echo and process stdout
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr sets the writer for process stderr
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// WithEnv appends environment variables ("KEY=value") to every command
func WithEnv(env ...string) Option {
	return func(r *Runner) {
		r.env = append(r.env, env...)
	}
}

// New creates a Runner writing to os.Stdout and os.Stderr
func New(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
		echo:   color.New(color.FgCyan),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run runs the command, streaming its output. A non-zero exit is returned as
// *model.CommandError carrying the combined output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	r.print(name, args)

	var captured bytes.Buffer
	cmd := r.command(ctx, name, args)
	cmd.Stdout = io.MultiWriter(r.stdout, &captured)
	cmd.Stderr = io.MultiWriter(r.stderr, &captured)

	return r.wait(ctx, cmd, name, args, &captured)
}

// Output runs the command and returns its stdout. Stderr is passed through and
// attached to the error on failure.
func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.print(name, args)

	var stdout, captured bytes.Buffer
	cmd := r.command(ctx, name, args)
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(r.stderr, &captured)

	if err := r.wait(ctx, cmd, name, args, &captured); err != nil {
		var cmdErr *model.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Output == "" {
			cmdErr.Output = strings.TrimSpace(stdout.String())
		}
		return nil, err
	}

	return bytes.TrimSpace(stdout.Bytes()), nil
}

func (r *Runner) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	return cmd
}

func (r *Runner) wait(ctx context.Context, cmd *exec.Cmd, name string, args []string, captured *bytes.Buffer) error {
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ctxlog.From(ctx).Debug("Command failed",
			"command", name,
			"exit_code", exitErr.ExitCode(),
		)
		return &model.CommandError{
			Args:     append([]string{name}, args...),
			ExitCode: exitErr.ExitCode(),
			Output:   strings.TrimSpace(captured.String()),
		}
	}

	return goerr.Wrap(err, "failed to run command", goerr.V("command", name), goerr.V("args", args))
}

func (r *Runner) print(name string, args []string) {
	line := strings.ReplaceAll(strings.Join(append([]string{name}, args...), " "), "\n", " ")
	_, _ = r.echo.Fprintln(r.stdout, "[command]"+line)
}
