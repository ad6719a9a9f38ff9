// Package gitexec invokes the git binary as a subprocess with shell
// interpretation disabled. Every argument vector is validated before
// the process is spawned, path-taking subcommands get an automatic
// "--" separator, output is size-capped, and error messages are
// redacted before they propagate.
package gitexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aki/gitctx/internal/core/logger"
	"github.com/aki/gitctx/internal/core/redact"
	"github.com/aki/gitctx/internal/core/validate"
)

// MaxOutputBytes caps stdout and stderr per invocation. A pathological
// diff or log past this size aborts the call instead of growing the
// process heap without bound.
const MaxOutputBytes = 10 * 1024 * 1024

// pathSubcommands are git subcommands that accept trailing file-path
// arguments. For these, a "--" separator is spliced in before the
// first non-flag argument so a path that looks like a flag is still
// treated as a path.
var pathSubcommands = map[string]bool{
	"diff":     true,
	"log":      true,
	"show":     true,
	"add":      true,
	"rm":       true,
	"mv":       true,
	"checkout": true,
	"reset":    true,
	"restore":  true,
	"grep":     true,
	"blame":    true,
}

// ErrOutputTooLarge indicates the subprocess produced more output than
// MaxOutputBytes.
var ErrOutputTooLarge = errors.New("git output exceeds size limit")

// ExecError is returned when git fails to launch or exits non-zero.
// Its message is redacted before construction.
type ExecError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
}

// Options configures a single git invocation.
type Options struct {
	// Dir is the working directory. Empty means the process cwd.
	Dir string
	// AllowNonZeroExit suppresses the error on a non-zero exit code.
	// Used by callers that treat "no match" as a valid empty result.
	AllowNonZeroExit bool
	// Logger receives a redacted debug trace per invocation.
	Logger logger.Logger
}

// Result holds the uncoerced outcome of a detailed invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes git with the given argument vector and returns stdout.
// A non-zero exit is an error unless opts.AllowNonZeroExit is set.
func Run(ctx context.Context, args []string, opts *Options) (string, error) {
	res, err := RunDetailed(ctx, args, opts)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// RunDetailed executes git and returns stdout, stderr, and the exit
// code. Launch failures and disallowed non-zero exits are errors;
// everything else is reported uncoerced in the Result.
func RunDetailed(ctx context.Context, args []string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	if err := validate.Args(args); err != nil {
		return nil, err
	}
	args = insertPathSeparator(args)

	// Argument vector is passed directly to the git binary; no shell
	// is ever involved.
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = opts.Dir

	var stdout, stderr cappedBuffer
	stdout.limit = MaxOutputBytes
	stderr.limit = MaxOutputBytes
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("running git", "args", args, "dir", redact.Path(opts.Dir))

	err := cmd.Run()
	if err != nil {
		if errors.Is(err, ErrOutputTooLarge) || errors.Is(stdout.err, ErrOutputTooLarge) || errors.Is(stderr.err, ErrOutputTooLarge) {
			return nil, ErrOutputTooLarge
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Launch failure: binary missing, permissions, etc.
			return nil, fmt.Errorf("failed to run git: %s", redact.Error(err.Error()))
		}
		if !opts.AllowNonZeroExit {
			return nil, &ExecError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   redact.Error(strings.TrimSpace(stderr.String())),
			}
		}
		return &Result{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitErr.ExitCode(),
		}, nil
	}

	return &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}

// insertPathSeparator splices a literal "--" before the first non-flag
// argument after the subcommand, for subcommands that take paths. Git
// then treats everything after it as a path, never a flag.
func insertPathSeparator(args []string) []string {
	if len(args) < 2 || !pathSubcommands[args[0]] {
		return args
	}
	for _, arg := range args {
		if arg == "--" {
			return args
		}
	}
	for i := 1; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "-") {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
	}
	return args
}

// cappedBuffer accumulates subprocess output up to a byte limit and
// fails the copy once the limit is crossed.
type cappedBuffer struct {
	buf   bytes.Buffer
	limit int
	err   error
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.buf.Len()+len(p) > b.limit {
		b.err = ErrOutputTooLarge
		return 0, ErrOutputTooLarge
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
