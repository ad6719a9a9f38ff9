package gitexec

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/gitctx/internal/core/validate"
	"github.com/aki/gitctx/internal/tests/helpers"
)

func TestInsertPathSeparator(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "diff with trailing path",
			args: []string{"diff", "--stat", "file.txt"},
			want: []string{"diff", "--stat", "--", "file.txt"},
		},
		{
			name: "no non-flag argument leaves args unchanged",
			args: []string{"log", "--oneline", "--max-count=3", "-weird-file"},
			want: []string{"log", "--oneline", "--max-count=3", "-weird-file"},
		},
		{
			name: "first non-flag gets the separator",
			args: []string{"show", "abc1234"},
			want: []string{"show", "--", "abc1234"},
		},
		{
			name: "existing separator is preserved",
			args: []string{"diff", "--", "file.txt"},
			want: []string{"diff", "--", "file.txt"},
		},
		{
			name: "non path subcommand untouched",
			args: []string{"rev-parse", "HEAD"},
			want: []string{"rev-parse", "HEAD"},
		},
		{
			name: "all flags untouched",
			args: []string{"diff", "--numstat", "--cached"},
			want: []string{"diff", "--numstat", "--cached"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insertPathSeparator(tt.args))
		})
	}
}

func TestRunRejectsMetacharactersBeforeSpawn(t *testing.T) {
	_, err := Run(context.Background(), []string{"log", "$(rm -rf /)"}, nil)
	require.Error(t, err)

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr), "must fail validation, not execution")
	assert.Equal(t, "args", verr.Rule)
}

func TestRunInRepo(t *testing.T) {
	repo := helpers.CreateTestRepo(t)

	out, err := Run(context.Background(), []string{"rev-parse", "--show-toplevel"}, &Options{Dir: repo})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	// Non-existent ref fails with a sanitized ExecError.
	_, err = Run(context.Background(), []string{"rev-parse", "--verify", "refs/heads/nope"}, &Options{Dir: repo})
	require.Error(t, err)
	var execErr *ExecError
	assert.True(t, errors.As(err, &execErr))

	// The same failure is tolerated when the caller opts in.
	res, err := RunDetailed(context.Background(), []string{"rev-parse", "--verify", "refs/heads/nope"}, &Options{
		Dir:              repo,
		AllowNonZeroExit: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ExitCode)
}

func TestCappedBuffer(t *testing.T) {
	var b cappedBuffer
	b.limit = 8

	_, err := b.Write([]byte("12345678"))
	require.NoError(t, err)

	_, err = b.Write([]byte("9"))
	assert.ErrorIs(t, err, ErrOutputTooLarge)
	assert.Equal(t, "12345678", b.String())
}
