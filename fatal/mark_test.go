package fatal_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-fatal/fatal"
)

func TestMark_NilPassthrough(t *testing.T) {
	t.Parallel()

	require.NoError(t, fatal.MarkFatal(nil))
	require.NoError(t, fatal.MarkNonFatal(nil))
}

func TestMarkAndChainQueries(t *testing.T) {
	t.Parallel()

	plain := errors.New("row not found")

	marked := fatal.MarkFatal(plain)
	require.True(t, fatal.IsFatal(marked))
	require.False(t, fatal.IsNonFatal(marked))
	require.ErrorIs(t, marked, plain)

	// classification survives further wrapping up the chain
	outer := fmt.Errorf("repo get: %w", marked)
	require.True(t, fatal.IsFatal(outer))
	require.ErrorIs(t, outer, plain)

	soft := fatal.MarkNonFatal(plain)
	require.False(t, fatal.IsFatal(soft))
	require.True(t, fatal.IsNonFatal(soft))
}

func TestMark_UnclassifiedIsNeither(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")
	require.False(t, fatal.IsFatal(plain))
	require.False(t, fatal.IsNonFatal(plain))
	require.False(t, fatal.IsFatal(nil))
	require.False(t, fatal.IsNonFatal(nil))
}

func TestMark_RetagsInsteadOfRewrapping(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")

	escalated := fatal.MarkFatal(fatal.MarkNonFatal(plain))
	require.True(t, fatal.IsFatal(escalated))

	w, ok := escalated.(fatal.Error[error])
	require.True(t, ok)
	// the payload is still the original error, not a nested wrapper
	require.Equal(t, plain, w.Inner())
}

func FuzzMarkFatal(f *testing.F) {
	f.Add("disk busy")
	f.Add("")
	f.Fuzz(func(t *testing.T, msg string) {
		t.Parallel()

		err := errors.New(msg)
		marked := fatal.MarkFatal(err)

		require.True(t, fatal.IsFatal(marked))
		require.ErrorIs(t, marked, err)
		require.True(t, strings.Contains(marked.Error(), msg))

		demoted := fatal.MarkNonFatal(marked)
		require.True(t, fatal.IsNonFatal(demoted))
		require.ErrorIs(t, demoted, err)
	})
}
