package faults_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"drills/pkg/faults"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []faults.Kind{
		faults.ErrFileMissing,
		faults.ErrDivideByZero,
		faults.ErrKeyMissing,
		faults.ErrIndexRange,
		faults.ErrBadConversion,
		faults.ErrInternal,
	}
	seen := map[faults.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, faults.ErrKeyMissing, faults.ErrIndexRange)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk gone")

	e1 := faults.With(faults.ErrKeyMissing, "key %q not found", "c")
	require.Equal(t, `key "c" not found`, e1.Error())

	e2 := faults.Wrap(faults.ErrFileMissing, base, "opening notes.txt")
	require.Equal(t, "opening notes.txt: disk gone", e2.Error())

	e3 := faults.KindOnly(faults.ErrDivideByZero)
	require.Equal(t, "DIVIDE_BY_ZERO", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := faults.Wrap(faults.ErrFileMissing, base, "reading")

	require.ErrorIs(t, e, faults.ErrFileMissing)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, faults.ErrKeyMissing, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := faults.Wrap(faults.ErrBadConversion, base, "parsing")

	var k faults.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, faults.ErrBadConversion, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := faults.Wrap(faults.ErrIndexRange, base, "slice access")
	require.Equal(t, faults.ErrIndexRange, e.Kind())
	require.Equal(t, "slice access", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, faults.KindOf(nil))
	require.Equal(t, faults.ErrInternal, faults.KindOf(errors.New("plain")))

	wrapped := faults.Wrap(faults.ErrKeyMissing, errors.New("x"), "lookup")
	require.Equal(t, faults.ErrKeyMissing, faults.KindOf(wrapped))
}

func TestClassify(t *testing.T) {
	require.Nil(t, faults.Classify(nil))

	// a real missing-file error from the OS
	_, err := os.Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.Equal(t, faults.ErrFileMissing, faults.Classify(err))

	// a real failed conversion from strconv
	_, err = strconv.Atoi("forty-two")
	require.Error(t, err)
	require.Equal(t, faults.ErrBadConversion, faults.Classify(err))

	// existing kinds pass through
	require.Equal(t, faults.ErrDivideByZero, faults.Classify(faults.KindOnly(faults.ErrDivideByZero)))

	// everything else is internal
	require.Equal(t, faults.ErrInternal, faults.Classify(errors.New("weird")))
}
