package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"drills/pkg/drill"
	"drills/pkg/faults"
)

// divide returns a/b, or a semantic error when b is zero.
func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, faults.With(faults.ErrDivideByZero, "cannot divide %d by zero", a)
	}

	return a / b, nil
}

// lookup fetches key from m, or a semantic error when the key is absent.
func lookup(m map[string]int, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, faults.With(faults.ErrKeyMissing, "key %q not in mapping", key)
	}

	return v, nil
}

// at returns s[i], or a semantic error when i is out of bounds.
func at(s []int, i int) (int, error) {
	if i < 0 || i >= len(s) {
		return 0, faults.With(faults.ErrIndexRange, "index %d out of range for length %d", i, len(s))
	}

	return s[i], nil
}

func errorDrills() []drill.Drill {
	return []drill.Drill{
		{
			ID:       "errors/divide",
			Topic:    drill.TopicErrors,
			Question: "How do you handle a division by zero instead of crashing?",
			Answer: "Check the divisor before dividing and return a semantic error. " +
				"The caller matches the error kind at the point of use, prints a " +
				"human-readable message, and continues.",
			Run: func(_ context.Context, w io.Writer, _ drill.Env) error {
				if q, err := divide(10, 2); err == nil {
					fmt.Fprintf(w, "10 / 2 = %d\n", q)
				}

				if _, err := divide(10, 0); errors.Is(err, faults.ErrDivideByZero) {
					fmt.Fprintln(w, "Cannot divide by zero!")
				}

				return nil
			},
		},
		{
			ID:       "errors/lookup",
			Topic:    drill.TopicErrors,
			Question: "How do you look up a map key that may be absent?",
			Answer: "Use the comma-ok form (or a helper returning an error kind) so an " +
				"absent key is an ordinary handled case, not a surprise zero value.",
			Run: func(_ context.Context, w io.Writer, _ drill.Env) error {
				m := map[string]int{"a": 1, "b": 2}

				if v, err := lookup(m, "a"); err == nil {
					fmt.Fprintf(w, "a = %d\n", v)
				}

				if _, err := lookup(m, "c"); errors.Is(err, faults.ErrKeyMissing) {
					fmt.Fprintln(w, "Key not found!")
				}

				return nil
			},
		},
		{
			ID:       "errors/index",
			Topic:    drill.TopicErrors,
			Question: "How do you guard an index that may be out of range?",
			Answer: "Bounds-check before indexing. An unchecked out-of-range index " +
				"panics; a checked one is a reportable error kind the caller handles " +
				"and moves on from.",
			Run: func(_ context.Context, w io.Writer, _ drill.Env) error {
				s := []int{10, 20, 30, 40, 50}

				if v, err := at(s, 2); err == nil {
					fmt.Fprintf(w, "s[2] = %d\n", v)
				}

				if _, err := at(s, 10); errors.Is(err, faults.ErrIndexRange) {
					fmt.Fprintln(w, "Index out of range!")
				}

				return nil
			},
		},
		{
			ID:       "errors/convert",
			Topic:    drill.TopicErrors,
			Question: "How do you handle a string that fails to parse as a number?",
			Answer: "strconv.Atoi returns a *strconv.NumError; classify it onto the " +
				"bad-conversion kind and report it where it happened.",
			Run: func(_ context.Context, w io.Writer, _ drill.Env) error {
				if n, err := strconv.Atoi("42"); err == nil {
					fmt.Fprintf(w, "parsed %d\n", n)
				}

				_, err := strconv.Atoi("forty-two")
				if faults.Classify(err) == faults.ErrBadConversion {
					fmt.Fprintln(w, "Invalid number!")
				}

				return nil
			},
		},
	}
}
