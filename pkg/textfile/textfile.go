// Package textfile provides small line-oriented helpers over plain text
// files: writing and appending lines, reading them back, streaming them
// through a callback, and round-tripping integer sequences one per line.
// Missing files and malformed lines surface as faults kinds so callers can
// report them at the point of use.
package textfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"drills/pkg/faults"
)

const (
	filePerm = os.FileMode(0600)
)

// WriteLines creates (or truncates) the file at path and writes each line
// followed by a newline.
func WriteLines(path string, lines []string) error {
	return writeLines(path, lines, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// AppendLines appends each line (newline-terminated) to the file at path,
// creating it if missing.
func AppendLines(path string, lines []string) error {
	return writeLines(path, lines, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func writeLines(path string, lines []string, flag int) (err error) {
	file, err := os.OpenFile(path, flag, filePerm) //nolint:gosec // G304: caller-provided path
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer func() {
		// close errors matter on write paths: buffered data may be lost
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("could not write to %q: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not flush %q: %w", path, err)
	}

	return nil
}

// ReadLines reads the whole file and returns its lines without trailing
// newlines. A missing file yields faults.ErrFileMissing.
func ReadLines(path string) ([]string, error) {
	var lines []string
	err := ForEachLine(path, func(_ int, line string) error {
		lines = append(lines, line)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// ForEachLine streams the file line by line through fn, passing the 1-based
// line number. Iteration stops on the first error fn returns, which is then
// returned unchanged. A missing file yields faults.ErrFileMissing.
func ForEachLine(path string, fn func(n int, line string) error) error {
	file, err := os.Open(path) //nolint:gosec // G304: caller-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return faults.Wrap(faults.ErrFileMissing, err, "no such file %q", path)
		}

		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	n := 0
	for scanner.Scan() {
		n++
		if err := fn(n, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}

	return nil
}

// WriteInts writes the integers to the file at path, one per line.
func WriteInts(path string, values []int) error {
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = strconv.Itoa(v)
	}

	return WriteLines(path, lines)
}

// ReadInts reads a file written by WriteInts back into the same ordered
// sequence. A non-numeric line yields faults.ErrBadConversion carrying the
// offending line number.
func ReadInts(path string) ([]int, error) {
	var values []int
	err := ForEachLine(path, func(n int, line string) error {
		v, err := strconv.Atoi(line)
		if err != nil {
			return faults.Wrap(faults.ErrBadConversion, err, "line %d of %q is not an integer", n, path)
		}
		values = append(values, v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// CountLines returns the number of lines in the file.
func CountLines(path string) (int, error) {
	count := 0
	err := ForEachLine(path, func(int, string) error {
		count++

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
