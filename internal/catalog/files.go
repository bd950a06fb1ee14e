package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"drills/pkg/drill"
	"drills/pkg/faults"
	"drills/pkg/textfile"
)

func fileDrills() []drill.Drill {
	return []drill.Drill{
		{
			ID:       "files/missing",
			Topic:    drill.TopicFiles,
			Question: "What happens when you open a file that does not exist, and how do you handle it?",
			Answer: "The open call fails with a not-exist error. Match it (errors.Is " +
				"against fs.ErrNotExist, or the file-missing kind) and report it; do " +
				"not let it propagate past the point of use.",
			Run: func(_ context.Context, w io.Writer, env drill.Env) error {
				_, err := textfile.ReadLines(filepath.Join(env.Workdir, "no-such-file.txt"))
				if errors.Is(err, faults.ErrFileMissing) {
					fmt.Fprintln(w, "File not found!")

					return nil
				}

				return err
			},
		},
		{
			ID:       "files/roundtrip",
			Topic:    drill.TopicFiles,
			Question: "How do you write a sequence of numbers to a file and read it back?",
			Answer: "Write one value per line, then scan the file line by line and " +
				"parse each. The read sequence must reproduce the written one in " +
				"order.",
			Run: func(_ context.Context, w io.Writer, env drill.Env) error {
				path := filepath.Join(env.Workdir, "numbers.txt")
				in := []int{1, 2, 3, 4, 5}

				if err := textfile.WriteInts(path, in); err != nil {
					return err
				}

				out, err := textfile.ReadInts(path)
				if err != nil {
					return err
				}

				parts := make([]string, len(out))
				for i, v := range out {
					parts[i] = fmt.Sprintf("%d", v)
				}
				fmt.Fprintf(w, "wrote %d integers, read back: %s\n", len(in), strings.Join(parts, " "))

				return nil
			},
		},
		{
			ID:       "files/lines",
			Topic:    drill.TopicFiles,
			Question: "How do you iterate over the lines of a text file?",
			Answer: "Open the file, scan it with a buffered scanner, and close it when " +
				"the enclosing scope exits. Each line arrives without its trailing " +
				"newline.",
			Run: func(_ context.Context, w io.Writer, env drill.Env) error {
				path := filepath.Join(env.Workdir, "poem.txt")
				if err := textfile.WriteLines(path, []string{"the quick", "brown fox", "jumps"}); err != nil {
					return err
				}

				return textfile.ForEachLine(path, func(n int, line string) error {
					fmt.Fprintf(w, "line %d: %s\n", n, line)

					return nil
				})
			},
		},
		{
			ID:       "files/append",
			Topic:    drill.TopicFiles,
			Question: "What is the difference between truncating and appending writes?",
			Answer: "Opening with truncate discards existing content; opening with " +
				"append preserves it and adds to the end. The line count shows which " +
				"mode was used.",
			Run: func(_ context.Context, w io.Writer, env drill.Env) error {
				path := filepath.Join(env.Workdir, "journal.txt")

				if err := textfile.WriteLines(path, []string{"day one"}); err != nil {
					return err
				}
				if err := textfile.AppendLines(path, []string{"day two", "day three"}); err != nil {
					return err
				}

				count, err := textfile.CountLines(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "journal has %d lines after appending\n", count)

				return nil
			},
		},
	}
}
