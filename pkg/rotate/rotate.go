// Package rotate implements a size-bounded rotating file writer: once the
// active file would exceed a configured byte threshold, it is renamed to a
// numbered backup and a fresh file takes its place, with a bounded number of
// backups retained (optionally gzip-compressed).
//
// Writer satisfies zapcore.WriteSyncer, so it plugs directly into a zap
// logger as a file sink.
package rotate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const (
	defaultFileMode = os.FileMode(0600)
	defaultDirMode  = os.FileMode(0750)
)

// Options configures a Writer.
type Options struct {
	// Path is the location of the active log file. Its parent directory is
	// created if missing.
	Path string

	// MaxBytes is the rotation trigger: a write that would push the active
	// file past this many bytes rotates first. Zero or negative disables
	// rotation. A single write larger than MaxBytes is still written whole,
	// producing one oversized file.
	MaxBytes int64

	// MaxBackups bounds how many rotated files are retained. Zero or
	// negative means rotation discards the old file instead of keeping it.
	MaxBackups int

	// Compress gzips rotated backups ("app.log.1.gz" instead of
	// "app.log.1").
	Compress bool

	// FileMode is the permission mode for created files (default 0600).
	FileMode os.FileMode
}

// Writer is an io.WriteCloser over a single log file that rotates the file
// once it reaches the configured size. It is safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	opts Options
	file *os.File
	size int64
}

// New opens (or creates) the active file in append mode and returns a Writer
// for it. Size accounting resumes from the existing file's length.
func New(opts Options) (*Writer, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("rotate: path is required")
	}
	if opts.FileMode == 0 {
		opts.FileMode = defaultFileMode
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return nil, fmt.Errorf("could not create log directory: %w", err)
		}
	}

	w := &Writer{opts: opts}
	if err := w.open(); err != nil {
		return nil, err
	}

	return w, nil
}

// open opens the active file for appending and records its current size.
// Callers must hold w.mu (or be the constructor).
func (w *Writer) open() error {
	file, err := os.OpenFile(w.opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, w.opts.FileMode) //nolint:gosec // G304: path is configurable
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}

	st, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("could not stat log file: %w", err)
	}

	w.file = file
	w.size = st.Size()

	return nil
}

// Write appends p to the active file, rotating first when the write would
// push the file past MaxBytes.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, fmt.Errorf("rotate: writer is closed")
	}

	if w.opts.MaxBytes > 0 && w.size > 0 && w.size+int64(len(p)) > w.opts.MaxBytes {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	if err != nil {
		return n, fmt.Errorf("could not write log file: %w", err)
	}

	return n, nil
}

// Sync flushes the active file to stable storage.
func (w *Writer) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	return w.file.Sync()
}

// Close flushes and closes the active file. Further writes fail.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.file.Close()
	w.file = nil

	return err
}

// Rotate forces a rotation regardless of the active file's size.
func (w *Writer) Rotate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return fmt.Errorf("rotate: writer is closed")
	}

	return w.rotate()
}

// rotate closes the active file, shifts existing backups up one slot
// (pruning past MaxBackups), renames the active file into the first backup
// slot, and reopens a fresh active file. Callers must hold w.mu.
func (w *Writer) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("could not close log file for rotation: %w", err)
	}
	w.file = nil

	if w.opts.MaxBackups <= 0 {
		if err := os.Remove(w.opts.Path); err != nil {
			return fmt.Errorf("could not discard rotated log file: %w", err)
		}

		return w.open()
	}

	// shift oldest-first so each rename target slot is free
	if err := os.Remove(w.backupPath(w.opts.MaxBackups)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not prune oldest backup: %w", err)
	}
	for i := w.opts.MaxBackups - 1; i >= 1; i-- {
		src := w.backupPath(i)
		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return fmt.Errorf("could not stat backup %q: %w", src, err)
		}
		if err := os.Rename(src, w.backupPath(i+1)); err != nil {
			return fmt.Errorf("could not shift backup %q: %w", src, err)
		}
	}

	rotated := w.opts.Path + ".1"
	if err := os.Rename(w.opts.Path, rotated); err != nil {
		return fmt.Errorf("could not rename rotated log file: %w", err)
	}

	if w.opts.Compress {
		if err := compressFile(rotated, rotated+".gz", w.opts.FileMode); err != nil {
			return fmt.Errorf("could not compress rotated log file: %w", err)
		}
	}

	return w.open()
}

// backupPath returns the path of the i-th backup (1 is newest), accounting
// for the compression suffix.
func (w *Writer) backupPath(i int) string {
	p := w.opts.Path + "." + strconv.Itoa(i)
	if w.opts.Compress {
		p += ".gz"
	}

	return p
}

// Backups returns the paths of currently retained backups, newest first.
func (w *Writer) Backups() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []string
	for i := 1; i <= w.opts.MaxBackups; i++ {
		p := w.backupPath(i)
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}

	return out
}

// compressFile gzips src into dst and removes src.
func compressFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // G304: path derives from configured log path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode) //nolint:gosec // G304: see above
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		_ = out.Close()

		return err
	}
	if err := gz.Close(); err != nil {
		_ = out.Close()

		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
