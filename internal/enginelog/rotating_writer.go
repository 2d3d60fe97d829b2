package enginelog

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// rotatingWriter is an io.WriteCloser that rolls the underlying file over
// to a ".1" backup once it exceeds maxBytes, the same scheme azcopy's
// rotatingWriter uses for job logs, generalized to engine/job logs here.
type rotatingWriter struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
	file     *os.File
	written  int64
}

func newRotatingWriter(path string, maxBytes int64) (*rotatingWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "stating log file %s", path)
	}
	return &rotatingWriter{path: path, maxBytes: maxBytes, file: f, written: info.Size()}, nil
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.written+int64(len(p)) > w.maxBytes {
		if err := w.rotateLocked(); err != nil {
			return 0, err
		}
	}
	n, err := w.file.Write(p)
	w.written += int64(n)
	return n, err
}

func (w *rotatingWriter) rotateLocked() error {
	if err := w.file.Close(); err != nil {
		return errors.Wrap(err, "closing log file for rotation")
	}
	backup := fmt.Sprintf("%s.1", w.path)
	_ = os.Remove(backup)
	if err := os.Rename(w.path, backup); err != nil {
		return errors.Wrap(err, "rotating log file")
	}
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "reopening log file after rotation")
	}
	w.file = f
	w.written = 0
	return nil
}

func (w *rotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
