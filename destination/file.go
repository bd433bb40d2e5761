package destination

import (
	"fmt"
	"os"

	"github.com/gaborage/go-beams/event"
)

// File appends rendered lines to a log file. When a maximum size is
// configured the file rolls over to "<path>.1", keeping one backup.
type File struct {
	*Core
	path string

	// Fields below are guarded by the core write mutex.
	file    *os.File
	size    int64
	maxSize int64
	lastErr error
}

// NewFile opens (or creates) the log file at path in append mode.
func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &File{
		Core: NewCore(),
		path: path,
		file: f,
		size: info.Size(),
	}, nil
}

// SetMaxSize enables size-based rotation. Zero disables rotation.
func (d *File) SetMaxSize(bytes int64) {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	d.maxSize = bytes
}

// Log renders the event and appends it as one line.
func (d *File) Log(e event.Event) {
	line, ok := d.Process(e)
	if !ok {
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	n, err := fmt.Fprintln(d.file, line)
	if err != nil {
		d.lastErr = err
		return
	}
	d.size += int64(n)

	if d.maxSize > 0 && d.size > d.maxSize {
		d.rotateLocked()
	}
}

// rotateLocked rolls the current file to "<path>.1" and starts a fresh one.
// Callers hold writeMu.
func (d *File) rotateLocked() {
	if err := d.file.Close(); err != nil {
		d.lastErr = err
	}
	if err := os.Rename(d.path, d.path+".1"); err != nil {
		d.lastErr = err
	}

	f, err := os.OpenFile(d.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		d.lastErr = fmt.Errorf("failed to reopen log file after rotation: %w", err)
		return
	}
	d.file = f
	d.size = 0
}

// Flush syncs the file to disk and reports any write error recorded since
// the previous flush.
func (d *File) Flush() error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	err := d.lastErr
	d.lastErr = nil

	if syncErr := d.file.Sync(); syncErr != nil && err == nil {
		err = syncErr
	}
	return err
}

// Close flushes and closes the underlying file.
func (d *File) Close() error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	return d.file.Close()
}

// Path returns the log file path.
func (d *File) Path() string {
	return d.path
}
