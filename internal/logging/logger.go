// Package logging tees the standard logger into a rotated file, so drag
// failures can be diagnosed when the host app was started from Finder.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logFileName    = "dragout.log"
	maxLogFileSize = 10 * 1024 * 1024 // 10MB
	maxLogFiles    = 5
)

var (
	mu     sync.Mutex
	active *FileLogger
)

// FileLogger is a size-rotated log file.
type FileLogger struct {
	path string

	mu   sync.Mutex
	file *os.File
	size int64
}

// DefaultDir is ~/Library/Logs/DragOut.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Library", "Logs", "DragOut"), nil
}

// Init points the standard logger at stdout plus a rotated file in logDir
// (DefaultDir when empty). Calling it again is a no-op until Close.
func Init(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return nil
	}

	if logDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		logDir = dir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	fl, err := Open(filepath.Join(logDir, logFileName))
	if err != nil {
		return err
	}
	active = fl

	log.SetOutput(io.MultiWriter(os.Stdout, fl))
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("[logging] File logging initialized at: %s", fl.path)
	return nil
}

// Close restores stderr output and closes the active log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if active == nil {
		return nil
	}
	log.Printf("[logging] Closing log file")
	log.SetOutput(os.Stderr)

	err := active.Close()
	active = nil
	return err
}

// Open opens path for appending, rotating first if it is already over the
// size limit.
func Open(path string) (*FileLogger, error) {
	l := &FileLogger{path: path}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		l.size = info.Size()
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	if l.size >= maxLogFileSize {
		if err := l.rotateLocked(); err != nil {
			return nil, fmt.Errorf("failed to rotate logs: %w", err)
		}
		return l, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	l.file = f
	return l, nil
}

// Path returns the current log file path.
func (l *FileLogger) Path() string {
	return l.path
}

func (l *FileLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return 0, fmt.Errorf("log file not open")
	}

	n, err := l.file.Write(p)
	l.size += int64(n)
	if err != nil {
		return n, err
	}

	if l.size >= maxLogFileSize {
		if err := l.rotateLocked(); err != nil {
			// The line is already written; report and keep going.
			fmt.Fprintf(os.Stderr, "Failed to rotate logs: %v\n", err)
		}
	}
	return n, nil
}

func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// rotateLocked shifts dragout.log -> .1 -> ... -> .4 (dropping the oldest)
// and opens a fresh file. Callers hold l.mu or own l exclusively.
func (l *FileLogger) rotateLocked() error {
	if l.file != nil {
		if err := l.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		l.file = nil
	}

	os.Remove(fmt.Sprintf("%s.%d", l.path, maxLogFiles-1))
	for i := maxLogFiles - 2; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", l.path, i), fmt.Sprintf("%s.%d", l.path, i+1))
	}
	if err := os.Rename(l.path, l.path+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rename current log: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create new log file: %w", err)
	}
	l.file = f
	l.size = 0

	n, _ := fmt.Fprintf(f, "=== Log rotated at %s ===\n", time.Now().Format(time.RFC3339))
	l.size += int64(n)
	return nil
}
