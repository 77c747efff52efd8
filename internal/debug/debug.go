package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	once    sync.Once
	logFile *os.File
)

// open lazily resolves the log destination from GLIMMER_DEBUG. An unset or
// unopenable path leaves logFile nil and every Log call a no-op.
func open() {
	path := os.Getenv("GLIMMER_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	logFile = f
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	once.Do(open)
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Log appends a timestamped message to the debug log. It is safe to call
// from any goroutine and does nothing unless GLIMMER_DEBUG points at a
// writable file path.
func Log(format string, args ...any) {
	once.Do(open)

	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close releases the log file. Subsequent Log calls are no-ops.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
