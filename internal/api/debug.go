package api

import (
	"fmt"
	"os"
	"time"
)

// debugLogf appends a timestamped line to the debug log file, when enabled.
// Best effort only: the log must never affect a call's outcome.
func (c *Client) debugLogf(format string, args ...any) {
	if c.DebugLogPath == "" {
		return
	}
	f, err := os.OpenFile(c.DebugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s api %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}
