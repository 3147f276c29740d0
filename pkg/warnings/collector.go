package warnings

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/caskup/caskup/pkg/constants"
)

// Collector captures warnings for deferred output.
//
// Implements io.Writer so it can be installed via SetWarningWriter.
// Warnings are collected during a run and printed later using Messages().
//
// Example:
//
//	collector := warnings.NewCollector()
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
//	// ... operations that may produce warnings ...
//	warnings.Print(os.Stderr, collector.Messages())
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// Write implements io.Writer for capturing warning messages.
//
// Splits input on newlines and stores non-empty trimmed lines.
//
// Parameters:
//   - p: Byte slice containing warning message data
//
// Returns:
//   - int: Number of bytes written (always len(p))
//   - error: Always nil, never returns an error
func (c *Collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of all collected warning messages.
//
// The caller receives its own slice; mutating it does not affect the collector.
//
// Returns:
//   - []string: Copy of all collected warning messages
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Reset clears all collected messages.
//
// Use this when you want to reuse the same collector for a new batch of warnings.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

// NewCollector creates a new Collector.
//
// Returns:
//   - *Collector: A new empty warning collector ready for use
func NewCollector() *Collector {
	return &Collector{}
}

// Print writes collected warning messages to the writer.
//
// Each message is prefixed with the warning icon. A leading blank line
// separates the warnings from preceding output. Does nothing when the
// message list is empty.
//
// Parameters:
//   - w: Writer to output to
//   - messages: Slice of warning messages
func Print(w io.Writer, messages []string) {
	if len(messages) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, msg := range messages {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, msg)
	}
}
