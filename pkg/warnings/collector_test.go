package warnings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCollectorWrite tests the Write method of Collector.
//
// It verifies:
//   - Non-empty lines are collected with whitespace trimmed
//   - Blank lines and pure whitespace are discarded
//   - Write reports the full input length
func TestCollectorWrite(t *testing.T) {
	collector := NewCollector()

	n, err := collector.Write([]byte("  first warning  \n\nsecond warning\n   \n"))
	assert.NoError(t, err)
	assert.Equal(t, 38, n)

	messages := collector.Messages()
	assert.Equal(t, []string{"first warning", "second warning"}, messages)
}

// TestCollectorMessages tests the Messages method of Collector.
//
// It verifies:
//   - An empty collector returns an empty slice
//   - Returned slice is a copy and does not alias internal state
func TestCollectorMessages(t *testing.T) {
	collector := NewCollector()
	assert.Empty(t, collector.Messages())

	_, _ = collector.Write([]byte("warning one\n"))
	messages := collector.Messages()
	messages[0] = "mutated"

	assert.Equal(t, []string{"warning one"}, collector.Messages())
}

// TestCollectorReset tests the Reset method of Collector.
//
// It verifies:
//   - Reset clears all collected messages
//   - The collector can be reused after Reset
func TestCollectorReset(t *testing.T) {
	collector := NewCollector()
	_, _ = collector.Write([]byte("stale warning\n"))
	collector.Reset()

	assert.Empty(t, collector.Messages())

	_, _ = collector.Write([]byte("fresh warning\n"))
	assert.Equal(t, []string{"fresh warning"}, collector.Messages())
}

// TestCollectorAsWarningSink tests the collector installed via SetWarningWriter.
//
// It verifies:
//   - Warnf output lands in the collector instead of stderr
//   - Messages reflect everything warned during the swap
func TestCollectorAsWarningSink(t *testing.T) {
	collector := NewCollector()
	restore := SetWarningWriter(collector)
	defer restore()

	Warnf("skipping package with empty name\n")
	Warnf("%s not found in PATH\n", "port")

	messages := collector.Messages()
	assert.Len(t, messages, 2)
	assert.Contains(t, messages[0], "empty name")
	assert.Contains(t, messages[1], "port not found")
}

// TestPrint tests the Print display helper.
//
// It verifies:
//   - Empty message lists produce no output
//   - Messages print with the warning icon after a leading blank line
func TestPrint(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		Print(&buf, nil)
		assert.Equal(t, "", buf.String())
	})

	t.Run("messages", func(t *testing.T) {
		var buf bytes.Buffer
		Print(&buf, []string{"one", "two"})

		out := buf.String()
		assert.Contains(t, out, "⚠️ one")
		assert.Contains(t, out, "⚠️ two")
		assert.True(t, len(out) > 0 && out[0] == '\n')
	})
}
