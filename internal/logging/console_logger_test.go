package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_VerboseGate(t *testing.T) {
	var quiet strings.Builder
	NewConsoleLoggerTo(&quiet, false).Verbose("hidden %d", 1)
	assert.Empty(t, quiet.String())

	var loud strings.Builder
	NewConsoleLoggerTo(&loud, true).Verbose("shown %d", 1)
	assert.Equal(t, "[VERBOSE] shown 1\n", loud.String())
}

func TestConsoleLogger_Prefixes(t *testing.T) {
	var buf strings.Builder
	l := NewConsoleLoggerTo(&buf, false)

	l.Info("loaded %d rows", 3)
	l.Error("skipping row %d", 2)

	assert.Equal(t, "loaded 3 rows\n[ERROR] skipping row 2\n", buf.String())
}

func TestConsoleLogger_NoArgsLeavesVerbsAlone(t *testing.T) {
	var buf strings.Builder
	NewConsoleLoggerTo(&buf, false).Info("100% done")

	assert.Equal(t, "100% done\n", buf.String())
}

func TestNullLogger(t *testing.T) {
	// must not panic; there is nothing else observable
	l := NewNullLogger()
	l.Verbose("a")
	l.Info("b %d", 1)
	l.Error("c")
}
