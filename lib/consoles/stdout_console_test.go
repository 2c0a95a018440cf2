package consoles

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestConsole(out *bytes.Buffer) *writerConsole {
	c := NewWriterConsole(out).(*writerConsole)
	c.now = func() time.Time { return time.Date(2025, 1, 20, 12, 30, 45, 0, time.UTC) }
	return c
}

func TestPrintf(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	c := newTestConsole(out)

	c.Printf("Loaded %v orders\n", 3)

	assert.Equal(t, "[12:30:45] Loaded 3 orders\n", out.String())
}

func TestPrefixes(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	c := newTestConsole(out)

	c.PushPrefix("%v: ", "bundled")
	c.Printf("a\n")
	c.PopPrefix()
	c.Printf("b\n")
	c.PopPrefix()

	assert.Equal(t, "[12:30:45] bundled: a\n[12:30:45] b\n", out.String())
	assert.Equal(t, "[12:30:45] x", c.Prepare("x"))
}
