package printer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/nupedia/pkg/tuitest"
)

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := WithPrinter(context.Background(), p)

	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %s", "config")
	p.Infof("info %d", 1)
	p.Warnf("careful")
	p.Errorf("broken")
	p.Printf("plain")

	lines := strings.Split(strings.TrimSpace(tuitest.StripANSI(buf.String())), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "✔ saved config", lines[0])
	assert.Equal(t, "• info 1", lines[1])
	assert.Equal(t, "● careful", lines[2])
	assert.Equal(t, "✘ broken", lines[3])
	assert.Equal(t, "plain", lines[4])
}

func TestPrinter_Items(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Section("Configuration")
	p.CheckItem("Load", "ok")
	p.WarnItem("Seed", "")
	p.FailItem("Keys", "conflict")

	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "Configuration\n")
	assert.Contains(t, out, "  ✔ Load ok\n")
	assert.Contains(t, out, "  ● Seed\n")
	assert.True(t, strings.HasSuffix(out, "  ✘ Keys conflict"))
}
