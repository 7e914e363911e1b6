package gekko

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(prefix string, debug bool) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := NewDefaultLogger(prefix, debug)
	l.out = log.New(&out, "", 0)
	l.err = log.New(&errOut, "", 0)
	return l, &out, &errOut
}

func TestLogging_Levels(t *testing.T) {
	l, out, errOut := newBufferedLogger("pbr", false)

	l.Debugf("hidden %d", 1)
	l.Infof("ambient %g", 80.0)
	l.Warnf("careful")
	l.Errorf("broken")

	assert.Equal(t, "[pbr] INFO: ambient 80\n", out.String())
	assert.Equal(t, "[pbr] WARN: careful\n[pbr] ERROR: broken\n", errOut.String())
}

func TestLogging_Debug(t *testing.T) {
	l, out, _ := newBufferedLogger("", false)
	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())

	l.Debugf("extracted %s", "AmbientLight")
	assert.Equal(t, "DEBUG: extracted AmbientLight\n", out.String())
}

func TestLogging_ExtractionLogsAtDebug(t *testing.T) {
	app := NewApp()
	app.UseModules(LoggingModule{Debug: true})
	l, out, _ := newBufferedLogger("", true)
	app.logger = l

	app.UseModules(PbrModule{})
	app.Update()

	assert.Contains(t, out.String(), "Registered extraction for gekko.AmbientLight")
	assert.Contains(t, out.String(), "DEBUG: Extracted gekko.AmbientLight into render world "+app.render.Id().String()+" (frame 0)")
}
