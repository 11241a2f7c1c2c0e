package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithLevel(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l, err := NewWithLevel("debug")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := NewWithLevel("loud")
		assert.Error(t, err)
	})
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	l.Debugf("opcode %02X", 0xCB)
	l.Errorf("fault at %04X", 0xC000)

	out := buf.String()
	assert.Contains(t, out, "level=debug msg=opcode CB")
	assert.Contains(t, out, "level=error msg=fault at C000")
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.Infof("%d", 1)
		l.Errorf("%d", 2)
		l.Debugf("%d", 3)
	})
}
