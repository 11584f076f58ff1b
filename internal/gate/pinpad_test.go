package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinPad_Enter(t *testing.T) {
	p := &PinPad{}
	assert.False(t, p.Enter(0, "1"))
	assert.Equal(t, 1, p.Focus())
	assert.False(t, p.Enter(1, "x"))
	assert.Equal(t, "1", p.Value())
	assert.Equal(t, 1, p.Focus())

	assert.False(t, p.Enter(1, "29"))
	assert.Equal(t, "19", p.Value())
	assert.False(t, p.Enter(2, "3"))
	assert.True(t, p.Enter(3, "4"))
	assert.Equal(t, "1934", p.Value())
	assert.True(t, p.Complete())
}

func TestPinPad_IgnoresOutOfRange(t *testing.T) {
	p := &PinPad{}
	assert.False(t, p.Enter(-1, "1"))
	assert.False(t, p.Enter(PinLength, "1"))
	assert.Equal(t, "", p.Value())
}

func TestPinPad_LastSlotOutOfOrder(t *testing.T) {
	p := &PinPad{}
	// filling the last slot first does not complete the pad
	assert.False(t, p.Enter(3, "4"))
	p.Enter(0, "1")
	p.Enter(1, "2")
	p.Enter(2, "3")
	assert.True(t, p.Complete())
}

func TestPinPad_Backspace(t *testing.T) {
	p := &PinPad{}
	p.Enter(0, "1")
	p.Enter(1, "2")

	p.Backspace(2)
	assert.Equal(t, 1, p.Focus())
	assert.Equal(t, "12", p.Value())

	p.Backspace(1)
	assert.Equal(t, "1", p.Value())
	assert.Equal(t, 1, p.Focus())

	p.Enter(0, "")
	assert.Equal(t, "", p.Value())
	assert.Equal(t, 0, p.Focus())
}

func TestPinPad_Clear(t *testing.T) {
	p := &PinPad{}
	for i, d := range []string{"9", "8", "7", "6"} {
		p.Enter(i, d)
	}
	p.Clear()
	assert.False(t, p.Complete())
	assert.Equal(t, "", p.Value())
	assert.Equal(t, 0, p.Focus())
}
