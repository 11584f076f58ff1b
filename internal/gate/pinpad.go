package gate

import "strings"

// PinLength is the number of digit slots.
const PinLength = 4

// PinPad holds the digits typed so far. Slots only ever hold a single digit.
type PinPad struct {
	slots [PinLength]string
	focus int
}

// Enter puts the last character of value into slot index. Values holding
// anything but digits are ignored. It reports whether the pad became complete
// by filling the last slot, which is when a client submits automatically.
func (p *PinPad) Enter(index int, value string) bool {
	if index < 0 || index >= PinLength || !isDigits(value) {
		return false
	}
	if value == "" {
		p.slots[index] = ""
		p.focus = index
		return false
	}
	p.slots[index] = value[len(value)-1:]
	if index < PinLength-1 {
		p.focus = index + 1
		return false
	}
	p.focus = index
	return p.Complete()
}

// Backspace clears slot index. On an already empty slot focus moves back one.
func (p *PinPad) Backspace(index int) {
	if index < 0 || index >= PinLength {
		return
	}
	if p.slots[index] == "" && index > 0 {
		p.focus = index - 1
		return
	}
	p.slots[index] = ""
	p.focus = index
}

// Clear empties every slot and moves focus to the first one.
func (p *PinPad) Clear() {
	p.slots = [PinLength]string{}
	p.focus = 0
}

// Value joins the slots.
func (p *PinPad) Value() string {
	return strings.Join(p.slots[:], "")
}

// Complete reports whether every slot holds a digit.
func (p *PinPad) Complete() bool {
	for _, s := range p.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// Focus is the slot the next digit goes to.
func (p *PinPad) Focus() int {
	return p.focus
}

// Slots returns a copy of the slots.
func (p *PinPad) Slots() [PinLength]string {
	return p.slots
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
