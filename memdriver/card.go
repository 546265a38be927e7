package memdriver

import (
	"github.com/rstms/sdfat"
)

// Card simulates the physical card. Present controls what a wired
// detect pin reports; with DetectNone the card is assumed present.
type Card struct {
	Present bool
}

var _ sdfat.Card = (*Card)(nil)

func (c *Card) Init(detect sdfat.DetectPin) bool {
	if detect == sdfat.DetectNone {
		return true
	}
	return c.Present
}
