//go:build linux

// Package input turns hardware key presses into navigation requests.
//
// BackButtonListener watches a Linux input device and reports presses of a
// single key, typically a handheld's B or Back button, so they can be routed
// to Router.Back. The callback runs on the listener's goroutine; hand the
// work to the UI thread before touching a Router.
package input

import (
	"time"

	"github.com/holoplot/go-evdev"
)

const (
	// DefaultButtonCode is the Linux KEY_BACK code.
	DefaultButtonCode evdev.EvCode = evdev.KEY_BACK

	DefaultCoolDown = 250 * time.Millisecond
)

const keyPressed int32 = 1

// BackButtonConfig selects the device and key to listen to.
type BackButtonConfig struct {
	DevicePath string        // e.g. /dev/input/event1
	ButtonCode evdev.EvCode  // Zero means DefaultButtonCode
	CoolDown   time.Duration // Presses closer together than this are dropped; zero means DefaultCoolDown
}

func (c BackButtonConfig) withDefaults() BackButtonConfig {
	if c.ButtonCode == 0 {
		c.ButtonCode = DefaultButtonCode
	}
	if c.CoolDown <= 0 {
		c.CoolDown = DefaultCoolDown
	}
	return c
}

// pressFilter decides which raw events count as a back press.
type pressFilter struct {
	code      evdev.EvCode
	coolDown  time.Duration
	lastPress time.Time
}

func newPressFilter(cfg BackButtonConfig) *pressFilter {
	cfg = cfg.withDefaults()
	return &pressFilter{code: cfg.ButtonCode, coolDown: cfg.CoolDown}
}

// accept reports whether an event observed at now is a fresh press of the
// configured key. Releases and autorepeat (value 2) are ignored.
func (f *pressFilter) accept(event evdev.InputEvent, now time.Time) bool {
	if event.Type != evdev.EV_KEY || event.Code != f.code || event.Value != keyPressed {
		return false
	}
	if !f.lastPress.IsZero() && now.Sub(f.lastPress) < f.coolDown {
		return false
	}
	f.lastPress = now
	return true
}
