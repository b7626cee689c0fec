package numpad

import (
	"context"
	"fmt"
	"time"

	"github.com/holoplot/go-evdev"

	"numpadd/internal/pkg/layout"
	"numpadd/internal/pkg/logg"
)

var log = logg.GetLogger()

// PercentageSlot is the reserved layout key that gets remapped to the
// configured substitute key plus LEFTSHIFT at runtime.
const PercentageSlot = evdev.KEY_5

const calculatorKey = evdev.KEY_CALC

// some touchpad controllers drop the first brightness write, a second one
// after a short pause makes activation reliable
const relightPause = 100 * time.Millisecond

// KeySink emits a single key press or release on the virtual keyboard. Every
// event must be followed by a synchronization marker on the wire.
type KeySink interface {
	SendKey(code evdev.EvCode, pressed bool) error
}

// Grabber claims and releases exclusive access to the physical touchpad.
type Grabber interface {
	Grab() error
	Ungrab() error
}

// Backlight switches the touchpad numpad lighting on or off.
type Backlight interface {
	SetBrightness(on bool) error
}

// EventSource delivers raw touchpad events in arrival order. ReadOne must
// not block, it returns an error when no event is ready.
type EventSource interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Pad interprets raw touch events as numpad key presses. It owns all mutable
// state (position, active key, numlock mode); every mutation happens on the
// Run goroutine, so no locking is involved.
type Pad struct {
	lay    *layout.Layout
	bounds Bounds

	keys  KeySink
	pad   Grabber
	light Backlight

	percentKey evdev.EvCode

	x, y          int32
	active        bool
	activeKey     evdev.EvCode
	activePercent bool
	numlock       bool
}

func New(lay *layout.Layout, bounds Bounds, keys KeySink, pad Grabber, light Backlight, percentKey evdev.EvCode) *Pad {
	return &Pad{
		lay:        lay,
		bounds:     bounds,
		keys:       keys,
		pad:        pad,
		light:      light,
		percentKey: percentKey,
	}
}

// Run drains all ready touchpad events, processes them in arrival order and
// idle-waits between drains, until ctx is cancelled. The caller is expected
// to invoke Shutdown afterwards.
func (p *Pad) Run(ctx context.Context, src EventSource, poll time.Duration) {
	for {
		for {
			ev, err := src.ReadOne()
			if err != nil {
				break // no events ready
			}
			p.HandleEvent(ev)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(poll):
		}
	}
}

// Shutdown forces numpad mode off through the regular deactivation path.
// The process must never exit with the touchpad grabbed or the backlight
// lit. Calling it with numpad mode already off does nothing.
func (p *Pad) Shutdown() {
	if !p.numlock {
		return
	}
	p.numlock = false
	p.deactivate()
}

// HandleEvent routes one raw touchpad event. Position updates only move the
// stored coordinates, classification happens on finger-down.
func (p *Pad) HandleEvent(ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_POSITION_X:
			p.x = ev.Value
		case evdev.ABS_MT_POSITION_Y:
			p.y = ev.Value
		}
	case evdev.EV_KEY:
		if ev.Code != evdev.BTN_TOOL_FINGER {
			return
		}
		switch ev.Value {
		case 0:
			p.fingerUp()
		case 1:
			p.fingerDown()
		}
	}
}

func (p *Pad) fingerUp() {
	log.Info(fmt.Sprintf("finger up at %d,%d", p.x, p.y), logg.Debug)
	if !p.active {
		return
	}
	log.Info(fmt.Sprintf("release %s", evdev.KEYToString[p.activeKey]), logg.Keys)
	p.emit(p.activeKey, p.activePercent, false)
	p.active = false
	p.activePercent = false
}

func (p *Pad) fingerDown() {
	if p.active {
		return // exactly one key at a time
	}
	log.Info(fmt.Sprintf("finger down at %d,%d", p.x, p.y), logg.Debug)

	zone := Classify(p.x, p.y, p.bounds, p.lay)
	switch zone.Kind {
	case ZoneNumlockCorner:
		p.toggleNumlock()

	case ZoneCalculatorCorner:
		// still classified while the numpad is active, but the action is
		// suppressed, the corner tap is swallowed by the grab
		if !p.numlock {
			p.launchCalculator()
		}

	case ZoneGridCell:
		if !p.numlock {
			return
		}
		key := p.lay.Keys[zone.Row][zone.Col]
		percent := key == PercentageSlot
		if percent {
			key = p.percentKey
		}
		log.Info(fmt.Sprintf("press %s", evdev.KEYToString[key]), logg.Keys)
		p.emit(key, percent, true)
		p.active = true
		p.activeKey = key
		p.activePercent = percent

	case ZoneNone:
		log.Info(fmt.Sprintf("unhandled position %d,%d", p.x, p.y), logg.Debug)
	}
}

func (p *Pad) toggleNumlock() {
	p.numlock = !p.numlock
	if p.numlock {
		p.activate()
	} else {
		p.deactivate()
	}
}

// activate turns numpad mode on: numlock tap, exclusive grab, then light.
// The backlight comes on only after the grab. Side-effect failures are
// logged but never roll the in-memory toggle back, there is no reliable
// rollback across three independent sinks.
func (p *Pad) activate() {
	p.tapNumlock()
	if err := p.pad.Grab(); err != nil {
		log.Info(fmt.Sprintf("touchpad grab failed: %v", err), logg.Warning)
	}
	p.setLight(true)
	time.Sleep(relightPause)
	p.setLight(true)
	log.Info("numpad activated", logg.Info)
}

func (p *Pad) deactivate() {
	p.tapNumlock()
	if err := p.pad.Ungrab(); err != nil {
		log.Info(fmt.Sprintf("touchpad ungrab failed: %v", err), logg.Warning)
	}
	p.setLight(false)
	log.Info("numpad deactivated", logg.Info)
}

// tapNumlock sends a press/release pair. The virtual device's own numlock
// LED state is driven by the host in response to the tap, the boolean on
// this side stays local.
func (p *Pad) tapNumlock() {
	if err := p.keys.SendKey(evdev.KEY_NUMLOCK, true); err != nil {
		log.Info(fmt.Sprintf("numlock press failed: %v", err), logg.Warning)
	}
	if err := p.keys.SendKey(evdev.KEY_NUMLOCK, false); err != nil {
		log.Info(fmt.Sprintf("numlock release failed: %v", err), logg.Warning)
	}
}

func (p *Pad) setLight(on bool) {
	if err := p.light.SetBrightness(on); err != nil {
		log.Info(fmt.Sprintf("backlight command failed: %v", err), logg.Warning)
	}
}

func (p *Pad) launchCalculator() {
	log.Info("calculator tap", logg.Keys)
	p.emit(calculatorKey, false, true)
	p.emit(calculatorKey, false, false)
}

// emit sends one press or release, wrapping percentage-slot events in a
// LEFTSHIFT pair. Sink failures are logged and absorbed, a momentarily
// unavailable sink must not stop the loop.
func (p *Pad) emit(key evdev.EvCode, percent, pressed bool) {
	if percent {
		if err := p.keys.SendKey(evdev.KEY_LEFTSHIFT, pressed); err != nil {
			log.Info(fmt.Sprintf("shift event failed: %v", err), logg.Warning)
		}
	}
	if err := p.keys.SendKey(key, pressed); err != nil {
		log.Info(fmt.Sprintf("key event failed: %v", err), logg.Warning)
	}
}
