package keyboard

import (
	"fmt"

	"github.com/bendahl/uinput"
	"github.com/holoplot/go-evdev"
)

// Keyboard is the virtual keyboard sink, a uinput device the host treats as
// a regular keyboard.
type Keyboard struct {
	dev uinput.Keyboard
}

func New(name string) (*Keyboard, error) {
	dev, err := uinput.CreateKeyboard("/dev/uinput", []byte(name))
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	return &Keyboard{dev: dev}, nil
}

// SendKey emits a single press or release. uinput follows every event with
// a SYN_REPORT, so the host always sees a complete discrete update.
func (k *Keyboard) SendKey(code evdev.EvCode, pressed bool) error {
	if pressed {
		return k.dev.KeyDown(int(code))
	}
	return k.dev.KeyUp(int(code))
}

func (k *Keyboard) Close() error {
	return k.dev.Close()
}
