//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/holoplot/go-evdev"
)

// BackButtonListener reports presses of one key on one input device.
type BackButtonListener struct {
	config BackButtonConfig
}

func NewBackButtonListener(config BackButtonConfig) *BackButtonListener {
	return &BackButtonListener{config: config.withDefaults()}
}

// Listen blocks, calling onBack for every accepted press, until ctx is
// cancelled or the device fails. Cancellation returns ctx.Err().
func (l *BackButtonListener) Listen(ctx context.Context, onBack func()) error {
	if l.config.DevicePath == "" {
		return errors.New("input: no device path configured")
	}

	device, err := evdev.Open(l.config.DevicePath)
	if err != nil {
		return fmt.Errorf("input: open %s: %w", l.config.DevicePath, err)
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			device.Close()
		case <-stop:
			device.Close()
		}
	}()

	logger := internal.GetInternalLogger()
	if name, err := device.Name(); err == nil {
		logger.Debug("back button listener started",
			"device", l.config.DevicePath, "name", name, "code", int(l.config.ButtonCode))
	}

	filter := newPressFilter(l.config)
	for {
		event, err := device.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("input: read %s: %w", l.config.DevicePath, err)
		}

		if filter.accept(*event, time.Now()) {
			logger.Debug("back button pressed", "device", l.config.DevicePath)
			onBack()
		}
	}
}
