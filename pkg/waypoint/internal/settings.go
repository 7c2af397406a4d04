package internal

import (
	"sync"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Settings holds the framework-wide defaults consulted by routers.
type Settings struct {
	Animated          bool      // Default animation flag for calls that do not override it
	Locale            string    // Language tag used for default alert labels
	PopoverBackground sdl.Color // Background color handed to hosts when configuring popovers
}

var (
	settingsMu      sync.RWMutex
	currentSettings = DefaultSettings()
)

// DefaultSettings returns the settings used before waypoint.Init is called.
func DefaultSettings() Settings {
	return Settings{
		Animated:          constants.DefaultAnimated,
		Locale:            constants.DefaultLocale,
		PopoverBackground: HexToColor(constants.DefaultPopoverBackground),
	}
}

// SetSettings replaces the active settings.
func SetSettings(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	currentSettings = s
}

// GetSettings returns the active settings.
func GetSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return currentSettings
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
