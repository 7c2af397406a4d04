// Package constants defines shared constants, types, and configuration values
// used throughout the waypoint navigation framework.
package constants

import (
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the framework.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	DebugEnvVar       = "WAYPOINT_DEBUG"
	LogLevelEnvVar    = "WAYPOINT_LOG_LEVEL"
	LocaleEnvVar      = "WAYPOINT_LOCALE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Contract violations panic in development mode instead of being logged.
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// TransitionStyle selects the animation a host uses when presenting a surface modally.
type TransitionStyle int

const (
	TransitionStyleDefault TransitionStyle = iota // Host default (cover vertical on most hosts)
	TransitionStyleCoverVertical
	TransitionStyleFlipHorizontal
	TransitionStyleCrossDissolve
	TransitionStylePartialCurl
)

func (ts TransitionStyle) GetName() string {
	switch ts {
	case TransitionStyleDefault:
		return "Default"
	case TransitionStyleCoverVertical:
		return "CoverVertical"
	case TransitionStyleFlipHorizontal:
		return "FlipHorizontal"
	case TransitionStyleCrossDissolve:
		return "CrossDissolve"
	case TransitionStylePartialCurl:
		return "PartialCurl"
	default:
		return "Unknown"
	}
}

// PresentationStyle selects how a presented surface covers the one beneath it.
type PresentationStyle int

const (
	PresentationStyleAutomatic PresentationStyle = iota
	PresentationStyleFullScreen
	PresentationStylePageSheet
	PresentationStyleFormSheet
	PresentationStyleOverFullScreen
	PresentationStyleOverCurrentContext
	PresentationStylePopover
)

func (ps PresentationStyle) GetName() string {
	switch ps {
	case PresentationStyleAutomatic:
		return "Automatic"
	case PresentationStyleFullScreen:
		return "FullScreen"
	case PresentationStylePageSheet:
		return "PageSheet"
	case PresentationStyleFormSheet:
		return "FormSheet"
	case PresentationStyleOverFullScreen:
		return "OverFullScreen"
	case PresentationStyleOverCurrentContext:
		return "OverCurrentContext"
	case PresentationStylePopover:
		return "Popover"
	default:
		return "Unknown"
	}
}

// ArrowDirection is a bit set of the sides a popover arrow may point from.
type ArrowDirection uint8

const (
	ArrowDirectionUp ArrowDirection = 1 << iota
	ArrowDirectionDown
	ArrowDirectionLeft
	ArrowDirectionRight

	ArrowDirectionUnknown ArrowDirection = 0
	ArrowDirectionAny                    = ArrowDirectionUp | ArrowDirectionDown | ArrowDirectionLeft | ArrowDirectionRight
)

// Has reports whether every direction in d is permitted by ad.
func (ad ArrowDirection) Has(d ArrowDirection) bool {
	return d != 0 && ad&d == d
}

// GetName returns the directions in ad joined with "|", "Any" for all four,
// or "Unknown" when none are set.
func (ad ArrowDirection) GetName() string {
	if ad == ArrowDirectionUnknown {
		return "Unknown"
	}
	if ad == ArrowDirectionAny {
		return "Any"
	}

	var names []string
	if ad.Has(ArrowDirectionUp) {
		names = append(names, "Up")
	}
	if ad.Has(ArrowDirectionDown) {
		names = append(names, "Down")
	}
	if ad.Has(ArrowDirectionLeft) {
		names = append(names, "Left")
	}
	if ad.Has(ArrowDirectionRight) {
		names = append(names, "Right")
	}
	return strings.Join(names, "|")
}

// Default settings applied when no configuration is loaded.
const (
	DefaultAnimated          = true
	DefaultLocale            = "en"
	DefaultPopoverBackground = uint32(0xFFFFFF)
)
