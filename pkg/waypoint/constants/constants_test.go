package constants

import "testing"

func TestArrowDirection_GetName(t *testing.T) {
	tests := []struct {
		dir  ArrowDirection
		want string
	}{
		{ArrowDirectionUnknown, "Unknown"},
		{ArrowDirectionAny, "Any"},
		{ArrowDirectionUp, "Up"},
		{ArrowDirectionUp | ArrowDirectionLeft, "Up|Left"},
		{ArrowDirectionDown | ArrowDirectionRight, "Down|Right"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dir.GetName(); got != tt.want {
				t.Errorf("GetName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrowDirection_Has(t *testing.T) {
	if !ArrowDirectionAny.Has(ArrowDirectionLeft) {
		t.Fatalf("expected Any to include Left")
	}
	if ArrowDirectionUp.Has(ArrowDirectionUp | ArrowDirectionDown) {
		t.Fatalf("expected Up to not include Up|Down")
	}
	if ArrowDirectionAny.Has(ArrowDirectionUnknown) {
		t.Fatalf("expected Has(Unknown) to be false")
	}
}

func TestStyleNames(t *testing.T) {
	if got := TransitionStyleCrossDissolve.GetName(); got != "CrossDissolve" {
		t.Errorf("TransitionStyleCrossDissolve.GetName() = %q", got)
	}
	if got := PresentationStylePopover.GetName(); got != "Popover" {
		t.Errorf("PresentationStylePopover.GetName() = %q", got)
	}
	if got := PresentationStyle(99).GetName(); got != "Unknown" {
		t.Errorf("PresentationStyle(99).GetName() = %q", got)
	}
}

func TestIsDevMode(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, Development)
	if !IsDevMode() {
		t.Fatalf("expected dev mode with %s=%s", EnvironmentEnvVar, Development)
	}
	t.Setenv(EnvironmentEnvVar, "PROD")
	if IsDevMode() {
		t.Fatalf("expected dev mode off")
	}
}
