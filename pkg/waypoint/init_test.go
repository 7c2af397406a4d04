package waypoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/google/go-cmp/cmp"
	"github.com/veandco/go-sdl2/sdl"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waypoint.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeFile(t, `
log_path = "/tmp/waypoint/app.log"
log_level = "debug"
locale = "de"
animated = false
popover_background = 0x202020
`)

	options, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}

	animated := false
	want := Options{
		LogPath:           "/tmp/waypoint/app.log",
		LogLevel:          "debug",
		Locale:            "de",
		Animated:          &animated,
		PopoverBackground: 0x202020,
	}
	if diff := cmp.Diff(want, options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptions_MissingFile(t *testing.T) {
	options, err := LoadOptions(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if diff := cmp.Diff(Options{}, options); diff != "" {
		t.Fatalf("expected zero options (-want +got):\n%s", diff)
	}
}

func TestLoadOptions_EmptyPath(t *testing.T) {
	if _, err := LoadOptions(""); err != nil {
		t.Fatalf("empty path should not be an error, got %v", err)
	}
}

func TestLoadOptions_Malformed(t *testing.T) {
	path := writeFile(t, `animated = "sometimes"`)

	if _, err := LoadOptions(path); err == nil {
		t.Fatal("expected an error for a malformed file")
	}
}

func TestSettingsFrom(t *testing.T) {
	off := false

	tests := []struct {
		name    string
		options Options
		env     string
		want    internal.Settings
	}{
		{
			name:    "zero options keep defaults",
			options: Options{},
			want:    internal.DefaultSettings(),
		},
		{
			name:    "options override defaults",
			options: Options{Animated: &off, Locale: "fr", PopoverBackground: 0x336699},
			want: internal.Settings{
				Animated:          false,
				Locale:            "fr",
				PopoverBackground: sdl.Color{R: 0x33, G: 0x66, B: 0x99, A: 255},
			},
		},
		{
			name:    "environment locale wins",
			options: Options{Locale: "fr"},
			env:     "de",
			want: internal.Settings{
				Animated:          constants.DefaultAnimated,
				Locale:            "de",
				PopoverBackground: internal.HexToColor(constants.DefaultPopoverBackground),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(constants.LocaleEnvVar, tt.env)

			got := settingsFrom(tt.options)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInit_AppliesSettings(t *testing.T) {
	t.Cleanup(func() { internal.SetSettings(internal.DefaultSettings()) })
	t.Setenv(constants.LocaleEnvVar, "")
	t.Setenv(constants.LogLevelEnvVar, "")

	off := false
	Init(Options{Animated: &off, Locale: "de"})

	got := internal.GetSettings()
	if got.Animated {
		t.Error("expected animation to be disabled")
	}
	if got.Locale != "de" {
		t.Errorf("expected locale de, got %q", got.Locale)
	}
}
