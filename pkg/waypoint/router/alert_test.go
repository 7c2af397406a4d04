package router

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/locale"
)

func TestBuildDialog_OneButton(t *testing.T) {
	called := 0
	d, err := BuildDialog(OneButton{
		Title:       "Saved",
		Message:     "Your progress was saved.",
		ButtonTitle: "Nice",
		Action:      func() { called++ },
	}, nil)
	if err != nil {
		t.Fatalf("BuildDialog() error = %v", err)
	}

	if d.Title != "Saved" || d.Message != "Your progress was saved." {
		t.Fatalf("unexpected dialog text %+v", d)
	}
	if len(d.Actions) != 1 || d.Actions[0].Label != "Nice" {
		t.Fatalf("unexpected actions %+v", d.Actions)
	}
	d.Actions[0].Handler()
	if called != 1 {
		t.Fatalf("expected action to run once, got %d", called)
	}
}

func TestBuildDialog_TwoButtonsKeepsOrderAndStyle(t *testing.T) {
	var order []string
	d, err := BuildDialog(TwoButtons{
		Title:        "Quit?",
		FirstTitle:   "Stay",
		SecondTitle:  "Quit",
		FirstAction:  func() { order = append(order, "first") },
		SecondAction: func() { order = append(order, "second") },
	}, nil)
	if err != nil {
		t.Fatalf("BuildDialog() error = %v", err)
	}

	if len(d.Actions) != 2 {
		t.Fatalf("expected two actions, got %d", len(d.Actions))
	}
	for i, want := range []string{"Stay", "Quit"} {
		if d.Actions[i].Label != want {
			t.Errorf("action %d label = %q, want %q", i, d.Actions[i].Label, want)
		}
		if d.Actions[i].Style != ActionStyleDefault {
			t.Errorf("action %d style = %d, want default", i, d.Actions[i].Style)
		}
	}

	d.Actions[1].Handler()
	if len(order) != 1 || order[0] != "second" {
		t.Fatalf("expected only the second action, got %v", order)
	}
}

func TestBuildDialog_DefaultLabels(t *testing.T) {
	tests := []struct {
		name string
		lang string
		kind AlertKind
		want []string
	}{
		{"one button english", "en", OneButton{Title: "t"}, []string{"OK"}},
		{"two buttons english", "en", TwoButtons{Title: "t"}, []string{"Cancel", "Confirm"}},
		{"two buttons german", "de", TwoButtons{Title: "t", SecondTitle: "Löschen"}, []string{"Abbrechen", "Löschen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := BuildDialog(tt.kind, locale.For(tt.lang))
			if err != nil {
				t.Fatalf("BuildDialog() error = %v", err)
			}
			if len(d.Actions) != len(tt.want) {
				t.Fatalf("got %d actions, want %d", len(d.Actions), len(tt.want))
			}
			for i, want := range tt.want {
				if got := d.Actions[i].Label; got != want {
					t.Errorf("action %d label = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestBuildDialog_NilActionsStayNil(t *testing.T) {
	d, err := BuildDialog(TwoButtons{Title: "t"}, nil)
	if err != nil {
		t.Fatalf("BuildDialog() error = %v", err)
	}
	for i, a := range d.Actions {
		if a.Handler != nil {
			t.Errorf("action %d: expected nil handler", i)
		}
	}
}

func TestBuildDialog_UnknownKind(t *testing.T) {
	if _, err := BuildDialog(nil, nil); !errors.Is(err, ErrUnknownAlertKind) {
		t.Fatalf("expected ErrUnknownAlertKind, got %v", err)
	}
}
