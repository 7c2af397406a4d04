package locale

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		lang string
		id   string
		want string
	}{
		{"en", AlertOK, "OK"},
		{"en", AlertCancel, "Cancel"},
		{"de", AlertCancel, "Abbrechen"},
		{"de-AT", AlertConfirm, "Bestätigen"},
		{"fr", AlertCancel, "Annuler"},
		{"ja", AlertCancel, "Cancel"},
		{"not a tag", AlertOK, "OK"},
	}

	bundle, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.id, func(t *testing.T) {
			l := NewWithBundle(bundle, tt.lang)
			if got := l.Label(tt.id); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestNilLocalizerUsesDefaults(t *testing.T) {
	var l *Localizer
	if got := l.Label(AlertConfirm); got != "Confirm" {
		t.Fatalf("expected English default, got %q", got)
	}
}

func TestNewNormalizesTag(t *testing.T) {
	l, err := New("DE")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := l.Tag().String(); got != "de" {
		t.Fatalf("expected tag de, got %q", got)
	}
}

func TestForSharesBundle(t *testing.T) {
	a, b := For("de"), For("en")
	if a == nil || b == nil {
		t.Fatalf("expected localizers from shared bundle")
	}
	if got := a.Label(AlertCancel); got != "Abbrechen" {
		t.Errorf("de Label(AlertCancel) = %q", got)
	}
	if got := b.Label(AlertCancel); got != "Cancel" {
		t.Errorf("en Label(AlertCancel) = %q", got)
	}
}
