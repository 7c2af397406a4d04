// Package locale provides localized default labels for alert buttons.
//
// Alerts that leave a button title empty are given a label from the active
// locale. Message files are embedded TOML in the go-i18n format.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message identifiers for default alert labels.
const (
	AlertOK      = "AlertOK"
	AlertCancel  = "AlertCancel"
	AlertConfirm = "AlertConfirm"
)

//go:embed messages/*.toml
var messageFS embed.FS

var (
	bundleOnce   sync.Once
	sharedBundle *i18n.Bundle
	bundleErr    error
)

var defaults = map[string]string{
	AlertOK:      "OK",
	AlertCancel:  "Cancel",
	AlertConfirm: "Confirm",
}

// Localizer resolves default labels for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewBundle returns a bundle with every embedded message file loaded.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("reading embedded messages: %w", err)
	}

	for _, entry := range entries {
		name := path.Join("messages", entry.Name())
		data, err := messageFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	return bundle, nil
}

// New returns a Localizer for the given language tag (e.g. "de", "en-US").
// Tags that fail to parse fall back to English.
func New(lang string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return NewWithBundle(bundle, lang), nil
}

// For returns a Localizer over a bundle shared by the whole process.
// It returns nil if the embedded messages could not be loaded; a nil
// Localizer still answers Label with English defaults.
func For(lang string) *Localizer {
	bundleOnce.Do(func() {
		sharedBundle, bundleErr = NewBundle()
	})
	if bundleErr != nil {
		return nil
	}
	return NewWithBundle(sharedBundle, lang)
}

// NewWithBundle returns a Localizer backed by an existing bundle.
func NewWithBundle(bundle *i18n.Bundle, lang string) *Localizer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}
}

// Tag returns the normalized language tag.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Label returns the localized text for id. Unknown ids, or a nil Localizer,
// yield the English default.
func (l *Localizer) Label(id string) string {
	if l == nil || l.localizer == nil {
		return defaults[id]
	}

	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: defaults[id]},
	})
	if err != nil {
		return defaults[id]
	}
	return msg
}
