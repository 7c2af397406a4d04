package router

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/locale"

// AlertKind is the content of an Alert request: OneButton or TwoButtons.
type AlertKind interface {
	isAlertKind()
}

// OneButton is an alert with a single acknowledging button.
// An empty ButtonTitle is replaced with the localized "OK".
type OneButton struct {
	Title       string
	Message     string // optional
	ButtonTitle string
	Action      func() // optional
}

// TwoButtons is an alert offering two choices, shown in order.
// Empty titles are replaced with the localized "Cancel" and "Confirm".
type TwoButtons struct {
	Title        string
	Message      string // optional
	FirstTitle   string
	SecondTitle  string
	FirstAction  func() // optional
	SecondAction func() // optional
}

func (OneButton) isAlertKind()  {}
func (TwoButtons) isAlertKind() {}

// Dialog is the description of a confirmation dialog handed to the host.
type Dialog struct {
	Title   string
	Message string
	Actions []DialogAction
}

// BuildDialog maps an AlertKind to a Dialog. Every action uses
// ActionStyleDefault. labels may be nil, in which case English defaults
// fill empty button titles.
func BuildDialog(kind AlertKind, labels *locale.Localizer) (Dialog, error) {
	switch k := kind.(type) {
	case OneButton:
		return Dialog{
			Title:   k.Title,
			Message: k.Message,
			Actions: []DialogAction{
				{Label: labelOr(k.ButtonTitle, labels, locale.AlertOK), Style: ActionStyleDefault, Handler: k.Action},
			},
		}, nil
	case TwoButtons:
		return Dialog{
			Title:   k.Title,
			Message: k.Message,
			Actions: []DialogAction{
				{Label: labelOr(k.FirstTitle, labels, locale.AlertCancel), Style: ActionStyleDefault, Handler: k.FirstAction},
				{Label: labelOr(k.SecondTitle, labels, locale.AlertConfirm), Style: ActionStyleDefault, Handler: k.SecondAction},
			},
		}, nil
	default:
		return Dialog{}, ErrUnknownAlertKind
	}
}

func labelOr(title string, labels *locale.Localizer, id string) string {
	if title != "" {
		return title
	}
	return labels.Label(id)
}
