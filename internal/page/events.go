package page

import (
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/nav"
)

// Event is something the visitor did.
type Event interface {
	isEvent()
}

// Scrolled reports a new scroll offset together with the measured section
// bounds.
type Scrolled struct {
	Offset float64
	Layout nav.Layout
}

// MenuToggled flips the mobile menu.
type MenuToggled struct{}

// Navigated is a click on a navigation entry or call-to-action.
type Navigated struct {
	Section nav.SectionID
}

// InputChanged is an edit to one contact form field.
type InputChanged struct {
	Field contact.Field
	Value string
}

// Submitted is a press of the contact form's send button.
type Submitted struct{}

func (Scrolled) isEvent()     {}
func (MenuToggled) isEvent()  {}
func (Navigated) isEvent()    {}
func (InputChanged) isEvent() {}
func (Submitted) isEvent()    {}

// Intent is a side effect requested by Reduce.
type Intent interface {
	isIntent()
}

// ScrollTo asks the view to bring a section into view.
type ScrollTo struct {
	Section nav.SectionID
}

// Deliver hands a valid submission to the contact sink.
type Deliver struct {
	Submission contact.Submission
}

// ResetFields asks the view to clear the form inputs.
type ResetFields struct{}

// NotifySuccess asks the view to acknowledge a sent message.
type NotifySuccess struct {
	Message string
}

func (ScrollTo) isIntent()      {}
func (Deliver) isIntent()       {}
func (ResetFields) isIntent()   {}
func (NotifySuccess) isIntent() {}
