// Package page holds the state of one rendered portfolio page and the
// reducer that advances it. Side effects are returned as intents and carried
// out by a Controller.
package page

import (
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/nav"
)

// SuccessNotice is shown after a submission passes validation.
const SuccessNotice = contact.SuccessNotice

// State is a snapshot of the page. Reduce never modifies a State in place.
type State struct {
	Active   nav.SectionID      `json:"active"`
	MenuOpen bool               `json:"menu_open"`
	Form     contact.Submission `json:"form"`
	Errors   contact.Errors     `json:"errors,omitempty"`
	Notice   string             `json:"notice,omitempty"`
}

// Initial returns the state of a freshly displayed page.
func Initial() State {
	return State{Active: nav.Hero}
}

// FieldError returns the error message shown under f, if any.
func (s State) FieldError(f contact.Field) string {
	return s.Errors.Message(f)
}
