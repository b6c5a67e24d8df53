package page

import (
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/nav"
)

// Reduce applies ev to s and returns the next state plus the side effects
// the caller should perform, in order.
func Reduce(s State, ev Event) (State, []Intent) {
	next := s
	next.Errors = s.Errors.Clone()

	switch ev := ev.(type) {
	case Scrolled:
		next.Active = nav.Track(s.Active, ev.Offset, ev.Layout)
		return next, nil

	case MenuToggled:
		next.MenuOpen = !s.MenuOpen
		return next, nil

	case Navigated:
		next.MenuOpen = false
		if !ev.Section.Valid() {
			return next, nil
		}
		return next, []Intent{ScrollTo{Section: ev.Section}}

	case InputChanged:
		next.Form = s.Form.With(ev.Field, ev.Value)
		return next, nil

	case Submitted:
		return submit(next)
	}
	return next, nil
}

func submit(s State) (State, []Intent) {
	s.Errors = contact.Validate(s.Form)
	if !s.Errors.Valid() {
		s.Notice = ""
		return s, nil
	}

	sent := s.Form
	s.Form = contact.Submission{}
	s.Notice = SuccessNotice
	return s, []Intent{
		Deliver{Submission: sent},
		ResetFields{},
		NotifySuccess{Message: SuccessNotice},
	}
}
