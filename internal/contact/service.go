package contact

import "context"

// Service is the entry point for visitor submissions.
type Service struct {
	dispatcher *Dispatcher
}

// NewService creates a Service that hands valid submissions to dispatcher.
func NewService(dispatcher *Dispatcher) *Service {
	return &Service{dispatcher: dispatcher}
}

// Dispatcher returns the dispatcher behind the service.
func (s *Service) Dispatcher() *Dispatcher { return s.dispatcher }

// Submit validates sub. When any field fails, the errors are returned and
// nothing is stored. Otherwise the submission is stored and delivered. The
// error return is reserved for storage failures.
func (s *Service) Submit(ctx context.Context, sub Submission, meta Meta) (Errors, *Message, error) {
	errs := Validate(sub)
	if !errs.Valid() {
		return errs, nil, nil
	}

	m, err := s.dispatcher.Dispatch(ctx, NewMessage(sub, meta))
	if err != nil {
		return errs, nil, err
	}
	return errs, m, nil
}
