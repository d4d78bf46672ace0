// Package session owns the lifecycle of the single optimization submission.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/submission"
)

// GenericFailureMessage is shown for every request failure, whatever its cause.
const GenericFailureMessage = "Error processing request. Please try again."

// Optimizer performs one optimization request.
type Optimizer interface {
	Optimize(ctx context.Context, payload submission.Payload, requestID string) (*domain.OptimizationResult, error)
}

// Ticket identifies an accepted submission. Its generation is compared with the
// session's current one when the outcome arrives.
type Ticket struct {
	Generation uint64
	RequestID  string
	Payload    submission.Payload
}

// Session holds the single mutable submission state. It has one writer flow
// (Begin/Resolve) and any number of readers through State.
type Session struct {
	mu         sync.RWMutex
	state      State
	generation uint64
	logger     *zap.Logger
	newID      func() string
}

// New creates an idle session.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		state:  State{Kind: Idle},
		logger: logger,
		newID:  uuid.NewString,
	}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Reset returns the session to Idle and invalidates any in-flight request.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = State{Kind: Idle, Generation: s.generation}
}

// Begin validates and builds a submission. On success the session moves to Pending and
// the returned ticket must be passed to Resolve once the request finishes. On validation
// failure the session moves straight to Error and no request may be issued.
//
// Both paths start a new generation, so a response still in flight for an older
// submission can no longer overwrite the state.
func (s *Session) Begin(file *domain.SelectedFile, inputs domain.FormInputs) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	gen := s.generation

	if err := submission.Validate(file, inputs); err != nil {
		s.state = State{Kind: Error, Message: validationMessage(err), Generation: gen}
		s.logger.Info("submission rejected", zap.Uint64("generation", gen), zap.Error(err))
		return Ticket{}, err
	}

	ticket := Ticket{
		Generation: gen,
		RequestID:  s.newID(),
		Payload:    submission.Build(*file, inputs),
	}
	s.state = State{Kind: Pending, Generation: gen, RequestID: ticket.RequestID}
	s.logger.Info("submission pending",
		zap.Uint64("generation", gen),
		zap.String("request_id", ticket.RequestID),
		zap.String("file", file.Name))
	return ticket, nil
}

// Resolve applies the outcome of the request identified by t. It reports false, and
// changes nothing, when t belongs to a superseded submission.
func (s *Session) Resolve(t Ticket, result *domain.OptimizationResult, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Generation != s.generation {
		s.logger.Info("discarding stale response",
			zap.Uint64("generation", t.Generation),
			zap.Uint64("current_generation", s.generation),
			zap.String("request_id", t.RequestID))
		return false
	}

	if err == nil && result == nil {
		err = errors.New("empty optimization result")
	}
	if err != nil {
		s.state = State{Kind: Error, Message: GenericFailureMessage, Generation: t.Generation, RequestID: t.RequestID}
		s.logger.Warn("submission failed",
			zap.Uint64("generation", t.Generation),
			zap.String("request_id", t.RequestID),
			zap.Error(err))
		return true
	}

	s.state = State{Kind: Success, Result: result, Generation: t.Generation, RequestID: t.RequestID}
	s.logger.Info("submission succeeded",
		zap.Uint64("generation", t.Generation),
		zap.String("request_id", t.RequestID))
	return true
}

// Submit runs a whole submission synchronously: Begin, one Optimize call, Resolve.
// It returns the state that resulted from this submission's own transition.
func (s *Session) Submit(ctx context.Context, opt Optimizer, file *domain.SelectedFile, inputs domain.FormInputs) State {
	ticket, err := s.Begin(file, inputs)
	if err != nil {
		return s.State()
	}

	result, err := opt.Optimize(ctx, ticket.Payload, ticket.RequestID)
	s.Resolve(ticket, result, err)
	return s.State()
}

func validationMessage(err error) string {
	var verr *submission.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
