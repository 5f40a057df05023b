package session

import (
	"errors"
	"fmt"

	"github.com/mnemoapp/mnemo-engine/domain"
)

// Transition errors
var (
	// ErrInvalidState is returned when the machine is asked to transition
	// from a state outside its state set.
	ErrInvalidState = errors.New("invalid session state")

	// ErrInvalidTransition is returned when a state does not accept the
	// given event. The session is left unchanged.
	ErrInvalidTransition = errors.New("event not accepted in current state")
)

// Machine is the classic-mode session state machine. It holds only the
// immutable rules; all per-session state travels through the
// (State, Context) pair, so a single Machine can serve any number of
// sessions.
type Machine struct {
	rules Rules
}

// NewMachine creates a session machine with the given rules.
func NewMachine(rules Rules) *Machine {
	return &Machine{rules: rules}
}

// NewDefaultMachine creates a session machine with the default rules.
func NewDefaultMachine() *Machine {
	return NewMachine(DefaultRules())
}

// Rules returns the machine's rules.
func (m *Machine) Rules() Rules {
	return m.rules
}

// Start returns the initial state and context for a session over the
// given ordered card sequence.
func (m *Machine) Start(cards []domain.Card) (State, Context) {
	return StateQuestion, NewContext(cards, m.rules)
}

// Transition applies an event to a session and returns the new state and
// context. It is a pure function over its inputs: the given context is
// copied, never mutated, and an invalid (state, event) pair returns an
// error with the inputs unchanged.
func (m *Machine) Transition(state State, ctx Context, ev Event) (State, Context, error) {
	if !state.valid() {
		return state, ctx, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	// Quit is accepted uniformly from every non-terminal state and
	// preserves score and counters for the end screen.
	if _, ok := ev.(Quit); ok && !state.IsTerminal() {
		return m.enter(StateSessionOver, ctx)
	}

	switch state {
	case StateQuestion:
		if submit, ok := ev.(SubmitAnswer); ok {
			return m.submitAnswer(ctx, submit)
		}

	case StateFeedbackCorrect:
		if _, ok := ev.(NextCard); ok {
			if hasMoreCards(ctx) {
				ctx.CurrentIndex++
				return m.enter(StateQuestion, ctx)
			}
			return m.enter(StateCompleted, ctx)
		}

	case StateFeedbackIncorrect:
		if _, ok := ev.(NextCard); ok {
			switch {
			case ctx.Lives > 0 && hasMoreCards(ctx):
				ctx.CurrentIndex++
				return m.enter(StateQuestion, ctx)
			case ctx.Lives > 0:
				return m.enter(StateCompleted, ctx)
			default:
				return m.enter(StateGameOver, ctx)
			}
		}

	case StateCompleted, StateGameOver, StateSessionOver:
		if _, ok := ev.(Restart); ok {
			reset := NewContext(ctx.Cards, m.rules)
			reset.SessionID = ctx.SessionID
			return m.enter(StateQuestion, reset)
		}
	}

	return state, ctx, fmt.Errorf("%w: %T in state %q", ErrInvalidTransition, ev, state)
}

// submitAnswer handles SubmitAnswer from the question state.
//
// The guard order on a wrong answer matters: when the last life is lost
// the session jumps straight to game_over, skipping the incorrect-answer
// feedback screen.
func (m *Machine) submitAnswer(ctx Context, ev SubmitAnswer) (State, Context, error) {
	if ev.Correct {
		if ev.Perfect {
			ctx.Score += m.rules.PerfectScore
		} else {
			ctx.Score += m.rules.CorrectScore
		}
		ctx.CorrectAnswers++
		return m.enter(StateFeedbackCorrect, ctx)
	}

	lastLife := ctx.Lives <= 1

	ctx.Lives--
	if ctx.Lives < 0 {
		ctx.Lives = 0
	}
	ctx.IncorrectAnswers++

	if lastLife {
		return m.enter(StateGameOver, ctx)
	}
	return m.enter(StateFeedbackIncorrect, ctx)
}

// enter finalizes a transition into the target state, keeping the
// context's status flag in sync.
func (m *Machine) enter(state State, ctx Context) (State, Context, error) {
	ctx.Status = statusFor(state)
	return state, ctx, nil
}

// hasMoreCards reports whether a card remains after the current one.
func hasMoreCards(ctx Context) bool {
	return ctx.CurrentIndex < len(ctx.Cards)-1
}
