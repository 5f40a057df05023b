package session

// State identifies a node in the classic-mode session state machine.
type State string

// The full state set. Completed, GameOver and SessionOver are terminal:
// the only event they accept is Restart.
const (
	StateQuestion          State = "question"
	StateFeedbackCorrect   State = "feedback_correct"
	StateFeedbackIncorrect State = "feedback_incorrect"
	StateCompleted         State = "completed"
	StateGameOver          State = "game_over"
	StateSessionOver       State = "session_over"
)

// IsTerminal reports whether the state ends the session.
func (s State) IsTerminal() bool {
	switch s {
	case StateCompleted, StateGameOver, StateSessionOver:
		return true
	default:
		return false
	}
}

// valid reports whether s is a member of the state set.
func (s State) valid() bool {
	switch s {
	case StateQuestion, StateFeedbackCorrect, StateFeedbackIncorrect,
		StateCompleted, StateGameOver, StateSessionOver:
		return true
	default:
		return false
	}
}

// Status mirrors the session state for display and persistence, collapsing
// the three in-play states into "playing".
type Status string

// Possible status values.
const (
	StatusPlaying     Status = "playing"
	StatusCompleted   Status = "completed"
	StatusGameOver    Status = "game_over"
	StatusSessionOver Status = "session_over"
)

// statusFor returns the status that mirrors a state.
func statusFor(s State) Status {
	switch s {
	case StateCompleted:
		return StatusCompleted
	case StateGameOver:
		return StatusGameOver
	case StateSessionOver:
		return StatusSessionOver
	default:
		return StatusPlaying
	}
}

// Event is a session input: an answer submission, an advance to the next
// card, a quit, or a restart from a terminal state.
type Event interface {
	event()
}

// SubmitAnswer reports a graded answer for the current card. Correct and
// Perfect come from the quality grade's IsCorrect/IsPerfect predicates.
type SubmitAnswer struct {
	Correct bool
	Perfect bool
}

// NextCard advances past a feedback screen.
type NextCard struct{}

// Quit ends the session immediately from any non-terminal state,
// preserving score and counters for display.
type Quit struct{}

// Restart resets a finished session back to its initial state.
type Restart struct{}

func (SubmitAnswer) event() {}
func (NextCard) event()     {}
func (Quit) event()         {}
func (Restart) event()      {}
