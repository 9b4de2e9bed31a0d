package engine

// Phase is a state of the session state machine.
type Phase int

const (
	// PhaseLoading covers startup: the ledger is loading and, on a new
	// day, the daily batch is being generated.
	PhaseLoading Phase = iota

	// PhaseHome is the menu between sessions.
	PhaseHome

	// PhaseLearning is the recognition step: the word is shown with its
	// definition, example, and pronunciation.
	PhaseLearning

	// PhaseSpelling is the active-recall step: the learner types the
	// word from its definition.
	PhaseSpelling

	// PhaseQuiz is the contextual step: the learner picks the word that
	// fills the blank in a sentence.
	PhaseQuiz

	// PhaseCompleted shows the session summary.
	PhaseCompleted

	// PhaseError is terminal within a session. Recovery is a full
	// re-bootstrap.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseHome:
		return "home"
	case PhaseLearning:
		return "learning"
	case PhaseSpelling:
		return "spelling"
	case PhaseQuiz:
		return "quiz"
	case PhaseCompleted:
		return "completed"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}
