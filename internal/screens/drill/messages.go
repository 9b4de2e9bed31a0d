package drill

import (
	"vocadrill/internal/engine"
)

// skipResultMsg is sent when a skip replacement fetch finishes.
type skipResultMsg struct {
	res engine.SkipResult
}

// audioReadyMsg is sent when pronunciation audio has been synthesized.
type audioReadyMsg struct {
	wav []byte
	err error
}

// advanceMsg is sent after the celebratory delay that follows a
// correct answer.
type advanceMsg struct{}
