package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetWordCount(data.WordCount).
		SetWordsSkipped(data.WordsSkipped).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
