package store

import (
	"context"
	"fmt"

	"vocadrill/ent"
	"vocadrill/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, len(rows))
	for i, row := range rows {
		events[i] = entLLMEvent(row)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	e := entLLMEvent(row)
	return &e, nil
}

func entLLMEvent(row *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
