package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursepilot/ent"
	"github.com/abhisek/coursepilot/ent/turnevent"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAgent(data.Agent).
		SetUserPreview(data.UserPreview).
		SetMessagesAppended(data.MessagesAppended).
		SetCurrentStep(data.CurrentStep).
		SetQuizPhase(data.QuizPhase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryTurns(ctx context.Context, opts QueryOpts) ([]TurnEvent, error) {
	q := r.client.TurnEvent.Query().
		Order(ent.Desc(turnevent.FieldSequence))

	if opts.SessionID != "" {
		q = q.Where(turnevent.SessionID(opts.SessionID))
	}
	if opts.After > 0 {
		q = q.Where(turnevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(turnevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}

	events := make([]TurnEvent, len(rows))
	for i, e := range rows {
		events[i] = TurnEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TurnEventData: TurnEventData{
				SessionID:        e.SessionID,
				Agent:            e.Agent,
				UserPreview:      e.UserPreview,
				MessagesAppended: e.MessagesAppended,
				CurrentStep:      e.CurrentStep,
				QuizPhase:        e.QuizPhase,
			},
		}
	}
	return events, nil
}
