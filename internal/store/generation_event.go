package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenerationEvent.Create().
		SetSequence(seqNum).
		SetRequestID(data.RequestID).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetVariationCount(data.VariationCount).
		SetOutcome(data.Outcome).
		SetItemCount(data.ItemCount).
		SetAttempts(data.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}

	return nil
}
