package store

import (
	"context"
	"fmt"
	"time"
)

// CreateCallEventParams holds the derived fields persisted for one processed call.
type CreateCallEventParams struct {
	ContactID   string
	AgentID     string
	RecordingID string
	Transcript  string
	Sentiment   string
	Score       int
	Tags        StringArray
	Tip         string
	CreatedAt   time.Time
}

const sqlInsertCallEvent = `
INSERT INTO call_events (contact_id, agent_id, recording_id, transcript, sentiment, score, tags, tip, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, seq, contact_id, agent_id, recording_id, transcript, sentiment, score, tags, tip, created_at`

func (s *Store) CreateCallEvent(ctx context.Context, params CreateCallEventParams) (CallEvent, error) {
	var event CallEvent
	err := s.db.GetContext(ctx, &event, sqlInsertCallEvent,
		params.ContactID,
		params.AgentID,
		params.RecordingID,
		params.Transcript,
		params.Sentiment,
		params.Score,
		params.Tags,
		params.Tip,
		params.CreatedAt,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to insert call event", err)
		return CallEvent{}, fmt.Errorf("failed to insert call event: %w", err)
	}
	return event, nil
}

// History is strictly timestamp-descending; seq breaks ties between events
// persisted within the same instant.
const sqlGetCallEventsByContactID = `
SELECT id, seq, contact_id, agent_id, recording_id, transcript, sentiment, score, tags, tip, created_at
FROM call_events
WHERE contact_id = $1
ORDER BY created_at DESC, seq DESC`

func (s *Store) GetCallEventsByContactID(ctx context.Context, contactID string) ([]CallEvent, error) {
	events := []CallEvent{}
	err := s.db.SelectContext(ctx, &events, sqlGetCallEventsByContactID, contactID)
	if err != nil {
		s.logger.Error(ctx, "failed to get call events by contact ID", err)
		return nil, fmt.Errorf("failed to get call events by contact ID: %w", err)
	}
	return events, nil
}
