package store

import (
	"context"
	"fmt"
)

const sqlCreateCallEventsTable = `
CREATE TABLE IF NOT EXISTS call_events (
    id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    seq          bigserial NOT NULL,
    contact_id   text NOT NULL,
    agent_id     text NOT NULL,
    recording_id text NOT NULL,
    transcript   text NOT NULL,
    sentiment    text NOT NULL,
    score        integer NOT NULL,
    tags         text[] NOT NULL DEFAULT '{}',
    tip          text NOT NULL,
    created_at   timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_call_events_contact_created
    ON call_events (contact_id, created_at DESC, seq DESC);
`

const sqlCreateContactSummariesTable = `
CREATE TABLE IF NOT EXISTS contact_summaries (
    contact_id       text PRIMARY KEY,
    last_sentiment   text NOT NULL,
    last_score       integer NOT NULL,
    last_tags        text[] NOT NULL DEFAULT '{}',
    last_tip         text NOT NULL,
    last_interaction timestamptz NOT NULL,
    updated_at       timestamptz NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the tables if they do not exist yet. Statements are
// idempotent, so running this on every boot is safe.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, ddl := range []string{sqlCreateCallEventsTable, sqlCreateContactSummariesTable} {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
