package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertContactSummaryParams carries the latest derived values for a contact.
type UpsertContactSummaryParams struct {
	ContactID       string
	LastSentiment   string
	LastScore       int
	LastTags        StringArray
	LastTip         string
	LastInteraction time.Time
}

// Full overwrite on conflict: the summary is current-state, not a merge.
// Concurrent pipelines for the same contact race on write-completion order.
const sqlUpsertContactSummary = `
INSERT INTO contact_summaries (contact_id, last_sentiment, last_score, last_tags, last_tip, last_interaction, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (contact_id) DO UPDATE SET
	last_sentiment   = EXCLUDED.last_sentiment,
	last_score       = EXCLUDED.last_score,
	last_tags        = EXCLUDED.last_tags,
	last_tip         = EXCLUDED.last_tip,
	last_interaction = EXCLUDED.last_interaction,
	updated_at       = now()
RETURNING contact_id, last_sentiment, last_score, last_tags, last_tip, last_interaction, updated_at`

func (s *Store) UpsertContactSummary(ctx context.Context, params UpsertContactSummaryParams) (ContactSummary, error) {
	var summary ContactSummary
	err := s.db.GetContext(ctx, &summary, sqlUpsertContactSummary,
		params.ContactID,
		params.LastSentiment,
		params.LastScore,
		params.LastTags,
		params.LastTip,
		params.LastInteraction,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert contact summary", err)
		return ContactSummary{}, fmt.Errorf("failed to upsert contact summary: %w", err)
	}
	return summary, nil
}

const sqlGetContactSummaryByContactID = `
SELECT contact_id, last_sentiment, last_score, last_tags, last_tip, last_interaction, updated_at
FROM contact_summaries
WHERE contact_id = $1`

func (s *Store) GetContactSummaryByContactID(ctx context.Context, contactID string) (ContactSummary, error) {
	var summary ContactSummary
	err := s.db.GetContext(ctx, &summary, sqlGetContactSummaryByContactID, contactID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ContactSummary{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact summary by contact ID", err)
		return ContactSummary{}, fmt.Errorf("failed to get contact summary by contact ID: %w", err)
	}
	return summary, nil
}
