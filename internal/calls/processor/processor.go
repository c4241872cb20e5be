package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	openaiclient "call-insights-server/internal/clients/openai"
	"call-insights-server/internal/observability"
	"call-insights-server/internal/store"

	"golang.org/x/sync/errgroup"
)

// EventCallEvaluated is the name of the real-time event broadcast to
// dashboard subscribers after a call has been fully processed.
const EventCallEvaluated = "cliente-avaliado"

// Pipeline stage errors. Each one identifies the stage that aborted the run;
// none of them are retried internally.
var (
	ErrRecordingUnavailable = errors.New("recording unavailable")
	ErrEmptyRecording       = errors.New("recording is empty")
	ErrTranscriptionFailed  = errors.New("transcription failed")
	ErrSentimentParse       = errors.New("sentiment analysis produced no usable result")
	ErrTagExtraction        = errors.New("tag extraction failed")
	ErrPersistenceFailed    = errors.New("persistence failed")
	ErrContactNotFound      = errors.New("contact not found")
)

// Sentiment labels as the model replies them. Anything outside these three is
// still persisted verbatim; only the tip lookup falls back to the default.
const (
	SentimentPositive = "positivo"
	SentimentNegative = "negativo"
	SentimentNeutral  = "neutro"
)

// AdviceTip returns the fixed coaching tip for a sentiment label.
func AdviceTip(sentiment string) string {
	switch sentiment {
	case SentimentNegative:
		return "Seja calmo, escute atentamente e evite interromper."
	case SentimentPositive:
		return "Mantenha o bom atendimento e reforce soluções."
	default:
		return "Conduza a conversa com empatia e clareza."
	}
}

// RecordingFetcher downloads raw call audio from the telephony platform.
type RecordingFetcher interface {
	FetchRecording(ctx context.Context, agentID, recordingID string) ([]byte, error)
}

// Transcriber converts call audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// SentimentAnalyzer classifies a transcript into a label/score pair.
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (openaiclient.SentimentResult, error)
}

// TagExtractor pulls up to five keyword tags out of a transcript.
type TagExtractor interface {
	ExtractTags(ctx context.Context, text string) ([]string, error)
}

// CallStore defines the database operations required by CallProcessor
type CallStore interface {
	CreateCallEvent(ctx context.Context, params store.CreateCallEventParams) (store.CallEvent, error)
	UpsertContactSummary(ctx context.Context, params store.UpsertContactSummaryParams) (store.ContactSummary, error)
	GetCallEventsByContactID(ctx context.Context, contactID string) ([]store.CallEvent, error)
	GetContactSummaryByContactID(ctx context.Context, contactID string) (store.ContactSummary, error)
}

// OutcomeNotifier fans a named event out to live subscribers. Publishing is
// fire-and-forget: it never blocks the pipeline and never fails it.
type OutcomeNotifier interface {
	Publish(ctx context.Context, event string, data interface{})
}

// ProcessedOutcome is what a completed pipeline run derived for one call.
type ProcessedOutcome struct {
	EventID   string    `json:"eventId"`
	ContactID string    `json:"contactId"`
	Sentiment string    `json:"sentiment"`
	Score     int       `json:"score"`
	Tags      []string  `json:"tags"`
	Tip       string    `json:"tip"`
	Timestamp time.Time `json:"timestamp"`
}

type CallProcessor struct {
	recordings  RecordingFetcher
	transcriber Transcriber
	sentiment   SentimentAnalyzer
	tags        TagExtractor
	store       CallStore
	notifier    OutcomeNotifier
	logger      *observability.Logger
}

func New(recordings RecordingFetcher, transcriber Transcriber, sentiment SentimentAnalyzer,
	tags TagExtractor, callStore CallStore, notifier OutcomeNotifier,
	logger *observability.Logger) CallProcessor {
	return CallProcessor{
		recordings:  recordings,
		transcriber: transcriber,
		sentiment:   sentiment,
		tags:        tags,
		store:       callStore,
		notifier:    notifier,
		logger:      logger,
	}
}

// ProcessCallEvent runs the full pipeline for one completed call: fetch the
// recording, transcribe it, analyze sentiment and tags, persist the call
// event plus the rolling contact summary, and broadcast the outcome.
//
// Writes are all-or-nothing up to the event append: a failure in any earlier
// stage aborts the run with nothing persisted. The append and the summary
// upsert are sequenced, not transactional; a failure between them is surfaced
// as ErrPersistenceFailed so the drift is detectable.
func (p *CallProcessor) ProcessCallEvent(ctx context.Context, contactID, agentID, recordingID string) (ProcessedOutcome, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "contact_id", Value: contactID},
		observability.Field{Key: "agent_id", Value: agentID},
		observability.Field{Key: "recording_id", Value: recordingID},
	)
	p.logger.Info(ctx, "Processing call event")

	audio, err := p.recordings.FetchRecording(ctx, agentID, recordingID)
	if err != nil {
		p.logger.Error(ctx, "failed to fetch recording", err)
		return ProcessedOutcome{}, fmt.Errorf("%w: %v", ErrRecordingUnavailable, err)
	}
	if len(audio) == 0 {
		p.logger.Error(ctx, "recording payload is empty", nil)
		return ProcessedOutcome{}, ErrEmptyRecording
	}

	transcript, err := p.transcriber.Transcribe(ctx, audio)
	if err != nil {
		p.logger.Error(ctx, "failed to transcribe recording", err)
		return ProcessedOutcome{}, fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	// Sentiment and tags are independent analyses of the same transcript.
	// Run them concurrently and join; the first failure cancels the sibling
	// and aborts the run before anything is derived or persisted.
	var (
		sentimentResult openaiclient.SentimentResult
		tags            []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := p.sentiment.AnalyzeSentiment(gctx, transcript)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSentimentParse, err)
		}
		sentimentResult = result
		return nil
	})
	g.Go(func() error {
		extracted, err := p.tags.ExtractTags(gctx, transcript)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTagExtraction, err)
		}
		tags = extracted
		return nil
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "transcript analysis failed", err)
		return ProcessedOutcome{}, err
	}

	tip := AdviceTip(sentimentResult.Sentiment)
	processedAt := time.Now().UTC()

	event, err := p.store.CreateCallEvent(ctx, store.CreateCallEventParams{
		ContactID:   contactID,
		AgentID:     agentID,
		RecordingID: recordingID,
		Transcript:  transcript,
		Sentiment:   sentimentResult.Sentiment,
		Score:       sentimentResult.Score,
		Tags:        store.StringArray(tags),
		Tip:         tip,
		CreatedAt:   processedAt,
	})
	if err != nil {
		return ProcessedOutcome{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	_, err = p.store.UpsertContactSummary(ctx, store.UpsertContactSummaryParams{
		ContactID:       contactID,
		LastSentiment:   sentimentResult.Sentiment,
		LastScore:       sentimentResult.Score,
		LastTags:        store.StringArray(tags),
		LastTip:         tip,
		LastInteraction: processedAt,
	})
	if err != nil {
		// The event row is durable but the summary no longer reflects it.
		// Surfaced loudly so an operator or reconciliation job can repair
		// the drift; no automatic compensation is attempted.
		p.logger.Error(ctx, "call event persisted but summary upsert failed; summary is stale for this contact", err)
		return ProcessedOutcome{}, fmt.Errorf("%w: summary upsert after event %s: %v", ErrPersistenceFailed, event.ID, err)
	}

	outcome := ProcessedOutcome{
		EventID:   event.ID.String(),
		ContactID: contactID,
		Sentiment: sentimentResult.Sentiment,
		Score:     sentimentResult.Score,
		Tags:      tags,
		Tip:       tip,
		Timestamp: event.CreatedAt,
	}
	p.notifier.Publish(ctx, EventCallEvaluated, outcome)

	p.logger.Info(ctx, "Call event processed")
	return outcome, nil
}

// GetContactSummary returns the latest-state record for a contact.
// A contact that was never processed is ErrContactNotFound, which is distinct
// from a store failure.
func (p *CallProcessor) GetContactSummary(ctx context.Context, contactID string) (store.ContactSummary, error) {
	summary, err := p.store.GetContactSummaryByContactID(ctx, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ContactSummary{}, ErrContactNotFound
		}
		p.logger.Error(ctx, "failed to get contact summary", err)
		return store.ContactSummary{}, fmt.Errorf("failed to get contact summary: %w", err)
	}
	return summary, nil
}

// GetContactHistory returns every processed call for a contact,
// most-recent-first. An unseen contact yields an empty slice, not an error.
func (p *CallProcessor) GetContactHistory(ctx context.Context, contactID string) ([]store.CallEvent, error) {
	events, err := p.store.GetCallEventsByContactID(ctx, contactID)
	if err != nil {
		p.logger.Error(ctx, "failed to get contact history", err)
		return nil, fmt.Errorf("failed to get contact history: %w", err)
	}
	return events, nil
}
