package openai

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"call-insights-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const (
	// Prompts mirror what the supervisors' dashboard was tuned against; the
	// model replies in Portuguese like the calls it analyzes.
	sentimentSystemPrompt = "Classifique o sentimento do cliente como positivo, negativo ou neutro. " +
		"Dê também uma pontuação de 0 a 100. Responda no formato: sentimento:positivo\npontuacao:85"
	tagsSystemPrompt = "Extraia até 5 palavras-chave principais do texto, como se fossem tags, separadas por vírgula."

	maxTags = 5

	requestTimeout = 30 * time.Second
)

// SentimentResult is the parsed pair returned by the sentiment analysis.
type SentimentResult struct {
	Sentiment string
	Score     int
}

// Client wraps the OpenAI SDK for the three capabilities the call pipeline
// needs: Whisper transcription, sentiment classification and tag extraction.
type Client struct {
	opts   []openaiOption.RequestOption
	logger *observability.Logger
}

func NewClient(apiKey string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &Client{
		opts: []openaiOption.RequestOption{
			openaiOption.WithAPIKey(apiKey),
			// Every call is bounded on its own, independent of the caller's
			// context deadline.
			openaiOption.WithRequestTimeout(requestTimeout),
		},
		logger: logger,
	}, nil
}

// Transcribe sends audio bytes to the Whisper API and returns the transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}

	client := openai.NewClient(c.opts...)

	file := openai.File(bytes.NewReader(audio), "recording.wav", "audio/wav")
	resp, err := client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModelWhisper1,
		File:  file,
	})
	if err != nil {
		c.logger.Error(ctx, "whisper transcription failed", err)
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	return resp.Text, nil
}

// AnalyzeSentiment classifies the transcript and returns the parsed
// label/score pair. A reply whose score line is not an integer is an error,
// never a silent zero.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (SentimentResult, error) {
	reply, err := c.completion(ctx, sentimentSystemPrompt, text)
	if err != nil {
		return SentimentResult{}, err
	}

	sentiment, score, err := parseSentimentReply(reply)
	if err != nil {
		c.logger.Error(ctx, "failed to parse sentiment reply", err)
		return SentimentResult{}, err
	}
	return SentimentResult{Sentiment: sentiment, Score: score}, nil
}

// ExtractTags asks the model for up to five keywords and normalizes them.
func (c *Client) ExtractTags(ctx context.Context, text string) ([]string, error) {
	reply, err := c.completion(ctx, tagsSystemPrompt, text)
	if err != nil {
		return nil, err
	}
	return parseTags(reply), nil
}

func (c *Client) completion(ctx context.Context, systemPrompt, userText string) (string, error) {
	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userText),
		},
		Model: openai.ChatModelGPT3_5Turbo,
	})
	if err != nil {
		c.logger.Error(ctx, "chat completion failed", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseSentimentReply expects two label:value lines, e.g.
//
//	sentimento:positivo
//	pontuacao:85
func parseSentimentReply(reply string) (string, int, error) {
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	if len(lines) < 2 {
		return "", 0, fmt.Errorf("expected two lines in sentiment reply, got %d", len(lines))
	}

	sentiment, err := valueAfterColon(lines[0])
	if err != nil {
		return "", 0, fmt.Errorf("sentiment line: %w", err)
	}

	scoreStr, err := valueAfterColon(lines[1])
	if err != nil {
		return "", 0, fmt.Errorf("score line: %w", err)
	}
	score, err := strconv.Atoi(scoreStr)
	if err != nil {
		return "", 0, fmt.Errorf("score %q is not an integer", scoreStr)
	}

	return strings.ToLower(sentiment), score, nil
}

func valueAfterColon(line string) (string, error) {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return "", fmt.Errorf("missing colon in %q", line)
	}
	return strings.TrimSpace(value), nil
}

// parseTags splits a comma-delimited reply into trimmed, lowercased tags.
// An empty reply yields a single empty-string tag; the dashboard has always
// rendered that as a blank chip, so the behavior is kept.
func parseTags(reply string) []string {
	parts := strings.Split(reply, ",")
	if len(parts) > maxTags {
		parts = parts[:maxTags]
	}
	tags := make([]string, len(parts))
	for i, part := range parts {
		tags[i] = strings.ToLower(strings.TrimSpace(part))
	}
	return tags
}
