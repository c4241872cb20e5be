package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	quoted := make([]string, len(a))
	for i, s := range a {
		quoted[i] = `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	// Handle empty array
	if str == "" || str == "{}" {
		*a = []string{}
		return nil
	}

	str = strings.TrimPrefix(str, "{")
	str = strings.TrimSuffix(str, "}")

	// Elements split only on commas outside quotes; quoted elements may
	// themselves contain commas, quotes and backslashes.
	var out []string
	var elem strings.Builder
	inQuotes := false
	escaped := false
	for _, r := range str {
		switch {
		case escaped:
			elem.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, elem.String())
			elem.Reset()
		default:
			elem.WriteRune(r)
		}
	}
	out = append(out, elem.String())

	*a = out
	return nil
}

// CallEvent is the immutable record of one fully-processed call.
// Rows are append-only; retention is an external concern.
type CallEvent struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Seq         int64       `db:"seq" json:"-"`
	ContactID   string      `db:"contact_id" json:"contactId"`
	AgentID     string      `db:"agent_id" json:"agentId"`
	RecordingID string      `db:"recording_id" json:"recordingId"`
	Transcript  string      `db:"transcript" json:"transcript"`
	Sentiment   string      `db:"sentiment" json:"sentiment"`
	Score       int         `db:"score" json:"score"`
	Tags        StringArray `db:"tags" json:"tags"`
	Tip         string      `db:"tip" json:"tip"`
	CreatedAt   time.Time   `db:"created_at" json:"timestamp"`
}

// ContactSummary is the latest-state record for a contact, fully
// overwritten on every processed call for that contact.
type ContactSummary struct {
	ContactID       string      `db:"contact_id"`
	LastSentiment   string      `db:"last_sentiment"`
	LastScore       int         `db:"last_score"`
	LastTags        StringArray `db:"last_tags"`
	LastTip         string      `db:"last_tip"`
	LastInteraction time.Time   `db:"last_interaction"`
	UpdatedAt       time.Time   `db:"updated_at"`
}
