package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gocery/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxListLimit    = 200
	cursorVersionV1 = "v1"
)

var ErrInvalidCursor = errs.New("malformed pagination cursor")

// Cursor is the opaque keyset position handed back to the client as
// nextCursor and echoed on the following request.
type Cursor struct {
	After string
}

// Uses microsecond precision to align with the postgres timestamp columns
// the keyset compares against.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := fmt.Sprintf("%s:%d-%s", cursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor is not base64url: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("unknown cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(micros), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
