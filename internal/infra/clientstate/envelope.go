// Package clientstate persists the shopper-held state documents (cart,
// wishlist, comparison set) as versioned JSON envelopes. The envelope keeps
// a schema version next to the payload so a future shape change can migrate
// instead of silently resetting every stored cart.
package clientstate

import (
	"encoding/json"
	"log/slog"
)

// SchemaVersion is bumped whenever the persisted shape of any scope changes.
const SchemaVersion = 1

type Scope string

const (
	ScopeCart       Scope = "cart"
	ScopeWishlist   Scope = "wishlist"
	ScopeComparison Scope = "comparison"
)

func (s Scope) IsValid() bool {
	switch s {
	case ScopeCart, ScopeWishlist, ScopeComparison:
		return true
	default:
		return false
	}
}

type Envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func Encode(data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Version: SchemaVersion, Data: raw})
}

// Decode rehydrates a stored envelope into out. Corrupt payloads and
// version mismatches are recoverable conditions: Decode reports false and
// the caller starts from the empty state.
func Decode(raw []byte, out any) bool {
	if len(raw) == 0 {
		return false
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		slog.Debug("discarding corrupt client state envelope", "error", err.Error())
		return false
	}
	if env.Version != SchemaVersion {
		slog.Debug("discarding client state with unknown schema version", "version", env.Version)
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		slog.Debug("discarding client state with malformed payload", "error", err.Error())
		return false
	}
	return true
}
