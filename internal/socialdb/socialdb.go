// Package socialdb names the Chain-layer storage contract the admission
// engine is wired against; the concrete implementation lives in
// internal/socialdb/postgresql. Kept separate from internal/antibot/context
// so storage concerns (migrations, connection pooling) don't leak into the
// policy packages.
package socialdb

import (
	"context"

	antibotcontext "github.com/socialchain/antibot/internal/antibot/context"
)

// Store is the Chain layer: a context.Source that also owns a connection
// lifecycle, satisfied by postgresql.Store.
type Store interface {
	antibotcontext.Source
	Close() error
	Ping(ctx context.Context) error
}
