// Package reputation implements the Reputation Ledger component (spec.md
// §4.3): a deterministic recomputation of an address's reputation from the
// primary Score/CommentScore record, never accepted as an input from
// outside the engine. Grounded on the teacher's internal/cache.Store for
// height-stratified memoization (SPEC_FULL.md §4.3): the cache key is
// (address, height) and is never invalidated by TTL across a reorg — callers
// hand the ledger a fresh Context View after a reorg instead.
package reputation

import (
	stdctx "context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/cache"
)

// Ledger computes and memoizes reputation(address, height) per spec.md
// §4.3's Σ f(score.value)·g(scorer) formula.
type Ledger struct {
	view       context.Source
	thresholds limits.Thresholds
	cache      cache.Store
	ttl        time.Duration
}

// New builds a Ledger reading scores through view (cmd/socialengine passes
// the Chain-layer store), caching results in store. ttl only bounds memory growth of the memoization cache;
// correctness never depends on expiry since keys are height-qualified.
func New(view context.Source, thresholds limits.Thresholds, store cache.Store, ttl time.Duration) *Ledger {
	return &Ledger{view: view, thresholds: thresholds, cache: store, ttl: ttl}
}

// At returns reputation(address, height), memoized by the (address, height)
// pair so repeated lookups within the same block never recompute.
func (l *Ledger) At(ctx stdctx.Context, address string, height int32) (int64, error) {
	key := cacheKey(address, height)
	if cached, err := l.cache.Get(key); err == nil {
		return decodeReputation(cached), nil
	}

	rep, err := l.compute(ctx, address, height)
	if err != nil {
		return 0, err
	}

	_ = l.cache.Set(key, encodeReputation(rep), l.ttl)
	return rep, nil
}

func (l *Ledger) compute(ctx stdctx.Context, address string, height int32) (int64, error) {
	postScores, err := l.view.ScoresReceivedBy(ctx, address, height)
	if err != nil {
		return 0, err
	}
	commentScores, err := l.view.CommentScoresReceivedBy(ctx, address, height)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, sc := range postScores {
		if sc.Author == address || sc.Lottery {
			continue // self-scores and lottery-coinbase scores excluded
		}
		allowed, err := l.AllowModifyReputationOverPost(ctx, sc.Author, sc.TxID, sc.TargetTxID, sc.Time, height, sc.Lottery)
		if err != nil {
			return 0, err
		}
		if !allowed {
			continue
		}
		total += fPostScore(sc.Value)
	}

	for _, cs := range commentScores {
		if cs.Author == address || cs.Lottery {
			continue
		}
		allowed, err := l.AllowModifyReputationOverComment(ctx, cs.Author, cs.TxID, cs.TargetTxID, cs.Time, height, cs.Lottery)
		if err != nil {
			return 0, err
		}
		if !allowed {
			continue
		}
		total += fCommentScore(cs.Value)
	}

	return total, nil
}

// fPostScore rescales a 1..5 post score: {1,2,3} negative, {4,5} positive.
func fPostScore(value int) int64 {
	switch value {
	case 1:
		return -2
	case 2:
		return -1
	case 3:
		return 0
	case 4:
		return 1
	case 5:
		return 2
	default:
		return 0
	}
}

// fCommentScore rescales a -1/+1 comment score to -1/+1 (spec.md §4.3):
// half the ±2 that the strongest post scores (1 and 5) contribute.
func fCommentScore(value int) int64 {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}

// AllowModifyReputation reports g(scorer) from spec.md §4.3: whether
// scorer's reputation and eligibility conditions let its score count.
func (l *Ledger) AllowModifyReputation(ctx stdctx.Context, scorer string, height int32) (bool, error) {
	rep, err := l.At(ctx, scorer, height)
	if err != nil {
		return false, err
	}
	return rep >= l.thresholds.ScoringReputation, nil
}

// AllowModifyReputationOverPost applies the over-post relaxation (spec.md
// §4.3, outbound signature §6: AllowModifyReputationOverPost(scorer, author,
// height, tx, lottery)): a scorer below the main threshold still counts
// when the scored post was created no more than OverPostWindowSeconds
// before scoredItemTime (the score's own time) and the scorer's own
// reputation at height is at least OverPostReputation. The reputation of
// the scorer's individual posts and comments is not consulted. scoreTxID
// identifies the score transaction itself (spec's "tx") and is not read
// by the check; lottery short-circuits to false
// regardless of reputation, since lottery-coinbase scores never contribute
// (spec.md §4.3). author is derived from targetTxID's record rather than
// passed by the caller, since the Context View already exposes it via the
// lookup this function has to do anyway.
func (l *Ledger) AllowModifyReputationOverPost(ctx stdctx.Context, scorer, scoreTxID, targetTxID string, scoredItemTime int64, height int32, lottery bool) (bool, error) {
	if lottery {
		return false, nil
	}
	ok, err := l.AllowModifyReputation(ctx, scorer, height)
	if err != nil || ok {
		return ok, err
	}
	post, found, err := l.view.GetPost(ctx, targetTxID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return l.overPostRelaxationApplies(ctx, scorer, post.Time, scoredItemTime, height)
}

// AllowModifyReputationOverComment is AllowModifyReputationOverPost's
// counterpart for comment scores.
func (l *Ledger) AllowModifyReputationOverComment(ctx stdctx.Context, scorer, scoreTxID, targetTxID string, scoredItemTime int64, height int32, lottery bool) (bool, error) {
	if lottery {
		return false, nil
	}
	ok, err := l.AllowModifyReputation(ctx, scorer, height)
	if err != nil || ok {
		return ok, err
	}
	comment, found, err := l.view.GetComment(ctx, targetTxID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return l.overPostRelaxationApplies(ctx, scorer, comment.Time, scoredItemTime, height)
}

func (l *Ledger) overPostRelaxationApplies(ctx stdctx.Context, scorer string, itemTime, scoredItemTime int64, height int32) (bool, error) {
	if scoredItemTime-itemTime > l.thresholds.OverPostWindowSeconds {
		return false, nil
	}
	rep, err := l.At(ctx, scorer, height)
	if err != nil {
		return false, err
	}
	return rep >= l.thresholds.OverPostReputation, nil
}

func cacheKey(address string, height int32) string {
	return fmt.Sprintf("reputation:%s:%d", address, height)
}

func encodeReputation(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func decodeReputation(b []byte) int64 {
	if len(b) < 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}
