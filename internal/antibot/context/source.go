// Package context implements the Context View component of SPEC_FULL.md
// §4.4: a read interface layered over the committed chain, the items
// already accepted into the current block under validation, and the
// mempool. Callers always query the union of the layers relevant to their
// decision via a Mask.
//
// Named "context" for the spec's Context View, not to be confused with
// stdlib context.Context — every method below still takes one as its first
// argument, as Go idiom requires.
package context

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/social"
)

// Mask selects which layers a query is allowed to see, per spec.md §4.4's
// context_mask.
type Mask uint8

const (
	MaskChain Mask = 1 << iota
	MaskBlock
	MaskMempool
)

func (m Mask) has(layer Mask) bool { return m&layer != 0 }

// MempoolMask is used for CheckItem: {Chain, Mempool}.
const MempoolMask = MaskChain | MaskMempool

// BlockMask is used for CheckBlock: {Chain, Block(earlier accepted)}.
const BlockMask = MaskChain | MaskBlock

// Source is satisfied by each of the three layers (committed chain,
// in-block scratch buffer, mempool) and is what the per-kind validators
// actually query through a Masked view. One method per concrete question a
// validator asks, following the teacher's BlocktxStore convention of a
// flat, strongly-typed interface rather than a generic dispatch-by-kind
// method.
type Source interface {
	CountPosts(ctx stdctx.Context, author string, since, until int64) (int, error)
	CountPostEdits(ctx stdctx.Context, originalTxID string, since, until int64) (int, error)
	CountScores(ctx stdctx.Context, author string, since, until int64) (int, error)
	CountComplaints(ctx stdctx.Context, author string, since, until int64) (int, error)
	CountComments(ctx stdctx.Context, author string, since, until int64) (int, error)
	CountCommentEdits(ctx stdctx.Context, originalTxID string, since, until int64) (int, error)
	CountCommentScores(ctx stdctx.Context, author string, since, until int64) (int, error)
	CountProfileChanges(ctx stdctx.Context, author string, since, until int64) (int, error)

	GetPost(ctx stdctx.Context, txID string) (*social.Post, bool, error)
	GetPostChainHead(ctx stdctx.Context, originalTxID string) (*social.Post, bool, error)
	GetComment(ctx stdctx.Context, txID string) (*social.Comment, bool, error)
	GetCommentChainHead(ctx stdctx.Context, originalTxID string) (*social.Comment, bool, error)

	ScoreExists(ctx stdctx.Context, author, targetTxID string) (bool, error)
	ComplaintExists(ctx stdctx.Context, author, targetPostTxID string) (bool, error)
	CommentScoreExists(ctx stdctx.Context, author, targetTxID string) (bool, error)

	LatestSubscription(ctx stdctx.Context, author, target string) (*social.Subscription, bool, error)
	LatestBlocking(ctx stdctx.Context, author, target string) (*social.Blocking, bool, error)

	EarliestProfileChange(ctx stdctx.Context, address string) (*social.ProfileChange, bool, error)
	NicknameTaken(ctx stdctx.Context, name, excludeAddress string) (bool, error)

	ScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.Score, error)
	CommentScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.CommentScore, error)

	// CountBlockingReceivedBy counts active (non-unblocked) Blocking records
	// targeting address, for the User State Reporter's NumberOfBlocking field
	// (SPEC_FULL.md §3, restoring the original UserStateItem::number_of_blocking).
	CountBlockingReceivedBy(ctx stdctx.Context, address string) (int, error)
}
