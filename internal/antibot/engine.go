package antibot

import (
	stdctx "context"
	"errors"
	"sort"
	"sync"

	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/ports"
	"github.com/socialchain/antibot/internal/antibot/reputation"
	"github.com/socialchain/antibot/internal/antibot/validate"
	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Engine is the Admission Orchestrator (spec.md §4.6): the process-wide
// handle holding the Limit Table and the collaborators every decision reads
// through, with no other mutable state of its own. Grounded on the
// teacher's validator.GenericValidator, generalised from "one transaction,
// one policy struct" to "one item, three layered collaborators". The RWMutex
// maps the node's "main validation context under the chain lock" (spec.md
// §5) onto Go: CheckBlock takes the write lock, CheckItem/CheckRegistration
// take the read lock.
type Engine struct {
	mu sync.RWMutex

	Ledger     ports.Ledger
	SocialDB   context.Source // Chain layer
	Mempool    context.Source // Mempool layer
	Reputation *reputation.Ledger
	Classifier *classifier.Classifier
	Limits     *limits.Table
	Thresholds limits.Thresholds
}

// New wires an Engine from its collaborators.
func New(ledger ports.Ledger, socialDB, mempool context.Source, rep *reputation.Ledger, cls *classifier.Classifier, table *limits.Table, thresholds limits.Thresholds) *Engine {
	return &Engine{
		Ledger:     ledger,
		SocialDB:   socialDB,
		Mempool:    mempool,
		Reputation: rep,
		Classifier: cls,
		Limits:     table,
		Thresholds: thresholds,
	}
}

// CheckItem validates a single candidate item against the committed chain
// plus the mempool (spec.md §4.6, mask {Chain, Mempool}). Used by the RPC
// submission path and by mempool acceptance.
func (e *Engine) CheckItem(ctx stdctx.Context, item social.Item) (Verdict, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	view := context.New(context.MempoolMask, e.SocialDB, nil, e.Mempool)
	return e.checkOne(ctx, view, item, -1)
}

// CheckBlock validates every item in a candidate block in the deterministic
// order spec.md §4.6 requires (group by author, sort by declared time, then
// kind priority, then item index), feeding each into its validator with
// mask {Chain, Block(earlier accepted)}. It returns one Verdict per item,
// index-aligned with the input slice; only items with a Success verdict are
// added to the scratch buffer so later items in the block see them. Callers
// apply spec.md's block-level rule ("if any item fails, the whole block is
// rejected") by scanning the returned vector for a non-Success entry.
func (e *Engine) CheckBlock(ctx stdctx.Context, items []social.Item) ([]Verdict, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ordered := orderForBlock(items)
	scratch := context.NewScratch()
	view := context.New(context.BlockMask, e.SocialDB, scratch, nil)

	results := make([]Verdict, len(ordered))
	for _, oi := range ordered {
		v, err := e.checkOne(ctx, view, oi.item, oi.index)
		if err != nil {
			return nil, err
		}
		results[oi.index] = v
		if v != Success {
			continue // record this item's verdict but keep scanning so every item gets one
		}
		scratch.Add(oi.item)
	}
	return results, nil
}

type orderedItem struct {
	item  social.Item
	index int
}

// kindPriority orders one author's items that share a declared time:
// ProfileChange before everything else (registration must land before
// anything depending on it), Post before PostEdit, Comment before
// CommentEdit/CommentDelete, everything else after (spec.md §4.6).
func kindPriority(k social.Kind) int {
	switch k {
	case social.KindProfileChange:
		return 0
	case social.KindPost:
		return 1
	case social.KindPostEdit:
		return 2
	case social.KindComment:
		return 3
	case social.KindCommentEdit, social.KindCommentDelete:
		return 4
	default:
		return 5
	}
}

// orderForBlock groups by author, then sorts by declared time, then by kind
// priority, with ties broken by original block index (spec.md §4.6). The
// grouping itself only matters insofar as it keeps one author's items
// contiguous; the sort key below already encodes the full ordering rule.
func orderForBlock(items []social.Item) []orderedItem {
	ordered := make([]orderedItem, len(items))
	for i, it := range items {
		ordered[i] = orderedItem{item: it, index: i}
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		ia, ib := ordered[a].item, ordered[b].item
		if ia.Author() != ib.Author() {
			return ia.Author() < ib.Author()
		}
		if ia.Time() != ib.Time() {
			return ia.Time() < ib.Time()
		}
		if kindPriority(ia.Kind) != kindPriority(ib.Kind) {
			return kindPriority(ia.Kind) < kindPriority(ib.Kind)
		}
		return ordered[a].index < ordered[b].index
	})
	return ordered
}

// checkOne classifies the item's author (with the registration exemption
// for an address's very first ProfileChange) and dispatches to the
// matching per-kind validator.
func (e *Engine) checkOne(ctx stdctx.Context, view context.Source, item social.Item, _ int) (Verdict, error) {
	height, err := e.Ledger.ChainHeight(ctx)
	if err != nil {
		return Failed, nil
	}
	now, err := e.Ledger.AdjustedTime(ctx)
	if err != nil {
		return Failed, nil
	}

	_, registered, err := view.EarliestProfileChange(ctx, item.Author())
	if err != nil {
		return Failed, nil
	}

	isFirstProfileChange := item.Kind == social.KindProfileChange && !registered

	if !registered && !isFirstProfileChange {
		return NotRegistered, nil
	}

	var actor classifier.Result
	if !isFirstProfileChange {
		// Classify through the same view so a registration accepted earlier
		// in this block (or pending in the mempool) is visible.
		cls := *e.Classifier
		cls.View = view
		actor, err = cls.Classify(ctx, item.Author(), height, now)
		if err != nil {
			if errors.Is(err, classifier.ErrNotRegistered) {
				return NotRegistered, nil
			}
			return Failed, nil
		}
	}

	deps := validate.Deps{
		View:       view,
		Limits:     e.Limits,
		Thresholds: e.Thresholds,
		Actor:      actor,
		Height:     height,
		Now:        now,
	}

	return e.dispatch(ctx, deps, item, isFirstProfileChange), nil
}

func (e *Engine) dispatch(ctx stdctx.Context, deps validate.Deps, item social.Item, isFirstProfileChange bool) verdict.Verdict {
	switch item.Kind {
	case social.KindPost:
		return validate.Post(ctx, deps, item.Post)
	case social.KindPostEdit:
		return validate.PostEdit(ctx, deps, item.Post)
	case social.KindScore:
		return validate.Score(ctx, deps, item.Score)
	case social.KindComplaint:
		return validate.Complaint(ctx, deps, item.Complaint)
	case social.KindComment:
		return validate.Comment(ctx, deps, item.Comment)
	case social.KindCommentEdit:
		return validate.CommentEdit(ctx, deps, item.Comment)
	case social.KindCommentDelete:
		return validate.CommentDelete(ctx, deps, item.Comment)
	case social.KindCommentScore:
		return validate.CommentScore(ctx, deps, item.CommentScore)
	case social.KindSubscription:
		return validate.Subscription(ctx, deps, item.Subscription)
	case social.KindBlocking:
		return validate.Blocking(ctx, deps, item.Blocking)
	case social.KindProfileChange:
		return validate.ProfileChange(ctx, deps, item.Profile, isFirstProfileChange)
	default:
		return Unknown
	}
}

// CheckInputs verifies the funding UTXOs a social transaction claims to
// spend actually exist and are controlled by its author (spec.md §4.6,
// restored to the public surface per SPEC_FULL.md §1). Grounded on the
// teacher's validator UTXO/fee checks (checkStandardFees/isFeePaidEnough),
// generalised from "enough fee" to "author actually owns these outpoints".
func (e *Engine) CheckInputs(ctx stdctx.Context, author string, spentTxIDs []string) (bool, error) {
	owned, err := e.Ledger.UTXOsOf(ctx, author)
	if err != nil {
		return false, err
	}
	ownedTx := make(map[string]bool, len(owned))
	for _, o := range owned {
		ownedTx[o.TxID] = true
	}
	for _, txid := range spentTxIDs {
		if !ownedTx[txid] {
			return false, nil
		}
	}
	return true, nil
}

// CheckRegistration reports whether address has any recorded ProfileChange,
// restored as a standalone operation (SPEC_FULL.md §1) so RPC can check
// before a user's very first submission without running a full CheckItem.
func (e *Engine) CheckRegistration(ctx stdctx.Context, address string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, registered, err := e.SocialDB.EarliestProfileChange(ctx, address)
	return registered, err
}
