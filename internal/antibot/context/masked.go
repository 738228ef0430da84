package context

import (
	stdctx "context"
	"errors"

	"github.com/socialchain/antibot/internal/social"
)

// Masked composes the three layers into the single Source the validators
// see, restricted to whichever layers Mask selects. This is "the Orchestrator
// always queries the union of contexts relevant to the decision" from
// spec.md §4.4.
type Masked struct {
	Chain   Source
	Block   Source
	Mempool Source
	Mask    Mask
}

func New(mask Mask, chain, block, mempool Source) *Masked {
	return &Masked{Chain: chain, Block: block, Mempool: mempool, Mask: mask}
}

func (v *Masked) layers() []Source {
	var layers []Source
	if v.Mask.has(MaskChain) && v.Chain != nil {
		layers = append(layers, v.Chain)
	}
	if v.Mask.has(MaskBlock) && v.Block != nil {
		layers = append(layers, v.Block)
	}
	if v.Mask.has(MaskMempool) && v.Mempool != nil {
		layers = append(layers, v.Mempool)
	}
	return layers
}

func (v *Masked) CountPosts(ctx stdctx.Context, author string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountPosts(ctx, author, since, until) })
}

func (v *Masked) CountPostEdits(ctx stdctx.Context, originalTxID string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountPostEdits(ctx, originalTxID, since, until) })
}

func (v *Masked) CountScores(ctx stdctx.Context, author string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountScores(ctx, author, since, until) })
}

func (v *Masked) CountComplaints(ctx stdctx.Context, author string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountComplaints(ctx, author, since, until) })
}

func (v *Masked) CountComments(ctx stdctx.Context, author string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountComments(ctx, author, since, until) })
}

func (v *Masked) CountCommentEdits(ctx stdctx.Context, originalTxID string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountCommentEdits(ctx, originalTxID, since, until) })
}

func (v *Masked) CountCommentScores(ctx stdctx.Context, author string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountCommentScores(ctx, author, since, until) })
}

func (v *Masked) CountProfileChanges(ctx stdctx.Context, author string, since, until int64) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountProfileChanges(ctx, author, since, until) })
}

func (v *Masked) GetPost(ctx stdctx.Context, txID string) (*social.Post, bool, error) {
	for _, s := range v.layers() {
		if p, ok, err := s.GetPost(ctx, txID); err != nil {
			return nil, false, err
		} else if ok {
			return p, true, nil
		}
	}
	return nil, false, nil
}

func (v *Masked) GetPostChainHead(ctx stdctx.Context, originalTxID string) (*social.Post, bool, error) {
	return latestAcross(v.layers(), func(s Source) (*social.Post, bool, error) {
		return s.GetPostChainHead(ctx, originalTxID)
	}, func(p *social.Post) int64 { return p.Time })
}

func (v *Masked) GetComment(ctx stdctx.Context, txID string) (*social.Comment, bool, error) {
	for _, s := range v.layers() {
		if c, ok, err := s.GetComment(ctx, txID); err != nil {
			return nil, false, err
		} else if ok {
			return c, true, nil
		}
	}
	return nil, false, nil
}

func (v *Masked) GetCommentChainHead(ctx stdctx.Context, originalTxID string) (*social.Comment, bool, error) {
	return latestAcross(v.layers(), func(s Source) (*social.Comment, bool, error) {
		return s.GetCommentChainHead(ctx, originalTxID)
	}, func(c *social.Comment) int64 { return c.Time })
}

func (v *Masked) ScoreExists(ctx stdctx.Context, author, targetTxID string) (bool, error) {
	return anyTrue(v.layers(), func(s Source) (bool, error) { return s.ScoreExists(ctx, author, targetTxID) })
}

func (v *Masked) ComplaintExists(ctx stdctx.Context, author, targetPostTxID string) (bool, error) {
	return anyTrue(v.layers(), func(s Source) (bool, error) { return s.ComplaintExists(ctx, author, targetPostTxID) })
}

func (v *Masked) CommentScoreExists(ctx stdctx.Context, author, targetTxID string) (bool, error) {
	return anyTrue(v.layers(), func(s Source) (bool, error) { return s.CommentScoreExists(ctx, author, targetTxID) })
}

func (v *Masked) LatestSubscription(ctx stdctx.Context, author, target string) (*social.Subscription, bool, error) {
	return latestAcross(v.layers(), func(s Source) (*social.Subscription, bool, error) {
		return s.LatestSubscription(ctx, author, target)
	}, func(sub *social.Subscription) int64 { return sub.Time })
}

func (v *Masked) LatestBlocking(ctx stdctx.Context, author, target string) (*social.Blocking, bool, error) {
	return latestAcross(v.layers(), func(s Source) (*social.Blocking, bool, error) {
		return s.LatestBlocking(ctx, author, target)
	}, func(b *social.Blocking) int64 { return b.Time })
}

func (v *Masked) EarliestProfileChange(ctx stdctx.Context, address string) (*social.ProfileChange, bool, error) {
	var earliest *social.ProfileChange
	for _, s := range v.layers() {
		pc, ok, err := s.EarliestProfileChange(ctx, address)
		if err != nil {
			return nil, false, err
		}
		if ok && (earliest == nil || pc.Time < earliest.Time) {
			earliest = pc
		}
	}
	return earliest, earliest != nil, nil
}

func (v *Masked) NicknameTaken(ctx stdctx.Context, name, excludeAddress string) (bool, error) {
	return anyTrue(v.layers(), func(s Source) (bool, error) { return s.NicknameTaken(ctx, name, excludeAddress) })
}

func (v *Masked) ScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.Score, error) {
	var all []social.Score
	for _, s := range v.layers() {
		scores, err := s.ScoresReceivedBy(ctx, address, uptoHeight)
		if err != nil {
			return nil, err
		}
		all = append(all, scores...)
	}
	return all, nil
}

func (v *Masked) CommentScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.CommentScore, error) {
	var all []social.CommentScore
	for _, s := range v.layers() {
		scores, err := s.CommentScoresReceivedBy(ctx, address, uptoHeight)
		if err != nil {
			return nil, err
		}
		all = append(all, scores...)
	}
	return all, nil
}

func (v *Masked) CountBlockingReceivedBy(ctx stdctx.Context, address string) (int, error) {
	return sumInt(v.layers(), func(s Source) (int, error) { return s.CountBlockingReceivedBy(ctx, address) })
}

var errNilLayer = errors.New("context: nil layer in masked view")

func sumInt(layers []Source, f func(Source) (int, error)) (int, error) {
	total := 0
	for _, s := range layers {
		if s == nil {
			return 0, errNilLayer
		}
		n, err := f(s)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func anyTrue(layers []Source, f func(Source) (bool, error)) (bool, error) {
	for _, s := range layers {
		ok, err := f(s)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func latestAcross[T any](layers []Source, f func(Source) (T, bool, error), timeOf func(T) int64) (T, bool, error) {
	var best T
	found := false
	for _, s := range layers {
		v, ok, err := f(s)
		var zero T
		if err != nil {
			return zero, false, err
		}
		if ok && (!found || timeOf(v) >= timeOf(best)) {
			best = v
			found = true
		}
	}
	return best, found, nil
}
