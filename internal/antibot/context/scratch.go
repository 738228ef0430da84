package context

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/social"
)

// Scratch is the Block layer: the in-memory, append-only buffer of social
// items already accepted earlier in the block under validation. It is the
// only mutable state the engine owns during CheckBlock (spec.md §9,
// restoring the original implementation's BlockVTX map).
//
// Scratch is discarded wholesale if the block is rejected; nothing here is
// ever persisted directly.
type Scratch struct {
	posts         []social.Post
	comments      []social.Comment
	scores        []social.Score
	commentScores []social.CommentScore
	complaints    []social.Complaint
	subscriptions []social.Subscription
	blockings     []social.Blocking
	profiles      []social.ProfileChange
}

func NewScratch() *Scratch {
	return &Scratch{}
}

// Add appends an already-accepted item to the scratch buffer so later items
// in the same block see it, per spec.md §4.4's block ordering rule.
func (s *Scratch) Add(item social.Item) {
	switch item.Kind {
	case social.KindPost, social.KindPostEdit:
		s.posts = append(s.posts, *item.Post)
	case social.KindComment, social.KindCommentEdit, social.KindCommentDelete:
		s.comments = append(s.comments, *item.Comment)
	case social.KindScore:
		s.scores = append(s.scores, *item.Score)
	case social.KindCommentScore:
		s.commentScores = append(s.commentScores, *item.CommentScore)
	case social.KindComplaint:
		s.complaints = append(s.complaints, *item.Complaint)
	case social.KindSubscription:
		s.subscriptions = append(s.subscriptions, *item.Subscription)
	case social.KindBlocking:
		s.blockings = append(s.blockings, *item.Blocking)
	case social.KindProfileChange:
		s.profiles = append(s.profiles, *item.Profile)
	}
}

// Size mirrors the original BlockVTX.Size(): count of distinct kinds with
// at least one buffered item.
func (s *Scratch) Size() int {
	n := 0
	for _, l := range [][]int{
		{len(s.posts)}, {len(s.comments)}, {len(s.scores)}, {len(s.commentScores)},
		{len(s.complaints)}, {len(s.subscriptions)}, {len(s.blockings)}, {len(s.profiles)},
	} {
		if l[0] > 0 {
			n++
		}
	}
	return n
}

func inWindow(t, since, until int64) bool { return t > since && t <= until }

func (s *Scratch) CountPosts(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, p := range s.posts {
		if p.Author == author && !p.IsEdit() && inWindow(p.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountPostEdits(_ stdctx.Context, originalTxID string, since, until int64) (int, error) {
	n := 0
	for _, p := range s.posts {
		if p.IsEdit() && p.OriginalTxID == originalTxID && inWindow(p.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountScores(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, sc := range s.scores {
		if sc.Author == author && inWindow(sc.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountComplaints(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, c := range s.complaints {
		if c.Author == author && inWindow(c.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountComments(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, c := range s.comments {
		if c.Author == author && !c.IsEdit() && inWindow(c.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountCommentEdits(_ stdctx.Context, originalTxID string, since, until int64) (int, error) {
	n := 0
	for _, c := range s.comments {
		if c.IsEdit() && c.OriginalTxID == originalTxID && inWindow(c.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountCommentScores(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, cs := range s.commentScores {
		if cs.Author == author && inWindow(cs.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) CountProfileChanges(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, p := range s.profiles {
		if p.Address == author && inWindow(p.Time, since, until) {
			n++
		}
	}
	return n, nil
}

func (s *Scratch) GetPost(_ stdctx.Context, txID string) (*social.Post, bool, error) {
	for i := len(s.posts) - 1; i >= 0; i-- {
		if s.posts[i].TxID == txID {
			p := s.posts[i]
			return &p, true, nil
		}
	}
	return nil, false, nil
}

func (s *Scratch) GetPostChainHead(_ stdctx.Context, originalTxID string) (*social.Post, bool, error) {
	var head *social.Post
	for i := range s.posts {
		p := s.posts[i]
		if p.TxID == originalTxID || p.OriginalTxID == originalTxID {
			if head == nil || p.Time >= head.Time {
				cp := p
				head = &cp
			}
		}
	}
	return head, head != nil, nil
}

func (s *Scratch) GetComment(_ stdctx.Context, txID string) (*social.Comment, bool, error) {
	for i := len(s.comments) - 1; i >= 0; i-- {
		if s.comments[i].TxID == txID {
			c := s.comments[i]
			return &c, true, nil
		}
	}
	return nil, false, nil
}

func (s *Scratch) GetCommentChainHead(_ stdctx.Context, originalTxID string) (*social.Comment, bool, error) {
	var head *social.Comment
	for i := range s.comments {
		c := s.comments[i]
		if c.TxID == originalTxID || c.OriginalTxID == originalTxID {
			if head == nil || c.Time >= head.Time {
				cp := c
				head = &cp
			}
		}
	}
	return head, head != nil, nil
}

func (s *Scratch) ScoreExists(_ stdctx.Context, author, targetTxID string) (bool, error) {
	for _, sc := range s.scores {
		if sc.Author == author && sc.TargetTxID == targetTxID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scratch) ComplaintExists(_ stdctx.Context, author, targetPostTxID string) (bool, error) {
	for _, c := range s.complaints {
		if c.Author == author && c.TargetPostTxID == targetPostTxID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scratch) CommentScoreExists(_ stdctx.Context, author, targetTxID string) (bool, error) {
	for _, cs := range s.commentScores {
		if cs.Author == author && cs.TargetTxID == targetTxID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scratch) LatestSubscription(_ stdctx.Context, author, target string) (*social.Subscription, bool, error) {
	var latest *social.Subscription
	for i := range s.subscriptions {
		sub := s.subscriptions[i]
		if sub.Author == author && sub.Target == target {
			if latest == nil || sub.Time >= latest.Time {
				cp := sub
				latest = &cp
			}
		}
	}
	return latest, latest != nil, nil
}

func (s *Scratch) LatestBlocking(_ stdctx.Context, author, target string) (*social.Blocking, bool, error) {
	var latest *social.Blocking
	for i := range s.blockings {
		b := s.blockings[i]
		if b.Author == author && b.Target == target {
			if latest == nil || b.Time >= latest.Time {
				cp := b
				latest = &cp
			}
		}
	}
	return latest, latest != nil, nil
}

func (s *Scratch) EarliestProfileChange(_ stdctx.Context, address string) (*social.ProfileChange, bool, error) {
	var earliest *social.ProfileChange
	for i := range s.profiles {
		p := s.profiles[i]
		if p.Address == address {
			if earliest == nil || p.Time < earliest.Time {
				cp := p
				earliest = &cp
			}
		}
	}
	return earliest, earliest != nil, nil
}

func (s *Scratch) NicknameTaken(_ stdctx.Context, name, excludeAddress string) (bool, error) {
	for _, p := range s.profiles {
		if p.Name == name && p.Address != excludeAddress {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scratch) ScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.Score, error) {
	var received []social.Score
	for _, sc := range s.scores {
		if sc.BlockHeight >= uptoHeight {
			continue
		}
		post, ok, _ := s.GetPost(ctx, sc.TargetTxID)
		if ok && post.Author == address {
			received = append(received, sc)
		}
	}
	return received, nil
}

func (s *Scratch) CommentScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.CommentScore, error) {
	var received []social.CommentScore
	for _, cs := range s.commentScores {
		if cs.BlockHeight >= uptoHeight {
			continue
		}
		comment, ok, _ := s.GetComment(ctx, cs.TargetTxID)
		if ok && comment.Author == address {
			received = append(received, cs)
		}
	}
	return received, nil
}

// CountBlockingReceivedBy counts distinct authors currently blocking
// address, resolving each author's latest record (Blocking's latest-wins
// semantics) and excluding any whose latest record is an unblock.
func (s *Scratch) CountBlockingReceivedBy(_ stdctx.Context, address string) (int, error) {
	latest := make(map[string]social.Blocking)
	for _, b := range s.blockings {
		if b.Target != address {
			continue
		}
		if cur, ok := latest[b.Author]; !ok || b.Time >= cur.Time {
			latest[b.Author] = b
		}
	}
	n := 0
	for _, b := range latest {
		if !b.Unblock {
			n++
		}
	}
	return n, nil
}
