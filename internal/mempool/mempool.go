// Package mempool adapts the node's pending-transaction pool into the
// Mempool layer of the Context View (spec.md §4.4, §6 "Mempool: iterator
// over pending social items"). Grounded on the teacher's internal/tx_finder
// read-through pattern: a thin, thread-safe read surface over pending state
// the engine itself never mutates (spec.md §5 shared-resource policy).
package mempool

import (
	stdctx "context"
	"sync"

	"github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/social"
)

// Store holds pending social items not yet included in any block. It
// satisfies context.Source so it can be layered into a Masked view
// alongside the committed chain and the in-block scratch buffer.
//
// The mempool subsystem upstream of the engine is the only writer; the
// engine only ever reads through this type (spec.md §5).
type Store struct {
	mu      sync.RWMutex
	scratch *context.Scratch
	items   map[string]social.Item
}

func New() *Store {
	return &Store{scratch: context.NewScratch(), items: make(map[string]social.Item)}
}

// Add admits an item into the pool. Callers (the mempool subsystem) are
// responsible for having already called Engine.CheckItem successfully.
func (s *Store) Add(item social.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.TxID()] = item
	s.scratch.Add(item)
}

// Remove evicts an item, e.g. once it has been mined into a block.
func (s *Store) Remove(txID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[txID]; !ok {
		return
	}
	delete(s.items, txID)
	rebuilt := context.NewScratch()
	for _, it := range s.items {
		rebuilt.Add(it)
	}
	s.scratch = rebuilt
}

// Items returns a snapshot of all pending items, for iteration by the
// mempool subsystem (e.g. to rebroadcast or to feed block assembly).
func (s *Store) Items() []social.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]social.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out
}

func (s *Store) CountPosts(ctx stdctx.Context, author string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountPosts(ctx, author, since, until)
}

func (s *Store) CountPostEdits(ctx stdctx.Context, originalTxID string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountPostEdits(ctx, originalTxID, since, until)
}

func (s *Store) CountScores(ctx stdctx.Context, author string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountScores(ctx, author, since, until)
}

func (s *Store) CountComplaints(ctx stdctx.Context, author string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountComplaints(ctx, author, since, until)
}

func (s *Store) CountComments(ctx stdctx.Context, author string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountComments(ctx, author, since, until)
}

func (s *Store) CountCommentEdits(ctx stdctx.Context, originalTxID string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountCommentEdits(ctx, originalTxID, since, until)
}

func (s *Store) CountCommentScores(ctx stdctx.Context, author string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountCommentScores(ctx, author, since, until)
}

func (s *Store) CountProfileChanges(ctx stdctx.Context, author string, since, until int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountProfileChanges(ctx, author, since, until)
}

func (s *Store) GetPost(ctx stdctx.Context, txID string) (*social.Post, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.GetPost(ctx, txID)
}

func (s *Store) GetPostChainHead(ctx stdctx.Context, originalTxID string) (*social.Post, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.GetPostChainHead(ctx, originalTxID)
}

func (s *Store) GetComment(ctx stdctx.Context, txID string) (*social.Comment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.GetComment(ctx, txID)
}

func (s *Store) GetCommentChainHead(ctx stdctx.Context, originalTxID string) (*social.Comment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.GetCommentChainHead(ctx, originalTxID)
}

func (s *Store) ScoreExists(ctx stdctx.Context, author, targetTxID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.ScoreExists(ctx, author, targetTxID)
}

func (s *Store) ComplaintExists(ctx stdctx.Context, author, targetPostTxID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.ComplaintExists(ctx, author, targetPostTxID)
}

func (s *Store) CommentScoreExists(ctx stdctx.Context, author, targetTxID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CommentScoreExists(ctx, author, targetTxID)
}

func (s *Store) LatestSubscription(ctx stdctx.Context, author, target string) (*social.Subscription, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.LatestSubscription(ctx, author, target)
}

func (s *Store) LatestBlocking(ctx stdctx.Context, author, target string) (*social.Blocking, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.LatestBlocking(ctx, author, target)
}

func (s *Store) EarliestProfileChange(ctx stdctx.Context, address string) (*social.ProfileChange, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.EarliestProfileChange(ctx, address)
}

func (s *Store) NicknameTaken(ctx stdctx.Context, name, excludeAddress string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.NicknameTaken(ctx, name, excludeAddress)
}

func (s *Store) ScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.ScoresReceivedBy(ctx, address, uptoHeight)
}

func (s *Store) CommentScoresReceivedBy(ctx stdctx.Context, address string, uptoHeight int32) ([]social.CommentScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CommentScoresReceivedBy(ctx, address, uptoHeight)
}

func (s *Store) CountBlockingReceivedBy(ctx stdctx.Context, address string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scratch.CountBlockingReceivedBy(ctx, address)
}

var _ context.Source = (*Store)(nil)
