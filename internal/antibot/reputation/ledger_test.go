package reputation_test

import (
	stdctx "context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	antibotctx "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/reputation"
	"github.com/socialchain/antibot/internal/cache"
	"github.com/socialchain/antibot/internal/social"
)

func newTestCache(t *testing.T) cache.Store {
	t.Helper()
	store, err := cache.New(cache.Config{Engine: cache.EngineMemory})
	require.NoError(t, err)
	return store
}

// fakeSource is a minimal context.Source stub exercising only the methods
// the Reputation Ledger calls, following the teacher's preference for
// hand-rolled in-memory fakes over a real store in unit tests.
type fakeSource struct {
	antibotctx.Source
	postScores    []social.Score
	commentScores []social.CommentScore
	posts         map[string]social.Post
	comments      map[string]social.Comment
}

func (f *fakeSource) ScoresReceivedBy(stdctx.Context, string, int32) ([]social.Score, error) {
	return f.postScores, nil
}

func (f *fakeSource) CommentScoresReceivedBy(stdctx.Context, string, int32) ([]social.CommentScore, error) {
	return f.commentScores, nil
}

func (f *fakeSource) GetPost(_ stdctx.Context, txID string) (*social.Post, bool, error) {
	p, ok := f.posts[txID]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (f *fakeSource) GetComment(_ stdctx.Context, txID string) (*social.Comment, bool, error) {
	c, ok := f.comments[txID]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func TestLedger_At_NoScores(t *testing.T) {
	src := &fakeSource{}
	l := reputation.New(src, limits.DefaultThresholds(), newTestCache(t), time.Minute)

	rep, err := l.At(stdctx.Background(), "addrA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(0), rep)
}

func TestLedger_At_ExcludesSelfScores(t *testing.T) {
	src := &fakeSource{
		postScores: []social.Score{
			{Author: "addrA", TargetTxID: "p1", Value: 5, BlockHeight: 10},
		},
		posts: map[string]social.Post{"p1": {TxID: "p1", Author: "addrA"}},
	}
	l := reputation.New(src, limits.DefaultThresholds(), newTestCache(t), time.Minute)

	rep, err := l.At(stdctx.Background(), "addrA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(0), rep)
}

func TestLedger_At_ExcludesLotteryScores(t *testing.T) {
	src := &fakeSource{
		postScores: []social.Score{
			{Author: "addrB", TargetTxID: "p1", Value: 5, BlockHeight: 10, Lottery: true},
		},
		posts: map[string]social.Post{"p1": {TxID: "p1", Author: "addrA"}},
	}
	thresholds := limits.DefaultThresholds()
	thresholds.ScoringReputation = 0
	l := reputation.New(src, thresholds, newTestCache(t), time.Minute)

	rep, err := l.At(stdctx.Background(), "addrA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(0), rep, "lottery-coinbase scores must never contribute to reputation")
}

func TestLedger_At_IsMemoized(t *testing.T) {
	src := &fakeSource{}
	c := newTestCache(t)
	l := reputation.New(src, limits.DefaultThresholds(), c, time.Minute)

	_, err := l.At(stdctx.Background(), "addrA", 100)
	require.NoError(t, err)

	// Mutate underlying source after first call; cached value must stick.
	src.postScores = append(src.postScores, social.Score{Author: "addrB", TargetTxID: "p1", Value: 5})
	rep, err := l.At(stdctx.Background(), "addrA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(0), rep)
}

func TestLedger_AllowModifyReputation(t *testing.T) {
	src := &fakeSource{}
	thresholds := limits.DefaultThresholds()
	thresholds.ScoringReputation = 0
	l := reputation.New(src, thresholds, newTestCache(t), time.Minute)

	allowed, err := l.AllowModifyReputation(stdctx.Background(), "addrA", 100)
	require.NoError(t, err)
	require.True(t, allowed)
}
