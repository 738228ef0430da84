package userstate_test

import (
	stdctx "context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	antibotctx "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/ports"
	"github.com/socialchain/antibot/internal/antibot/reputation"
	"github.com/socialchain/antibot/internal/antibot/userstate"
	"github.com/socialchain/antibot/internal/cache"
	"github.com/socialchain/antibot/internal/social"
)

type fakeLedger struct {
	ports.Ledger
	balance int64
}

func (f *fakeLedger) BalanceOf(stdctx.Context, string, int32) (int64, error) { return f.balance, nil }

type fakeView struct {
	antibotctx.Source
	profile *social.ProfileChange
}

func (f *fakeView) EarliestProfileChange(stdctx.Context, string) (*social.ProfileChange, bool, error) {
	if f.profile == nil {
		return nil, false, nil
	}
	return f.profile, true, nil
}

func (f *fakeView) CountPosts(stdctx.Context, string, int64, int64) (int, error)         { return 2, nil }
func (f *fakeView) CountScores(stdctx.Context, string, int64, int64) (int, error)        { return 0, nil }
func (f *fakeView) CountComplaints(stdctx.Context, string, int64, int64) (int, error)    { return 0, nil }
func (f *fakeView) CountComments(stdctx.Context, string, int64, int64) (int, error)      { return 0, nil }
func (f *fakeView) CountCommentScores(stdctx.Context, string, int64, int64) (int, error) { return 0, nil }
func (f *fakeView) ScoresReceivedBy(stdctx.Context, string, int32) ([]social.Score, error) {
	return nil, nil
}
func (f *fakeView) CommentScoresReceivedBy(stdctx.Context, string, int32) ([]social.CommentScore, error) {
	return nil, nil
}
func (f *fakeView) CountBlockingReceivedBy(stdctx.Context, string) (int, error) { return 0, nil }

func TestReporter_Get_Unregistered(t *testing.T) {
	view := &fakeView{}
	store, err := cache.New(cache.Config{Engine: cache.EngineMemory})
	require.NoError(t, err)
	thresholds := limits.DefaultThresholds()
	rep := reputation.New(view, thresholds, store, time.Minute)
	cls := classifier.New(&fakeLedger{}, view, rep, thresholds)
	reporter := userstate.New(view, &fakeLedger{}, cls, limits.DefaultTable(), thresholds)

	_, ok, err := reporter.Get(stdctx.Background(), "addrA", 100, 1_000_000)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReporter_Get_Registered(t *testing.T) {
	view := &fakeView{profile: &social.ProfileChange{Address: "addrA", RegistrationTime: 0}}
	store, err := cache.New(cache.Config{Engine: cache.EngineMemory})
	require.NoError(t, err)
	thresholds := limits.DefaultThresholds()
	rep := reputation.New(view, thresholds, store, time.Minute)
	ledger := &fakeLedger{balance: 0}
	cls := classifier.New(ledger, view, rep, thresholds)
	reporter := userstate.New(view, ledger, cls, limits.DefaultTable(), thresholds)

	state, ok, err := reporter.Get(stdctx.Background(), "addrA", 100, 1_000_000)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, state.PostsSpent)
	require.Equal(t, limits.DefaultTable().Limit(social.KindPost, limits.Trial, 100)-2, state.PostsUnspent)
	require.True(t, state.Trial)
}
