package validate_test

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/require"

	antibotctx "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/validate"
	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// fakeView is a hand-rolled context.Source stub, following the teacher's
// preference for in-memory fakes in validator unit tests
// (default_validator_test.go) over a real store.
type fakeView struct {
	antibotctx.Source
	posts         map[string]social.Post
	comments      map[string]social.Comment
	scoreExists   bool
	blockedBy     map[string]social.Blocking
	postCounts    int
	nicknameTaken bool
}

func (f *fakeView) CountPosts(stdctx.Context, string, int64, int64) (int, error) {
	return f.postCounts, nil
}

func (f *fakeView) GetPost(_ stdctx.Context, txID string) (*social.Post, bool, error) {
	p, ok := f.posts[txID]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (f *fakeView) GetComment(_ stdctx.Context, txID string) (*social.Comment, bool, error) {
	c, ok := f.comments[txID]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func (f *fakeView) ScoreExists(stdctx.Context, string, string) (bool, error) { return f.scoreExists, nil }

func (f *fakeView) LatestBlocking(_ stdctx.Context, author, target string) (*social.Blocking, bool, error) {
	b, ok := f.blockedBy[author+"->"+target]
	if !ok {
		return nil, false, nil
	}
	return &b, true, nil
}

func (f *fakeView) NicknameTaken(stdctx.Context, string, string) (bool, error) {
	return f.nicknameTaken, nil
}

func baseDeps(view antibotctx.Source) validate.Deps {
	return validate.Deps{
		View:       view,
		Limits:     limits.DefaultTable(),
		Thresholds: limits.DefaultThresholds(),
		Actor:      classifier.Result{Class: limits.Trial, Reputation: 0, Balance: 0},
		Height:     100,
		Now:        1_000_000,
	}
}

func TestPost_Success(t *testing.T) {
	d := baseDeps(&fakeView{})
	v := validate.Post(stdctx.Background(), d, &social.Post{Author: "addrA", Time: d.Now})
	require.Equal(t, verdict.Success, v)
}

func TestPost_LimitExceeded(t *testing.T) {
	d := baseDeps(&fakeView{postCounts: 5})
	v := validate.Post(stdctx.Background(), d, &social.Post{Author: "addrA", Time: d.Now})
	require.Equal(t, verdict.PostLimit, v)
}

func TestPost_ContentTooLarge(t *testing.T) {
	d := baseDeps(&fakeView{})
	big := make([]byte, d.Thresholds.MessageMaxLen+1)
	for i := range big {
		big[i] = 'x'
	}
	v := validate.Post(stdctx.Background(), d, &social.Post{Author: "addrA", Time: d.Now, Message: string(big)})
	require.Equal(t, verdict.ContentSizeLimit, v)
}

func TestScore_SelfScoreRejected(t *testing.T) {
	view := &fakeView{posts: map[string]social.Post{"p1": {TxID: "p1", Author: "addrA"}}}
	d := baseDeps(view)
	v := validate.Score(stdctx.Background(), d, &social.Score{Author: "addrA", TargetTxID: "p1", Time: d.Now, Value: 5})
	require.Equal(t, verdict.SelfScore, v)
}

func TestScore_NotFound(t *testing.T) {
	d := baseDeps(&fakeView{})
	v := validate.Score(stdctx.Background(), d, &social.Score{Author: "addrA", TargetTxID: "missing", Time: d.Now, Value: 5})
	require.Equal(t, verdict.NotFound, v)
}

func TestScore_DoubleScore(t *testing.T) {
	view := &fakeView{
		posts:       map[string]social.Post{"p1": {TxID: "p1", Author: "addrB"}},
		scoreExists: true,
	}
	d := baseDeps(view)
	d.Actor.Reputation = d.Thresholds.ScoringReputation
	v := validate.Score(stdctx.Background(), d, &social.Score{Author: "addrA", TargetTxID: "p1", Time: d.Now, Value: 5})
	require.Equal(t, verdict.DoubleScore, v)
}

func TestScore_LowReputation(t *testing.T) {
	view := &fakeView{posts: map[string]social.Post{"p1": {TxID: "p1", Author: "addrB"}}}
	d := baseDeps(view)
	v := validate.Score(stdctx.Background(), d, &social.Score{Author: "addrA", TargetTxID: "p1", Time: d.Now, Value: 5})
	require.Equal(t, verdict.LowReputation, v)
}

func TestCommentScore_InvalidValue(t *testing.T) {
	view := &fakeView{comments: map[string]social.Comment{"c1": {TxID: "c1", Author: "addrB"}}}
	d := baseDeps(view)
	d.Actor.Reputation = d.Thresholds.ScoringReputation
	v := validate.CommentScore(stdctx.Background(), d, &social.CommentScore{Author: "addrA", TargetTxID: "c1", Time: d.Now, Value: 2})
	require.Equal(t, verdict.Failed, v)
}

func TestProfileChange_NicknameTooLong(t *testing.T) {
	d := baseDeps(&fakeView{})
	long := make([]byte, d.Thresholds.NicknameMaxLen+1)
	v := validate.ProfileChange(stdctx.Background(), d, &social.ProfileChange{Address: "addrA", Name: string(long), Time: d.Now}, true)
	require.Equal(t, verdict.NicknameLong, v)
}

func TestProfileChange_ReferrerSelf(t *testing.T) {
	d := baseDeps(&fakeView{})
	v := validate.ProfileChange(stdctx.Background(), d, &social.ProfileChange{Address: "addrA", Referrer: "addrA", Time: d.Now}, true)
	require.Equal(t, verdict.ReferrerSelf, v)
}

func TestProfileChange_FirstIsAlwaysAllowedPastNameChecks(t *testing.T) {
	d := baseDeps(&fakeView{})
	v := validate.ProfileChange(stdctx.Background(), d, &social.ProfileChange{Address: "addrA", Name: "alice", Time: d.Now}, true)
	require.Equal(t, verdict.Success, v)
}

func TestSubscription_SelfSubscribeRejected(t *testing.T) {
	d := baseDeps(&fakeView{})
	v := validate.Subscription(stdctx.Background(), d, &social.Subscription{Author: "addrA", Target: "addrA", Time: d.Now})
	require.Equal(t, verdict.SelfSubscribe, v)
}
