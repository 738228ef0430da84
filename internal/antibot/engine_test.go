package antibot_test

import (
	stdctx "context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/socialchain/antibot/internal/antibot"
	antibotctx "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/ports"
	"github.com/socialchain/antibot/internal/antibot/reputation"
	"github.com/socialchain/antibot/internal/cache"
	"github.com/socialchain/antibot/internal/social"
)

// fakeLedger is a hand-rolled ports.Ledger stub, grounded on the teacher's
// own preference (default_validator_test.go) for in-memory fakes over real
// infrastructure in unit tests.
type fakeLedger struct {
	ports.Ledger
	height  int32
	now     int64
	balance int64
}

func (f *fakeLedger) ChainHeight(stdctx.Context) (int32, error)              { return f.height, nil }
func (f *fakeLedger) AdjustedTime(stdctx.Context) (int64, error)             { return f.now, nil }
func (f *fakeLedger) BalanceOf(stdctx.Context, string, int32) (int64, error) { return f.balance, nil }
func (f *fakeLedger) UTXOsOf(stdctx.Context, string) ([]ports.Outpoint, error) {
	return nil, nil
}

// fakeSocialDB is an in-memory Chain-layer Source holding registered
// addresses and already-accepted posts.
type fakeSocialDB struct {
	antibotctx.Source
	profiles map[string]social.ProfileChange
	posts    map[string][]social.Post
}

func newFakeSocialDB() *fakeSocialDB {
	return &fakeSocialDB{profiles: map[string]social.ProfileChange{}, posts: map[string][]social.Post{}}
}

func (f *fakeSocialDB) EarliestProfileChange(_ stdctx.Context, address string) (*social.ProfileChange, bool, error) {
	p, ok := f.profiles[address]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (f *fakeSocialDB) CountPosts(_ stdctx.Context, author string, since, until int64) (int, error) {
	n := 0
	for _, p := range f.posts[author] {
		if p.Time > since && p.Time <= until {
			n++
		}
	}
	return n, nil
}

func (f *fakeSocialDB) NicknameTaken(_ stdctx.Context, name, excludeAddress string) (bool, error) {
	for addr, p := range f.profiles {
		if p.Name == name && addr != excludeAddress {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSocialDB) ScoresReceivedBy(stdctx.Context, string, int32) ([]social.Score, error) {
	return nil, nil
}

func (f *fakeSocialDB) CommentScoresReceivedBy(stdctx.Context, string, int32) ([]social.CommentScore, error) {
	return nil, nil
}

func newTestEngine(t *testing.T, ledger *fakeLedger, socialDB *fakeSocialDB) *antibot.Engine {
	t.Helper()
	store, err := cache.New(cache.Config{Engine: cache.EngineMemory})
	require.NoError(t, err)

	thresholds := limits.DefaultThresholds()
	thresholds.ScoringReputation = 0
	rep := reputation.New(socialDB, thresholds, store, time.Minute)
	cls := classifier.New(ledger, socialDB, rep, thresholds)

	mempool := antibotctx.NewScratch()
	return antibot.New(ledger, socialDB, mempool, rep, cls, limits.DefaultTable(), thresholds)
}

func TestCheckItem_NotRegistered(t *testing.T) {
	ledger := &fakeLedger{height: 100, now: 1_000_000}
	db := newFakeSocialDB()
	engine := newTestEngine(t, ledger, db)

	item := social.Item{Kind: social.KindPost, Post: &social.Post{Author: "addrA", TxID: "p1", Time: ledger.now}}
	v, err := engine.CheckItem(stdctx.Background(), item)
	require.NoError(t, err)
	require.Equal(t, antibot.NotRegistered, v)
}

func TestCheckItem_PostLimitExceeded(t *testing.T) {
	ledger := &fakeLedger{height: 100, now: 1_000_000}
	db := newFakeSocialDB()
	db.profiles["addrA"] = social.ProfileChange{Address: "addrA", RegistrationTime: 0}
	for i := 0; i < 5; i++ {
		db.posts["addrA"] = append(db.posts["addrA"], social.Post{
			Author: "addrA", TxID: "existing", Time: ledger.now - int64(i)*3600,
		})
	}
	engine := newTestEngine(t, ledger, db)

	item := social.Item{Kind: social.KindPost, Post: &social.Post{Author: "addrA", TxID: "p-new", Time: ledger.now}}
	v, err := engine.CheckItem(stdctx.Background(), item)
	require.NoError(t, err)
	require.Equal(t, antibot.PostLimit, v)
}

func TestCheckItem_FirstProfileChangeAllowed(t *testing.T) {
	ledger := &fakeLedger{height: 100, now: 1_000_000}
	db := newFakeSocialDB()
	engine := newTestEngine(t, ledger, db)

	item := social.Item{Kind: social.KindProfileChange, Profile: &social.ProfileChange{Address: "addrA", Name: "alice", Time: ledger.now}}
	v, err := engine.CheckItem(stdctx.Background(), item)
	require.NoError(t, err)
	require.Equal(t, antibot.Success, v)
}

func TestCheckBlock_OrdersProfileChangeBeforePost(t *testing.T) {
	ledger := &fakeLedger{height: 100, now: 1_000_000}
	db := newFakeSocialDB()
	engine := newTestEngine(t, ledger, db)

	items := []social.Item{
		{Kind: social.KindPost, Post: &social.Post{Author: "addrA", TxID: "p1", Time: ledger.now}},
		{Kind: social.KindProfileChange, Profile: &social.ProfileChange{Address: "addrA", Name: "alice", Time: ledger.now}},
	}
	results, err := engine.CheckBlock(stdctx.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, antibot.Success, results[0]) // post, validated after profile change lands in scratch
	require.Equal(t, antibot.Success, results[1]) // profile change, processed first due to kind priority
}

func TestCheckInputs(t *testing.T) {
	ledger := &fakeLedger{height: 100, now: 1_000_000}
	db := newFakeSocialDB()
	engine := newTestEngine(t, ledger, db)

	ok, err := engine.CheckInputs(stdctx.Background(), "addrA", []string{"tx1"})
	require.NoError(t, err)
	require.False(t, ok) // fakeLedger.UTXOsOf returns no outpoints, so tx1 is not owned
}
