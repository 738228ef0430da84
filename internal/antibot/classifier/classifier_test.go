package classifier_test

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/require"

	antibotctx "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/ports"
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

type fakeReputation struct{ rep int64 }

func (f *fakeReputation) At(stdctx.Context, string, int32) (int64, error) { return f.rep, nil }

func TestClassify_NotRegistered(t *testing.T) {
	c := classifier.New(&fakeLedger{}, &fakeView{}, &fakeReputation{}, limits.DefaultThresholds())

	_, err := c.Classify(stdctx.Background(), "addrA", 100, 1000)
	require.ErrorIs(t, err, classifier.ErrNotRegistered)
}

func TestClassify_Trial(t *testing.T) {
	thresholds := limits.DefaultThresholds()
	view := &fakeView{profile: &social.ProfileChange{Address: "addrA", RegistrationTime: 900}}
	c := classifier.New(&fakeLedger{balance: 0}, view, &fakeReputation{rep: 0}, thresholds)

	result, err := c.Classify(stdctx.Background(), "addrA", 100, 1000)
	require.NoError(t, err)
	require.Equal(t, limits.Trial, result.Class)
}

func TestClassify_Full(t *testing.T) {
	thresholds := limits.DefaultThresholds()
	view := &fakeView{profile: &social.ProfileChange{
		Address:          "addrA",
		RegistrationTime: 1000 - thresholds.FullRegistrationAge - 1,
	}}
	c := classifier.New(
		&fakeLedger{balance: thresholds.FullBalanceMin},
		view,
		&fakeReputation{rep: thresholds.FullReputationMin},
		thresholds,
	)

	result, err := c.Classify(stdctx.Background(), "addrA", 100, 1000)
	require.NoError(t, err)
	require.Equal(t, limits.Full, result.Class)
	require.Equal(t, thresholds.FullBalanceMin, result.Balance)
}
