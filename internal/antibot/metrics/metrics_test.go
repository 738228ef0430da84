package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/socialchain/antibot/internal/antibot/metrics"
	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

func TestVerdicts_ObserveDoesNotPanic(t *testing.T) {
	v, err := metrics.NewVerdicts()
	require.NoError(t, err)
	defer v.Unregister()

	v.Observe(social.KindPost, verdict.Success)
	v.Observe(social.KindPost, verdict.PostLimit)
}
