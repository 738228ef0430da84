package limits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/social"
)

func TestDefaultTable_Limit(t *testing.T) {
	table := limits.DefaultTable()

	tt := []struct {
		name  string
		kind  social.Kind
		class limits.Class
		want  int
	}{
		{"trial post", social.KindPost, limits.Trial, 5},
		{"full post", social.KindPost, limits.Full, 30},
		{"trial comment score", social.KindCommentScore, limits.Trial, 300},
		{"full comment score", social.KindCommentScore, limits.Full, 600},
		{"unknown kind", social.KindBlocking, limits.Trial, 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := table.Limit(tc.kind, tc.class, 100)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTable_HeightSwitch(t *testing.T) {
	table := limits.NewTable(
		limits.Entry{FromHeight: 0, Values: map[social.Kind]map[limits.Class]int{
			social.KindPost: {limits.Trial: 5, limits.Full: 30},
		}},
		limits.Entry{FromHeight: 1000, Values: map[social.Kind]map[limits.Class]int{
			social.KindPost: {limits.Trial: 10, limits.Full: 60},
		}},
	)

	require.Equal(t, 5, table.Limit(social.KindPost, limits.Trial, 999))
	require.Equal(t, 10, table.Limit(social.KindPost, limits.Trial, 1000))
	require.Equal(t, 10, table.Limit(social.KindPost, limits.Trial, 5000))
}

func TestTable_BeforeFirstEntry(t *testing.T) {
	table := limits.NewTable(limits.Entry{FromHeight: 500, Values: map[social.Kind]map[limits.Class]int{
		social.KindPost: {limits.Trial: 5},
	}})

	assert.Equal(t, 0, table.Limit(social.KindPost, limits.Trial, 100))
}

func TestWindowSeconds(t *testing.T) {
	assert.Equal(t, int64(86400), limits.WindowSeconds(social.KindPost))
	assert.Equal(t, int64(86400), limits.WindowSeconds(social.KindProfileChange))
}
