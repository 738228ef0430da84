package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Score validates a Score on a post (spec.md §4.5).
func Score(ctx stdctx.Context, d Deps, score *social.Score) verdict.Verdict {
	if !CheckTimeSkew(score.Time, d.Now) {
		return verdict.Failed
	}

	post, found, err := d.View.GetPost(ctx, score.TargetTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}
	if post.Author == score.Author {
		return verdict.SelfScore
	}

	exists, err := d.View.ScoreExists(ctx, score.Author, score.TargetTxID)
	if err != nil {
		return verdict.Failed
	}
	if exists {
		return verdict.DoubleScore
	}

	if d.Actor.Reputation < d.Thresholds.ScoringReputation {
		return verdict.LowReputation
	}

	blocked, found, err := d.View.LatestBlocking(ctx, post.Author, score.Author)
	if err != nil {
		return verdict.Failed
	}
	if found && !blocked.Unblock {
		return verdict.Blocking
	}

	ok, err := CheckQuota(ctx, d, social.KindScore, score.Author, score.Time, d.View.CountScores)
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.ScoreLimit
	}
	return verdict.Success
}
