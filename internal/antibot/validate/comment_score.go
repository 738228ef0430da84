package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// CommentScore validates a CommentScore (spec.md §4.5). Value must be
// exactly -1 or +1.
func CommentScore(ctx stdctx.Context, d Deps, score *social.CommentScore) verdict.Verdict {
	if !CheckTimeSkew(score.Time, d.Now) {
		return verdict.Failed
	}
	if score.Value != -1 && score.Value != 1 {
		return verdict.Failed
	}

	comment, found, err := d.View.GetComment(ctx, score.TargetTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}
	if comment.Author == score.Author {
		return verdict.SelfCommentScore
	}

	exists, err := d.View.CommentScoreExists(ctx, score.Author, score.TargetTxID)
	if err != nil {
		return verdict.Failed
	}
	if exists {
		return verdict.DoubleCommentScore
	}

	if d.Actor.Reputation < d.Thresholds.ScoringReputation {
		return verdict.LowReputation
	}

	ok, err := CheckQuota(ctx, d, social.KindCommentScore, score.Author, score.Time, d.View.CountCommentScores)
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.CommentScoreLimit
	}
	return verdict.Success
}
