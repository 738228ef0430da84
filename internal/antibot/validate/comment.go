package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Comment validates a new (non-edit) Comment against spec.md §4.5.
func Comment(ctx stdctx.Context, d Deps, comment *social.Comment) verdict.Verdict {
	if !CheckTimeSkew(comment.Time, d.Now) {
		return verdict.Failed
	}
	if len(comment.Message) > d.Thresholds.MessageMaxLen {
		return verdict.ContentSizeLimit
	}

	post, found, err := d.View.GetPost(ctx, comment.PostTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}

	if comment.ParentTxID != "" {
		if v := checkRelatedComment(ctx, d, comment.ParentTxID, comment.PostTxID); v == verdict.Failed {
			return verdict.Failed
		} else if v != verdict.Success {
			return verdict.InvalidParentComment
		}
	}
	if comment.AnswerTxID != "" {
		if v := checkRelatedComment(ctx, d, comment.AnswerTxID, comment.PostTxID); v == verdict.Failed {
			return verdict.Failed
		} else if v != verdict.Success {
			return verdict.InvalidAnswerComment
		}
	}

	blocked, found, err := d.View.LatestBlocking(ctx, post.Author, comment.Author)
	if err != nil {
		return verdict.Failed
	}
	if found && !blocked.Unblock {
		return verdict.Blocking
	}

	ok, err := CheckQuota(ctx, d, social.KindComment, comment.Author, comment.Time, d.View.CountComments)
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.CommentLimit
	}
	return verdict.Success
}

// checkRelatedComment confirms referenced exists, belongs to the same post,
// and has not been deleted, shared by ParentTxID and AnswerTxID checks.
func checkRelatedComment(ctx stdctx.Context, d Deps, referencedTxID, postTxID string) verdict.Verdict {
	related, found, err := d.View.GetComment(ctx, referencedTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found || related.PostTxID != postTxID || related.Deleted {
		return verdict.NotFound
	}
	return verdict.Success
}
