package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// CommentEdit validates an edit of an existing Comment (spec.md §4.5).
func CommentEdit(ctx stdctx.Context, d Deps, edit *social.Comment) verdict.Verdict {
	if !CheckTimeSkew(edit.Time, d.Now) {
		return verdict.Failed
	}
	if len(edit.Message) > d.Thresholds.MessageMaxLen {
		return verdict.ContentSizeLimit
	}

	original, found, err := d.View.GetComment(ctx, edit.OriginalTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}
	if original.Deleted {
		return verdict.CommentDeletedEdit
	}

	n, err := d.View.CountCommentEdits(ctx, edit.OriginalTxID, 0, d.Now)
	if err != nil {
		return verdict.Failed
	}
	if n > 0 {
		return verdict.DoubleCommentEdit
	}

	ok, err := CheckQuota(ctx, d, social.KindCommentEdit, edit.Author, edit.Time, func(c stdctx.Context, _ string, since, until int64) (int, error) {
		return d.View.CountCommentEdits(c, edit.OriginalTxID, since, until)
	})
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.CommentEditLimit
	}
	return verdict.Success
}

// CommentDelete validates a delete of an existing Comment: idempotent
// deletes are forbidden (spec.md §4.5).
func CommentDelete(ctx stdctx.Context, d Deps, del *social.Comment) verdict.Verdict {
	original, found, err := d.View.GetComment(ctx, del.OriginalTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}
	if original.Deleted {
		return verdict.DoubleCommentDelete
	}
	return verdict.Success
}
