package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// postEditWindowFactor scales Thresholds.PostEditCutoffSeconds, the bound on
// how long after its original creation a Post may still be edited (spec.md
// §4.5: "edits older than a height-dependent cutoff... are forbidden").
const postEditWindowFactor = 1

// PostEdit validates an edit of an existing Post (spec.md §4.5).
func PostEdit(ctx stdctx.Context, d Deps, edit *social.Post) verdict.Verdict {
	if !CheckTimeSkew(edit.Time, d.Now) {
		return verdict.Failed
	}
	if v := checkPostContentSize(d, edit); v != verdict.Success {
		return v
	}

	original, found, err := d.View.GetPost(ctx, edit.OriginalTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}
	if original.Author != edit.Author {
		return verdict.PostEditUnauthorized
	}
	if edit.Time-original.Time > d.Thresholds.PostEditCutoffSeconds*postEditWindowFactor {
		return verdict.PostEditUnauthorized
	}

	n, err := d.View.CountPostEdits(ctx, edit.OriginalTxID, 0, d.Now)
	if err != nil {
		return verdict.Failed
	}
	if n > 0 {
		return verdict.DoublePostEdit
	}

	ok, err := CheckQuota(ctx, d, social.KindPostEdit, edit.Author, edit.Time, func(c stdctx.Context, _ string, since, until int64) (int, error) {
		return d.View.CountPostEdits(c, edit.OriginalTxID, since, until)
	})
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.PostEditLimit
	}
	return verdict.Success
}
