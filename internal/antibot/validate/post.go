package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Post validates a new (non-edit) Post against spec.md §4.5: content size
// limits, then the per-day post quota for the author's class.
func Post(ctx stdctx.Context, d Deps, post *social.Post) verdict.Verdict {
	if !CheckTimeSkew(post.Time, d.Now) {
		return verdict.Failed
	}
	if v := checkPostContentSize(d, post); v != verdict.Success {
		return v
	}

	ok, err := CheckQuota(ctx, d, social.KindPost, post.Author, post.Time, d.View.CountPosts)
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.PostLimit
	}
	return verdict.Success
}

func checkPostContentSize(d Deps, post *social.Post) verdict.Verdict {
	if len(post.Caption) > d.Thresholds.CaptionMaxLen || len(post.Message) > d.Thresholds.MessageMaxLen {
		return verdict.ContentSizeLimit
	}
	for _, tag := range post.Tags {
		if len(tag) > d.Thresholds.TagMaxLen {
			return verdict.ContentSizeLimit
		}
	}
	for _, url := range post.Images {
		if len(url) > d.Thresholds.ImageURLMaxLen {
			return verdict.ContentSizeLimit
		}
	}
	return verdict.Success
}
