package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Blocking validates a Block/Unblock item (spec.md §4.5): same latest-wins
// state semantics as Subscription.
func Blocking(ctx stdctx.Context, d Deps, blk *social.Blocking) verdict.Verdict {
	if !CheckTimeSkew(blk.Time, d.Now) {
		return verdict.Failed
	}
	if blk.Author == blk.Target {
		return verdict.SelfBlocking
	}

	_, registered, err := d.View.EarliestProfileChange(ctx, blk.Target)
	if err != nil {
		return verdict.Failed
	}
	if !registered {
		return verdict.InvalidBlocking
	}

	latest, found, err := d.View.LatestBlocking(ctx, blk.Author, blk.Target)
	if err != nil {
		return verdict.Failed
	}
	if found && latest.Unblock == blk.Unblock {
		return verdict.DoubleBlocking
	}
	return verdict.Success
}
