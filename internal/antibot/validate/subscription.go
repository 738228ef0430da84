package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Subscription validates a Subscribe/Unsubscribe item (spec.md §4.5): target
// must be registered and distinct from the author, and the requested state
// must differ from the latest recorded state (latest-wins, no redundant
// transitions).
func Subscription(ctx stdctx.Context, d Deps, sub *social.Subscription) verdict.Verdict {
	if !CheckTimeSkew(sub.Time, d.Now) {
		return verdict.Failed
	}
	if sub.Author == sub.Target {
		return verdict.SelfSubscribe
	}

	_, registered, err := d.View.EarliestProfileChange(ctx, sub.Target)
	if err != nil {
		return verdict.Failed
	}
	if !registered {
		return verdict.InvalideSubscribe
	}

	latest, found, err := d.View.LatestSubscription(ctx, sub.Author, sub.Target)
	if err != nil {
		return verdict.Failed
	}
	if found && latest.Unsubscribe == sub.Unsubscribe {
		return verdict.DoubleSubscribe
	}
	return verdict.Success
}
