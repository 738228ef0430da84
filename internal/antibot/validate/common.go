// Package validate holds the Per-Kind Validators (spec.md §4.5): one file
// per social item kind, each exporting a function named after its kind
// (Post, Score, ...) that returns a closed verdict.Verdict. Grounded on the
// teacher's internal/validator/common_validation.go, which factors a shared
// sequential-checklist preamble out of DefaultValidator.ValidateTransaction
// the same way CheckTimeSkew/CheckQuota below factor the time-skew and quota
// checks out of the per-kind functions. The registration check runs in
// antibot.Engine before dispatch; size limits are checked in each kind's file.
package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/social"
)

// maxTimeSkewSeconds bounds how far a declared item time may lead the
// ledger's adjusted time, mirroring the node's transaction-relay time checks
// the teacher's CommonValidateTransaction performs for locktime.
const maxTimeSkewSeconds = 2 * 60 * 60

// Deps bundles the collaborators every per-kind Validate function needs: the
// Context View (already masked to the caller's {Chain,Block,Mempool}
// combination), the Limit Table, thresholds, and the actor's classification.
type Deps struct {
	View       context.Source
	Limits     *limits.Table
	Thresholds limits.Thresholds
	Actor      classifier.Result
	Height     int32
	Now        int64
}

// CheckTimeSkew rejects items declared too far in the future relative to the
// ledger's adjusted time.
func CheckTimeSkew(declaredTime, now int64) bool {
	return declaredTime-now <= maxTimeSkewSeconds
}

// CheckQuota is the shared "count_by_author_window(kind, author, t-W, t) <
// limit(kind, class)" rule from spec.md §3 invariant 2.
func CheckQuota(ctx stdctx.Context, d Deps, kind social.Kind, author string, declaredTime int64, count func(stdctx.Context, string, int64, int64) (int, error)) (bool, error) {
	window := limits.WindowSeconds(kind)
	n, err := count(ctx, author, declaredTime-window, declaredTime)
	if err != nil {
		return false, err
	}
	limit := d.Limits.Limit(kind, d.Actor.Class, d.Height)
	return n < limit, nil
}
