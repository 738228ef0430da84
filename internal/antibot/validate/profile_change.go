package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// ProfileChange validates a ProfileChange item (spec.md §4.5). isFirst is
// true when this is the address's very first ProfileChange (i.e. its
// registration), in which case the nickname and self-referrer checks still
// apply, the per-day quota check is skipped, and there is no actor
// classification to enforce yet — the
// orchestrator skips the registration preamble for this one case (spec.md
// §4.2: "any action kind other than the first ProfileChange is rejected
// with NotRegistered").
func ProfileChange(ctx stdctx.Context, d Deps, change *social.ProfileChange, isFirst bool) verdict.Verdict {
	if !CheckTimeSkew(change.Time, d.Now) {
		return verdict.Failed
	}
	if len(change.Name) > d.Thresholds.NicknameMaxLen {
		return verdict.NicknameLong
	}
	if change.Name != "" {
		taken, err := d.View.NicknameTaken(ctx, change.Name, change.Address)
		if err != nil {
			return verdict.Failed
		}
		if taken {
			return verdict.NicknameDouble
		}
	}
	if change.Referrer != "" && change.Referrer == change.Address {
		return verdict.ReferrerSelf
	}

	if isFirst {
		return verdict.Success
	}

	ok, err := CheckQuota(ctx, d, social.KindProfileChange, change.Address, change.Time, d.View.CountProfileChanges)
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.ChangeInfoLimit
	}
	return verdict.Success
}
