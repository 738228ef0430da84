package validate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

// Complaint validates a Complaint against a Post (spec.md §4.5).
func Complaint(ctx stdctx.Context, d Deps, complaint *social.Complaint) verdict.Verdict {
	if !CheckTimeSkew(complaint.Time, d.Now) {
		return verdict.Failed
	}

	post, found, err := d.View.GetPost(ctx, complaint.TargetPostTxID)
	if err != nil {
		return verdict.Failed
	}
	if !found {
		return verdict.NotFound
	}
	if post.Author == complaint.Author {
		return verdict.SelfComplain
	}

	exists, err := d.View.ComplaintExists(ctx, complaint.Author, complaint.TargetPostTxID)
	if err != nil {
		return verdict.Failed
	}
	if exists {
		return verdict.DoubleComplain
	}

	if d.Actor.Class != limits.Full && d.Actor.Reputation < d.Thresholds.ComplaintEligibilityReputation {
		return verdict.LowReputation
	}

	ok, err := CheckQuota(ctx, d, social.KindComplaint, complaint.Author, complaint.Time, d.View.CountComplaints)
	if err != nil {
		return verdict.Failed
	}
	if !ok {
		return verdict.ComplainLimit
	}
	return verdict.Success
}
