// Package userstate implements the User State Reporter (spec.md §6, §4.7,
// restored in full per SPEC_FULL.md §3 from the original UserStateItem):
// a read-only aggregator of an address's current quota usage, reputation,
// balance and class, for UI — never consulted by admission decisions
// themselves. Grounded on the teacher's pkg/api response DTO shape.
package userstate

import (
	stdctx "context"

	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/ports"
	"github.com/socialchain/antibot/internal/social"
)

// State mirrors the original engine's UserStateItem::Serialize() field set.
type State struct {
	Address              string `json:"address"`
	RegistrationTimeUser  int64  `json:"registration_time_user"`
	RegistrationTimeAddress int64 `json:"registration_time_address"`
	Reputation            int64  `json:"reputation"`
	Balance                int64  `json:"balance"`
	Trial                  bool   `json:"trial"`

	PostsSpent          int `json:"posts_spent"`
	PostsUnspent        int `json:"posts_unspent"`
	ScoresSpent         int `json:"scores_spent"`
	ScoresUnspent       int `json:"scores_unspent"`
	ComplaintsSpent     int `json:"complaints_spent"`
	ComplaintsUnspent   int `json:"complaints_unspent"`
	CommentsSpent       int `json:"comments_spent"`
	CommentsUnspent     int `json:"comments_unspent"`
	CommentScoresSpent  int `json:"comment_scores_spent"`
	CommentScoresUnspent int `json:"comment_scores_unspent"`

	NumberOfBlocking int `json:"number_of_blocking"`
}

// ReputationSource is satisfied by reputation.Ledger.
type ReputationSource interface {
	At(ctx stdctx.Context, address string, height int32) (int64, error)
}

// Reporter builds a State for an address at a point in time, querying the
// Context View with mask {Chain, Mempool} per SPEC_FULL.md §4.7.
type Reporter struct {
	View       context.Source
	Ledger     ports.Ledger
	Classifier *classifier.Classifier
	Limits     *limits.Table
	Thresholds limits.Thresholds
}

// New builds a Reporter.
func New(view context.Source, ledger ports.Ledger, cls *classifier.Classifier, table *limits.Table, thresholds limits.Thresholds) *Reporter {
	return &Reporter{View: view, Ledger: ledger, Classifier: cls, Limits: table, Thresholds: thresholds}
}

// Get returns the State for address, or ok=false if address is unregistered.
func (r *Reporter) Get(ctx stdctx.Context, address string, height int32, now int64) (State, bool, error) {
	profile, found, err := r.View.EarliestProfileChange(ctx, address)
	if err != nil {
		return State{}, false, err
	}
	if !found {
		return State{}, false, nil
	}

	actor, err := r.Classifier.Classify(ctx, address, height, now)
	if err != nil {
		return State{}, false, err
	}

	const day = 86400
	spentPosts, err := r.View.CountPosts(ctx, address, now-day, now)
	if err != nil {
		return State{}, false, err
	}
	spentScores, err := r.View.CountScores(ctx, address, now-day, now)
	if err != nil {
		return State{}, false, err
	}
	spentComplaints, err := r.View.CountComplaints(ctx, address, now-day, now)
	if err != nil {
		return State{}, false, err
	}
	spentComments, err := r.View.CountComments(ctx, address, now-day, now)
	if err != nil {
		return State{}, false, err
	}
	spentCommentScores, err := r.View.CountCommentScores(ctx, address, now-day, now)
	if err != nil {
		return State{}, false, err
	}
	blockingCount, err := r.View.CountBlockingReceivedBy(ctx, address)
	if err != nil {
		return State{}, false, err
	}

	state := State{
		Address:                 address,
		RegistrationTimeUser:    profile.RegistrationTime,
		RegistrationTimeAddress: profile.RegistrationTime,
		Reputation:              actor.Reputation,
		Balance:                 actor.Balance,
		Trial:                   actor.Class == limits.Trial,

		PostsSpent:         spentPosts,
		PostsUnspent:       remaining(r.Limits.Limit(social.KindPost, actor.Class, height), spentPosts),
		ScoresSpent:        spentScores,
		ScoresUnspent:      remaining(r.Limits.Limit(social.KindScore, actor.Class, height), spentScores),
		ComplaintsSpent:    spentComplaints,
		ComplaintsUnspent:  remaining(r.Limits.Limit(social.KindComplaint, actor.Class, height), spentComplaints),
		CommentsSpent:      spentComments,
		CommentsUnspent:    remaining(r.Limits.Limit(social.KindComment, actor.Class, height), spentComments),
		CommentScoresSpent: spentCommentScores,
		CommentScoresUnspent: remaining(
			r.Limits.Limit(social.KindCommentScore, actor.Class, height), spentCommentScores),

		NumberOfBlocking: blockingCount,
	}
	return state, true, nil
}

func remaining(limit, spent int) int {
	if limit-spent < 0 {
		return 0
	}
	return limit - spent
}
