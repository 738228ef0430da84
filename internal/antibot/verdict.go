// Package antibot is the hard core of this repository: the deterministic
// admission engine deciding whether a candidate social transaction is
// allowed into the mempool, into a block, or must be rejected with a
// specific verdict code. See SPEC_FULL.md for the full design.
//
// The Verdict type itself lives in internal/antibot/verdict, a leaf package
// both this package and internal/antibot/validate depend on without a
// cycle; the aliases below let every other caller keep writing
// antibot.Verdict / antibot.Success as if it were defined here.
package antibot

import "github.com/socialchain/antibot/internal/antibot/verdict"

type Verdict = verdict.Verdict

const (
	Success               = verdict.Success
	NotRegistered         = verdict.NotRegistered
	PostLimit             = verdict.PostLimit
	ScoreLimit            = verdict.ScoreLimit
	DoubleScore           = verdict.DoubleScore
	SelfScore             = verdict.SelfScore
	ChangeInfoLimit       = verdict.ChangeInfoLimit
	InvalideSubscribe     = verdict.InvalideSubscribe
	DoubleSubscribe       = verdict.DoubleSubscribe
	SelfSubscribe         = verdict.SelfSubscribe
	Unknown               = verdict.Unknown
	Failed                = verdict.Failed
	NotFound              = verdict.NotFound
	DoubleComplain        = verdict.DoubleComplain
	SelfComplain          = verdict.SelfComplain
	ComplainLimit         = verdict.ComplainLimit
	LowReputation         = verdict.LowReputation
	ContentSizeLimit      = verdict.ContentSizeLimit
	NicknameDouble        = verdict.NicknameDouble
	NicknameLong          = verdict.NicknameLong
	ReferrerSelf          = verdict.ReferrerSelf
	FailedOpReturn        = verdict.FailedOpReturn
	InvalidBlocking       = verdict.InvalidBlocking
	DoubleBlocking        = verdict.DoubleBlocking
	SelfBlocking          = verdict.SelfBlocking
	DoublePostEdit        = verdict.DoublePostEdit
	PostEditLimit         = verdict.PostEditLimit
	PostEditUnauthorized  = verdict.PostEditUnauthorized
	ManyTransactions      = verdict.ManyTransactions
	CommentLimit          = verdict.CommentLimit
	CommentEditLimit      = verdict.CommentEditLimit
	CommentScoreLimit     = verdict.CommentScoreLimit
	Blocking              = verdict.Blocking
	Size                  = verdict.Size
	InvalidParentComment  = verdict.InvalidParentComment
	InvalidAnswerComment  = verdict.InvalidAnswerComment
	DoubleCommentEdit     = verdict.DoubleCommentEdit
	SelfCommentScore      = verdict.SelfCommentScore
	DoubleCommentDelete   = verdict.DoubleCommentDelete
	DoubleCommentScore    = verdict.DoubleCommentScore
	OpReturnFailed        = verdict.OpReturnFailed
	CommentDeletedEdit    = verdict.CommentDeletedEdit
)

// Error wraps a Verdict together with the action kind and, for the
// transient verdicts, the underlying infrastructure error.
type Error = verdict.Error

var NewError = verdict.NewError
