// Package verdict defines the closed Verdict enum (spec.md §6) in its own
// leaf package so both the per-kind validators (internal/antibot/validate)
// and the orchestrator (internal/antibot) can depend on it without an import
// cycle; internal/antibot re-exports these names as antibot.Verdict etc. so
// callers never see the verdict package directly.
package verdict

import "fmt"

// Verdict is a closed enum; the numeric values are the wire codes consumed
// by RPC clients and block validation (spec.md §6) and match the reference
// implementation's ANTIBOTRESULT enum verbatim, gap at 36 included.
type Verdict int

const (
	Success               Verdict = 0
	NotRegistered         Verdict = 1
	PostLimit             Verdict = 2
	ScoreLimit            Verdict = 3
	DoubleScore           Verdict = 4
	SelfScore             Verdict = 5
	ChangeInfoLimit       Verdict = 6
	InvalideSubscribe     Verdict = 7
	DoubleSubscribe       Verdict = 8
	SelfSubscribe         Verdict = 9
	Unknown               Verdict = 10
	Failed                Verdict = 11
	NotFound              Verdict = 12
	DoubleComplain        Verdict = 13
	SelfComplain          Verdict = 14
	ComplainLimit         Verdict = 15
	LowReputation         Verdict = 16
	ContentSizeLimit      Verdict = 17
	NicknameDouble        Verdict = 18
	NicknameLong          Verdict = 19
	ReferrerSelf          Verdict = 20
	FailedOpReturn        Verdict = 21
	InvalidBlocking       Verdict = 22
	DoubleBlocking        Verdict = 23
	SelfBlocking          Verdict = 24
	DoublePostEdit        Verdict = 25
	PostEditLimit         Verdict = 26
	PostEditUnauthorized  Verdict = 27
	ManyTransactions      Verdict = 28
	CommentLimit          Verdict = 29
	CommentEditLimit      Verdict = 30
	CommentScoreLimit     Verdict = 31
	Blocking              Verdict = 32
	Size                  Verdict = 33
	InvalidParentComment  Verdict = 34
	InvalidAnswerComment  Verdict = 35
	DoubleCommentEdit     Verdict = 37
	SelfCommentScore      Verdict = 38
	DoubleCommentDelete   Verdict = 39
	DoubleCommentScore    Verdict = 40
	OpReturnFailed        Verdict = 41
	CommentDeletedEdit    Verdict = 42
)

var verdictNames = map[Verdict]string{
	Success:              "Success",
	NotRegistered:        "NotRegistered",
	PostLimit:            "PostLimit",
	ScoreLimit:           "ScoreLimit",
	DoubleScore:          "DoubleScore",
	SelfScore:            "SelfScore",
	ChangeInfoLimit:      "ChangeInfoLimit",
	InvalideSubscribe:    "InvalideSubscribe",
	DoubleSubscribe:      "DoubleSubscribe",
	SelfSubscribe:        "SelfSubscribe",
	Unknown:              "Unknown",
	Failed:               "Failed",
	NotFound:             "NotFound",
	DoubleComplain:       "DoubleComplain",
	SelfComplain:         "SelfComplain",
	ComplainLimit:        "ComplainLimit",
	LowReputation:        "LowReputation",
	ContentSizeLimit:     "ContentSizeLimit",
	NicknameDouble:       "NicknameDouble",
	NicknameLong:         "NicknameLong",
	ReferrerSelf:         "ReferrerSelf",
	FailedOpReturn:       "FailedOpReturn",
	InvalidBlocking:      "InvalidBlocking",
	DoubleBlocking:       "DoubleBlocking",
	SelfBlocking:         "SelfBlocking",
	DoublePostEdit:       "DoublePostEdit",
	PostEditLimit:        "PostEditLimit",
	PostEditUnauthorized: "PostEditUnauthorized",
	ManyTransactions:     "ManyTransactions",
	CommentLimit:         "CommentLimit",
	CommentEditLimit:     "CommentEditLimit",
	CommentScoreLimit:    "CommentScoreLimit",
	Blocking:             "Blocking",
	Size:                 "Size",
	InvalidParentComment: "InvalidParentComment",
	InvalidAnswerComment: "InvalidAnswerComment",
	DoubleCommentEdit:    "DoubleCommentEdit",
	SelfCommentScore:     "SelfCommentScore",
	DoubleCommentDelete:  "DoubleCommentDelete",
	DoubleCommentScore:   "DoubleCommentScore",
	OpReturnFailed:       "OpReturnFailed",
	CommentDeletedEdit:   "CommentDeletedEdit",
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Transient reports whether the verdict means "try again later" rather than
// "transaction is invalid" (spec.md §7): Failed and Unknown wrap
// infrastructure errors and MUST NOT be treated as definitive rejection.
func (v Verdict) Transient() bool {
	return v == Failed || v == Unknown
}

// Error wraps a Verdict together with the action kind and, for the
// transient verdicts, the underlying infrastructure error — grounded on the
// teacher's validator.Error (Err error; ArcErrorStatus api.StatusCode).
type Error struct {
	Verdict Verdict
	Kind    string
	Err     error
}

func NewError(verdict Verdict, kind string, err error) *Error {
	return &Error{Verdict: verdict, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("antibot: %s verdict %s: %s", e.Kind, e.Verdict, e.Err.Error())
	}
	return fmt.Sprintf("antibot: %s verdict %s", e.Kind, e.Verdict)
}

func (e *Error) Unwrap() error {
	return e.Err
}
