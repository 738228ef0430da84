package social

import "errors"

// ErrWrongKind is the error for an Item accessed with the wrong kind; it
// signals a parser bug, not a chain-data problem. No function in this
// package returns it: the accessors below switch on Kind alone and return a
// zero value for an unrecognised Kind.
var ErrWrongKind = errors.New("social: item accessed with wrong kind")

// Item is the tagged variant the admission engine consumes: one Kind tag
// plus exactly one populated payload field. The raw on-chain parser
// (out of scope here) is responsible for producing well-formed Items.
type Item struct {
	Kind Kind `json:"kind"`

	Post         *Post         `json:"post,omitempty"`
	Comment      *Comment      `json:"comment,omitempty"`
	Score        *Score        `json:"score,omitempty"`
	CommentScore *CommentScore `json:"commentScore,omitempty"`
	Complaint    *Complaint    `json:"complaint,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
	Blocking     *Blocking     `json:"blocking,omitempty"`
	Profile      *ProfileChange `json:"profile,omitempty"`
}

// TxID returns the identifying txid of whichever payload is populated.
func (i Item) TxID() string {
	switch i.Kind {
	case KindPost, KindPostEdit:
		return i.Post.TxID
	case KindComment, KindCommentEdit, KindCommentDelete:
		return i.Comment.TxID
	case KindScore:
		return i.Score.TxID
	case KindCommentScore:
		return i.CommentScore.TxID
	case KindComplaint:
		return i.Complaint.TxID
	case KindSubscription:
		return i.Subscription.TxID
	case KindBlocking:
		return i.Blocking.TxID
	case KindProfileChange:
		return i.Profile.TxID
	default:
		return ""
	}
}

// Author returns the acting address for whichever payload is populated.
func (i Item) Author() string {
	switch i.Kind {
	case KindPost, KindPostEdit:
		return i.Post.Author
	case KindComment, KindCommentEdit, KindCommentDelete:
		return i.Comment.Author
	case KindScore:
		return i.Score.Author
	case KindCommentScore:
		return i.CommentScore.Author
	case KindComplaint:
		return i.Complaint.Author
	case KindSubscription:
		return i.Subscription.Author
	case KindBlocking:
		return i.Blocking.Author
	case KindProfileChange:
		return i.Profile.Address
	default:
		return ""
	}
}

// Time returns the declared timestamp for whichever payload is populated.
func (i Item) Time() int64 {
	switch i.Kind {
	case KindPost, KindPostEdit:
		return i.Post.Time
	case KindComment, KindCommentEdit, KindCommentDelete:
		return i.Comment.Time
	case KindScore:
		return i.Score.Time
	case KindCommentScore:
		return i.CommentScore.Time
	case KindComplaint:
		return i.Complaint.Time
	case KindSubscription:
		return i.Subscription.Time
	case KindBlocking:
		return i.Blocking.Time
	case KindProfileChange:
		return i.Profile.Time
	default:
		return 0
	}
}
