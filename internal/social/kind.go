// Package social defines the tagged-variant data model for social actions
// carried in-band on the chain: one strongly-typed record per action kind,
// per DESIGN NOTES in SPEC_FULL.md (replacing the source's dynamic-typed
// generic payload with an explicit Kind + one struct field per kind).
package social

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the type of social action a parsed Item carries. The
// parser from raw on-chain payload to Item is a separate, testable unit
// upstream of this package (out of scope: see SPEC_FULL.md §1).
type Kind int

const (
	KindUnknown Kind = iota
	KindProfileChange
	KindPost
	KindPostEdit
	KindScore
	KindComplaint
	KindComment
	KindCommentEdit
	KindCommentDelete
	KindCommentScore
	KindSubscription
	KindBlocking
)

func (k Kind) String() string {
	switch k {
	case KindProfileChange:
		return "profileChange"
	case KindPost:
		return "post"
	case KindPostEdit:
		return "postEdit"
	case KindScore:
		return "score"
	case KindComplaint:
		return "complaint"
	case KindComment:
		return "comment"
	case KindCommentEdit:
		return "commentEdit"
	case KindCommentDelete:
		return "commentDelete"
	case KindCommentScore:
		return "commentScore"
	case KindSubscription:
		return "subscription"
	case KindBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// ParseKind inverts Kind.String, for the HTTP layer decoding a request's
// "kind" field.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "profileChange":
		return KindProfileChange, nil
	case "post":
		return KindPost, nil
	case "postEdit":
		return KindPostEdit, nil
	case "score":
		return KindScore, nil
	case "complaint":
		return KindComplaint, nil
	case "comment":
		return KindComment, nil
	case "commentEdit":
		return KindCommentEdit, nil
	case "commentDelete":
		return KindCommentDelete, nil
	case "commentScore":
		return KindCommentScore, nil
	case "subscription":
		return KindSubscription, nil
	case "blocking":
		return KindBlocking, nil
	default:
		return KindUnknown, fmt.Errorf("social: unknown kind %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
