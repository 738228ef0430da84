package social

import "github.com/lib/pq"

// PostType enumerates the media shape of a Post. The validators apply the
// same content-size limits (limits.Thresholds) to every type.
type PostType int

const (
	PostPlain PostType = iota
	PostImage
	PostVideo
)

// Post models both a new post (OriginalTxID == TxID) and an edit
// (OriginalTxID points at the first version in the chain).
type Post struct {
	TxID         string         `db:"tx_id" json:"txId"`
	OriginalTxID string         `db:"original_tx_id" json:"originalTxId"`
	Author       string         `db:"author" json:"author"`
	Time         int64          `db:"time" json:"time"`
	BlockHeight  int32          `db:"block_height" json:"blockHeight"`
	Caption      string         `db:"caption" json:"caption"`
	Message      string         `db:"message" json:"message"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	Images       pq.StringArray `db:"images" json:"images"`
	URL          string         `db:"url" json:"url"`
	Settings     string         `db:"settings" json:"settings"`
	Type         PostType       `db:"type" json:"type"`
}

// IsEdit reports whether this record is an edit of a prior post rather than
// the first version.
func (p *Post) IsEdit() bool {
	return p.OriginalTxID != "" && p.OriginalTxID != p.TxID
}

// Comment models one record in an edit chain; exactly one record per chain
// has Last == true (spec.md invariant). ParentTxID/AnswerTxID reference
// other comments on the same post.
type Comment struct {
	TxID         string `db:"tx_id" json:"txId"`
	OriginalTxID string `db:"original_tx_id" json:"originalTxId"`
	Author       string `db:"author" json:"author"`
	PostTxID     string `db:"post_tx_id" json:"postTxId"`
	ParentTxID   string `db:"parent_tx_id" json:"parentTxId"`
	AnswerTxID   string `db:"answer_tx_id" json:"answerTxId"`
	Time         int64  `db:"time" json:"time"`
	BlockHeight  int32  `db:"block_height" json:"blockHeight"`
	Message      string `db:"message" json:"message"`
	Last         bool   `db:"last" json:"last"`
	Deleted      bool   `db:"deleted" json:"deleted"`
}

func (c *Comment) IsEdit() bool {
	return c.OriginalTxID != "" && c.OriginalTxID != c.TxID
}

// Score is an immutable vote on a Post, value in {1..5}. Lottery marks a
// score whose funding transaction is a lottery/coinbase payout, set by the
// upstream parser from the raw transaction's inputs (spec.md §4.3:
// lottery-coinbase scores never contribute to reputation).
type Score struct {
	TxID        string `db:"tx_id" json:"txId"`
	Author      string `db:"author" json:"author"`
	TargetTxID  string `db:"target_tx_id" json:"targetTxId"`
	Time        int64  `db:"time" json:"time"`
	BlockHeight int32  `db:"block_height" json:"blockHeight"`
	Value       int    `db:"value" json:"value"`
	Lottery     bool   `db:"lottery" json:"lottery"`
}

// CommentScore is an immutable vote on a Comment, value in {-1,+1}. Lottery
// has the same meaning as Score.Lottery.
type CommentScore struct {
	TxID        string `db:"tx_id" json:"txId"`
	Author      string `db:"author" json:"author"`
	TargetTxID  string `db:"target_tx_id" json:"targetTxId"`
	Time        int64  `db:"time" json:"time"`
	BlockHeight int32  `db:"block_height" json:"blockHeight"`
	Value       int    `db:"value" json:"value"`
	Lottery     bool   `db:"lottery" json:"lottery"`
}

// Complaint targets a Post; at most one per (author, target) (spec.md
// invariant 5).
type Complaint struct {
	TxID           string `db:"tx_id" json:"txId"`
	Author         string `db:"author" json:"author"`
	TargetPostTxID string `db:"target_post_tx_id" json:"targetPostTxId"`
	Time           int64  `db:"time" json:"time"`
	BlockHeight    int32  `db:"block_height" json:"blockHeight"`
	Reason         string `db:"reason" json:"reason"`
}

// Subscription's effective relation is the latest record per
// (Author, Target) — see Unsubscribe for direction.
type Subscription struct {
	TxID        string `db:"tx_id" json:"txId"`
	Author      string `db:"author" json:"author"`
	Target      string `db:"target" json:"target"`
	Private     bool   `db:"private" json:"private"`
	Unsubscribe bool   `db:"unsubscribe" json:"unsubscribe"`
	Time        int64  `db:"time" json:"time"`
	BlockHeight int32  `db:"block_height" json:"blockHeight"`
}

// Blocking has the same latest-wins semantics as Subscription.
type Blocking struct {
	TxID        string `db:"tx_id" json:"txId"`
	Author      string `db:"author" json:"author"`
	Target      string `db:"target" json:"target"`
	Unblock     bool   `db:"unblock" json:"unblock"`
	Time        int64  `db:"time" json:"time"`
	BlockHeight int32  `db:"block_height" json:"blockHeight"`
}

// ProfileChange both registers an address (the first record for it) and
// updates mutable profile fields thereafter.
type ProfileChange struct {
	TxID             string `db:"tx_id" json:"txId"`
	Address          string `db:"address" json:"address"`
	Name             string `db:"name" json:"name"`
	Avatar           string `db:"avatar" json:"avatar"`
	Lang             string `db:"lang" json:"lang"`
	About            string `db:"about" json:"about"`
	URL              string `db:"url" json:"url"`
	Donations        string `db:"donations" json:"donations"`
	Pubkey           string `db:"pubkey" json:"pubkey"`
	Referrer         string `db:"referrer" json:"referrer"`
	Time             int64  `db:"time" json:"time"`
	BlockHeight      int32  `db:"block_height" json:"blockHeight"`
	RegistrationTime int64  `db:"registration_time" json:"registrationTime"`
}
