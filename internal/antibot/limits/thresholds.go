package limits

// Thresholds holds the named cutoffs spec.md §4.1 requires beyond the
// per-kind quota table: reputation gates, content size limits, and the
// trial/full boundary conditions. Exposed as typed accessors rather than a
// stringly-keyed threshold(name, height) map, per the teacher's preference
// for typed config structs (config.ArcConfig) over generic string lookups.
//
// The exact numeric coefficients are an Open Question left unresolved by
// spec.md (see DESIGN.md) — the values below are conservative placeholders
// consistent with the qualitative rules spec.md §4.2/§4.3 state, not values
// recovered from the original engine.
type Thresholds struct {
	// ScoringReputation is the minimum reputation for a score to count
	// towards the target's reputation (spec.md §4.3 g(scorer)).
	ScoringReputation int64
	// OverPostReputation is the minimum reputation the scorer must carry to
	// qualify for the "over-post" relaxation.
	OverPostReputation int64
	// OverPostWindowSeconds bounds how recently the scored item must have
	// been authored for the over-post relaxation to apply.
	OverPostWindowSeconds int64
	// BadReputationCutoff is the feed-filtering "bad reputation" boundary
	// (not an admission-engine decision); neither the validators nor the
	// User State Reporter read it.
	BadReputationCutoff int64
	// ComplaintEligibilityReputation is the minimum reputation a Trial actor
	// needs to be allowed to file a Complaint.
	ComplaintEligibilityReputation int64
	// FullReputationMin is the reputation an address must clear, alongside
	// FullBalanceMin and FullRegistrationAge, to classify as Full rather
	// than Trial (spec.md §4.2).
	FullReputationMin int64

	MessageMaxLen  int
	CaptionMaxLen  int
	TagMaxLen      int
	ImageURLMaxLen int
	NicknameMaxLen int

	TrialBalanceMin        int64
	FullBalanceMin         int64
	TrialRegistrationAge   int64 // seconds
	FullRegistrationAge    int64 // seconds
	PostEditCutoffSeconds  int64
}

// DefaultThresholds returns the placeholder values used until the Open
// Question on exact coefficients is resolved against production data.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ScoringReputation:              500,
		OverPostReputation:             1,
		OverPostWindowSeconds:          86400 * 3,
		BadReputationCutoff:            -500,
		ComplaintEligibilityReputation: 500,
		FullReputationMin:              500,

		MessageMaxLen:  2000,
		CaptionMaxLen:  140,
		TagMaxLen:      24,
		ImageURLMaxLen: 2048,
		NicknameMaxLen: 40,

		TrialBalanceMin:       0,
		FullBalanceMin:        500_000_000,
		TrialRegistrationAge:  0,
		FullRegistrationAge:   86400 * 30,
		PostEditCutoffSeconds: 86400,
	}
}
