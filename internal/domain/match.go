package domain

// MatchVariant selects the response shape of a match request.
type MatchVariant string

const (
	MatchVariantSingle MatchVariant = "single"
	MatchVariantMulti  MatchVariant = "multi"
)

// GatheringCount is the number of gatherings in a multi-variant result.
const GatheringCount = 3

func (v MatchVariant) IsValid() bool {
	return v == MatchVariantSingle || v == MatchVariantMulti
}

// MatchMember is one person in a matched group.
type MatchMember struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Age          int    `json:"age" validate:"min=18,max=120"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	MatchReason  string `json:"matchReason" validate:"required"`
}

// MatchEvent is the curated event a group is invited to.
type MatchEvent struct {
	Title                string   `json:"title" validate:"required"`
	Type                 string   `json:"type" validate:"required"`
	Description          string   `json:"description" validate:"required"`
	Venue                string   `json:"venue" validate:"required"`
	Address              string   `json:"address" validate:"required"`
	SuggestedDate        string   `json:"suggestedDate" validate:"required"`
	SuggestedTime        string   `json:"suggestedTime" validate:"required"`
	ConversationStarters []string `json:"conversationStarters" validate:"min=1,max=5,dive,required"`
	WhyThisEvent         string   `json:"whyThisEvent" validate:"required"`
}

// Gathering pairs a group with an event and a compatibility score.
type Gathering struct {
	Group              []MatchMember `json:"group" validate:"min=3,max=5,dive"`
	Event              MatchEvent    `json:"event"`
	CompatibilityScore int           `json:"compatibilityScore" validate:"min=0,max=100"`
}

// SingleMatchResult is the single-gathering response shape.
type SingleMatchResult struct {
	Group []MatchMember `json:"group" validate:"min=3,max=5,dive"`
	Event MatchEvent    `json:"event"`
}

// MultiMatchResult is the multi-gathering response shape.
type MultiMatchResult struct {
	Gatherings       []Gathering `json:"gatherings" validate:"len=3,dive"`
	RecommendedIndex int         `json:"recommendedIndex" validate:"min=0,max=2"`
}

// Validate checks the result against the match schema.
func (r *SingleMatchResult) Validate() error {
	return ValidateStruct(r)
}

// Validate checks the result against the match schema.
func (r *MultiMatchResult) Validate() error {
	return ValidateStruct(r)
}

// MatchSource records which strategy produced a result.
type MatchSource string

const (
	MatchSourceAI       MatchSource = "ai"
	MatchSourceFallback MatchSource = "fallback"
)

// MatchResult holds exactly one of Single or Multi, according to Variant.
type MatchResult struct {
	Variant MatchVariant
	Source  MatchSource
	Single  *SingleMatchResult
	Multi   *MultiMatchResult
}

// Payload returns the value to serialize for the client.
func (r *MatchResult) Payload() interface{} {
	if r.Variant == MatchVariantSingle {
		return r.Single
	}
	return r.Multi
}
