package domain

// Candidate is a pre-seeded synthetic profile used as match material.
type Candidate struct {
	ID             string   `json:"id" yaml:"id" validate:"required"`
	Name           string   `json:"name" yaml:"name" validate:"required"`
	Age            int      `json:"age" yaml:"age" validate:"min=18,max=120"`
	Neighborhood   string   `json:"neighborhood" yaml:"neighborhood" validate:"required"`
	GenderIdentity string   `json:"genderIdentity" yaml:"genderIdentity" validate:"required"`
	InterestedIn   []string `json:"interestedIn" yaml:"interestedIn" validate:"min=1,dive,vocab=interested_in"`
}

// EventTemplate is a canned event used by the fallback builder.
type EventTemplate struct {
	Title                string   `yaml:"title" validate:"required"`
	Type                 string   `yaml:"type" validate:"required"`
	Description          string   `yaml:"description" validate:"required"`
	Venue                string   `yaml:"venue" validate:"required"`
	Address              string   `yaml:"address" validate:"required"`
	SuggestedDate        string   `yaml:"suggestedDate" validate:"required"`
	SuggestedTime        string   `yaml:"suggestedTime" validate:"required"`
	ConversationStarters []string `yaml:"conversationStarters" validate:"min=1,max=5,dive,required"`
	WhyThisEvent         string   `yaml:"whyThisEvent" validate:"required"`
}

// Event converts the template into a MatchEvent. Starters are copied.
func (t EventTemplate) Event() MatchEvent {
	starters := make([]string, len(t.ConversationStarters))
	copy(starters, t.ConversationStarters)
	return MatchEvent{
		Title:                t.Title,
		Type:                 t.Type,
		Description:          t.Description,
		Venue:                t.Venue,
		Address:              t.Address,
		SuggestedDate:        t.SuggestedDate,
		SuggestedTime:        t.SuggestedTime,
		ConversationStarters: starters,
		WhyThisEvent:         t.WhyThisEvent,
	}
}
