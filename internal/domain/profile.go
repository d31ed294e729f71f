package domain

import "time"

// Profile is an onboarding submission. It is immutable once stored.
type Profile struct {
	ID                 string    `json:"id" db:"id"`
	FirstName          string    `json:"firstName" db:"first_name" validate:"required"`
	Age                int       `json:"age" db:"age" validate:"min=25,max=120"`
	Neighborhood       string    `json:"neighborhood" db:"neighborhood" validate:"required"`
	GenderIdentity     string    `json:"genderIdentity" db:"gender_identity" validate:"required,vocab=gender_identity"`
	GenderSelfDescribe string    `json:"genderSelfDescribe" db:"gender_self_describe"`
	Pronouns           string    `json:"pronouns" db:"pronouns" validate:"required,vocab=pronouns"`
	PronounsOther      string    `json:"pronounsOther" db:"pronouns_other"`
	InterestedIn       []string  `json:"interestedIn" db:"interested_in" validate:"min=1,dive,vocab=interested_in"`
	Values             []string  `json:"values" db:"profile_values" validate:"min=1,max=3,dive,vocab=values"`
	FridayNight        string    `json:"fridayNight" db:"friday_night" validate:"required,vocab=friday_night"`
	RelationshipVision string    `json:"relationshipVision" db:"relationship_vision"`
	PastLesson         string    `json:"pastLesson" db:"past_lesson"`
	LoveLanguage       string    `json:"loveLanguage" db:"love_language" validate:"omitempty,vocab=love_language"`
	ConflictStyle      string    `json:"conflictStyle" db:"conflict_style" validate:"omitempty,vocab=conflict_style"`
	LookingFor         string    `json:"lookingFor" db:"looking_for" validate:"required,vocab=looking_for"`
	CommunicationStyle string    `json:"communicationStyle" db:"communication_style" validate:"required,vocab=communication_style"`
	NonNegotiables     []string  `json:"nonNegotiables" db:"non_negotiables" validate:"min=1,max=2,dive,vocab=non_negotiables"`
	UnexpectedThing    string    `json:"unexpectedThing" db:"unexpected_thing" validate:"required"`
	DietaryPreferences []string  `json:"dietaryPreferences" db:"dietary_preferences" validate:"min=1,dive,vocab=dietary"`
	ReadyToShowUp      bool      `json:"readyToShowUp" db:"ready_to_show_up" validate:"eq=true"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

// DisplayGender returns the self description when the identity asks for one.
func (p *Profile) DisplayGender() string {
	if p.GenderIdentity == "Prefer to self-describe" && p.GenderSelfDescribe != "" {
		return p.GenderSelfDescribe
	}
	return p.GenderIdentity
}

// DisplayPronouns returns the override when pronouns is "Other".
func (p *Profile) DisplayPronouns() string {
	if p.Pronouns == "Other" && p.PronounsOther != "" {
		return p.PronounsOther
	}
	return p.Pronouns
}
