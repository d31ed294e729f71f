package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *Profile {
	return &Profile{
		FirstName:          "Maya",
		Age:                31,
		Neighborhood:       "Mission, SF",
		GenderIdentity:     "Woman",
		Pronouns:           "She/her",
		InterestedIn:       []string{"Men"},
		Values:             []string{"Growth", "Humor"},
		FridayNight:        "Live music or comedy show",
		LookingFor:         "A serious relationship",
		CommunicationStyle: "Direct and honest",
		NonNegotiables:     []string{"Emotional availability"},
		UnexpectedThing:    "I once crewed a tall ship",
		DietaryPreferences: []string{"No restrictions"},
		ReadyToShowUp:      true,
	}
}

func TestProfileValidate_Valid(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func TestProfileValidate_AgeBoundary(t *testing.T) {
	p := validProfile()
	p.Age = 24
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "age must be at least 25")

	p.Age = 25
	assert.NoError(t, p.Validate())
}

func TestProfileValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		want   string
	}{
		{"missing first name", func(p *Profile) { p.FirstName = "" }, "firstName is required"},
		{"too old", func(p *Profile) { p.Age = 121 }, "age must be at most 120"},
		{"empty interested in", func(p *Profile) { p.InterestedIn = nil }, "interestedIn must contain at least 1"},
		{"too many values", func(p *Profile) { p.Values = []string{"Growth", "Humor", "Family", "Kindness"} }, "values must contain at most 3"},
		{"unknown value", func(p *Profile) { p.Values = []string{"Wealth"} }, `"Wealth" is not an allowed option`},
		{"too many non-negotiables", func(p *Profile) {
			p.NonNegotiables = []string{"Sense of humor", "Aligned values", "Financial stability"}
		}, "nonNegotiables must contain at most 2"},
		{"not ready", func(p *Profile) { p.ReadyToShowUp = false }, "ready to show up"},
		{"unknown gender identity", func(p *Profile) { p.GenderIdentity = "Robot" }, "genderIdentity"},
		{"bad love language", func(p *Profile) { p.LoveLanguage = "Telepathy" }, "loveLanguage"},
		{"missing unexpected thing", func(p *Profile) { p.UnexpectedThing = "" }, "unexpectedThing is required"},
		{"empty dietary", func(p *Profile) { p.DietaryPreferences = []string{} }, "dietaryPreferences must contain at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProfileValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	p := validProfile()
	p.LoveLanguage = ""
	p.ConflictStyle = ""
	p.RelationshipVision = ""
	assert.NoError(t, p.Validate())
}

func TestProfileDisplayHelpers(t *testing.T) {
	p := validProfile()
	p.GenderIdentity = "Prefer to self-describe"
	p.GenderSelfDescribe = "Two-spirit"
	p.Pronouns = "Other"
	p.PronounsOther = "Ze/zir"

	assert.Equal(t, "Two-spirit", p.DisplayGender())
	assert.Equal(t, "Ze/zir", p.DisplayPronouns())
}
