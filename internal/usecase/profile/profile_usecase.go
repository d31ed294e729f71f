package profile

import (
	"context"
	"fmt"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

// CreateProfileRequest is the onboarding submission. Omitted optional text fields stay "".
type CreateProfileRequest struct {
	FirstName          string   `json:"firstName"`
	Age                int      `json:"age"`
	Neighborhood       string   `json:"neighborhood"`
	GenderIdentity     string   `json:"genderIdentity"`
	GenderSelfDescribe string   `json:"genderSelfDescribe"`
	Pronouns           string   `json:"pronouns"`
	PronounsOther      string   `json:"pronounsOther"`
	InterestedIn       []string `json:"interestedIn"`
	Values             []string `json:"values"`
	FridayNight        string   `json:"fridayNight"`
	RelationshipVision string   `json:"relationshipVision"`
	PastLesson         string   `json:"pastLesson"`
	LoveLanguage       string   `json:"loveLanguage"`
	ConflictStyle      string   `json:"conflictStyle"`
	LookingFor         string   `json:"lookingFor"`
	CommunicationStyle string   `json:"communicationStyle"`
	NonNegotiables     []string `json:"nonNegotiables"`
	UnexpectedThing    string   `json:"unexpectedThing"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	ReadyToShowUp      bool     `json:"readyToShowUp"`
}

func (r *CreateProfileRequest) toProfile() *domain.Profile {
	return &domain.Profile{
		FirstName:          r.FirstName,
		Age:                r.Age,
		Neighborhood:       r.Neighborhood,
		GenderIdentity:     r.GenderIdentity,
		GenderSelfDescribe: r.GenderSelfDescribe,
		Pronouns:           r.Pronouns,
		PronounsOther:      r.PronounsOther,
		InterestedIn:       r.InterestedIn,
		Values:             r.Values,
		FridayNight:        r.FridayNight,
		RelationshipVision: r.RelationshipVision,
		PastLesson:         r.PastLesson,
		LoveLanguage:       r.LoveLanguage,
		ConflictStyle:      r.ConflictStyle,
		LookingFor:         r.LookingFor,
		CommunicationStyle: r.CommunicationStyle,
		NonNegotiables:     r.NonNegotiables,
		UnexpectedThing:    r.UnexpectedThing,
		DietaryPreferences: r.DietaryPreferences,
		ReadyToShowUp:      r.ReadyToShowUp,
	}
}

// CreateProfile validates and stores a new profile.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*domain.Profile, error) {
	profile := req.toProfile()
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// GetProfile returns a stored profile by id.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
