package domain

// Fixed onboarding vocabularies, keyed by the name used in `vocab=` validation tags.
var (
	GenderIdentityOptions = []string{
		"Woman", "Man", "Nonbinary", "Genderqueer", "Prefer to self-describe", "Prefer not to say",
	}

	PronounsOptions = []string{"She/her", "He/him", "They/them", "Other"}

	InterestedInOptions = []string{"Women", "Men", "Nonbinary folks", "All genders"}

	ValuesOptions = []string{
		"Authenticity", "Growth", "Family", "Adventure", "Stability", "Humor",
		"Ambition", "Spirituality", "Creativity", "Kindness", "Independence", "Community",
	}

	FridayNightOptions = []string{
		"Cook dinner and deep conversation",
		"Try a new restaurant",
		"Live music or comedy show",
		"Outdoor adventure",
		"Game night with friends",
		"Cozy night with a book",
	}

	LoveLanguageOptions = []string{
		"Words of Affirmation", "Quality Time", "Acts of Service", "Physical Touch", "Receiving Gifts",
	}

	ConflictStyleOptions = []string{
		"Talk it through immediately",
		"Need space first then talk",
		"Write my feelings down",
		"Use humor to defuse",
	}

	LookingForOptions = []string{
		"A life partner",
		"A serious relationship",
		"Exploring with intention",
		"Building my community first",
	}

	CommunicationStyleOptions = []string{
		"Direct and honest",
		"Warm and nurturing",
		"Playful and witty",
		"Thoughtful and reserved",
	}

	NonNegotiablesOptions = []string{
		"Emotional availability", "Shared life goals", "Intellectual connection",
		"Physical chemistry", "Financial stability", "Same page on kids",
		"Sense of humor", "Aligned values",
	}

	DietaryOptions = []string{
		"No restrictions", "Vegetarian", "Vegan", "Gluten-free", "Halal", "Kosher",
	}
)

// Vocabularies maps a vocabulary name to its allowed values.
var Vocabularies = map[string][]string{
	"gender_identity":     GenderIdentityOptions,
	"pronouns":            PronounsOptions,
	"interested_in":       InterestedInOptions,
	"values":              ValuesOptions,
	"friday_night":        FridayNightOptions,
	"love_language":       LoveLanguageOptions,
	"conflict_style":      ConflictStyleOptions,
	"looking_for":         LookingForOptions,
	"communication_style": CommunicationStyleOptions,
	"non_negotiables":     NonNegotiablesOptions,
	"dietary":             DietaryOptions,
}

// InVocabulary reports whether value belongs to the named vocabulary.
func InVocabulary(name, value string) bool {
	for _, v := range Vocabularies[name] {
		if v == value {
			return true
		}
	}
	return false
}
