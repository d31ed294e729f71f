package domain

// DefaultMinCompatible is the smallest filtered pool that still supports three groups of four.
const DefaultMinCompatible = 12

// CompatibilityPolicy maps a gender identity to the orientation labels it satisfies.
// It is loaded from configuration; identities absent from GenderLabels satisfy every label.
type CompatibilityPolicy struct {
	MinCompatible int                 `yaml:"minCompatible"`
	GenderLabels  map[string][]string `yaml:"genderLabels"`
}

// Labels returns the orientation labels satisfied by identity.
func (p CompatibilityPolicy) Labels(identity string) []string {
	if labels, ok := p.GenderLabels[identity]; ok {
		return labels
	}
	return InterestedInOptions
}
