package match

import "github.com/gdugdh24/thirdplace-backend/internal/domain"

// Compatible reports mutual attraction between two people: each one's interests must accept
// at least one label of the other's gender identity.
func Compatible(policy domain.CompatibilityPolicy, aIdentity string, aInterestedIn []string, bIdentity string, bInterestedIn []string) bool {
	return accepts(aInterestedIn, policy.Labels(bIdentity)) &&
		accepts(bInterestedIn, policy.Labels(aIdentity))
}

// FilterCompatible returns the candidates mutually compatible with the requester, in pool order.
func FilterCompatible(policy domain.CompatibilityPolicy, identity string, interestedIn []string, pool []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(pool))
	for _, c := range pool {
		if Compatible(policy, identity, interestedIn, c.GenderIdentity, c.InterestedIn) {
			out = append(out, c)
		}
	}
	return out
}

// SelectPool applies FilterCompatible and falls back to the whole pool when fewer than
// policy.MinCompatible candidates qualify.
func SelectPool(policy domain.CompatibilityPolicy, profile *domain.Profile, pool []domain.Candidate) []domain.Candidate {
	min := policy.MinCompatible
	if min <= 0 {
		min = domain.DefaultMinCompatible
	}

	filtered := FilterCompatible(policy, profile.GenderIdentity, profile.InterestedIn, pool)
	if len(filtered) < min {
		return pool
	}
	return filtered
}

func accepts(interestedIn, labels []string) bool {
	for _, want := range interestedIn {
		for _, l := range labels {
			if want == l {
				return true
			}
		}
	}
	return false
}
