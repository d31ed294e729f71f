package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
)

const groupSize = 4

// Synthetic scores for fallback gatherings, in recommendation order.
var fallbackScores = [domain.GatheringCount]int{92, 87, 83}

var reasonTemplates = []string{
	"Lives nearby in %[1]s and values %[2]s as much as you do.",
	"Brings an easy warmth from %[1]s that pairs well with your %[3]s style.",
	"Also looking for %[4]s, and ready to show up in person.",
	"A thoughtful presence from %[1]s who will make %[2]s feel natural.",
}

// FallbackMatcher builds gatherings locally, without any external dependency.
// Output depends only on the profile, the pool order and the templates.
type FallbackMatcher struct {
	policy    domain.CompatibilityPolicy
	templates []domain.EventTemplate
}

func NewFallbackMatcher(policy domain.CompatibilityPolicy, templates []domain.EventTemplate) (*FallbackMatcher, error) {
	if len(templates) < domain.GatheringCount {
		return nil, fmt.Errorf("fallback needs at least %d event templates, got %d", domain.GatheringCount, len(templates))
	}
	return &FallbackMatcher{policy: policy, templates: templates}, nil
}

// Match filters the pool for compatibility and builds the requested variant. It never fails.
func (m *FallbackMatcher) Match(ctx context.Context, variant domain.MatchVariant, profile *domain.Profile, pool []domain.Candidate) (*domain.MatchResult, error) {
	candidates := SelectPool(m.policy, profile, pool)

	result := &domain.MatchResult{Variant: variant, Source: domain.MatchSourceFallback}
	if variant == domain.MatchVariantSingle {
		result.Single = m.BuildSingle(profile, candidates)
	} else {
		result.Variant = domain.MatchVariantMulti
		result.Multi = m.BuildMulti(profile, candidates)
	}
	return result, nil
}

// BuildSingle pairs the first group of candidates with the first template.
func (m *FallbackMatcher) BuildSingle(profile *domain.Profile, candidates []domain.Candidate) *domain.SingleMatchResult {
	return &domain.SingleMatchResult{
		Group: members(profile, partition(candidates, 0)),
		Event: m.templates[0].Event(),
	}
}

// BuildMulti builds three gatherings from consecutive groups of four. The first is recommended.
func (m *FallbackMatcher) BuildMulti(profile *domain.Profile, candidates []domain.Candidate) *domain.MultiMatchResult {
	gatherings := make([]domain.Gathering, domain.GatheringCount)
	for i := range gatherings {
		gatherings[i] = domain.Gathering{
			Group:              members(profile, partition(candidates, i)),
			Event:              m.templates[i].Event(),
			CompatibilityScore: fallbackScores[i],
		}
	}
	return &domain.MultiMatchResult{Gatherings: gatherings, RecommendedIndex: 0}
}

// partition returns the i-th consecutive group of four. A short group is replaced by the first four.
func partition(candidates []domain.Candidate, i int) []domain.Candidate {
	start := i * groupSize
	if start+groupSize <= len(candidates) {
		return candidates[start : start+groupSize]
	}
	if len(candidates) < groupSize {
		return candidates
	}
	return candidates[:groupSize]
}

func members(profile *domain.Profile, group []domain.Candidate) []domain.MatchMember {
	out := make([]domain.MatchMember, len(group))
	for j, c := range group {
		out[j] = domain.MatchMember{
			ID:           c.ID,
			Name:         c.Name,
			Age:          c.Age,
			Neighborhood: c.Neighborhood,
			MatchReason:  matchReason(profile, c, j),
		}
	}
	return out
}

func matchReason(profile *domain.Profile, c domain.Candidate, j int) string {
	value := "connection"
	if len(profile.Values) > 0 {
		value = strings.ToLower(profile.Values[j%len(profile.Values)])
	}
	style := "communication"
	if profile.CommunicationStyle != "" {
		style = strings.ToLower(profile.CommunicationStyle)
	}
	intent := "something real"
	if profile.LookingFor != "" {
		intent = strings.ToLower(profile.LookingFor)
	}
	return fmt.Sprintf(reasonTemplates[j%len(reasonTemplates)], c.Neighborhood, value, style, intent)
}
