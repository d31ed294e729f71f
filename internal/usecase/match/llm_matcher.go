package match

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
)

// TextGenerator produces a single text completion for a system instruction and user content.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, content string) (string, error)
}

// LLMMatcher asks a hosted language model for gatherings and validates the answer.
type LLMMatcher struct {
	generator TextGenerator
}

func NewLLMMatcher(generator TextGenerator) *LLMMatcher {
	return &LLMMatcher{generator: generator}
}

type matchPayload struct {
	Profile    *domain.Profile    `json:"profile"`
	Candidates []domain.Candidate `json:"candidates"`
}

// Match sends the profile and the full pool in one call. Any decoding or schema problem is
// reported as domain.ErrInvalidMatchResult.
func (m *LLMMatcher) Match(ctx context.Context, variant domain.MatchVariant, profile *domain.Profile, pool []domain.Candidate) (*domain.MatchResult, error) {
	if m == nil || m.generator == nil {
		return nil, domain.ErrMatcherUnavailable
	}

	payload, err := json.Marshal(matchPayload{Profile: profile, Candidates: pool})
	if err != nil {
		return nil, fmt.Errorf("marshal match payload: %w", err)
	}

	prompt := multiPrompt
	if variant == domain.MatchVariantSingle {
		prompt = singlePrompt
	}

	text, err := m.generator.GenerateText(ctx, prompt, string(payload))
	if err != nil {
		return nil, fmt.Errorf("generate gatherings: %w", err)
	}

	return ParseResult(variant, text, pool)
}

// multiResponse mirrors MultiMatchResult with pointer numbers so that omitted fields are
// distinguishable from zero.
type multiResponse struct {
	Gatherings []struct {
		Group              []domain.MatchMember `json:"group"`
		Event              domain.MatchEvent    `json:"event"`
		CompatibilityScore *int                 `json:"compatibilityScore" validate:"required"`
	} `json:"gatherings" validate:"dive"`
	RecommendedIndex *int `json:"recommendedIndex" validate:"required"`
}

func (r *multiResponse) toResult() *domain.MultiMatchResult {
	out := &domain.MultiMatchResult{
		Gatherings:       make([]domain.Gathering, len(r.Gatherings)),
		RecommendedIndex: *r.RecommendedIndex,
	}
	for i, g := range r.Gatherings {
		out.Gatherings[i] = domain.Gathering{
			Group:              g.Group,
			Event:              g.Event,
			CompatibilityScore: *g.CompatibilityScore,
		}
	}
	return out
}

// ParseResult decodes and validates a model response for the given variant. Every group
// member must be a distinct candidate from pool.
func ParseResult(variant domain.MatchVariant, text string, pool []domain.Candidate) (*domain.MatchResult, error) {
	body := stripCodeFence(text)
	result := &domain.MatchResult{Variant: variant, Source: domain.MatchSourceAI}

	if variant == domain.MatchVariantSingle {
		var single domain.SingleMatchResult
		if err := json.Unmarshal([]byte(body), &single); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMatchResult, err)
		}
		if err := single.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMatchResult, err)
		}
		if err := checkMembers(single.Group, pool); err != nil {
			return nil, err
		}
		result.Single = &single
		return result, nil
	}

	var resp multiResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMatchResult, err)
	}
	if err := domain.ValidateStruct(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMatchResult, err)
	}
	multi := resp.toResult()
	if err := multi.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMatchResult, err)
	}
	for _, g := range multi.Gatherings {
		if err := checkMembers(g.Group, pool); err != nil {
			return nil, err
		}
	}
	result.Variant = domain.MatchVariantMulti
	result.Multi = multi
	return result, nil
}

func checkMembers(group []domain.MatchMember, pool []domain.Candidate) error {
	known := make(map[string]struct{}, len(pool))
	for _, c := range pool {
		known[c.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(group))
	for _, m := range group {
		if _, ok := known[m.ID]; !ok {
			return fmt.Errorf("%w: unknown candidate %q", domain.ErrInvalidMatchResult, m.ID)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: candidate %q appears twice in one group", domain.ErrInvalidMatchResult, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code block if the model added one.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
