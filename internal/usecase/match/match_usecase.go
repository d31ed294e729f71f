package match

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/repository"
	"go.uber.org/zap"
)

// Matcher turns a profile and a candidate pool into gatherings of the requested variant.
type Matcher interface {
	Match(ctx context.Context, variant domain.MatchVariant, profile *domain.Profile, pool []domain.Candidate) (*domain.MatchResult, error)
}

// MatchRequest is the body of POST /api/match.
type MatchRequest struct {
	ProfileID string `json:"profileId"`
	Variant   string `json:"variant"`
}

type Options struct {
	DefaultVariant domain.MatchVariant
	// Timeout bounds the primary matcher call. Zero means no extra bound.
	Timeout time.Duration
}

type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	pool        []domain.Candidate
	primary     Matcher
	fallback    Matcher
	opts        Options
	logger      *zap.Logger
}

// NewMatchUseCase wires the strategies. primary may be nil, in which case every request
// goes straight to fallback.
func NewMatchUseCase(
	profileRepo repository.ProfileRepository,
	pool []domain.Candidate,
	primary Matcher,
	fallback Matcher,
	opts Options,
	logger *zap.Logger,
) *MatchUseCase {
	if !opts.DefaultVariant.IsValid() {
		opts.DefaultVariant = domain.MatchVariantMulti
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchUseCase{
		profileRepo: profileRepo,
		pool:        pool,
		primary:     primary,
		fallback:    fallback,
		opts:        opts,
		logger:      logger,
	}
}

// Candidates returns a copy of the candidate pool.
func (uc *MatchUseCase) Candidates() []domain.Candidate {
	out := make([]domain.Candidate, len(uc.pool))
	copy(out, uc.pool)
	return out
}

// Match validates the request, loads the profile and produces gatherings. Failures of the
// primary matcher are logged and replaced by the fallback result.
func (uc *MatchUseCase) Match(ctx context.Context, req *MatchRequest) (*domain.MatchResult, error) {
	profileID := strings.TrimSpace(req.ProfileID)
	if profileID == "" {
		return nil, &domain.ValidationError{Message: "profileId is required"}
	}

	variant := uc.opts.DefaultVariant
	if req.Variant != "" {
		variant = domain.MatchVariant(req.Variant)
		if !variant.IsValid() {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("variant must be one of [%s %s]", domain.MatchVariantSingle, domain.MatchVariantMulti)}
		}
	}

	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if uc.primary != nil {
		result, err := uc.tryPrimary(ctx, variant, profile)
		if err == nil {
			return result, nil
		}
		uc.logger.Warn("primary matcher failed, using fallback",
			zap.String("profile_id", profile.ID),
			zap.String("variant", string(variant)),
			zap.Error(err),
		)
	}

	result, err := uc.fallback.Match(ctx, variant, profile, uc.pool)
	if err != nil {
		return nil, fmt.Errorf("fallback match: %w", err)
	}
	return result, nil
}

func (uc *MatchUseCase) tryPrimary(ctx context.Context, variant domain.MatchVariant, profile *domain.Profile) (*domain.MatchResult, error) {
	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := uc.primary.Match(ctx, variant, profile, uc.pool)
	if err != nil {
		return nil, err
	}
	if result == nil || (result.Single == nil && result.Multi == nil) {
		return nil, domain.ErrInvalidMatchResult
	}

	uc.logger.Info("primary matcher succeeded",
		zap.String("profile_id", profile.ID),
		zap.String("variant", string(variant)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
