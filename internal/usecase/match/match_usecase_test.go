package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMatcher struct {
	result *domain.MatchResult
	err    error
	calls  int
	pool   []domain.Candidate
}

func (s *stubMatcher) Match(ctx context.Context, variant domain.MatchVariant, profile *domain.Profile, pool []domain.Candidate) (*domain.MatchResult, error) {
	s.calls++
	s.pool = pool
	return s.result, s.err
}

type blockingMatcher struct{}

func (blockingMatcher) Match(ctx context.Context, variant domain.MatchVariant, profile *domain.Profile, pool []domain.Candidate) (*domain.MatchResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func setupUseCase(t *testing.T, primary Matcher, opts Options) (*MatchUseCase, string) {
	t.Helper()
	repo := memory.NewProfileRepository()
	p := testProfile()
	require.NoError(t, repo.Create(context.Background(), p))

	uc := NewMatchUseCase(repo, largePool(14, 14), primary, newFallback(t), opts, nil)
	return uc, p.ID
}

func TestMatch_MissingProfileID(t *testing.T) {
	uc, _ := setupUseCase(t, nil, Options{})

	_, err := uc.Match(context.Background(), &MatchRequest{ProfileID: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMatch_InvalidVariant(t *testing.T) {
	uc, id := setupUseCase(t, nil, Options{})

	_, err := uc.Match(context.Background(), &MatchRequest{ProfileID: id, Variant: "double"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMatch_UnknownProfile(t *testing.T) {
	primary := &stubMatcher{err: errors.New("boom")}
	uc, _ := setupUseCase(t, primary, Options{})

	_, err := uc.Match(context.Background(), &MatchRequest{ProfileID: "nope"})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Equal(t, 0, primary.calls)
}

func TestMatch_PrimarySuccess(t *testing.T) {
	want := &domain.MatchResult{
		Variant: domain.MatchVariantSingle,
		Source:  domain.MatchSourceAI,
		Single:  &domain.SingleMatchResult{},
	}
	primary := &stubMatcher{result: want}
	uc, id := setupUseCase(t, primary, Options{})

	got, err := uc.Match(context.Background(), &MatchRequest{ProfileID: id, Variant: "single"})
	require.NoError(t, err)
	assert.Same(t, want, got)
	// The external matcher sees the full, unfiltered pool.
	assert.Len(t, primary.pool, 28)
}

func TestMatch_PrimaryErrorFallsBack(t *testing.T) {
	primary := &stubMatcher{err: errors.New("upstream unavailable")}
	uc, id := setupUseCase(t, primary, Options{})

	got, err := uc.Match(context.Background(), &MatchRequest{ProfileID: id})
	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, domain.MatchSourceFallback, got.Source)
	assert.Equal(t, domain.MatchVariantMulti, got.Variant)
	require.NotNil(t, got.Multi)
	assert.Len(t, got.Multi.Gatherings, 3)
}

func TestMatch_PrimaryEmptyResultFallsBack(t *testing.T) {
	primary := &stubMatcher{result: &domain.MatchResult{Variant: domain.MatchVariantMulti}}
	uc, id := setupUseCase(t, primary, Options{})

	got, err := uc.Match(context.Background(), &MatchRequest{ProfileID: id})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchSourceFallback, got.Source)
}

func TestMatch_NoPrimaryUsesDefaultVariant(t *testing.T) {
	uc, id := setupUseCase(t, nil, Options{DefaultVariant: domain.MatchVariantSingle})

	got, err := uc.Match(context.Background(), &MatchRequest{ProfileID: id})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchVariantSingle, got.Variant)
	require.NotNil(t, got.Single)
	assert.Len(t, got.Single.Group, 4)
}

func TestMatch_TimeoutFallsBack(t *testing.T) {
	uc, id := setupUseCase(t, blockingMatcher{}, Options{Timeout: 20 * time.Millisecond})

	got, err := uc.Match(context.Background(), &MatchRequest{ProfileID: id})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchSourceFallback, got.Source)
}

func TestCandidates_ReturnsCopy(t *testing.T) {
	uc, _ := setupUseCase(t, nil, Options{})

	c := uc.Candidates()
	c[0].Name = "changed"
	assert.NotEqual(t, "changed", uc.Candidates()[0].Name)
}
