package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text    string
	err     error
	system  string
	content string
}

func (s *stubGenerator) GenerateText(ctx context.Context, systemPrompt, content string) (string, error) {
	s.system = systemPrompt
	s.content = content
	return s.text, s.err
}

const validSingleJSON = `{
  "group": [
    {"id": "m00", "name": "James", "age": 34, "neighborhood": "Mission, SF", "matchReason": "Shares your love of live music."},
    {"id": "m01", "name": "Daniel", "age": 31, "neighborhood": "Noe Valley, SF", "matchReason": "Calm and curious."},
    {"id": "m02", "name": "Marcus", "age": 36, "neighborhood": "Hayes Valley, SF", "matchReason": "Big on growth."}
  ],
  "event": {
    "title": "Jazz Night", "type": "Live Music", "description": "Live jazz.",
    "venue": "The Alley", "address": "3325 Grand Ave, Oakland, CA",
    "suggestedDate": "Saturday, Mar 1", "suggestedTime": "8:00 PM",
    "conversationStarters": ["Favorite album?", "Best show?", "Guilty pleasure song?"],
    "whyThisEvent": "Music does the talking at first."
  }
}`

func TestLLMMatcher_SingleSuccess(t *testing.T) {
	gen := &stubGenerator{text: "```json\n" + validSingleJSON + "\n```"}
	m := NewLLMMatcher(gen)

	res, err := m.Match(context.Background(), domain.MatchVariantSingle, testProfile(), largePool(4, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.MatchSourceAI, res.Source)
	require.NotNil(t, res.Single)
	assert.Len(t, res.Single.Group, 3)
	assert.Equal(t, "Jazz Night", res.Single.Event.Title)

	assert.Equal(t, singlePrompt, gen.system)
	assert.Contains(t, gen.content, `"candidates"`)
	assert.Contains(t, gen.content, `"firstName":"Maya"`)
}

func TestLLMMatcher_GeneratorError(t *testing.T) {
	m := NewLLMMatcher(&stubGenerator{err: errors.New("quota exceeded")})

	_, err := m.Match(context.Background(), domain.MatchVariantMulti, testProfile(), nil)
	assert.Error(t, err)
}

func TestLLMMatcher_Unavailable(t *testing.T) {
	var m *LLMMatcher
	_, err := m.Match(context.Background(), domain.MatchVariantMulti, testProfile(), nil)
	assert.ErrorIs(t, err, domain.ErrMatcherUnavailable)
}

func testGathering(score string) string {
	g := `{"group":[
		{"id":"a","name":"A","age":30,"neighborhood":"X","matchReason":"r"},
		{"id":"b","name":"B","age":31,"neighborhood":"X","matchReason":"r"},
		{"id":"c","name":"C","age":32,"neighborhood":"X","matchReason":"r"},
		{"id":"d","name":"D","age":33,"neighborhood":"X","matchReason":"r"}],
		"event":{"title":"T","type":"Y","description":"D","venue":"V","address":"A",
		"suggestedDate":"Sat","suggestedTime":"7 PM","conversationStarters":["Hi?"],"whyThisEvent":"W"}`
	if score != "" {
		g += `,"compatibilityScore":` + score
	}
	return g + `}`
}

func parsePool() []domain.Candidate {
	pool := largePool(4, 0)
	for _, id := range []string{"a", "b", "c", "d"} {
		pool = append(pool, cand(id, "Man", "Women"))
	}
	return pool
}

func TestParseResult_Invalid(t *testing.T) {
	g := testGathering("88")
	noScore := testGathering("")

	tests := []struct {
		name    string
		variant domain.MatchVariant
		text    string
	}{
		{"not json", domain.MatchVariantSingle, "Here are your matches!"},
		{"group too small", domain.MatchVariantSingle, `{"group":[{"id":"a","name":"A","age":30,"neighborhood":"X","matchReason":"r"}],"event":{}}`},
		{"missing event fields", domain.MatchVariantSingle, `{"group":[
			{"id":"a","name":"A","age":30,"neighborhood":"X","matchReason":"r"},
			{"id":"b","name":"B","age":30,"neighborhood":"X","matchReason":"r"},
			{"id":"c","name":"C","age":30,"neighborhood":"X","matchReason":"r"}],"event":{"title":"T"}}`},
		{"unknown candidate", domain.MatchVariantSingle, strings.Replace(validSingleJSON, `"m02"`, `"cand-99"`, 1)},
		{"duplicate candidate", domain.MatchVariantSingle, strings.Replace(validSingleJSON, `"m02"`, `"m00"`, 1)},
		{"multi wrong count", domain.MatchVariantMulti, `{"gatherings":[],"recommendedIndex":0}`},
		{"multi is single shape", domain.MatchVariantMulti, validSingleJSON},
		{"multi missing score", domain.MatchVariantMulti, `{"gatherings":[` + g + `,` + noScore + `,` + g + `],"recommendedIndex":0}`},
		{"multi missing recommended index", domain.MatchVariantMulti, `{"gatherings":[` + g + `,` + g + `,` + g + `]}`},
		{"multi unknown candidate", domain.MatchVariantMulti, `{"gatherings":[` + g + `,` + g + `,` + strings.Replace(g, `"id":"d"`, `"id":"zz"`, 1) + `],"recommendedIndex":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult(tt.variant, tt.text, parsePool())
			assert.ErrorIs(t, err, domain.ErrInvalidMatchResult)
		})
	}
}

func TestParseResult_MultiSuccess(t *testing.T) {
	g := testGathering("88")
	text := `{"gatherings":[` + g + `,` + g + `,` + g + `],"recommendedIndex":2}`

	res, err := ParseResult(domain.MatchVariantMulti, text, parsePool())
	require.NoError(t, err)
	require.NotNil(t, res.Multi)
	assert.Equal(t, 2, res.Multi.RecommendedIndex)
	assert.Equal(t, 88, res.Multi.Gatherings[0].CompatibilityScore)
}

func TestParseResult_ZeroValuesAccepted(t *testing.T) {
	g := testGathering("0")
	text := `{"gatherings":[` + g + `,` + g + `,` + g + `],"recommendedIndex":0}`

	res, err := ParseResult(domain.MatchVariantMulti, text, parsePool())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Multi.Gatherings[1].CompatibilityScore)
}
