package match

import (
	"fmt"
	"testing"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testPolicy() domain.CompatibilityPolicy {
	return domain.CompatibilityPolicy{
		MinCompatible: 12,
		GenderLabels: map[string][]string{
			"Woman":       {"Women", "All genders"},
			"Man":         {"Men", "All genders"},
			"Nonbinary":   {"Nonbinary folks", "All genders"},
			"Genderqueer": {"Nonbinary folks", "All genders"},
		},
	}
}

func cand(id, gender string, interestedIn ...string) domain.Candidate {
	return domain.Candidate{ID: id, Name: "N" + id, Age: 30, Neighborhood: "Mission, SF", GenderIdentity: gender, InterestedIn: interestedIn}
}

func TestCompatible(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name string
		aID  string
		aIn  []string
		bID  string
		bIn  []string
		want bool
	}{
		{"woman and man mutual", "Woman", []string{"Men"}, "Man", []string{"Women"}, true},
		{"one sided", "Woman", []string{"Men"}, "Man", []string{"Men"}, false},
		{"same gender mutual", "Woman", []string{"Women"}, "Woman", []string{"Women"}, true},
		{"all genders accepts man", "Nonbinary", []string{"All genders"}, "Man", []string{"All genders"}, true},
		{"nonbinary label", "Woman", []string{"Nonbinary folks"}, "Genderqueer", []string{"Women"}, true},
		{"nonbinary not men", "Man", []string{"Women"}, "Nonbinary", []string{"All genders"}, false},
		{"unrecognized identity universal", "Prefer not to say", []string{"Men"}, "Man", []string{"Women"}, true},
		{"unrecognized both sides", "Prefer to self-describe", []string{"Women"}, "Agender", []string{"Men"}, true},
		{"empty interests", "Woman", nil, "Man", []string{"Women"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compatible(p, tt.aID, tt.aIn, tt.bID, tt.bIn))
			// The relation is symmetric.
			assert.Equal(t, tt.want, Compatible(p, tt.bID, tt.bIn, tt.aID, tt.aIn))
		})
	}
}

func TestFilterCompatible_OnlyMutualMatches(t *testing.T) {
	p := testPolicy()
	pool := []domain.Candidate{
		cand("1", "Man", "Women"),
		cand("2", "Man", "Men"),
		cand("3", "Woman", "Men"),
		cand("4", "Nonbinary", "All genders"),
		cand("5", "Man", "Women", "Nonbinary folks"),
		cand("6", "Prefer not to say", "Women"),
	}

	got := FilterCompatible(p, "Woman", []string{"Men"}, pool)

	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"1", "5", "6"}, ids)

	for _, c := range got {
		assert.True(t, Compatible(p, "Woman", []string{"Men"}, c.GenderIdentity, c.InterestedIn))
	}
}

func largePool(men, women int) []domain.Candidate {
	var pool []domain.Candidate
	for i := 0; i < men; i++ {
		pool = append(pool, cand(fmt.Sprintf("m%02d", i), "Man", "Women"))
	}
	for i := 0; i < women; i++ {
		pool = append(pool, cand(fmt.Sprintf("w%02d", i), "Woman", "Men"))
	}
	return pool
}

func TestSelectPool_Threshold(t *testing.T) {
	p := testPolicy()
	profile := &domain.Profile{GenderIdentity: "Woman", InterestedIn: []string{"Men"}}

	t.Run("enough compatible uses filtered", func(t *testing.T) {
		pool := largePool(12, 5)
		got := SelectPool(p, profile, pool)
		assert.Len(t, got, 12)
		for _, c := range got {
			assert.Equal(t, "Man", c.GenderIdentity)
		}
	})

	t.Run("below threshold uses full pool", func(t *testing.T) {
		pool := largePool(11, 5)
		got := SelectPool(p, profile, pool)
		assert.Equal(t, pool, got)
	})

	t.Run("zero min uses default", func(t *testing.T) {
		p := testPolicy()
		p.MinCompatible = 0
		pool := largePool(11, 5)
		assert.Equal(t, pool, SelectPool(p, profile, pool))
	})
}
