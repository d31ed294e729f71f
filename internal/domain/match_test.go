package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGroup(n int) []MatchMember {
	group := make([]MatchMember, n)
	for i := range group {
		group[i] = MatchMember{
			ID:           fmt.Sprintf("c-%d", i),
			Name:         fmt.Sprintf("Member %d", i),
			Age:          30,
			Neighborhood: "Noe Valley, SF",
			MatchReason:  "Shares your sense of adventure.",
		}
	}
	return group
}

func testEvent() MatchEvent {
	return MatchEvent{
		Title:                "Supper Club",
		Type:                 "Culinary",
		Description:          "A long table dinner.",
		Venue:                "The Civic Kitchen",
		Address:              "299 Golden Gate Ave, San Francisco, CA",
		SuggestedDate:        "Friday, Feb 28",
		SuggestedTime:        "7:00 PM",
		ConversationStarters: []string{"What's a dish from your childhood?"},
		WhyThisEvent:         "Cooking together lowers the stakes.",
	}
}

func TestSingleMatchResultValidate(t *testing.T) {
	assert.NoError(t, (&SingleMatchResult{Group: testGroup(4), Event: testEvent()}).Validate())
	assert.Error(t, (&SingleMatchResult{Group: testGroup(2), Event: testEvent()}).Validate())
	assert.Error(t, (&SingleMatchResult{Group: testGroup(6), Event: testEvent()}).Validate())

	ev := testEvent()
	ev.Venue = ""
	assert.Error(t, (&SingleMatchResult{Group: testGroup(4), Event: ev}).Validate())
}

func TestMultiMatchResultValidate(t *testing.T) {
	g := Gathering{Group: testGroup(4), Event: testEvent(), CompatibilityScore: 90}

	assert.NoError(t, (&MultiMatchResult{Gatherings: []Gathering{g, g, g}, RecommendedIndex: 1}).Validate())
	assert.Error(t, (&MultiMatchResult{Gatherings: []Gathering{g, g}}).Validate())
	assert.Error(t, (&MultiMatchResult{Gatherings: []Gathering{g, g, g}, RecommendedIndex: 3}).Validate())

	bad := g
	bad.CompatibilityScore = 101
	assert.Error(t, (&MultiMatchResult{Gatherings: []Gathering{g, bad, g}}).Validate())
}

func TestMatchResultPayload(t *testing.T) {
	single := &SingleMatchResult{Group: testGroup(3), Event: testEvent()}
	r := &MatchResult{Variant: MatchVariantSingle, Single: single}
	assert.Same(t, single, r.Payload())

	multi := &MultiMatchResult{}
	r = &MatchResult{Variant: MatchVariantMulti, Multi: multi}
	assert.Same(t, multi, r.Payload())
}
