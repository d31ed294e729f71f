// Package seed loads the static match material: the candidate pool, the
// compatibility policy and the fallback event catalogue. Each loader reads
// an override file when a path is given and the embedded copy otherwise.
package seed

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	candidatesFile = "data/candidates.yaml"
	policyFile     = "data/policy.yaml"
	eventsFile     = "data/events.yaml"
)

// MinCandidates is the smallest pool that fills one group of four.
const MinCandidates = 4

type candidatesDoc struct {
	Candidates []domain.Candidate `yaml:"candidates"`
}

type eventsDoc struct {
	Events []domain.EventTemplate `yaml:"events"`
}

// LoadCandidates returns the candidate pool. Ids must be unique and the pool must hold
// at least MinCandidates entries.
func LoadCandidates(path string) ([]domain.Candidate, error) {
	var doc candidatesDoc
	if err := decode(path, candidatesFile, &doc); err != nil {
		return nil, err
	}
	if len(doc.Candidates) < MinCandidates {
		return nil, fmt.Errorf("candidate pool needs at least %d candidates, got %d", MinCandidates, len(doc.Candidates))
	}

	seen := make(map[string]struct{}, len(doc.Candidates))
	for i := range doc.Candidates {
		c := &doc.Candidates[i]
		if err := domain.ValidateStruct(c); err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate candidate id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return doc.Candidates, nil
}

// LoadPolicy returns the compatibility policy. A zero minCompatible falls back to the default.
func LoadPolicy(path string) (domain.CompatibilityPolicy, error) {
	var policy domain.CompatibilityPolicy
	if err := decode(path, policyFile, &policy); err != nil {
		return domain.CompatibilityPolicy{}, err
	}

	if policy.MinCompatible < 0 {
		return domain.CompatibilityPolicy{}, fmt.Errorf("minCompatible must not be negative")
	}
	if policy.MinCompatible == 0 {
		policy.MinCompatible = domain.DefaultMinCompatible
	}

	for identity, labels := range policy.GenderLabels {
		if len(labels) == 0 {
			return domain.CompatibilityPolicy{}, fmt.Errorf("genderLabels[%s] is empty", identity)
		}
		for _, label := range labels {
			if !domain.InVocabulary("interested_in", label) {
				return domain.CompatibilityPolicy{}, fmt.Errorf("genderLabels[%s]: unknown label %q", identity, label)
			}
		}
	}

	return policy, nil
}

// LoadEventTemplates returns the fallback event catalogue in recommendation order.
func LoadEventTemplates(path string) ([]domain.EventTemplate, error) {
	var doc eventsDoc
	if err := decode(path, eventsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Events {
		if err := domain.ValidateStruct(&doc.Events[i]); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return doc.Events, nil
}

func decode(path, embeddedName string, out interface{}) error {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = embedded.ReadFile(embeddedName)
		path = embeddedName
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
