// Package readme classifies README documents against a fixed section
// catalog and synthesizes the sections a document is missing
package readme

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tier grades how complete a README is. The order is total:
// none < minimal < basic < good < excellent
type Tier int

const (
	// TierNone means the README is absent or has no content
	TierNone Tier = iota
	// TierMinimal means content exists but no recognizable sections
	TierMinimal
	// TierBasic means one or two recognizable sections
	TierBasic
	// TierGood means three or four recognizable sections
	TierGood
	// TierExcellent means five or more recognizable sections
	TierExcellent
)

var tierNames = [...]string{"none", "minimal", "basic", "good", "excellent"}

// String returns the lowercase tier name
func (t Tier) String() string {
	if t < TierNone || t > TierExcellent {
		return "unknown"
	}
	return tierNames[t]
}

// MarshalJSON writes the tier as its lowercase name
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON reads a tier from its lowercase name
func (t *Tier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, n := range tierNames {
		if n == s {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("readme: unknown tier %q", s)
}

// Analysis is the outcome of scanning one README document
type Analysis struct {
	// Present is true when any content was given, even whitespace
	Present bool `json:"present"`
	// Empty is true when content was given but is whitespace only
	Empty bool `json:"empty"`
	// Sections lists found ids in first-seen order
	Sections []SectionID `json:"sections"`
	// Missing lists absent ids in catalog order
	Missing []SectionID `json:"missing"`
	// WordCount counts whitespace-separated words in the document
	WordCount int `json:"word_count"`
}

// Analyze scans markdown content for catalog sections. Empty and
// whitespace-only content yields no sections and a full missing set,
// with Present and Empty kept distinct for suggestion wording
func Analyze(content string) Analysis {
	a := Analysis{Present: content != ""}
	if strings.TrimSpace(content) == "" {
		a.Empty = a.Present
		a.Missing = Catalog()
		return a
	}
	a.WordCount = len(strings.Fields(content))

	found := make(map[SectionID]bool, len(catalog))
	for _, h := range scanHeadings(content) {
		if h.level == 1 && !found[SectionTitle] {
			found[SectionTitle] = true
			a.Sections = append(a.Sections, SectionTitle)
		}
		for _, s := range catalog[1:] {
			if found[s.id] {
				continue
			}
			for _, kw := range s.keywords {
				if strings.Contains(h.text, kw) {
					found[s.id] = true
					a.Sections = append(a.Sections, s.id)
					break
				}
			}
		}
	}
	for _, s := range catalog {
		if !found[s.id] {
			a.Missing = append(a.Missing, s.id)
		}
	}
	return a
}

// Classify maps presence plus found-section count to a tier.
// The tier depends on nothing else, so adding sections never lowers it
func Classify(present bool, a Analysis) Tier {
	if !present || !a.Present || a.Empty {
		return TierNone
	}
	switch n := len(a.Sections); {
	case n >= 5:
		return TierExcellent
	case n >= 3:
		return TierGood
	case n >= 1:
		return TierBasic
	default:
		return TierMinimal
	}
}
