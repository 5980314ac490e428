package readme

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SectionID names one canonical README section
type SectionID string

const (
	// SectionTitle is any level-1 heading
	SectionTitle SectionID = "title"
	// SectionDescription covers description, about, and overview headings
	SectionDescription SectionID = "description"
	// SectionFeatures covers feature list headings
	SectionFeatures SectionID = "features"
	// SectionInstallation covers installation and setup headings
	SectionInstallation SectionID = "installation"
	// SectionUsage covers usage and example headings
	SectionUsage SectionID = "usage"
	// SectionContributing covers contribution guideline headings
	SectionContributing SectionID = "contributing"
	// SectionLicense covers license headings in either spelling
	SectionLicense SectionID = "license"
)

// section couples a canonical id with the folded keywords that detect it.
// Title carries no keywords: it matches any level-1 heading instead
type section struct {
	id       SectionID
	keywords []string
}

// catalog is the canonical section order used for missing-set computation
// and for appending generated blocks
var catalog = []section{
	{SectionTitle, nil},
	{SectionDescription, []string{"description", "about", "overview"}},
	{SectionFeatures, []string{"features", "what it does"}},
	{SectionInstallation, []string{"installation", "install", "getting started", "setup"}},
	{SectionUsage, []string{"usage", "how to use", "examples", "quick start"}},
	{SectionContributing, []string{"contributing", "contribution"}},
	{SectionLicense, []string{"license", "licence"}},
}

// Catalog returns the canonical section ids in order
func Catalog() []SectionID {
	out := make([]SectionID, len(catalog))
	for i, s := range catalog {
		out[i] = s.id
	}
	return out
}

// pool of fresh transformer chains for heading folding
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(), // unicode case folding
		)
	},
}

// fold normalizes a heading line for keyword matching
func fold(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// heading is one markdown heading line with its folded text
type heading struct {
	level int
	text  string
}

// scanHeadings walks markdown lines and collects #..###### headings.
// Fenced code blocks are skipped so sample commands never count as headings
func scanHeadings(content string) []heading {
	var out []heading
	inFence := false
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || line == "" || line[0] != '#' {
			continue
		}
		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level > 6 {
			continue
		}
		rest := line[level:]
		// "#hashtag" is not a heading; "# Title" is
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		text := strings.TrimSpace(rest)
		if text == "" {
			continue
		}
		out = append(out, heading{level: level, text: fold(text)})
	}
	return out
}
