package readme

import (
	"reflect"
	"testing"
)

func TestAnalyze_FindsSectionsInOrder(t *testing.T) {
	content := "# my-tool\n\nSome intro.\n\n## Installation\n\nsteps\n\n## About\n\nwords\n"
	a := Analyze(content)

	if !a.Present || a.Empty {
		t.Fatalf("expected present non-empty analysis, got %+v", a)
	}
	want := []SectionID{SectionTitle, SectionInstallation, SectionDescription}
	if !reflect.DeepEqual(a.Sections, want) {
		t.Fatalf("sections: got %v want %v", a.Sections, want)
	}
	// missing follows catalog order
	wantMissing := []SectionID{SectionFeatures, SectionUsage, SectionContributing, SectionLicense}
	if !reflect.DeepEqual(a.Missing, wantMissing) {
		t.Fatalf("missing: got %v want %v", a.Missing, wantMissing)
	}
	if a.WordCount == 0 {
		t.Fatalf("expected non-zero word count")
	}
}

func TestAnalyze_AbsentVsWhitespace(t *testing.T) {
	absent := Analyze("")
	if absent.Present || absent.Empty {
		t.Fatalf("empty string should be absent, got %+v", absent)
	}
	if len(absent.Missing) != len(catalog) {
		t.Fatalf("absent content should miss the whole catalog, got %v", absent.Missing)
	}

	blank := Analyze("  \n\t\n")
	if !blank.Present || !blank.Empty {
		t.Fatalf("whitespace content should be present and empty, got %+v", blank)
	}
	if len(blank.Sections) != 0 {
		t.Fatalf("whitespace content should find no sections")
	}
}

func TestAnalyze_FoldsHeadingCase(t *testing.T) {
	a := Analyze("# Tool\n\n## INSTALLATION\n\n## LiCeNcE\n")
	got := map[SectionID]bool{}
	for _, id := range a.Sections {
		got[id] = true
	}
	if !got[SectionInstallation] || !got[SectionLicense] {
		t.Fatalf("expected case-folded matches, got %v", a.Sections)
	}
}

func TestAnalyze_SkipsFencedCode(t *testing.T) {
	content := "## Usage\n\n```bash\n# not a heading\n## also not\n```\n"
	a := Analyze(content)
	for _, id := range a.Sections {
		if id == SectionTitle {
			t.Fatalf("comment inside a fence must not count as a title")
		}
	}
	if len(a.Sections) != 1 || a.Sections[0] != SectionUsage {
		t.Fatalf("expected only usage, got %v", a.Sections)
	}
}

func TestAnalyze_HashtagIsNotAHeading(t *testing.T) {
	a := Analyze("#noheading\n\nbody text\n")
	if len(a.Sections) != 0 {
		t.Fatalf("expected no sections, got %v", a.Sections)
	}
}

func TestClassify_TierLadder(t *testing.T) {
	cases := []struct {
		present  bool
		sections int
		want     Tier
	}{
		{false, 0, TierNone},
		{true, 0, TierMinimal},
		{true, 1, TierBasic},
		{true, 2, TierBasic},
		{true, 3, TierGood},
		{true, 4, TierGood},
		{true, 5, TierExcellent},
		{true, 7, TierExcellent},
	}
	for _, c := range cases {
		a := Analysis{Present: c.present}
		for i := 0; i < c.sections; i++ {
			a.Sections = append(a.Sections, catalog[i].id)
		}
		if got := Classify(c.present, a); got != c.want {
			t.Fatalf("present=%v sections=%d: got %v want %v", c.present, c.sections, got, c.want)
		}
	}
}

func TestClassify_EmptyContentIsNone(t *testing.T) {
	a := Analyze("   \n")
	if got := Classify(true, a); got != TierNone {
		t.Fatalf("whitespace README should classify none, got %v", got)
	}
}

// Growing the section set must never lower the tier
func TestClassify_SupersetNeverLowers(t *testing.T) {
	base := "## Usage\n\nrun it\n"
	additions := []string{
		"# Title\n\n",
		"## Installation\n\n",
		"## Features\n\n",
		"## Contributing\n\n",
		"## License\n\n",
	}

	content := base
	prev := Classify(true, Analyze(content))
	for _, add := range additions {
		content += add
		cur := Classify(true, Analyze(content))
		if cur < prev {
			t.Fatalf("tier regressed from %v to %v after adding %q", prev, cur, add)
		}
		prev = cur
	}
	if prev != TierExcellent {
		t.Fatalf("full catalog should reach excellent, got %v", prev)
	}
}

func TestTier_StringAndJSON(t *testing.T) {
	if TierGood.String() != "good" || TierNone.String() != "none" {
		t.Fatalf("unexpected tier names: %v %v", TierGood, TierNone)
	}
	b, err := TierExcellent.MarshalJSON()
	if err != nil || string(b) != `"excellent"` {
		t.Fatalf("marshal: %s %v", b, err)
	}
	var tr Tier
	if err := tr.UnmarshalJSON([]byte(`"basic"`)); err != nil || tr != TierBasic {
		t.Fatalf("unmarshal: %v %v", tr, err)
	}
	if err := tr.UnmarshalJSON([]byte(`"bogus"`)); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}
