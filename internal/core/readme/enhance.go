package readme

import "strings"

// EnhancedReadme is the outcome of filling a README's missing sections
type EnhancedReadme struct {
	// Content is the full document after enhancement
	Content string `json:"content"`
	// Improvements names exactly the blocks that were synthesized
	Improvements []string `json:"improvements"`
}

// Enhance preserves content byte-for-byte and appends a template block for
// every canonical section the document is missing. The title block doubles
// as the description lead-in and is synthesized only when no level-1
// heading exists. Rerunning on the output synthesizes nothing, because
// every generated block carries a heading its own detector matches
func Enhance(name, content string) EnhancedReadme {
	a := Analyze(content)
	fromScratch := !a.Present || a.Empty

	has := make(map[SectionID]bool, len(a.Sections))
	for _, id := range a.Sections {
		has[id] = true
	}

	verb := "Added"
	if fromScratch {
		verb = "Created"
	}

	var sb strings.Builder
	if !fromScratch {
		sb.WriteString(content)
	}

	var improvements []string
	add := func(label, block string) {
		if sb.Len() > 0 {
			switch s := sb.String(); {
			case strings.HasSuffix(s, "\n\n"):
			case strings.HasSuffix(s, "\n"):
				sb.WriteString("\n")
			default:
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(block)
		improvements = append(improvements, verb+" "+label)
	}

	if !has[SectionTitle] {
		add("title and description", titleBlock(name))
	}
	if !has[SectionFeatures] {
		add("Features section", featuresBlock())
	}
	if !has[SectionInstallation] {
		add("Installation section", installationBlock(name))
	}
	if !has[SectionUsage] {
		add("Usage section", usageBlock(name))
	}
	if !has[SectionContributing] {
		add("Contributing section", contributingBlock())
	}
	if !has[SectionLicense] {
		add("License section", licenseBlock())
	}

	return EnhancedReadme{Content: sb.String(), Improvements: improvements}
}

func titleBlock(name string) string {
	return "# " + name + "\n\n" +
		"A brief description of what " + name + " does and who it is for.\n"
}

func featuresBlock() string {
	return "## Features\n\n" +
		"- Clear, documented behavior\n" +
		"- Quick setup with sensible defaults\n" +
		"- Works across platforms\n"
}

func installationBlock(name string) string {
	return "## Installation\n\n" +
		"```bash\n" +
		"git clone https://github.com/<owner>/" + name + ".git\n" +
		"cd " + name + "\n" +
		"```\n"
}

func usageBlock(name string) string {
	return "## Usage\n\n" +
		"```bash\n" +
		"./" + name + " --help\n" +
		"```\n"
}

func contributingBlock() string {
	return "## Contributing\n\n" +
		"Contributions are welcome. Open an issue first to discuss what " +
		"you would like to change, then send a pull request.\n"
}

func licenseBlock() string {
	return "## License\n\n" +
		"Distributed under the MIT license. See `LICENSE` for details.\n"
}
