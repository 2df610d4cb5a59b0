package changelog

import (
	"fmt"
	"strings"

	"github.com/masmgr/changelog-go/internal/git"
)

// SystemPrompt is the persona directive sent with every request.
const SystemPrompt = "You are an expert analyst specializing in analyzing software changes and creating clear, user-focused changelogs. " +
	"You excel at identifying patterns across commits, grouping related changes, and communicating technical updates in business-friendly language. " +
	"Your changelogs are well-structured, emphasize user impact, and maintain professional tone."

const instructions = `### INSTRUCTIONS ###
Create a professional changelog based on the git commits below. Analyze these commits and produce a well-organized, user-friendly changelog in the style of leading developer tools companies.

### REQUIREMENTS ###
1. Start with a clear heading that includes the month and year (e.g., "March 2025")
2. Group changes into relevant categories such as:
   - New Features
   - Improvements
   - Bug Fixes
   - Performance
   - Documentation
3. Write concise, clear descriptions that explain the value to users
4. Use consistent formatting throughout
5. Prioritize user-facing changes over technical implementation details
6. For important features, include a brief one-sentence description below the main bullet point

### FORMAT SPECIFICATIONS ###
- Use clean, professional Markdown formatting without emojis
- Use ## for category headings
- Use bullet points with clear, concise descriptions
- Bold key terms or feature names for emphasis
- Keep descriptions brief but informative
- For major features, include a "Learn more" link placeholder
`

const outputExample = "### OUTPUT EXAMPLE ###\n" +
	"```markdown\n" +
	"# March 2025\n\n" +
	"## New Configuration Schema `docs.json`\n\n" +
	"We've introduced a new `docs.json` schema as a replacement for `mint.json`, to support better multi-level versioning, easier visual comprehension, and more consistent terminology.\n\n" +
	"Upgrade from `mint.json` to `docs.json` with the following steps:\n" +
	"1. Make sure your CLI is the latest version\n" +
	"2. In your docs repository, run the upgrade command\n" +
	"3. Delete your old mint.json file and push your changes\n\n" +
	"## API Improvements\n\n" +
	"* **Enhanced Performance** - API calls are now 30% faster with improved caching\n" +
	"* **New Endpoints** - Added support for additional data types and formats\n" +
	"* Fixed intermittent timeout issues when processing large requests\n\n" +
	"## Quality Improvements\n\n" +
	"* Support for requiring authentication to access preview deployments\n" +
	"* Improved mobile responsiveness across all documentation pages\n" +
	"```\n\n" +
	"Your changelog should follow this style but with appropriate content based on the commit details provided.\n"

// FormatCommit renders one commit for the prompt's commit details block.
func FormatCommit(c git.CommitRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Commit: %s\n", c.SHA))
	sb.WriteString(fmt.Sprintf("Author: %s\n", c.Author))
	sb.WriteString(fmt.Sprintf("Date: %s\n", c.Date))
	sb.WriteString(fmt.Sprintf("Subject: %s\n", c.Subject))
	sb.WriteString(fmt.Sprintf("Body: %s", c.Body))
	return sb.String()
}

// BuildPrompt assembles the user message for the given commits.
func BuildPrompt(commits []git.CommitRecord) string {
	details := make([]string, 0, len(commits))
	for _, c := range commits {
		details = append(details, FormatCommit(c))
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n### COMMIT DETAILS ###\n")
	sb.WriteString(strings.Join(details, "\n\n"))
	sb.WriteString("\n\n")
	sb.WriteString(outputExample)
	return sb.String()
}
