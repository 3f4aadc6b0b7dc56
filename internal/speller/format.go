package speller

import (
	"fmt"
	"strings"
)

// NoIssuesMessage is returned verbatim when a text contains no flagged words.
const NoIssuesMessage = "✅ Текст не содержит ошибок (или все слова есть в словаре)!"

const (
	maxIssuesShown     = 10
	maxCandidatesShown = 5
)

// Format renders issues into the user-facing report. At most the first ten
// issues are shown with up to five candidates each; any remainder is
// summarized by a count. The markup is HTML-safe for chat transports.
func Format(issues []Issue) string {
	if len(issues) == 0 {
		return NoIssuesMessage
	}

	var b strings.Builder
	b.WriteString("❌ Найдены возможные ошибки:\n\n")

	shown := issues
	if len(shown) > maxIssuesShown {
		shown = shown[:maxIssuesShown]
	}

	for i, issue := range shown {
		fmt.Fprintf(&b, "%d. <b>%s</b>", i+1, issue.Word)

		if len(issue.Candidates) > 0 {
			candidates := issue.Candidates
			if len(candidates) > maxCandidatesShown {
				candidates = candidates[:maxCandidatesShown]
			}
			quoted := make([]string, len(candidates))
			for j, c := range candidates {
				quoted[j] = "<i>" + c + "</i>"
			}
			fmt.Fprintf(&b, "\n   Варианты: %s", strings.Join(quoted, ", "))
		}

		b.WriteString("\n\n")
	}

	if rest := len(issues) - maxIssuesShown; rest > 0 {
		fmt.Fprintf(&b, "... и ещё %d слов", rest)
	}

	return b.String()
}
