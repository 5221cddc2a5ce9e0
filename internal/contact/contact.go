// Package contact recovers name, phone, email, and address fields from
// resume text with best-effort heuristics. Extraction never fails; fields
// with no match are simply left empty.
package contact

import (
	"regexp"
	"strings"
)

// Info holds the extracted contact fields. Empty fields are omitted from
// JSON output rather than serialized as empty strings.
type Info struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

const (
	// Resume headers conventionally put the name in the first few lines.
	nameScanLines   = 5
	nameLineMaxLen  = 80
	minNameParts    = 2
	phoneSeparators = `[\s()-]+`
)

var (
	emailRegex = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s\-()]{6,}\d`)

	// Name tokens cover the extended Latin alphabet used by Polish resumes.
	nameTokenRegex = regexp.MustCompile(`^[A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźżA-ZĄĆĘŁŃÓŚŹŻ]*$`)
	nameSplitRegex = regexp.MustCompile(`[\s\-]+`)
	nameNoiseRegex = regexp.MustCompile(`[,;]|\d`)

	phoneSepRegex = regexp.MustCompile(phoneSeparators)

	addressKeywords = []string{
		"ul.", "ulica", "street", "st.", "ave", "avenue", "al.", "aleja",
		"aleje", "apt", "mieszkanie", "lok", "lok.", "apartment",
	}
)

// Extract runs the per-field heuristics over text. Each heuristic is
// independent; a miss on one field does not affect the others.
func Extract(text string) Info {
	lines := nonBlankLines(text)
	info := Info{
		Address: address(lines),
		Phone:   phone(text),
		Email:   emailRegex.FindString(text),
	}
	info.FirstName, info.LastName = name(lines)
	return info
}

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// phone normalizes the first loose phone match by collapsing separator runs
// to single spaces.
func phone(text string) string {
	match := phoneRegex.FindString(text)
	if match == "" {
		return ""
	}
	return strings.TrimSpace(phoneSepRegex.ReplaceAllString(match, " "))
}

// name scans the first few non-blank lines for one that, after stripping
// commas, semicolons, and digits, splits into two or more capitalized
// tokens. First and last token of the first qualifying line win.
func name(lines []string) (first, last string) {
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if len([]rune(line)) > nameLineMaxLen {
			continue
		}
		stripped := strings.TrimSpace(nameNoiseRegex.ReplaceAllString(line, ""))
		if stripped == "" {
			continue
		}
		parts := nameSplitRegex.Split(stripped, -1)
		if len(parts) < minNameParts {
			continue
		}
		qualified := true
		for _, part := range parts {
			if !nameTokenRegex.MatchString(part) {
				qualified = false
				break
			}
		}
		if qualified {
			return parts[0], parts[len(parts)-1]
		}
	}
	return "", ""
}

func address(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range addressKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
	}
	return ""
}
