// Package moderate validates extracted resume text before it is allowed to
// reach generation. The checks are an ordered list of pure predicates; the
// first failing check determines the rejection reason.
package moderate

import (
	"regexp"
	"strings"
)

const (
	minCharCount = 300
	maxCharCount = 60_000
)

// RejectedError carries the user-facing reason a text failed moderation.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

// Rejection reasons, kept stable because the UI shows them verbatim.
const (
	ReasonEmpty      = "Prześlij CV z konkretną treścią – obecny plik wydaje się pusty."
	ReasonTooShort   = "CV jest bardzo krótkie. Dodaj kilka zdań o doświadczeniu i umiejętnościach."
	ReasonTooLong    = "CV jest bardzo długie (ponad 60 000 znaków). Skróć dokument zanim prześlesz ponownie."
	ReasonSuspicious = "W treści wykryto podejrzane fragmenty (np. kod). Usuń je przed przesłaniem."
	ReasonNotResume  = "Nie wygląda to na CV. Dodaj sekcje z doświadczeniem, edukacją lub umiejętnościami."
)

// keywords a plausibly resume-shaped text should hit at least twice,
// Polish and English.
var keywords = []string{
	"experience", "experiences", "education", "edukacja", "wykształcenie",
	"skills", "umiejętności", "summary", "profil", "projects", "projekty",
	"employment", "zatrudnienie", "responsibilities", "obowiązki",
	"achievements", "osiągnięcia",
}

var bannedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)drop\s+table`),
	regexp.MustCompile(`(?i)insert\s+into`),
	regexp.MustCompile(`(?i)--\s*select`),
}

// Validate runs the ordered moderation checks over text. It returns nil when
// the text may proceed to generation, or a *RejectedError naming the first
// rule that failed. It never fails for any other reason.
func Validate(text string) error {
	trimmed := strings.TrimSpace(text)

	switch {
	case trimmed == "":
		return &RejectedError{Reason: ReasonEmpty}
	case len([]rune(trimmed)) < minCharCount:
		return &RejectedError{Reason: ReasonTooShort}
	case len([]rune(trimmed)) > maxCharCount:
		return &RejectedError{Reason: ReasonTooLong}
	case containsBanned(trimmed):
		return &RejectedError{Reason: ReasonSuspicious}
	case keywordHits(trimmed) < 2:
		return &RejectedError{Reason: ReasonNotResume}
	}
	return nil
}

func containsBanned(text string) bool {
	for _, pattern := range bannedPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func keywordHits(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
