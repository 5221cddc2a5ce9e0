package generations

import "time"

// Generation is the stored record of one cover-letter generation: the input
// resume text, the produced letter, and the contact fields recovered from
// the resume. Contact fields are best-effort and may be empty.
type Generation struct {
	ID          string
	ResumeText  string
	CoverLetter string
	FirstName   string
	LastName    string
	Address     string
	Phone       string
	Email       string
	CreatedAt   time.Time
}
