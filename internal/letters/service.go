package letters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"coverletter-backend/internal/contact"
	"coverletter-backend/internal/generations"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/shared/telemetry"
)

// Sampling temperature balances determinism against variety; callers cannot
// override it.
const generationTemperature = 0.65

const systemPrompt = "You are a professional cover letter writer. Craft complete, polished cover letters based strictly on the provided resume. Write about half to a full page (~320-420 words) in a confident, personable tone. Use clear paragraphs and avoid lists or bullet points."

// Service generates cover letters from resume text via the injected LLM
// client and records each successful generation.
type Service struct {
	LLM llm.Client

	// Generations receives a record of each successful call. Optional; a
	// write failure is logged and never fails the user request.
	Generations generations.Repo
}

// Generate builds the prompt from resumeText and the optional job
// description, performs the single outbound LLM call, and returns the
// trimmed cover letter. No retry happens at this layer.
func (s *Service) Generate(ctx context.Context, resumeText, jobDescription string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	jobDescription = strings.TrimSpace(jobDescription)

	if resumeText == "" {
		return "", ErrResumeTextRequired
	}

	output, err := s.LLM.Complete(ctx, llm.CompletionInput{
		System:      systemPrompt,
		User:        buildUserPrompt(resumeText, jobDescription),
		Temperature: generationTemperature,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", ErrMissingAPIKey
		}
		return "", err
	}

	letter := strings.TrimSpace(output)
	if letter == "" {
		return "", ErrEmptyCompletion
	}

	s.record(ctx, resumeText, letter)
	return letter, nil
}

// buildUserPrompt embeds the resume verbatim and, when present, a labeled
// target-role block built from the job description.
func buildUserPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString("Resume:\n")
	b.WriteString(resumeText)
	if jobDescription != "" {
		b.WriteString("\n\nTarget role description:\n")
		b.WriteString(jobDescription)
	}
	return b.String()
}

func (s *Service) record(ctx context.Context, resumeText, letter string) {
	if s.Generations == nil {
		return
	}
	info := contact.Extract(resumeText)
	gen := generations.Generation{
		ID:          uuid.NewString(),
		ResumeText:  resumeText,
		CoverLetter: letter,
		FirstName:   info.FirstName,
		LastName:    info.LastName,
		Address:     info.Address,
		Phone:       info.Phone,
		Email:       info.Email,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Generations.Create(ctx, gen); err != nil {
		telemetry.Error("letters.record_generation.failed", map[string]any{
			"generation_id": gen.ID,
			"err":           err.Error(),
		})
	}
}
