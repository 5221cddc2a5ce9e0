// Package resumes handles resume upload: extraction, moderation, and
// contact recovery. Nothing from the upload is retained; the extracted text
// is returned to the caller and the raw payload discarded.
package resumes

import (
	"context"

	"coverletter-backend/internal/contact"
	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/moderate"
)

// ProcessedResume is the result of a successful upload: the normalized text
// plus the best-effort contact fields.
type ProcessedResume struct {
	Text    string
	Contact contact.Info
}

// Service runs the upload pipeline. All stages are pure functions over the
// payload; the service keeps no state between calls.
type Service struct{}

// Process extracts text from the payload, rejects non-resume or unsafe
// content, and recovers contact fields from what passed.
func (s *Service) Process(ctx context.Context, data []byte, mimeType, fileName string) (ProcessedResume, error) {
	if err := ctx.Err(); err != nil {
		return ProcessedResume{}, err
	}

	text, err := extract.Extract(extract.Document{
		Data:     data,
		MimeType: mimeType,
		FileName: fileName,
	})
	if err != nil {
		return ProcessedResume{}, err
	}

	if err := moderate.Validate(text); err != nil {
		return ProcessedResume{}, err
	}

	return ProcessedResume{
		Text:    text,
		Contact: contact.Extract(text),
	}, nil
}
