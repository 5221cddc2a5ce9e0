package letters

import "errors"

// Generation failures the caller can recover from. Messages are shown to
// the user as-is.
var (
	// ErrResumeTextRequired indicates generation was asked for without text.
	ErrResumeTextRequired = errors.New("Resume text is required.")

	// ErrMissingAPIKey indicates no service credential is configured.
	ErrMissingAPIKey = errors.New("OpenAI API key is missing.")

	// ErrEmptyCompletion indicates the service returned no usable text.
	ErrEmptyCompletion = errors.New("Cover letter generation failed.")
)

// IsGenerationError reports whether err is one of the recoverable
// generation failures above.
func IsGenerationError(err error) bool {
	return errors.Is(err, ErrResumeTextRequired) ||
		errors.Is(err, ErrMissingAPIKey) ||
		errors.Is(err, ErrEmptyCompletion)
}
