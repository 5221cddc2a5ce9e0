// Package export renders generated cover-letter text into downloadable
// binary documents.
package export

import (
	"errors"
	"regexp"
	"strings"
)

const (
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

// ErrUnsupportedFormat is returned for any export target other than the
// supported Format values.
var ErrUnsupportedFormat = errors.New("Unsupported export format.")

// Format enumerates the supported export targets. Adding a format means
// adding a constant here and a case in Export.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ParseFormat resolves a caller-supplied format token, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Document is a rendered export artifact ready to hand to the HTTP layer.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// Export renders letter text in the requested format. Both renderers are
// deterministic given identical input and produce only the output buffer.
func Export(letter string, format Format) (Document, error) {
	paragraphs := splitParagraphs(letter)
	switch format {
	case FormatDOCX:
		data, err := renderDOCX(paragraphs)
		if err != nil {
			return Document{}, err
		}
		return Document{Data: data, MimeType: mimeDOCX, FileName: "cover_letter.docx"}, nil
	case FormatPDF:
		data, err := renderPDF(paragraphs)
		if err != nil {
			return Document{}, err
		}
		return Document{Data: data, MimeType: mimePDF, FileName: "cover_letter.pdf"}, nil
	default:
		return Document{}, ErrUnsupportedFormat
	}
}

var paragraphSplitRegex = regexp.MustCompile(`\n{2,}`)

// splitParagraphs splits letter text on runs of two-or-more newlines,
// trimming segments and dropping empties. If nothing survives, the whole
// trimmed text is used as a single paragraph.
func splitParagraphs(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	var out []string
	for _, segment := range paragraphSplitRegex.Split(normalized, -1) {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{strings.TrimSpace(normalized)}
	}
	return out
}
