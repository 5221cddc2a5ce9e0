package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

var (
	// ErrUnsupportedType is returned when neither the declared media type nor
	// the filename extension resolves to a parseable format.
	ErrUnsupportedType = errors.New("Only PDF, DOCX, and plain text resumes are supported right now.")

	// ErrUnreadablePDF is returned for structurally corrupt PDF payloads.
	ErrUnreadablePDF = errors.New("We could not read that PDF file.")

	// ErrUnreadableDOCX is returned for non-zip or malformed DOCX payloads.
	ErrUnreadableDOCX = errors.New("We could not read that DOCX file.")
)

// IsUnsupported reports whether err is one of the user-facing
// unsupported-file errors produced by this package.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrUnreadablePDF) ||
		errors.Is(err, ErrUnreadableDOCX)
}

// UserMessage returns the user-facing message for an unsupported-file
// error, without the wrapped parser detail. It returns "" for other errors.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnreadablePDF):
		return ErrUnreadablePDF.Error()
	case errors.Is(err, ErrUnreadableDOCX):
		return ErrUnreadableDOCX.Error()
	case errors.Is(err, ErrUnsupportedType):
		return ErrUnsupportedType.Error()
	default:
		return ""
	}
}

// DocType enumerates the document formats type detection can resolve to.
type DocType int

const (
	TypeUnknown DocType = iota
	TypeText
	TypePDF
	TypeDOCX
	// TypeDoc is legacy binary .doc: detection recognizes it so the rejection
	// is deliberate, but no parser exists and extraction fails fast.
	TypeDoc
)

// Document is an uploaded payload plus the metadata used for type detection.
// The filename is only a fallback hint when the declared type is unusable.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// DetectType resolves the document format, preferring the declared media
// type and falling back to the filename extension.
func DetectType(mimeType, fileName string) DocType {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF:
		return TypePDF
	case mimeDOCX:
		return TypeDOCX
	case mimeDOC:
		return TypeDoc
	case mimeText:
		return TypeText
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return TypePDF
	case ".docx":
		return TypeDOCX
	case ".txt":
		return TypeText
	}
	return TypeUnknown
}

// Extract converts a document into normalized plain text. It fails with one
// of this package's unsupported-file errors when the type cannot be resolved
// or parsing fails irrecoverably.
func Extract(doc Document) (string, error) {
	switch DetectType(doc.MimeType, doc.FileName) {
	case TypeText:
		return normalizeText(string(doc.Data)), nil
	case TypePDF:
		return extractPDF(doc.Data)
	case TypeDOCX:
		return extractDOCX(doc.Data)
	case TypeDoc:
		// No real parser exists for legacy .doc; failing here beats silently
		// emitting garbage from a best-effort parse.
		return "", ErrUnsupportedType
	default:
		return "", ErrUnsupportedType
	}
}

// extractPDF joins per-page text with a blank line, preserving page order.
// ledongthuc/pdf can panic on some malformed inputs, so the recover converts
// those into the typed unreadable-PDF error as well.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w (%v)", ErrUnreadablePDF, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrUnreadablePDF, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w (%v)", ErrUnreadablePDF, err)
		}
		pages = append(pages, content)
	}
	return normalizeText(strings.Join(pages, "\n\n")), nil
}

// extractDOCX reads word/document.xml out of the zip archive and emits one
// line per paragraph, dropping blank lines.
func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnreadableDOCX
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrUnreadableDOCX, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", ErrUnreadableDOCX
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrUnreadableDOCX, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrUnreadableDOCX, err)
	}

	text, err := docxParagraphs(raw)
	if err != nil {
		return "", fmt.Errorf("%w (%v)", ErrUnreadableDOCX, err)
	}
	return text, nil
}

// docxParagraphs walks the XML token stream collecting run text ("t"
// elements), flushing a line per paragraph ("p") end tag. All other markup
// and namespace nodes are ignored.
func docxParagraphs(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var (
		lines   []string
		current strings.Builder
		inRun   bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if line := strings.TrimSpace(current.String()); line != "" {
					lines = append(lines, line)
				}
				current.Reset()
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		}
	}
	if line := strings.TrimSpace(current.String()); line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// normalizeText strips control bytes so extracted text holds only printable
// characters, tabs, and newlines.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || r == 0xfffd {
			return -1
		}
		return r
	}, s)
}
