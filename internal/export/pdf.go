package export

import (
	"bytes"
	"os"
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"

	"coverletter-backend/internal/shared/telemetry"
)

const (
	pdfMarginPt    = 54
	pdfFontSizePt  = 12
	pdfLineHtPt    = 16
	pdfParaGapPt   = 12
	pdfUnicodeFont = "letterbody"
)

// Candidate TTF locations able to render Polish diacritics. The first one
// present on the host wins; PDF_FONT_PATH overrides the list.
var fontCandidates = []string{
	"assets/fonts/NotoSans-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
}

var (
	fontPathOnce sync.Once
	fontPath     string
)

// renderPDF lays paragraphs onto US Letter pages with fixed margins. Font
// unavailability is never fatal: without a Unicode-capable TTF it falls back
// to Helvetica and logs a warning, since some diacritics may not render.
func renderPDF(paragraphs []string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pdfMarginPt, pdfMarginPt, pdfMarginPt)
	doc.SetAutoPageBreak(true, pdfMarginPt)

	write := func(s string) string { return s }
	if path := unicodeFontPath(); path != "" {
		doc.AddUTF8Font(pdfUnicodeFont, "", path)
		doc.SetFont(pdfUnicodeFont, "", pdfFontSizePt)
	} else {
		telemetry.Warn("export.pdf.font_fallback", map[string]any{
			"reason": "unicode-capable font not found; falling back to Helvetica",
		})
		doc.SetFont("Helvetica", "", pdfFontSizePt)
		write = doc.UnicodeTranslatorFromDescriptor("")
	}

	doc.AddPage()
	for _, paragraph := range paragraphs {
		doc.MultiCell(0, pdfLineHtPt, write(paragraph), "", "L", false)
		doc.Ln(pdfParaGapPt)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unicodeFontPath() string {
	fontPathOnce.Do(func() {
		candidates := fontCandidates
		if override := strings.TrimSpace(os.Getenv("PDF_FONT_PATH")); override != "" {
			candidates = append([]string{override}, candidates...)
		}
		for _, candidate := range candidates {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				fontPath = candidate
				return
			}
		}
	})
	return fontPath
}
