package cvmatch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	maxExtractChars = 8000
	pdfPageLimit    = 2
)

// ExtractText pulls plain text out of a CV document for content-based
// matching. PDFs contribute their first two pages; everything else is
// treated as UTF-8 text, capped.
func ExtractText(filename string, data []byte) (string, error) {
	if isPDF(filename, data) {
		return extractPDF(data)
	}

	text := strings.ToValidUTF8(string(data), "")
	return capRunes(text, maxExtractChars), nil
}

func isPDF(filename string, data []byte) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf") || bytes.HasPrefix(data, []byte("%PDF"))
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := reader.NumPage()
	if pages > pdfPageLimit {
		pages = pdfPageLimit
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return capRunes(strings.TrimSpace(sb.String()), maxExtractChars), nil
}

func capRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
