package cvmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("cv.txt", []byte("Ana Martinez\nana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Ana Martinez\nana@example.com", text)
}

func TestExtractText_CapsLongText(t *testing.T) {
	long := strings.Repeat("x", maxExtractChars+500)
	text, err := ExtractText("cv.txt", []byte(long))
	require.NoError(t, err)
	assert.Len(t, text, maxExtractChars)
}

func TestExtractText_StripsInvalidUTF8(t *testing.T) {
	text, err := ExtractText("cv.bin", []byte{'A', 0xff, 0xfe, 'B'})
	require.NoError(t, err)
	assert.Equal(t, "AB", text)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("cv.pdf", []byte("%PDF-1.4 not actually a pdf"))
	assert.Error(t, err)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF("cv.PDF", nil))
	assert.True(t, isPDF("attachment", []byte("%PDF-1.7")))
	assert.False(t, isPDF("cv.docx", []byte("PK\x03\x04")))
}
