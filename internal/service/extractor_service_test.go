package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_UnsupportedExtension(t *testing.T) {
	svc := NewExtractorService()

	assert.Empty(t, svc.ExtractText([]byte("plain text content"), "cv.txt"))
	assert.Empty(t, svc.ExtractText([]byte("plain text content"), "cv"))
	assert.Empty(t, svc.ExtractText(nil, ""))
}

func TestExtractText_CorruptPDF(t *testing.T) {
	svc := NewExtractorService()

	assert.Empty(t, svc.ExtractText([]byte("not a pdf at all"), "cv.pdf"))
	assert.Empty(t, svc.ExtractText([]byte("%PDF-1.4 truncated"), "cv.PDF"))
}

func TestExtractText_CorruptDocx(t *testing.T) {
	svc := NewExtractorService()

	assert.Empty(t, svc.ExtractText([]byte("not a zip archive"), "jd.docx"))
	assert.Empty(t, svc.ExtractText([]byte{0x50, 0x4b, 0x03, 0x04}, "jd.DOCX"))
}

func TestStripDocxTags(t *testing.T) {
	raw := `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`

	out := stripDocxTags(raw)
	assert.Equal(t, "First paragraph\nSecond\n", out)
}
