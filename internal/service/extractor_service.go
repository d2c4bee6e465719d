package service

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
)

// ExtractorService turns uploaded CV/JD files into plain text. Dispatch is
// by filename suffix only; unsupported suffixes and unreadable files both
// yield "" so callers surface a validation error instead of crashing.
type ExtractorService interface {
	ExtractText(data []byte, filename string) string
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (s *extractorService) ExtractText(data []byte, filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return extractPDFText(data)
	case strings.HasSuffix(name, ".docx"):
		return extractDocxText(data)
	default:
		log.Debug().Str("filename", filename).Msg("Unsupported file extension for text extraction")
		return ""
	}
}

func extractPDFText(data []byte) (text string) {
	// The pdf package panics on some malformed inputs; treat that the
	// same as a parse error.
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("PDF extraction panicked")
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open PDF for text extraction")
		return ""
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("Failed to extract text from PDF page")
			continue
		}
		builder.WriteString(pageText)
	}
	return strings.TrimSpace(builder.String())
}

func extractDocxText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("DOCX extraction panicked")
			text = ""
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open DOCX for text extraction")
		return ""
	}
	defer doc.Close()

	return strings.TrimSpace(stripDocxTags(doc.Editable().GetContent()))
}

// stripDocxTags flattens the raw document.xml content returned by the docx
// package into readable text: paragraph ends become newlines, remaining
// markup is dropped.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var builder strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
