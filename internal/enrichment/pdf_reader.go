package enrichment

import (
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// Confirmation PDFs longer than this are cut off before hitting the
// extractor; airline and hotel mails fit comfortably.
const maxConfirmationChars = 20000

// PDFReader pulls the text out of an uploaded confirmation PDF so it can
// be fed to the extractor like pasted text.
type PDFReader struct {
	logger *zap.Logger
}

// NewPDFReader creates a PDF reader.
func NewPDFReader(logger *zap.Logger) *PDFReader {
	return &PDFReader{logger: logger}
}

// ReadText extracts the text of every page of a PDF on disk.
func (r *PDFReader) ReadText(pdfPath string) (string, error) {
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return "", fmt.Errorf("PDF file not found: %s", pdfPath)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	pageCount := doc.NumPage()
	for pageNum := 0; pageNum < pageCount; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			r.logger.Warn("Failed to extract page text",
				zap.Int("page", pageNum),
				zap.Error(err))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		if sb.Len() > maxConfirmationChars {
			break
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text extracted from PDF")
	}
	if len(text) > maxConfirmationChars {
		text = text[:maxConfirmationChars]
	}

	r.logger.Debug("Confirmation PDF read",
		zap.Int("pages", pageCount),
		zap.Int("chars", len(text)))
	return text, nil
}
