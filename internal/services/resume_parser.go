package services

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	namePattern  = regexp.MustCompile(`(?m)^[A-Z][a-z]+ [A-Z][a-z]+`)
)

type ResumeParser interface {
	ExtractText(filePath string) (string, error)
	ExtractUserInfo(text string) models.UserInfo
}

type resumeParser struct{}

func NewResumeParser() ResumeParser {
	return &resumeParser{}
}

// ExtractText dispatches on file extension; only PDF and DOCX resumes pass
// the upload boundary.
func (p *resumeParser) ExtractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return p.extractPDF(filePath)
	case ".docx":
		return p.extractDOCX(filePath)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filePath))
	}
}

func (p *resumeParser) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// extractDOCX reads the WordprocessingML body out of the docx zip archive.
// Paragraph boundaries become newlines so the line-oriented field patterns
// still apply.
func (p *resumeParser) extractDOCX(filePath string) (string, error) {
	archive, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer archive.Close()

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("invalid DOCX: missing word/document.xml")
	}

	reader, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX body: %w", err)
	}
	defer reader.Close()

	var textBuilder strings.Builder
	decoder := xml.NewDecoder(reader)
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX body: %w", err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch element.Name.Local {
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(element)
			}
		}
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return text, nil
}

// ExtractUserInfo pulls candidate fields out of resume text by pattern:
// the first "Capitalized Capitalized" line for the name, the first
// email-shaped token, and the first phone-shaped token. Missing fields stay
// empty; the caller routes the candidate through the update-user-info step.
func (p *resumeParser) ExtractUserInfo(text string) models.UserInfo {
	return models.UserInfo{
		Name:  namePattern.FindString(text),
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
}
