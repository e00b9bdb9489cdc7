// Package render converts the engine's Markdown rendering into a paginated
// PDF document using a fixed page template and headless Chrome.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
)

// DefaultTimeout bounds one print job.
const DefaultTimeout = 60 * time.Second

// pageMargin is the print margin in inches on every side.
const pageMargin = 0.75

// Letter page dimensions in inches.
const (
	pageWidth  = 8.5
	pageHeight = 11.0
)

// htmlTemplate is the fixed page template wrapped around the rendered body:
// sans-serif, minimal heading/list styles.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume</title>
<style>
  body { font-family: sans-serif; }
  h1, h2, h3 { color: #333; }
  h1 { font-size: 2em; border-bottom: 1px solid #ccc; padding-bottom: 5px; }
  h2 { font-size: 1.5em; border-bottom: 1px solid #eee; padding-bottom: 3px; }
  h3 { font-size: 1.2em; }
  strong { font-weight: bold; }
  ul { list-style-type: disc; margin-left: 20px; }
  p { margin-bottom: 0.5em; }
</style>
</head>
<body>
%s
</body>
</html>
`

// Renderer prints Markdown resume bodies to PDF files.
type Renderer struct {
	Timeout time.Duration
}

// NewRenderer returns a Renderer with the default timeout.
func NewRenderer() *Renderer {
	return &Renderer{Timeout: DefaultTimeout}
}

// HTML converts a Markdown body into the full page HTML document.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", &Error{Message: "failed to convert Markdown", Cause: err}
	}
	return fmt.Sprintf(htmlTemplate, buf.String()), nil
}

// RenderPDF converts a Markdown body into a PDF at outPath. It requires
// Chrome or Chromium on the system; when the browser cannot be started the
// returned error carries remediation guidance and no file is written.
func (r *Renderer) RenderPDF(ctx context.Context, markdown, outPath string) error {
	html, err := HTML(markdown)
	if err != nil {
		return err
	}

	// Chrome reads the document from disk; a data: URL trips over long
	// bodies on some builds.
	tmp, err := os.CreateTemp("", "resume-*.html")
	if err != nil {
		return &Error{Message: "failed to create temporary HTML file", Cause: err}
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()
	if _, err := tmp.WriteString(html); err != nil {
		_ = tmp.Close()
		return &Error{Message: "failed to write temporary HTML file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Message: "failed to close temporary HTML file", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPaperWidth(pageWidth).
				WithPaperHeight(pageHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				WithPrintBackground(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return &Error{
			Message:     "headless browser rendering failed",
			Remediation: "install Google Chrome or Chromium and ensure it is on your PATH",
			Cause:       err,
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return &Error{Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return &Error{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

// OutputFilename builds the deterministic PDF name for one tailoring
// decision: profile name plus sanitized company and role.
func OutputFilename(profileName, company, role string) string {
	return fmt.Sprintf("%s_%s_%s.pdf", profileName, Sanitize(company), Sanitize(role))
}

// Sanitize keeps letters, digits, spaces, and underscores, dropping
// everything else, and trims trailing whitespace.
func Sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == ' ', r == '_':
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
