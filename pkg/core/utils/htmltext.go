package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// StripHTML extracts the readable text from an HTML fragment. EDINET
// text-block facts embed styled table markup; the prompt builders want
// plain text. Script and style bodies are dropped, block elements
// become line breaks, table cells are joined with a space.
func StripHTML(htmlContent string) string {
	if !strings.Contains(htmlContent, "<") {
		return strings.TrimSpace(htmlContent)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return strings.TrimSpace(htmlContent)
	}

	doc.Find("script, style").Remove()

	// Flatten table rows into single lines before reading the text.
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			if t := strings.TrimSpace(cell.Text()); t != "" {
				cells = append(cells, t)
			}
		})
		row.SetText(strings.Join(cells, " "))
	})

	// Block elements terminate a line.
	doc.Find("p, div, br, h1, h2, h3, h4, h5, h6, li, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	text := doc.Text()

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
