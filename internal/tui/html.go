package tui

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML converts catalog HTML (product descriptions) to plain text
// for terminal rendering, using the golang.org/x/net/html tokenizer.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// End of document or error
			return cleanupWhitespace(result.String())

		case html.TextToken:
			result.Write(tokenizer.Text())

		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			tn, _ := tokenizer.TagName()
			switch string(tn) {
			case "p", "div", "br", "li", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6":
				result.WriteString("\n")
			}
		}
	}
}

// cleanupWhitespace trims lines, drops blank ones and decodes common
// HTML entities.
func cleanupWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	var cleanLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanLines = append(cleanLines, line)
		}
	}
	return decodeHTMLEntities(strings.Join(cleanLines, "\n"))
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&eacute;", "é",
	"&aacute;", "á",
	"&iacute;", "í",
	"&oacute;", "ó",
	"&uacute;", "ú",
	"&ntilde;", "ñ",
	"&copy;", "©",
	"&reg;", "®",
)

// decodeHTMLEntities decodes the entities the catalog actually emits.
func decodeHTMLEntities(s string) string {
	return entityReplacer.Replace(s)
}
