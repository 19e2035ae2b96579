package model

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Glyph derives the displayable character(s) of an emoji.
//
// The first HTML code is parsed as an HTML fragment and only its text content
// is kept, so entities are decoded and any tags or scripts are dropped. When
// the markup yields nothing, the first unicode code point list is decoded
// instead. An empty string means no glyph could be derived.
func Glyph(e Emoji) string {
	if len(e.HTMLCode) > 0 {
		if g := textOf(e.HTMLCode[0]); g != "" {
			return g
		}
	}
	if len(e.Unicode) > 0 {
		return decodeCodePoints(e.Unicode[0])
	}
	return ""
}

func textOf(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	// Script and style bodies are text nodes too; they are never a glyph.
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}

// decodeCodePoints turns "U+1F600" or "U+1F44D U+1F3FB" into runes.
func decodeCodePoints(s string) string {
	var b strings.Builder
	for _, field := range strings.Fields(s) {
		hex := strings.TrimPrefix(strings.ToUpper(field), "U+")
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ""
		}
		b.WriteRune(rune(n))
	}
	return b.String()
}
