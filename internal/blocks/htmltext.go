package blocks

import (
	"strings"

	"golang.org/x/net/html"
)

// InnerText strips markup from an HTML fragment and returns the text a
// reader perceives. <br> becomes a newline so line-break-only content stays
// distinguishable from real text. Entities are decoded by the tokenizer.
func InnerText(fragment string) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.WriteString(tokenizer.Token().Data)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "br" {
				sb.WriteString("\n")
			}
		}
	}
}

// inlineTags are the tags native selection commands produce inside
// paragraph and list-item content. Everything else is dropped on render.
var inlineTags = map[string]bool{
	"b": true, "strong": true, "i": true, "em": true, "u": true,
	"a": true, "br": true, "mark": true, "span": true,
}

// SanitizeHTML re-emits an HTML fragment keeping only inline formatting
// tags. For anchors only http(s) hrefs survive; all other attributes are
// dropped. Content is sanitized at render time, never rewritten at rest.
func SanitizeHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return html.EscapeString(fragment)
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.WriteString(html.EscapeString(tokenizer.Token().Data))
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if !inlineTags[token.Data] {
				continue
			}
			if token.Data == "br" {
				sb.WriteString("<br>")
				continue
			}
			if token.Data == "a" {
				href := ""
				for _, attr := range token.Attr {
					if attr.Key == "href" && safeHref(attr.Val) {
						href = attr.Val
					}
				}
				if href == "" {
					sb.WriteString("<a>")
				} else {
					sb.WriteString(`<a href="` + html.EscapeString(href) + `">`)
				}
				continue
			}
			if token.Data == "mark" {
				// Keep comment anchors addressable across sanitize.
				id := ""
				for _, attr := range token.Attr {
					if attr.Key == "data-comment-id" {
						id = attr.Val
					}
				}
				if id != "" {
					sb.WriteString(`<mark data-comment-id="` + html.EscapeString(id) + `">`)
				} else {
					sb.WriteString("<mark>")
				}
				continue
			}
			sb.WriteString("<" + token.Data + ">")
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if inlineTags[string(name)] && string(name) != "br" {
				sb.WriteString("</" + string(name) + ">")
			}
		}
	}
}

func safeHref(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
