package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once

	headRe      = regexp.MustCompile(`(?is)<head\b.*?</head>`)
	hiddenRe    = regexp.MustCompile(`(?is)<div[^>]*display:\s*none[^>]*>.*?</div>`)
	linkRe      = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	breakRe     = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|h[1-6]|li|tr|table|ul|ol|blockquote|pre)>|<hr\s*/?>`)
	listItemRe  = regexp.MustCompile(`(?i)<li\b[^>]*>`)
	blankLineRe = regexp.MustCompile(`\n{3,}`)
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// PlainText derives the text/plain alternative of an HTML email.
// Document head and hidden preheaders are dropped, links become "label (url)",
// block elements end lines, and everything else is stripped by bluemonday.
func PlainText(s string) string {
	initPolicies()

	s = headRe.ReplaceAllString(s, "")
	s = hiddenRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllStringFunc(s, func(m string) string {
		parts := linkRe.FindStringSubmatch(m)
		href, label := html.UnescapeString(parts[1]), strings.TrimSpace(parts[2])
		if label == "" || label == href {
			return href
		}
		return label + " (" + href + ")"
	})
	s = listItemRe.ReplaceAllString(s, "- ")
	s = breakRe.ReplaceAllString(s, "\n")

	s = html.UnescapeString(strictPolicy.Sanitize(s))

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	s = blankLineRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}
