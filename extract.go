package siteforge

import (
	"regexp"
	"strings"
)

// UntitledPlaceholder is used when no title can be derived from content.
const UntitledPlaceholder = "Untitled Website"

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Matches (xxx) xxx-xxxx style numbers and loose international digit
	// groups with an optional country prefix.
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)

	addressRe = regexp.MustCompile(`\d+\s+[A-Za-z][A-Za-z\s]*\s(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Court|Ct|Way|Place|Pl)\b\.?`)
)

// ExtractBusinessInfo applies email, phone and US street-address patterns to
// body text independently. The first match of each kind wins, which is not
// necessarily the most relevant occurrence. Absence of a match leaves the
// field empty; there is no error path.
func ExtractBusinessInfo(text string) BusinessInfo {
	var info BusinessInfo
	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	if m := addressRe.FindString(text); m != "" {
		info.Address = strings.TrimSpace(m)
	}
	return info
}

// ExtractTitle returns the first non-blank line of text, truncated to 100
// characters. Markdown heading markers are stripped. Returns
// UntitledPlaceholder when no non-blank line exists.
func ExtractTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line == "" {
			continue
		}
		return Truncate(line, 100)
	}
	return UntitledPlaceholder
}

// ExtractDescription returns the first sentence whose trimmed length exceeds
// 20 characters, truncated to 200 characters with a trailing period.
// Returns the empty string when no sentence qualifies.
func ExtractDescription(text string) string {
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 20 {
			return Truncate(sentence, 200) + "."
		}
	}
	return ""
}

var (
	scriptRe     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	navRe        = regexp.MustCompile(`(?is)<nav\b[^>]*>.*?</nav>`)
	footerRe     = regexp.MustCompile(`(?is)<footer\b[^>]*>.*?</footer>`)
	headerRe     = regexp.MustCompile(`(?is)<header\b[^>]*>.*?</header>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// StripHTML derives plain text from raw HTML by removing script, style, nav,
// footer and header blocks, stripping all remaining tags and collapsing
// whitespace. It is the terminal fallback when no content extractor can
// handle the document; it does not attempt to parse a DOM.
func StripHTML(html string) string {
	for _, re := range []*regexp.Regexp{scriptRe, styleRe, navRe, footerRe, headerRe} {
		html = re.ReplaceAllString(html, " ")
	}
	text := tagRe.ReplaceAllString(html, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Truncate shortens s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Sanitize trims surrounding whitespace and strips angle brackets from
// user-supplied strings before they are stored or displayed. This is a
// minimal injection mitigation, not a full sanitizer.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return s
}

// ValidEmail reports whether s is a syntactically plausible email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s) && emailRe.FindString(s) == s
}
