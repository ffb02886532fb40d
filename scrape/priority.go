package scrape

import "strings"

// Priority selection limits.
const (
	maxKeywordURLs   = 12
	maxDiscoveryURLs = 8
	maxPriorityURLs  = 8
)

// priorityKeywords mark URLs likely to carry business-relevant content.
// Matching is case-insensitive substring matching against the whole URL,
// not path-segment matching.
var priorityKeywords = []string{
	"about", "service", "contact", "product",
	"team", "portfolio", "pricing", "features",
}

// buildPriorityURLs selects which discovered URLs to scrape, in order:
// the homepage (always, even if the mapping call did not discover it),
// then up to 12 keyword-matching URLs, then up to 8 URLs in raw discovery
// order. The concatenation is deduplicated and capped at 8 total, so
// keyword-priority pages can be crowded out when the lists overlap heavily.
func buildPriorityURLs(homepage string, discovered []string) []string {
	candidates := make([]string, 0, 1+maxKeywordURLs+maxDiscoveryURLs)
	candidates = append(candidates, homepage)

	keywordCount := 0
	for _, u := range discovered {
		if keywordCount >= maxKeywordURLs {
			break
		}
		if matchesKeyword(u) {
			candidates = append(candidates, u)
			keywordCount++
		}
	}

	for i, u := range discovered {
		if i >= maxDiscoveryURLs {
			break
		}
		candidates = append(candidates, u)
	}

	seen := make(map[string]bool)
	urls := make([]string, 0, maxPriorityURLs)
	for _, u := range candidates {
		key := strings.TrimSuffix(u, "/")
		if seen[key] {
			continue
		}
		seen[key] = true
		urls = append(urls, u)
		if len(urls) >= maxPriorityURLs {
			break
		}
	}

	return urls
}

func matchesKeyword(u string) bool {
	lower := strings.ToLower(u)
	for _, kw := range priorityKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
