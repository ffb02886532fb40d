package siteforge

import "context"

// SiteMeta is the metadata record of a published site. ViewCount and
// LastAccessed change on every successful view; this is the only mutable
// entity in the model and implementations must serialize updates per site.
type SiteMeta struct {
	SiteID       string `json:"siteId"`
	BusinessName string `json:"businessName"`
	CreatedAt    string `json:"createdAt"`
	LastAccessed string `json:"lastAccessed"`
	ViewCount    int    `json:"viewCount"`
}

// PublishService persists generated HTML documents to durable per-site
// slots and serves them back by identifier.
type PublishService interface {
	// Publish writes html to a new slot and returns its metadata.
	Publish(ctx context.Context, html string, businessName string) (*SiteMeta, error)

	// View returns the stored document, incrementing the view count and
	// updating the last-accessed time atomically per site.
	// Returns EINVALID for non-alphanumeric IDs and ENOTFOUND for
	// unknown sites; not-found is a normal user-visible outcome.
	View(ctx context.Context, siteID string) (string, error)

	// ListSites enumerates all slots ordered by creation time descending,
	// skipping slots whose metadata is unreadable.
	ListSites(ctx context.Context) ([]*SiteMeta, error)
}

// ValidSiteID reports whether id is non-empty and alphanumeric-only.
func ValidSiteID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
