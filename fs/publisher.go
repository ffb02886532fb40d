// Package fs provides filesystem-backed hosting of generated sites. Each
// published site occupies one directory holding the HTML document and a
// metadata sidecar.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/google/uuid"
)

const (
	indexFile = "index.html"
	metaFile  = "meta.json"
)

// Ensure Publisher implements siteforge.PublishService at compile time.
var _ siteforge.PublishService = (*Publisher)(nil)

// Publisher stores published sites under dataDir, one subdirectory per site
// ID. View counts are read-modify-write on the metadata file; a per-site
// mutex serializes concurrent views of the same site.
type Publisher struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPublisher creates a Publisher rooted at dataDir, creating it if needed.
func NewPublisher(dataDir string) (*Publisher, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Publisher{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

// siteLock returns the mutex guarding one site's metadata.
func (p *Publisher) siteLock(siteID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.locks[siteID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[siteID] = l
	}
	return l
}

// Publish writes html to a new site slot and returns its metadata.
func (p *Publisher) Publish(ctx context.Context, html string, businessName string) (*siteforge.SiteMeta, error) {
	if strings.TrimSpace(html) == "" {
		return nil, siteforge.Errorf(siteforge.EINVALID, "site HTML required")
	}

	siteID := strings.ReplaceAll(uuid.NewString(), "-", "")
	dir := filepath.Join(p.dataDir, siteID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create site directory: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	meta := &siteforge.SiteMeta{
		SiteID:       siteID,
		BusinessName: businessName,
		CreatedAt:    now,
		LastAccessed: now,
		ViewCount:    0,
	}

	if err := os.WriteFile(filepath.Join(dir, indexFile), []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to write site HTML: %w", err)
	}
	if err := p.writeMeta(siteID, meta); err != nil {
		return nil, err
	}

	return meta, nil
}

// View returns the stored document, incrementing the view count and
// updating last-accessed atomically with respect to other views of the
// same site.
func (p *Publisher) View(ctx context.Context, siteID string) (string, error) {
	if !siteforge.ValidSiteID(siteID) {
		return "", siteforge.Errorf(siteforge.EINVALID, "invalid site ID")
	}

	lock := p.siteLock(siteID)
	lock.Lock()
	defer lock.Unlock()

	dir := filepath.Join(p.dataDir, siteID)
	html, err := os.ReadFile(filepath.Join(dir, indexFile))
	if os.IsNotExist(err) {
		return "", siteforge.Errorf(siteforge.ENOTFOUND, "site %q not found", siteID)
	}
	if err != nil {
		return "", err
	}

	meta, err := p.readMeta(siteID)
	if err == nil {
		meta.ViewCount++
		meta.LastAccessed = time.Now().UTC().Format(time.RFC3339Nano)
		if err := p.writeMeta(siteID, meta); err != nil {
			return "", err
		}
	}

	return string(html), nil
}

// ListSites enumerates all published sites ordered by creation time
// descending, skipping entries whose metadata is unreadable.
func (p *Publisher) ListSites(ctx context.Context) ([]*siteforge.SiteMeta, error) {
	entries, err := os.ReadDir(p.dataDir)
	if err != nil {
		return nil, err
	}

	var sites []*siteforge.SiteMeta
	for _, entry := range entries {
		if !entry.IsDir() || !siteforge.ValidSiteID(entry.Name()) {
			continue
		}
		meta, err := p.readMeta(entry.Name())
		if err != nil {
			continue
		}
		sites = append(sites, meta)
	}

	sort.Slice(sites, func(i, j int) bool {
		ti, ei := time.Parse(time.RFC3339Nano, sites[i].CreatedAt)
		tj, ej := time.Parse(time.RFC3339Nano, sites[j].CreatedAt)
		if ei != nil || ej != nil {
			return sites[i].CreatedAt > sites[j].CreatedAt
		}
		return ti.After(tj)
	})
	return sites, nil
}

func (p *Publisher) readMeta(siteID string) (*siteforge.SiteMeta, error) {
	data, err := os.ReadFile(filepath.Join(p.dataDir, siteID, metaFile))
	if err != nil {
		return nil, err
	}
	var meta siteforge.SiteMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (p *Publisher) writeMeta(siteID string, meta *siteforge.SiteMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(p.dataDir, siteID, metaFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write site metadata: %w", err)
	}
	return nil
}
