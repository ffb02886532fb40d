package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sfhttp "github.com/fwojciec/siteforge/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("robots directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/custom-sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/custom-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/</loc></url>
  <url><loc>%s/about</loc></url>
  <url><loc>%s/services</loc></url>
</urlset>`, srv.URL, srv.URL, srv.URL)
		})

		s := sfhttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, 0)

		require.NoError(t, err)
		assert.Len(t, urls, 3)
		assert.Contains(t, urls, srv.URL+"/about")
	})

	t.Run("sitemap index resolved recursively with dedup", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%s/pages.xml</loc></sitemap>
  <sitemap><loc>%s/posts.xml</loc></sitemap>
</sitemapindex>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/about</loc></url><url><loc>%s/contact</loc></url></urlset>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/posts.xml", func(w http.ResponseWriter, r *http.Request) {
			// /about repeats across sitemaps and must only appear once.
			fmt.Fprintf(w, `<urlset><url><loc>%s/about</loc></url><url><loc>%s/news</loc></url></urlset>`, srv.URL, srv.URL)
		})

		s := sfhttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, 0)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{srv.URL + "/about", srv.URL + "/contact", srv.URL + "/news"}, urls)
	})

	t.Run("limit stops discovery", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<urlset>`)
			for i := 0; i < 10; i++ {
				fmt.Fprintf(w, `<url><loc>%s/page-%d</loc></url>`, srv.URL, i)
			}
			fmt.Fprint(w, `</urlset>`)
		})

		s := sfhttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, 4)

		require.NoError(t, err)
		assert.Len(t, urls, 4)
	})

	t.Run("no sitemap returns empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		s := sfhttp.NewSitemapService(srv.Client())
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, 0)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		s := sfhttp.NewSitemapService(nil)
		_, err := s.DiscoverURLs(context.Background(), "://bad", 0)

		assert.Error(t, err)
	})
}
