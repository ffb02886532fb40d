package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/siteforge"
	"github.com/fwojciec/siteforge/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements siteforge.Converter at compile time.
var _ siteforge.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Family-owned and operated since 1985.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Family-owned and operated since 1985.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Acme Plumbing</h1><h2>Our Services</h2><h3>Drain Cleaning</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Acme Plumbing")
		assert.Contains(t, md, "## Our Services")
		assert.Contains(t, md, "### Drain Cleaning")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">our site</a> for more info.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[our site](https://example.com)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Repairs</li><li>Installations</li><li>Inspections</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Repairs")
		assert.Contains(t, md, "- Installations")
		assert.Contains(t, md, "- Inspections")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Service</th><th>Price</th></tr></thead>
<tbody><tr><td>Inspection</td><td>$99</td></tr><tr><td>Drain cleaning</td><td>$150</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Service")
		assert.Contains(t, md, "Price")
		assert.Contains(t, md, "Inspection")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Licensed</strong> and <em>insured</em> contractors.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Licensed**")
		assert.Contains(t, md, "*insured*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
	})

	t.Run("handles a full business page", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h1>Acme Plumbing</h1>
<p>Welcome. We serve the greater metro area.</p>
<h2>Services</h2>
<ul>
<li>Emergency repairs</li>
<li>Bathroom remodels</li>
</ul>
<h2>Contact</h2>
<p>Email us at <a href="mailto:info@acme.example">info@acme.example</a> or call (555) 123-4567.</p>
</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Acme Plumbing")
		assert.Contains(t, md, "## Services")
		assert.Contains(t, md, "- Emergency repairs")
		assert.Contains(t, md, "(555) 123-4567")
	})
}
