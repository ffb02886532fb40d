package mock

import "github.com/fwojciec/siteforge"

var _ siteforge.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteforge.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*siteforge.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*siteforge.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ siteforge.Converter = (*Converter)(nil)

// Converter is a mock implementation of siteforge.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ siteforge.HTMLExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor is a mock implementation of siteforge.HTMLExtractor.
type HTMLExtractor struct {
	ExtractLinksFn  func(html string, baseURL string) ([]string, error)
	ExtractImagesFn func(html string, baseURL string) ([]siteforge.PageImage, error)
}

func (e *HTMLExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

func (e *HTMLExtractor) ExtractImages(html string, baseURL string) ([]siteforge.PageImage, error) {
	return e.ExtractImagesFn(html, baseURL)
}
