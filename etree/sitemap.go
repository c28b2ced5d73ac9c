// Package etree encodes sitemap artifacts as sitemaps.org XML.
package etree

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/sitemeta/sitemeta"
)

// Namespace is the sitemaps.org protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// EncodeSitemap renders entries as a <urlset> document in input order.
// lastmod is emitted date-only and omitted for zero times; priorities are
// clamped to [0,1].
func EncodeSitemap(entries []sitemeta.SitemapEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", Namespace)

	for _, entry := range entries {
		if entry.URL == "" {
			return nil, sitemeta.Errorf(sitemeta.EINVALID, "sitemap entry without URL")
		}
		if entry.ChangeFreq != "" && !entry.ChangeFreq.Valid() {
			return nil, sitemeta.Errorf(sitemeta.EINVALID, "sitemap entry %s has invalid change frequency %q", entry.URL, entry.ChangeFreq)
		}

		el := urlset.CreateElement("url")
		el.CreateElement("loc").SetText(entry.URL)
		if !entry.LastModified.IsZero() {
			el.CreateElement("lastmod").SetText(entry.LastModified.Format("2006-01-02"))
		}
		if entry.ChangeFreq != "" {
			el.CreateElement("changefreq").SetText(string(entry.ChangeFreq))
		}
		el.CreateElement("priority").SetText(strconv.FormatFloat(clamp(entry.Priority), 'f', -1, 64))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
