package layouts

import (
	"github.com/a-h/templ"

	"github.com/lastlook/site/internal/content"
)

// LocalBusiness returns the schema.org description of the business as a
// JSON-LD script component.
func LocalBusiness(b content.Business, baseURL string, areas []string) templ.Component {
	served := make([]map[string]string, 0, len(areas))
	for _, a := range areas {
		served = append(served, map[string]string{"@type": "Place", "name": a})
	}
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        b.Name,
		"description": b.Description,
		"email":       b.Email,
		"telephone":   b.Phone,
		"address": map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": b.City,
			"addressRegion":   b.Region,
			"addressCountry":  "US",
		},
		"areaServed": served,
	}
	if baseURL != "" {
		data["url"] = baseURL
		data["logo"] = baseURL + b.LogoPath
	}
	return templ.JSONScript("business-jsonld", data).WithType("application/ld+json")
}
