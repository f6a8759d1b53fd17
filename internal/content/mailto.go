package content

import (
	"net/url"
	"strings"
)

// QuoteMailto returns the mailto link that opens a pre-filled quote request.
func (c Catalog) QuoteMailto() string {
	return Mailto(c.Business.Email, c.Quote.Subject, c.Quote.Body)
}

// Mailto builds a mailto URL with an encoded subject and body. Spaces are
// written as %20 since several mail clients show a literal '+'.
func Mailto(addr, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(addr)
	sep := "?"
	if subject != "" {
		b.WriteString(sep + "subject=" + escape(subject))
		sep = "&"
	}
	if body != "" {
		b.WriteString(sep + "body=" + escape(body))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
