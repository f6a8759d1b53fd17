// Package audit checks rendered pages for markup mistakes that break the
// site for keyboard, screen reader or mail client users.
package audit

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lastlook/site/internal/content"
)

// Rule identifies one check.
type Rule string

const (
	RuleLabelFor     Rule = "label-for"
	RuleImgAlt       Rule = "img-alt"
	RuleDuplicateID  Rule = "duplicate-id"
	RuleAnchorTarget Rule = "anchor-target"
	RuleContactLink  Rule = "contact-link"
	RuleButtonName   Rule = "button-name"
)

// Rules lists every check in reporting order.
var Rules = []Rule{RuleLabelFor, RuleImgAlt, RuleDuplicateID, RuleAnchorTarget, RuleContactLink, RuleButtonName}

// Violation is one failed check.
type Violation struct {
	Rule    Rule   `json:"rule" yaml:"rule"`
	Element string `json:"element" yaml:"element"`
	Message string `json:"message" yaml:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Rule, v.Element, v.Message)
}

// Report is the result of Check.
type Report struct {
	Violations []Violation `json:"violations" yaml:"violations"`
	// Elements is the number of elements inspected.
	Elements int `json:"elements" yaml:"elements"`
}

// OK reports whether no check failed.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// ByRule returns the violations of a single rule.
func (r *Report) ByRule(rule Rule) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Rule == rule {
			out = append(out, v)
		}
	}
	return out
}

// Check parses an HTML document or fragment and runs every rule over it.
func Check(r io.Reader) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var elements []*html.Node
	collect(doc, &elements)

	ids := make(map[string]*html.Node)
	idCount := make(map[string]int)
	for _, n := range elements {
		if id, ok := attr(n, "id"); ok && id != "" {
			idCount[id]++
			if _, seen := ids[id]; !seen {
				ids[id] = n
			}
		}
	}

	report := &Report{Elements: len(elements)}
	add := func(rule Rule, n *html.Node, format string, args ...any) {
		report.Violations = append(report.Violations, Violation{
			Rule:    rule,
			Element: describe(n),
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, n := range elements {
		switch n.DataAtom {
		case atom.Label:
			if target, ok := attr(n, "for"); ok {
				control, found := ids[target]
				if !found || !labelable(control) {
					add(RuleLabelFor, n, "label for %q does not name a form control", target)
				}
			}
		case atom.Img:
			if _, ok := attr(n, "alt"); !ok {
				add(RuleImgAlt, n, "image has no alt attribute")
			}
		case atom.A:
			href, _ := attr(n, "href")
			checkHref(href, n, ids, add)
		case atom.Button:
			label, _ := attr(n, "aria-label")
			title, _ := attr(n, "title")
			if strings.TrimSpace(textContent(n)+label+title) == "" {
				add(RuleButtonName, n, "button has no accessible name")
			}
		}
	}

	for _, n := range elements {
		id, _ := attr(n, "id")
		if idCount[id] > 1 && ids[id] == n {
			add(RuleDuplicateID, n, "id %q is used %d times", id, idCount[id])
		}
	}

	return report, nil
}

func checkHref(href string, n *html.Node, ids map[string]*html.Node, add func(Rule, *html.Node, string, ...any)) {
	switch {
	case strings.HasPrefix(href, "#") && len(href) > 1:
		if _, ok := ids[href[1:]]; !ok {
			add(RuleAnchorTarget, n, "no element has id %q", href[1:])
		}
	case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"):
		if !content.ValidContactHref(href) {
			add(RuleContactLink, n, "malformed contact link %q", href)
		}
	}
}

func collect(n *html.Node, out *[]*html.Node) {
	if n.Type == html.ElementNode {
		*out = append(*out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, out)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// labelable reports whether a label may point at n.
func labelable(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Input:
		t, _ := attr(n, "type")
		return !strings.EqualFold(t, "hidden")
	case atom.Select, atom.Textarea, atom.Button, atom.Meter, atom.Output, atom.Progress:
		return true
	default:
		return false
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// describe renders a short selector-like name for n, e.g. a#quote or
// button.
func describe(n *html.Node) string {
	s := n.Data
	if id, ok := attr(n, "id"); ok && id != "" {
		return s + "#" + id
	}
	if href, ok := attr(n, "href"); ok {
		return fmt.Sprintf("%s[href=%q]", s, href)
	}
	if f, ok := attr(n, "for"); ok {
		return fmt.Sprintf("%s[for=%q]", s, f)
	}
	return s
}
