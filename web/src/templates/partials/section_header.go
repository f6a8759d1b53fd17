package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	eyebrowClass = "text-xs font-semibold uppercase tracking-[0.25em] text-[#9a7c4e] dark:text-slate-400"
	headingClass = "mt-1 font-display text-2xl font-semibold text-[#7a5a33] dark:text-[#f5e0ba] sm:text-3xl"
	introClass   = "mt-3 max-w-xl text-sm text-slate-700 dark:text-slate-300 sm:text-base"
)

// SectionHeader is the eyebrow/heading/intro block that opens each section.
// An empty intro is omitted.
func SectionHeader(margin, eyebrow, heading, intro string) g.Node {
	return Header(
		Class(margin),
		P(Class(eyebrowClass), g.Text(eyebrow)),
		H2(Class(headingClass), g.Text(heading)),
		g.If(intro != "", P(Class(introClass), g.Text(intro))),
	)
}
