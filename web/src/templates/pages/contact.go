package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/view"
	"github.com/lastlook/site/web/src/templates/partials"
)

// FormID and NoticeID are the quote form and the element its notices are
// swapped into.
const (
	FormID   = "quote-form"
	NoticeID = "form-notice"
)

// QuoteField is one control in the quote form.
type QuoteField struct {
	ID          string
	Label       string
	Type        string // input type; "textarea" renders a textarea
	Placeholder string
}

// QuoteFields lists the quote form controls in display order.
var QuoteFields = []QuoteField{
	{"name", "Name(s)", "text", "First & last name(s)"},
	{"email", "Email", "email", "you@example.com"},
	{"phone", "Phone", "tel", "(555) 555-5555"},
	{"event", "Event type & date", "text", "Wedding – October 4, 2025"},
	{"venue", "Venue & city", "text", "Venue name, city"},
	{"guests", "Estimated guest count", "text", "e.g., 120"},
	{"package", "Package interest", "text", "Fresh Start, Keepsake, Afterglow, or custom"},
	{"details", "Event details", "textarea", "Share décor, timeline, or special requests."},
}

const panelClass = "rounded-xl border border-[#e0cba9] bg-[#fdf4e4] p-5 text-sm text-slate-800 shadow-md dark:border-slate-700 dark:bg-slate-900 dark:text-slate-200"

func contact(p HomeProps) g.Node {
	return Section(
		ID("contact"),
		Class("bg-[#f2e1c8] px-4 py-12 dark:bg-slate-950 md:py-16"),
		Div(
			Class("mx-auto max-w-5xl"),
			partials.SectionHeader("mb-8",
				"Contact",
				"Ready to plan your “last look”?",
				"Share a few details about your event and we’ll follow up with a custom quote and availability.",
			),
			Div(
				Class("grid gap-8 md:grid-cols-[1.1fr_minmax(0,1fr)]"),
				contactCard(p.Catalog.Contact, p.QuoteMailto),
				QuoteForm(p.Mode, p.Flash),
			),
		),
	)
}

func contactCard(entries []content.ContactInfo, mailto string) g.Node {
	return Div(
		Class(panelClass),
		g.Map(entries, ContactEntry),
		P(
			Class("mb-4 text-sm text-slate-700 dark:text-slate-300"),
			g.Text("Prefer email? Click below to open a pre-filled message with space for your event details."),
		),
		A(Href(mailto), Class(ctaClass), g.Text("Email us to request a quote")),
	)
}

// ContactEntry renders one contact detail: an anchor with the exact target
// when it has one, plain text otherwise.
func ContactEntry(info content.ContactInfo) g.Node {
	var value g.Node
	if info.HasLink() {
		value = A(
			Href(info.Href),
			Class("text-sm font-medium text-[#b28342] underline-offset-2 hover:underline dark:text-amber-200"),
			g.Text(info.Value),
		)
	} else {
		value = Div(g.Text(info.Value))
	}
	return Div(
		Data("contact", info.Label),
		Class("mb-3 last:mb-4"),
		Div(Class("text-[0.7rem] font-semibold uppercase tracking-[0.2em] text-[#9a7c4e] dark:text-slate-400"), g.Text(info.Label)),
		value,
	)
}

// QuoteForm is the demo quote request form. Its controls have ids but no
// names, so a submission carries no field data.
func QuoteForm(mode view.Mode, flash view.FlashData) g.Node {
	var submit g.Node
	switch mode {
	case view.ModeStatic:
		submit = g.Attr("onsubmit", fmt.Sprintf("event.preventDefault();alert(%q);", partials.DemoNotice))
	default:
		submit = g.Group{
			Method("post"),
			Action("/contact"),
			hx.Post("/contact"),
			hx.Target("#" + NoticeID),
			hx.Swap("innerHTML"),
			// Keep typed input when the theme toggle swaps the page root.
			g.Attr("hx-preserve", "true"),
		}
	}
	return Form(
		ID(FormID),
		Class(panelClass),
		submit,
		g.Map(QuoteFields, quoteControl),
		Button(
			Type("submit"),
			Class("inline-flex items-center justify-center rounded-full bg-[#c9a46a] px-5 py-2.5 text-xs font-semibold uppercase tracking-wide text-slate-900 shadow-md hover:bg-[#b58c4f] dark:bg-[#f1cd85] dark:text-slate-950 dark:hover:bg-[#e2b96b]"),
			g.Text("Submit (demo)"),
		),
		P(
			Class("mt-2 text-[0.7rem] text-slate-700 dark:text-slate-400"),
			g.Text("This sample form doesn’t send automatically—connect it to your form service or backend when you’re ready to launch."),
		),
		Div(ID(NoticeID), Class("mt-3"), Aria("live", "polite"), partials.Flashes(flash)),
	)
}

func quoteControl(f QuoteField) g.Node {
	if f.Type == "textarea" {
		return partials.FormField(f.ID, f.Label, Textarea(
			ID(f.ID),
			Placeholder(f.Placeholder),
			Class(partials.InputClass+" min-h-[120px]"),
		))
	}
	return partials.FormField(f.ID, f.Label, Input(
		ID(f.ID),
		Type(f.Type),
		Placeholder(f.Placeholder),
		Class(partials.InputClass),
	))
}
