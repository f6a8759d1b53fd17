package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/view"
)

// DemoNotice is the placeholder shown when the quote form is submitted.
const DemoNotice = "Demo only — wire this form up to your backend or form service."

const noticeClass = "rounded-lg border px-4 py-3 text-xs sm:text-sm"

// Notice renders a single status message for the quote form.
func Notice(message string) g.Node {
	return Div(
		Role("status"),
		Class(noticeClass+" border-[#c9a46a] bg-[#f7ebda] text-slate-800 dark:border-amber-300/60 dark:bg-slate-900 dark:text-slate-100"),
		g.Text(message),
	)
}

// Flashes renders pending session flash notices. Nothing is rendered when
// there are none.
func Flashes(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return Div(
		Class("space-y-2"),
		g.Map(f.Info, Notice),
	)
}
