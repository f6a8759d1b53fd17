package partials

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/lastlook/site/internal/view"
)

const toggleClass = "inline-flex h-9 w-9 items-center justify-center rounded-full border border-[#d8c19f] bg-[#f6eada] text-xs font-semibold text-[#9a7c4e] shadow-sm hover:bg-[#ead6b6] dark:border-slate-700 dark:bg-slate-900 dark:text-slate-100 dark:hover:bg-slate-800"

// staticToggleScript flips the root class, the pressed state and the glyph
// in the browser.
const staticToggleScript = `var r=document.getElementById('app');var d=r.classList.toggle('dark');this.setAttribute('aria-pressed',d);this.textContent=d?'☾':'☀︎';`

// ThemeToggle is the dark-mode button. In server mode it posts the current
// flag and the server swaps #app for the page rendered with the flipped one.
func ThemeToggle(theme view.Theme, mode view.Mode) g.Node {
	var behavior g.Node
	switch mode {
	case view.ModeStatic:
		behavior = g.Attr("onclick", staticToggleScript)
	default:
		behavior = g.Group{
			hx.Post("/theme"),
			hx.Vals(fmt.Sprintf(`{"dark": %q}`, theme.Value())),
			hx.Target("#app"),
			hx.Swap("outerHTML"),
		}
	}
	return Button(
		Type("button"),
		ID("theme-toggle"),
		Class(toggleClass),
		Aria("label", "Toggle dark mode"),
		Aria("pressed", fmt.Sprint(theme.Dark)),
		behavior,
		g.Text(theme.Icon()),
	)
}
