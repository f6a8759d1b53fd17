package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const fieldLabelClass = "mb-1 block text-[0.7rem] font-semibold uppercase tracking-[0.2em] text-[#9a7c4e] dark:text-slate-400"

// InputClass is shared by every control in the quote form.
const InputClass = "w-full rounded-md border border-[#e0cba9] px-3 py-2 text-sm text-slate-900 shadow-sm focus:border-[#c9a46a] focus:outline-none focus:ring-1 focus:ring-[#c9a46a] dark:border-slate-700 dark:bg-slate-950 dark:text-slate-100 dark:focus:border-amber-300 dark:focus:ring-amber-300"

// FormField pairs a label with an arbitrary control. The control is expected
// to carry the matching id.
func FormField(id, label string, control g.Node) g.Node {
	return Div(
		Class("mb-3"),
		Label(For(id), Class(fieldLabelClass), g.Text(label)),
		control,
	)
}
