package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/contact"
)

// Toaster is the notification region. Server-rendered notifications are
// placed inside it; toast.js appends client-side ones and dismisses both.
func Toaster(notifications []contact.Notification) g.Node {
	return Div(
		ID("toaster"),
		Class("toast toast-end toast-bottom z-[100]"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(notifications, Toast)),
	)
}

func Toast(n contact.Notification) g.Node {
	alertClass := "alert shadow-lg flex flex-col items-start gap-1 max-w-sm"
	if n.Variant == contact.VariantDestructive {
		alertClass += " alert-error"
	}

	return Div(
		Class(alertClass),
		g.Attr("role", "status"),
		g.Attr("data-toast", string(n.Variant)),
		P(Class("font-semibold"), g.Text(n.Title)),
		g.If(n.Description != "", P(Class("text-sm opacity-90"), g.Text(n.Description))),
	)
}
