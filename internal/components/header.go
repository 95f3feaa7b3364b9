package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

// SiteHeader is the sticky top bar. The mobile menu open flag lives on the
// header element as data-open and is flipped by mobile-menu.js.
func SiteHeader(site *content.Site) g.Node {
	top := content.NavLink{Label: site.Brand}
	cta := content.NavLink{Label: site.CTALabel, Target: "contact"}

	return Header(
		ID("site-header"),
		g.Attr("data-open", "false"),
		Class("sticky top-0 z-50 w-full border-b border-base-300 bg-base-100/95 backdrop-blur"),

		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("flex h-16 items-center justify-between"),

				ScrollLink(top, "hover:opacity-80 transition-opacity", Logo(site.Brand)),

				Nav(
					Class("hidden md:flex items-center gap-6"),
					g.Group(g.Map(site.Nav, func(l content.NavLink) g.Node {
						return ScrollLink(l, "text-base-content/80 hover:text-base-content transition-colors", g.Text(l.Label))
					})),
					ScrollLink(cta, "btn btn-primary btn-sm", g.Text(cta.Label)),
				),

				Button(
					Type("button"),
					Class("md:hidden btn btn-ghost btn-square btn-sm"),
					g.Attr("data-menu-toggle", ""),
					g.Attr("aria-controls", "mobile-nav"),
					g.Attr("aria-expanded", "false"),
					Icon("lucide--menu size-6", "Menu"),
				),
			),

			Nav(
				ID("mobile-nav"),
				Class("md:hidden hidden py-4 space-y-4 border-t border-base-300"),
				g.Group(g.Map(site.Nav, func(l content.NavLink) g.Node {
					return ScrollLink(l, "block w-full text-left text-base-content/80 hover:text-base-content transition-colors", g.Text(l.Label))
				})),
				ScrollLink(cta, "btn btn-primary w-full", g.Text(cta.Label)),
			),
		),
	)
}
