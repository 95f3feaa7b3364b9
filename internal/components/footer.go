package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

func PageFooter(site *content.Site, year int) g.Node {
	return Footer(
		Class("border-t border-base-300 bg-base-200/30"),
		Div(
			Class("container mx-auto px-4 py-12"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),

				Div(
					H3(Class("text-2xl font-bold text-primary mb-4"), g.Text(site.Brand)),
					P(Class("text-base-content/70"), g.Text(site.Tagline)),
				),

				Div(
					H4(Class("font-semibold mb-4"), g.Text("Links Rápidos")),
					Ul(
						Class("space-y-2"),
						g.Group(g.Map(site.Nav, func(l content.NavLink) g.Node {
							return Li(ScrollLink(l, "text-base-content/70 hover:text-base-content transition-colors", g.Text(l.Label)))
						})),
					),
				),

				Div(
					H4(Class("font-semibold mb-4"), g.Text("Contato")),
					Ul(
						Class("space-y-2 text-base-content/70"),
						Li(g.Text(site.Contact.Email)),
						Li(g.Text(site.Contact.Phone)),
						Li(g.Text(site.Contact.Location())),
					),
				),
			),

			Div(
				Class("mt-12 pt-8 border-t border-base-300 text-center text-base-content/70"),
				P(g.Text(fmt.Sprintf("© %d %s. Todos os direitos reservados.", year, site.CopyrightHolder))),
			),
		),
	)
}
