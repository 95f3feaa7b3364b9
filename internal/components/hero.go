package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

func Hero(site *content.Site) g.Node {
	h := site.Hero
	primary := content.NavLink{Label: h.PrimaryLabel, Target: h.PrimaryTarget}
	secondary := content.NavLink{Label: h.SecondaryLabel, Target: h.SecondaryTarget}

	return Section(
		ID("hero"),
		Class("relative min-h-[90vh] flex items-center justify-center overflow-hidden"),

		Div(Class("absolute inset-0 opacity-10 hero-gradient")),

		Div(
			Class("container mx-auto px-4 relative z-10"),
			Div(
				Class("max-w-4xl mx-auto text-center fade-in-up"),
				H1(
					Class("text-5xl md:text-7xl font-bold mb-6 bg-gradient-to-r from-primary to-primary/70 bg-clip-text text-transparent"),
					g.Text(h.Title),
				),
				P(
					Class("text-xl md:text-2xl text-base-content/70 mb-8 leading-relaxed"),
					g.Text(h.Subtitle),
				),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					ScrollLink(primary, "btn btn-primary btn-lg text-lg group shadow-lg",
						g.Text(primary.Label),
						Icon("lucide--arrow-right size-5 ml-2 group-hover:translate-x-1 transition-transform", ""),
					),
					ScrollLink(secondary, "btn btn-outline btn-lg text-lg border-2", g.Text(secondary.Label)),
				),
			),
		),
	)
}
