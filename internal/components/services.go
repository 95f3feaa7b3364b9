package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

func Services(site *content.Site) g.Node {
	cards := make([]g.Node, 0, len(site.Services))
	for i, svc := range site.Services {
		cards = append(cards, serviceCard(i, svc))
	}

	return Section(
		ID("services"),
		Class("py-20 bg-base-200/30"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading(site.ServicesSection.Title, site.ServicesSection.Subtitle),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(cards),
			),
		),
	)
}

func serviceCard(index int, svc content.Service) g.Node {
	return Div(
		Class("card bg-base-100 border-2 border-base-300 hover:shadow-lg transition-all duration-300 hover:-translate-y-1 fade-in-up"),
		g.Attr("style", fmt.Sprintf("animation-delay: %dms", index*100)),
		Div(
			Class("card-body"),
			Div(Class("mb-4"), IconBadge(svc.Icon)),
			H3(Class("card-title text-xl"), g.Text(svc.Title)),
			P(Class("text-base leading-relaxed text-base-content/70"), g.Text(svc.Description)),
		),
	)
}
