package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

func Logo(brand string) g.Node {
	return Span(
		Class("text-2xl font-bold text-primary"),
		g.Text(brand),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. "lucide--mail size-6" becomes the
// lucide:mail icon with the size classes applied.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify inline-block"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is the rounded tinted square used on service and contact cards.
func IconBadge(icon string) g.Node {
	return Div(
		Class("w-12 h-12 rounded-lg bg-primary/10 flex items-center justify-center shrink-0"),
		Icon(icon+" size-6 text-primary", ""),
	)
}

// ScrollLink is an in-page navigation control. Without JS it is a plain
// anchor; scroll.js turns it into a smooth scroll to the target section.
func ScrollLink(link content.NavLink, class string, children ...g.Node) g.Node {
	return A(
		Href(link.Href()),
		Class(class),
		g.Attr("data-scroll-target", link.Target),
		g.Group(children),
	)
}

func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-4xl md:text-5xl font-bold mb-4"), g.Text(title)),
		g.If(subtitle != "", P(Class("text-xl text-base-content/70 max-w-2xl mx-auto"), g.Text(subtitle))),
	)
}
