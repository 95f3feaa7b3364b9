package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/domain/contact"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/content"
)

// ContactView is the state the contact section renders from.
type ContactView struct {
	Values     contact.Values
	Submitting bool

	// Field that failed validation, highlighted in the form
	InvalidField string

	CSRFFieldName string
	CSRFToken     string
}

func Contact(site *content.Site, view ContactView) g.Node {
	s := site.ContactSection

	return Section(
		ID("contact"),
		Class("py-20 bg-base-100"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading(s.Title, s.Subtitle),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 max-w-6xl mx-auto"),

				Div(
					Class("card border-2 border-base-300"),
					Div(
						Class("card-body"),
						H3(Class("card-title text-2xl"), g.Text(s.FormTitle)),
						P(Class("text-base-content/70 mb-4"), g.Text(s.FormDescription)),
						contactForm(view),
					),
				),

				Div(
					Class("space-y-6"),
					channelCard("lucide--mail", "Email", g.Text(site.Contact.Email)),
					channelCard("lucide--phone", "Telefone", g.Text(site.Contact.Phone)),
					channelCard("lucide--map-pin", "Localização",
						g.Text(site.Contact.City), Br(), g.Text(site.Contact.Country)),
				),
			),
		),
	)
}

func contactForm(view ContactView) g.Node {
	label := "Enviar Mensagem"
	if view.Submitting {
		label = "Enviando..."
	}

	return Form(
		ID("contact-form"),
		Method("post"),
		Action("/contact#contact"),
		Class("space-y-6"),
		g.Attr("data-endpoint", "/api/contact"),
		g.Attr("novalidate", ""),

		g.If(view.CSRFToken != "", Input(
			Type("hidden"),
			Name(view.CSRFFieldName),
			Value(view.CSRFToken),
		)),

		formField(view, contact.FieldName, "Nome Completo", "text", "Seu nome"),
		formField(view, contact.FieldEmail, "Email", "email", "seu@email.com"),
		formField(view, contact.FieldPhone, "Telefone", "tel", "(99) 99999-9999"),
		formField(view, contact.FieldMessage, "Mensagem", "", "Como podemos ajudar?"),

		Button(
			Type("submit"),
			Class("btn btn-primary btn-lg w-full"),
			g.Attr("data-idle-label", "Enviar Mensagem"),
			g.Attr("data-busy-label", "Enviando..."),
			g.If(view.Submitting, Disabled()),
			g.Text(label),
		),
	)
}

// formField renders a labelled input. An empty inputType means a textarea.
func formField(view ContactView, field contact.Field, label, inputType, placeholder string) g.Node {
	name := field.String()
	value := view.Values.Get(field)

	inputClass := "input input-bordered w-full"
	if inputType == "" {
		inputClass = "textarea textarea-bordered w-full"
	}
	invalid := view.InvalidField == name
	if invalid {
		inputClass += " input-error"
	}

	attrs := []g.Node{
		ID(name),
		Name(name),
		Class(inputClass),
		Placeholder(placeholder),
		Required(),
		g.If(invalid, g.Attr("aria-invalid", "true")),
	}

	var control g.Node
	if inputType == "" {
		control = Textarea(append(attrs, g.Attr("rows", "5"), g.Text(value))...)
	} else {
		control = Input(append(attrs, Type(inputType), Value(value))...)
	}

	return Div(
		Class("space-y-2"),
		Label(g.Attr("for", name), Class("label-text font-medium"), g.Text(label)),
		control,
	)
}

func channelCard(icon, title string, body ...g.Node) g.Node {
	return Div(
		Class("card border-2 border-base-300 hover:shadow-lg transition-shadow"),
		Div(
			Class("card-body"),
			Div(
				Class("flex items-start gap-4"),
				IconBadge(icon),
				Div(
					H3(Class("font-semibold text-lg mb-1"), g.Text(title)),
					P(Class("text-base-content/70"), g.Group(body)),
				),
			),
		),
	)
}
