package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/AadarshMishraa/ADmyBrand/internal/contact"
	"github.com/AadarshMishraa/ADmyBrand/internal/content"
)

type ContactView struct {
	// Token keys the rendered form to its submission flow.
	Token    string
	Snapshot contact.Snapshot
	// Notice is shown above the form, e.g. for a rejected double submit.
	Notice string
}

func ContactSection(info content.Contact, v ContactView) g.Node {
	return Section(
		ID("contact"),
		Class("py-24 sm:py-32"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading("mail", "Contact", info.Title, info.Subtitle),
			Div(
				Class("grid lg:grid-cols-5 gap-12"),
				Div(
					Class("lg:col-span-2 space-y-4"),
					g.Group(g.Map(info.Channels, contactChannel)),
				),
				Div(
					Class("lg:col-span-3 card bg-base-200/60 border border-base-300 p-8"),
					Data("contact-state", v.Snapshot.State.String()),
					contactBody(info, v),
				),
			),
		),
	)
}

func contactChannel(c content.ContactChannel) g.Node {
	icon := map[string]string{"email": "mail", "phone": "phone"}[c.Kind]
	if icon == "" {
		icon = "map-pin"
	}

	body := []g.Node{
		Icon(icon+" size-5 text-primary", ""),
		Div(
			H4(Class("font-semibold"), g.Text(c.Title)),
			P(Class("text-base-content/80 font-medium"), g.Text(c.Details)),
			P(Class("text-sm text-base-content/60"), g.Text(c.Description)),
		),
	}

	if href := c.Href(); href != "" {
		return A(Href(href), Class("flex items-start gap-4 card bg-base-100 border border-base-300 p-5"), g.Group(body))
	}
	return Div(Class("flex items-start gap-4 card bg-base-100 border border-base-300 p-5"), g.Group(body))
}

func contactBody(info content.Contact, v ContactView) g.Node {
	notice := g.If(v.Notice != "", Div(Class("alert alert-info mb-6"), Role("status"), g.Text(v.Notice)))

	if v.Snapshot.State == contact.Submitted {
		return g.Group([]g.Node{
			notice,
			Div(
				Class("flex flex-col items-center justify-center text-center py-12"),
				Role("status"),
				Icon("check-circle size-16 text-success mb-4", ""),
				H3(Class("text-2xl font-bold mb-2"), g.Text("Message Sent!")),
				P(Class("text-base-content/70 max-w-xs"), g.Text(info.ThankYou)),
			),
		})
	}

	form := v.Snapshot.Form
	errs := v.Snapshot.Errors
	submitting := v.Snapshot.State == contact.Submitting

	return g.Group([]g.Node{
		H3(Class("text-3xl font-bold mb-8"), g.Text("Send us a message")),
		notice,
		g.If(v.Snapshot.State == contact.Failed,
			Div(Class("alert alert-error mb-6"), Role("alert"),
				g.Text("We couldn't send your message. Please try again."),
			),
		),
		Form(
			Method("post"),
			Action("/contact#contact"),
			g.Attr("novalidate"),
			Class("space-y-6"),
			Input(Type("hidden"), Name(contact.FieldToken), Value(v.Token)),
			Div(
				Class("grid sm:grid-cols-2 gap-6"),
				field(contact.FieldName, "text", "Name", form.Name, errs[contact.FieldName], true),
				field(contact.FieldEmail, "email", "Email", form.Email, errs[contact.FieldEmail], true),
			),
			field(contact.FieldCompany, "text", "Company", form.Company, "", false),
			messageField(form.Message, errs[contact.FieldMessage]),
			Button(
				Type("submit"),
				Class("btn btn-primary w-full"),
				g.If(submitting, Disabled()),
				Icon("send size-4", ""),
				g.Text(submitLabel(info.SubmitLabel, submitting)),
			),
		),
	})
}

func submitLabel(label string, submitting bool) string {
	if submitting {
		return "Sending..."
	}
	if label == "" {
		return "Send Message"
	}
	return label
}

func field(name, typ, label, value, errMsg string, required bool) g.Node {
	return Div(
		Label(
			For(name),
			Class("floating-label"),
			Span(g.Text(label), g.If(required, Span(Class("text-primary"), g.Text(" *")))),
			Input(
				ID(name),
				Name(name),
				Type(typ),
				Value(value),
				Placeholder(label),
				Class(inputClass("input w-full", errMsg)),
				g.If(errMsg != "", Aria("invalid", "true")),
				g.If(errMsg != "", Aria("describedby", name+"-error")),
			),
		),
		fieldError(name, errMsg),
	)
}

func messageField(value, errMsg string) g.Node {
	return Div(
		Label(
			For(contact.FieldMessage),
			Class("floating-label"),
			Span(g.Text("Message"), Span(Class("text-primary"), g.Text(" *"))),
			g.El("textarea",
				ID(contact.FieldMessage),
				Name(contact.FieldMessage),
				Rows("5"),
				Placeholder("Message"),
				Class(inputClass("textarea w-full", errMsg)),
				g.If(errMsg != "", Aria("invalid", "true")),
				g.If(errMsg != "", Aria("describedby", contact.FieldMessage+"-error")),
				g.Text(value),
			),
		),
		fieldError(contact.FieldMessage, errMsg),
	)
}

func inputClass(base, errMsg string) string {
	if errMsg != "" {
		return base + " input-error"
	}
	return base
}

func fieldError(name, msg string) g.Node {
	if msg == "" {
		return nil
	}
	return P(ID(name+"-error"), Class("text-xs text-error mt-1"), g.Text(msg))
}
