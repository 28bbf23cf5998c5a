package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/AadarshMishraa/ADmyBrand/internal/apperror"
	"github.com/AadarshMishraa/ADmyBrand/internal/assist"
	"github.com/AadarshMishraa/ADmyBrand/internal/components"
	"github.com/AadarshMishraa/ADmyBrand/internal/contact"
	"github.com/AadarshMishraa/ADmyBrand/internal/metrics"
	"github.com/AadarshMishraa/ADmyBrand/internal/theme"
)

const maxFormBytes = 64 << 10

const questionRequired = "Please enter a question."

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask answers a FAQ question. JSON requests get {"answer": ...}; form posts
// get the page back with the answer shown in the assist panel.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	if isJSON(r) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Invalid JSON body"))
			return
		}
		answer, err := h.assistant.Ask(r.Context(), req.Question)
		if errors.Is(err, assist.ErrEmptyQuestion) {
			apperror.WriteJSON(w, r, h.log, apperror.NewValidation(map[string]string{"question": questionRequired}))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(answer)
		return
	}

	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Invalid form body"))
		return
	}

	page := h.landing(r)
	page.Header = h.header(r, "faq")
	question := r.PostForm.Get("question")
	page.FAQ.Assist.Question = question

	answer, err := h.assistant.Ask(r.Context(), question)
	if errors.Is(err, assist.ErrEmptyQuestion) {
		page.FAQ.Assist.Error = questionRequired
		h.render(w, r, http.StatusUnprocessableEntity, components.Landing(page))
		return
	}
	page.FAQ.Assist.Answer = &answer
	h.render(w, r, http.StatusOK, components.Landing(page))
}

// Contact runs a posted contact form through its submission flow and renders
// the resulting state.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Invalid form body"))
		return
	}

	form := contact.FormFromValues(r.PostForm)
	snap, err := h.contacts.Submit(r.Context(), form)

	page := h.landing(r)
	page.Header = h.header(r, "contact")
	page.Contact = components.ContactView{Token: form.Token, Snapshot: snap}
	if snap.Form.Token != "" {
		page.Contact.Token = snap.Form.Token
	}

	var invalid *contact.ValidationError
	status := http.StatusOK
	outcome := snap.State.String()
	switch {
	case err == nil:
	case errors.As(err, &invalid):
		status, outcome = http.StatusUnprocessableEntity, "invalid"
	case errors.Is(err, contact.ErrInProgress):
		conflict := apperror.ErrConflict.WithMessage("Your message is already being sent.")
		status, outcome = conflict.HTTPStatus, "duplicate"
		page.Contact.Notice = conflict.Message
	case errors.Is(err, contact.ErrAlreadySubmitted):
		conflict := apperror.ErrConflict.WithMessage("Your message was already sent.")
		status, outcome = conflict.HTTPStatus, "duplicate"
		page.Contact.Notice = conflict.Message
	case r.Context().Err() != nil:
		h.log.Debug("contact request cancelled", slog.String("token", page.Contact.Token))
		metrics.ContactSubmissions.WithLabelValues("cancelled").Inc()
		return
	default:
		status = http.StatusBadGateway
	}

	metrics.ContactSubmissions.WithLabelValues(outcome).Inc()
	h.render(w, r, status, components.Landing(page))
}

// Newsletter handles the footer sign-up form.
func (h *Handler) Newsletter(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Invalid form body"))
		return
	}

	email := r.PostForm.Get(contact.FieldEmail)
	page := h.landing(r)
	page.Newsletter.Email = email

	created, err := h.newsletter.Subscribe(r.Context(), email)
	var invalid *contact.ValidationError
	switch {
	case errors.As(err, &invalid):
		metrics.NewsletterSignups.WithLabelValues("invalid").Inc()
		page.Newsletter.Error = invalid.Fields[contact.FieldEmail]
		h.render(w, r, http.StatusUnprocessableEntity, components.Landing(page))
		return
	case errors.Is(err, contact.ErrListFull):
		metrics.NewsletterSignups.WithLabelValues("full").Inc()
		page.Newsletter.Error = "Sign-ups are closed right now. Please try again later."
		h.render(w, r, apperror.ErrServiceUnavailable.HTTPStatus, components.Landing(page))
		return
	case err != nil:
		apperror.WriteJSON(w, r, h.log, apperror.NewInternal("Subscription failed", err))
		return
	case created:
		metrics.NewsletterSignups.WithLabelValues("created").Inc()
	default:
		metrics.NewsletterSignups.WithLabelValues("existing").Inc()
	}

	page.Newsletter.Subscribed = true
	h.render(w, r, http.StatusOK, components.Landing(page))
}

// Theme is the single entry point that changes the stored preference. A
// missing or unknown value flips the current one. Script callers get 204;
// form posts are redirected back to the page they came from.
func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	_ = r.ParseForm()

	next, ok := theme.Parse(r.PostForm.Get("theme"))
	if !ok {
		next = theme.FromContext(r.Context()).Toggle()
	}
	h.themes.Update(w, next)

	if r.Header.Get("X-Requested-With") != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the local path of the referring page, or "/".
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	return ref.RequestURI()
}
