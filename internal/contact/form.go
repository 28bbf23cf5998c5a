// Package contact validates the contact form and drives its submission
// through a pluggable, cancellable delivery step.
package contact

import (
	"net/url"
	"regexp"
	"strings"
)

// Field names as they appear in the HTML form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldMessage = "message"
	FieldToken   = "token"
)

// Form is a contact request as posted by the visitor.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
	// Token identifies one rendering of the form so a double post can be detected.
	Token string `json:"token,omitempty"`
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) HasErrors() bool { return len(e) > 0 }

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail applies the same loose shape check the form uses.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FormFromValues reads a form post. Values are trimmed.
func FormFromValues(v url.Values) Form {
	return Form{
		Name:    strings.TrimSpace(v.Get(FieldName)),
		Email:   strings.TrimSpace(v.Get(FieldEmail)),
		Company: strings.TrimSpace(v.Get(FieldCompany)),
		Message: strings.TrimSpace(v.Get(FieldMessage)),
		Token:   strings.TrimSpace(v.Get(FieldToken)),
	}
}

// Validate returns one message per invalid field, or nil. Company is optional.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if f.Name == "" {
		errs[FieldName] = "Name is required."
	}
	if msg := validateEmail(f.Email); msg != "" {
		errs[FieldEmail] = msg
	}
	if f.Message == "" {
		errs[FieldMessage] = "Message is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateEmail(email string) string {
	switch {
	case email == "":
		return "Email is required."
	case !ValidEmail(email):
		return "Email address is invalid."
	}
	return ""
}
