package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrIncompleteContact = errors.New("incomplete registrant contact")

// Contact is the registrant snapshot captured at checkout. It is stored with
// the order and never edited afterwards.
type Contact struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Organization string `json:"organization,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address1     string `json:"address1,omitempty"`
	Address2     string `json:"address2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validate checks the fields a registrar requires for every operation.
func (c *Contact) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: no contact stored", ErrIncompleteContact)
	}
	var missing []string
	if c.FullName() == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrIncompleteContact, c.Email)
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteContact, strings.Join(missing, ", "))
	}
	return nil
}

// Attributes are the country specific registration fields (e.g. ".us" nexus).
type Attributes map[string]string

func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
