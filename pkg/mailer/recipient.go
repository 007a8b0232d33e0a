package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

// Addresser is implemented by recipient types that carry an email address.
type Addresser interface {
	EmailAddress() string
}

// Address is a plain email address.
type Address string

func (a Address) EmailAddress() string { return string(a) }

// Contact is a recipient object with an email field, e.g. a user record.
type Contact struct {
	Name  string
	Email string
}

func (c Contact) EmailAddress() string { return c.Email }

// String formats the contact for display: "Name <email>", or just the email without a name.
func (c Contact) String() string {
	if c.Name == "" {
		return c.Email
	}
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}

// normalizeRecipient turns any accepted recipient form into a plain address.
func normalizeRecipient(to any) (string, error) {
	var addr string
	switch v := to.(type) {
	case string:
		addr = v
	case Addresser:
		addr = v.EmailAddress()
	case mail.Address:
		addr = v.Address
	case *mail.Address:
		if v != nil {
			addr = v.Address
		}
	case nil:
		return "", fmt.Errorf("%w: no recipient", ErrInvalidRecipient)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidRecipient, to)
	}

	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidRecipient)
	}
	return addr, nil
}
