package entity

import "strings"

// EventKind is the recognized set of identity provider events.
type EventKind int

const (
	EventKindUnhandled EventKind = iota
	EventKindUserCreated
	EventKindUserUpdated
	EventKindUserDeleted
)

const (
	EventTypeUserCreated = "user.created"
	EventTypeUserUpdated = "user.updated"
	EventTypeUserDeleted = "user.deleted"
)

// ParseEventKind maps a provider event type string to an EventKind.
// Unknown types map to EventKindUnhandled.
func ParseEventKind(eventType string) EventKind {
	switch eventType {
	case EventTypeUserCreated:
		return EventKindUserCreated
	case EventTypeUserUpdated:
		return EventKindUserUpdated
	case EventTypeUserDeleted:
		return EventKindUserDeleted
	default:
		return EventKindUnhandled
	}
}

func (k EventKind) String() string {
	switch k {
	case EventKindUserCreated:
		return EventTypeUserCreated
	case EventKindUserUpdated:
		return EventTypeUserUpdated
	case EventKindUserDeleted:
		return EventTypeUserDeleted
	default:
		return "unhandled"
	}
}

// EmailAddress is one address on the provider's user record.
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// IdentityPayload is the provider's user record carried in event data.
// Deleted events carry only ID.
type IdentityPayload struct {
	ID                    string         `json:"id" validate:"required"`
	EmailAddresses        []EmailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	Username              string         `json:"username"`
	ImageURL              string         `json:"image_url"`

	// Flat fields accepted from providers that do not nest addresses.
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PrimaryEmail returns the primary address, else the first address, else the flat email.
func (p *IdentityPayload) PrimaryEmail() string {
	for _, addr := range p.EmailAddresses {
		if p.PrimaryEmailAddressID != "" && addr.ID == p.PrimaryEmailAddressID {
			return addr.EmailAddress
		}
	}
	if len(p.EmailAddresses) > 0 {
		return p.EmailAddresses[0].EmailAddress
	}

	return p.Email
}

// DisplayName returns "first last", else the username, else the flat name.
func (p *IdentityPayload) DisplayName() string {
	if full := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName)); full != "" {
		return full
	}
	if p.Username != "" {
		return p.Username
	}

	return p.Name
}

// ToUser builds the user attributes carried by the payload.
func (p *IdentityPayload) ToUser() *User {
	return &User{
		ExternalID: p.ID,
		Email:      p.PrimaryEmail(),
		Name:       p.DisplayName(),
		ImageURL:   p.ImageURL,
	}
}
