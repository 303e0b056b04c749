package contacts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LookupKey is a store-issued token that re-resolves a persisted contact even
// after its ContactID changes.
type LookupKey string

// NewContactID is the ContactID of a contact that has not been stored yet.
const NewContactID int64 = -1

// PhoneNumber is a phone number as typed by the user.
type PhoneNumber struct {
	Raw string
}

// MailAddress is an e-mail address.
type MailAddress struct {
	Raw string
}

// WebAddress is a URL.
type WebAddress struct {
	Raw string
}

// ImAddress is an instant-messaging handle. Protocol names the service when
// it is not one the store knows about.
type ImAddress struct {
	Raw      string
	Protocol string
}

// SipAddress is a SIP URI.
type SipAddress struct {
	Raw string
}

// Relation names a person related to the contact.
type Relation struct {
	Name string
}

// Note is free text attached to a contact.
type Note struct {
	Raw string
}

// ImageData holds the encoded bytes of a contact photo.
type ImageData struct {
	Raw []byte
}

// PostalAddress is a structured postal address.
type PostalAddress struct {
	Street       string
	POBox        string
	Neighborhood string
	City         string
	Region       string
	PostCode     string
	Country      string
}

// GroupMembership links a contact to a group.
type GroupMembership struct {
	GroupID int64
}

// LinkedAccountValue is a data row contributed by a third-party account
// (for example a messaging app) to a contact.
type LinkedAccountValue struct {
	ID          int64
	AccountType string
	MimeType    string
	Summary     string
	Detail      string
}

// FullNameStyle tells the store how the name parts should be composed.
type FullNameStyle int

const (
	FullNameStyleUndefined FullNameStyle = 0
	FullNameStyleWestern   FullNameStyle = 1
	FullNameStyleCJK       FullNameStyle = 2
	FullNameStyleChinese   FullNameStyle = 3
	FullNameStyleJapanese  FullNameStyle = 4
	FullNameStyleKorean    FullNameStyle = 5
)

// PhoneticNameStyle tells the store which phonetic alphabet the phonetic
// name parts use.
type PhoneticNameStyle int

const (
	PhoneticNameStyleUndefined PhoneticNameStyle = 0
	PhoneticNameStylePinyin    PhoneticNameStyle = 3
	PhoneticNameStyleJapanese  PhoneticNameStyle = 4
	PhoneticNameStyleKorean    PhoneticNameStyle = 5
)

// EventDate is a calendar date whose year may be unknown.
type EventDate struct {
	Day   int
	Month int
	Year  *int
}

// ErrInvalidEventDate is returned by [ParseEventDate] for malformed input.
var ErrInvalidEventDate = errors.New("contacts: invalid event date")

// String formats the date as yyyy-MM-dd, or --MM-dd when the year is unknown.
func (d EventDate) String() string {
	if d.Year == nil {
		return fmt.Sprintf("--%02d-%02d", d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", *d.Year, d.Month, d.Day)
}

// ParseEventDate parses the format produced by [EventDate.String].
func ParseEventDate(raw string) (EventDate, error) {
	raw = strings.TrimSpace(raw)
	yearless := strings.HasPrefix(raw, "--")
	parts := strings.Split(strings.TrimPrefix(raw, "--"), "-")

	var date EventDate
	switch {
	case yearless && len(parts) == 2:
	case !yearless && len(parts) == 3:
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return EventDate{}, fmt.Errorf("%w %q", ErrInvalidEventDate, raw)
		}
		date.Year = &year
		parts = parts[1:]
	default:
		return EventDate{}, fmt.Errorf("%w %q", ErrInvalidEventDate, raw)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return EventDate{}, fmt.Errorf("%w %q", ErrInvalidEventDate, raw)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return EventDate{}, fmt.Errorf("%w %q", ErrInvalidEventDate, raw)
	}
	date.Month = month
	date.Day = day
	return date, nil
}
