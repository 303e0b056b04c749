package vcard

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	govcard "github.com/emersion/go-vcard"

	"github.com/spachava753/contactstore/contacts"
	"github.com/spachava753/contactstore/provider"
)

// Properties without a vCard 4.0 counterpart.
const (
	fieldPhoneticFirstName  = "X-PHONETIC-FIRST-NAME"
	fieldPhoneticMiddleName = "X-PHONETIC-MIDDLE-NAME"
	fieldPhoneticLastName   = "X-PHONETIC-LAST-NAME"
	fieldSip                = "X-SIP"
	fieldEvent              = "X-EVENT"
	paramService            = "X-SERVICE-TYPE"
)

// Encode returns the vCard 4.0 card of c. Only properties of the columns c
// carries are emitted, so encoding a partial contact never panics on a
// missing column. Group memberships and linked account values have no
// portable representation and are left out.
func Encode(c contacts.Contact) govcard.Card {
	card := govcard.Card{}
	card.SetValue(govcard.FieldVersion, "4.0")
	card.SetValue(govcard.FieldFormattedName, c.DisplayName())
	if key := c.LookupKey(); key != "" {
		card.SetValue(govcard.FieldUID, string(key))
	}
	has := c.ContainsColumn

	if has(contacts.ColumnNames) {
		card.SetName(&govcard.Name{
			FamilyName:      c.LastName(),
			GivenName:       c.FirstName(),
			AdditionalName:  c.MiddleName(),
			HonorificPrefix: c.Prefix(),
			HonorificSuffix: c.Suffix(),
		})
		setIfNotEmpty(card, fieldPhoneticFirstName, c.PhoneticFirstName())
		setIfNotEmpty(card, fieldPhoneticMiddleName, c.PhoneticMiddleName())
		setIfNotEmpty(card, fieldPhoneticLastName, c.PhoneticLastName())
	}
	if has(contacts.ColumnNickname) {
		setIfNotEmpty(card, govcard.FieldNickname, c.Nickname())
	}
	if has(contacts.ColumnOrganization) {
		setIfNotEmpty(card, govcard.FieldOrganization, c.Organization())
		setIfNotEmpty(card, govcard.FieldTitle, c.JobTitle())
	}
	if has(contacts.ColumnImage) {
		if image := c.ImageData(); image != nil && len(image.Raw) > 0 {
			card.SetValue(govcard.FieldPhoto, photoURI(image.Raw))
		}
	}
	if has(contacts.ColumnNote) {
		if note := c.Note(); note != nil {
			card.SetValue(govcard.FieldNote, note.Raw)
		}
	}
	if has(contacts.ColumnPhones) {
		for _, phone := range c.Phones() {
			addLabeled(card, govcard.FieldTelephone, provider.KindPhone, phone.Value.Raw, phone.Label)
		}
	}
	if has(contacts.ColumnMails) {
		for _, mail := range c.Mails() {
			addLabeled(card, govcard.FieldEmail, provider.KindMail, mail.Value.Raw, mail.Label)
		}
	}
	if has(contacts.ColumnWebAddresses) {
		for _, web := range c.WebAddresses() {
			addLabeled(card, govcard.FieldURL, provider.KindWebAddress, web.Value.Raw, web.Label)
		}
	}
	if has(contacts.ColumnPostalAddresses) {
		for _, postal := range c.PostalAddresses() {
			a := postal.Value
			card.AddAddress(&govcard.Address{
				Field:           &govcard.Field{Params: labelParams(provider.KindPostalAddress, postal.Label)},
				PostOfficeBox:   a.POBox,
				ExtendedAddress: a.Neighborhood,
				StreetAddress:   a.Street,
				Locality:        a.City,
				Region:          a.Region,
				PostalCode:      a.PostCode,
				Country:         a.Country,
			})
		}
	}
	if has(contacts.ColumnImAddresses) {
		for _, im := range c.ImAddresses() {
			field := addLabeled(card, govcard.FieldIMPP, provider.KindImAddress, im.Value.Raw, im.Label)
			if im.Value.Protocol != "" {
				field.Params.Set(paramService, im.Value.Protocol)
			}
		}
	}
	if has(contacts.ColumnSipAddresses) {
		for _, sip := range c.SipAddresses() {
			addLabeled(card, fieldSip, provider.KindSipAddress, sip.Value.Raw, sip.Label)
		}
	}
	if has(contacts.ColumnRelations) {
		for _, relation := range c.Relations() {
			field := addLabeled(card, govcard.FieldRelated, provider.KindRelation, relation.Value.Name, relation.Label)
			field.Params.Set(govcard.ParamValue, "text")
		}
	}
	if has(contacts.ColumnEvents) {
		for _, event := range c.Events() {
			value := formatDate(event.Value)
			switch event.Label {
			case contacts.LabelDateBirthday:
				card.Add(govcard.FieldBirthday, &govcard.Field{Value: value})
			case contacts.LabelDateAnniversary:
				card.Add(govcard.FieldAnniversary, &govcard.Field{Value: value})
			default:
				addLabeled(card, fieldEvent, provider.KindEvent, value, event.Label)
			}
		}
	}
	return card
}

// Decode builds a new, unsaved contact from card. Properties the contact
// model has no field for are ignored, as are photos given by URL.
func Decode(card govcard.Card) (*contacts.MutableContact, error) {
	c := contacts.NewMutableContact()

	if name := card.Name(); name != nil {
		c.SetLastName(name.FamilyName)
		c.SetFirstName(name.GivenName)
		c.SetMiddleName(name.AdditionalName)
		c.SetPrefix(name.HonorificPrefix)
		c.SetSuffix(name.HonorificSuffix)
	}
	c.SetPhoneticFirstName(card.Value(fieldPhoneticFirstName))
	c.SetPhoneticMiddleName(card.Value(fieldPhoneticMiddleName))
	c.SetPhoneticLastName(card.Value(fieldPhoneticLastName))
	c.SetNickname(card.Value(govcard.FieldNickname))
	// ORG lists the organization name first, then its units
	organization, _, _ := strings.Cut(card.Value(govcard.FieldOrganization), ";")
	c.SetOrganization(organization)
	c.SetJobTitle(card.Value(govcard.FieldTitle))

	if field := card.Get(govcard.FieldPhoto); field != nil {
		raw, err := decodePhoto(field)
		if err != nil {
			return nil, err
		}
		if raw != nil {
			c.SetImageData(&contacts.ImageData{Raw: raw})
		}
	}
	if field := card.Get(govcard.FieldNote); field != nil {
		c.SetNote(&contacts.Note{Raw: field.Value})
	}

	for _, field := range card[govcard.FieldTelephone] {
		c.AddPhone(contacts.PhoneNumber{Raw: strings.TrimPrefix(field.Value, "tel:")}, fieldLabel(provider.KindPhone, field))
	}
	for _, field := range card[govcard.FieldEmail] {
		c.AddMail(contacts.MailAddress{Raw: field.Value}, fieldLabel(provider.KindMail, field))
	}
	for _, field := range card[govcard.FieldURL] {
		c.AddWebAddress(contacts.WebAddress{Raw: field.Value}, fieldLabel(provider.KindWebAddress, field))
	}
	for _, address := range card.Addresses() {
		c.AddPostalAddress(contacts.PostalAddress{
			POBox:        address.PostOfficeBox,
			Neighborhood: address.ExtendedAddress,
			Street:       address.StreetAddress,
			City:         address.Locality,
			Region:       address.Region,
			PostCode:     address.PostalCode,
			Country:      address.Country,
		}, fieldLabel(provider.KindPostalAddress, address.Field))
	}
	for _, field := range card[govcard.FieldIMPP] {
		c.AddImAddress(contacts.ImAddress{
			Raw:      field.Value,
			Protocol: field.Params.Get(paramService),
		}, fieldLabel(provider.KindImAddress, field))
	}
	for _, field := range card[fieldSip] {
		c.AddSipAddress(contacts.SipAddress{Raw: field.Value}, fieldLabel(provider.KindSipAddress, field))
	}
	for _, field := range card[govcard.FieldRelated] {
		c.AddRelation(contacts.Relation{Name: field.Value}, fieldLabel(provider.KindRelation, field))
	}

	events := []struct {
		key   string
		label func(*govcard.Field) contacts.Label
	}{
		{govcard.FieldBirthday, func(*govcard.Field) contacts.Label { return contacts.LabelDateBirthday }},
		{govcard.FieldAnniversary, func(*govcard.Field) contacts.Label { return contacts.LabelDateAnniversary }},
		{fieldEvent, func(f *govcard.Field) contacts.Label { return fieldLabel(provider.KindEvent, f) }},
	}
	for _, event := range events {
		for _, field := range card[event.key] {
			date, err := parseDate(field.Value)
			if err != nil {
				return nil, fmt.Errorf("vcard: %s: %w", event.key, err)
			}
			c.AddEvent(date, event.label(field))
		}
	}
	return c, nil
}

func addLabeled(card govcard.Card, key string, kind provider.ValueKind, value string, label contacts.Label) *govcard.Field {
	field := &govcard.Field{Value: value, Params: labelParams(kind, label)}
	card.Add(key, field)
	return field
}

func setIfNotEmpty(card govcard.Card, key, value string) {
	if value != "" {
		card.SetValue(key, value)
	}
}

func photoURI(raw []byte) string {
	mediaType := http.DetectContentType(raw)
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// decodePhoto returns the inline photo bytes of field, or nil for a photo
// referenced by URL.
func decodePhoto(field *govcard.Field) ([]byte, error) {
	value := strings.TrimSpace(field.Value)
	if encoding := strings.ToLower(field.Params.Get("ENCODING")); encoding == "b" || encoding == "base64" {
		raw, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("vcard: PHOTO: %w", err)
		}
		return raw, nil
	}
	if !strings.HasPrefix(value, "data:") {
		return nil, nil
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(value, "data:"), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("vcard: PHOTO: unsupported data URI %q", meta)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("vcard: PHOTO: %w", err)
	}
	return raw, nil
}

// formatDate writes d in the vCard 4.0 basic format: yyyyMMdd, or --MMdd
// without a year.
func formatDate(d contacts.EventDate) string {
	if d.Year == nil {
		return fmt.Sprintf("--%02d%02d", d.Month, d.Day)
	}
	return fmt.Sprintf("%04d%02d%02d", *d.Year, d.Month, d.Day)
}

// parseDate accepts the basic format written by formatDate and the extended
// yyyy-MM-dd / --MM-dd form.
func parseDate(value string) (contacts.EventDate, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(strings.TrimPrefix(value, "--"), "-") {
		return contacts.ParseEventDate(value)
	}
	switch {
	case len(value) == 8 && !strings.HasPrefix(value, "--"):
		return contacts.ParseEventDate(value[:4] + "-" + value[4:6] + "-" + value[6:])
	case len(value) == 6 && strings.HasPrefix(value, "--"):
		return contacts.ParseEventDate("--" + value[2:4] + "-" + value[4:])
	}
	return contacts.ParseEventDate(value)
}
