package provider

import (
	"strings"

	"github.com/spachava753/contactstore/contacts"
)

// NewContactIndex is the batch position of the raw contact insert every
// data row refers back to.
const NewContactIndex = 0

// NewContactOperations compiles an unsaved contact into the ordered batch
// that creates it:
//
//  1. the local raw contact (no account) carrying the starred flag
//  2. the structured name, always
//  3. the photo, when present
//  4. one row per phone, mail, web address, event, postal address,
//     IM address, SIP address and relation, in that order
//  5. the note, when present
//  6. the organization, when organization or job title is not blank
//  7. the nickname, when not blank
//  8. one row per group membership
//
// Every data row points at operation 0 through a back reference, so the batch
// is all-or-nothing under a transactional apply. Groups of columns the contact
// does not carry are skipped. A label that is illegal for its value kind
// panics with a *LabelError.
func NewContactOperations(c *contacts.MutableContact) []Operation {
	has := c.ContainsColumn
	ops := []Operation{
		insertLocalRawContact(c),
		insertStructuredName(c),
	}

	if has(contacts.ColumnImage) {
		if image := c.ImageData(); image != nil {
			ops = append(ops, newDataInsert(MimeTypePhoto, NewContactIndex).
				with(PhotoBlob, image.Raw).
				build())
		}
	}

	if has(contacts.ColumnPhones) {
		for _, phone := range c.Phones() {
			ops = append(ops, newDataInsert(MimeTypePhone, NewContactIndex).
				with(PhoneNumber, phone.Value.Raw).
				withLabel(KindPhone, phone.Label).
				build())
		}
	}
	if has(contacts.ColumnMails) {
		for _, mail := range c.Mails() {
			ops = append(ops, newDataInsert(MimeTypeEmail, NewContactIndex).
				with(EmailAddress, mail.Value.Raw).
				withLabel(KindMail, mail.Label).
				build())
		}
	}
	if has(contacts.ColumnWebAddresses) {
		for _, web := range c.WebAddresses() {
			ops = append(ops, newDataInsert(MimeTypeWebsite, NewContactIndex).
				with(WebsiteURL, web.Value.Raw).
				withLabel(KindWebAddress, web.Label).
				build())
		}
	}
	if has(contacts.ColumnEvents) {
		for _, event := range c.Events() {
			ops = append(ops, newDataInsert(MimeTypeEvent, NewContactIndex).
				with(EventStartDate, event.Value.String()).
				withLabel(KindEvent, event.Label).
				build())
		}
	}
	if has(contacts.ColumnPostalAddresses) {
		for _, postal := range c.PostalAddresses() {
			address := postal.Value
			ops = append(ops, newDataInsert(MimeTypePostal, NewContactIndex).
				with(PostalCity, nullable(address.City)).
				with(PostalCountry, nullable(address.Country)).
				with(PostalNeighborhood, nullable(address.Neighborhood)).
				with(PostalPOBox, nullable(address.POBox)).
				with(PostalPostCode, nullable(address.PostCode)).
				with(PostalRegion, nullable(address.Region)).
				with(PostalStreet, nullable(address.Street)).
				withLabel(KindPostalAddress, postal.Label).
				build())
		}
	}
	if has(contacts.ColumnImAddresses) {
		for _, im := range c.ImAddresses() {
			ops = append(ops, newDataInsert(MimeTypeIm, NewContactIndex).
				with(ImData, im.Value.Raw).
				with(ImCustomProtocol, nullable(im.Value.Protocol)).
				withLabel(KindImAddress, im.Label).
				build())
		}
	}
	if has(contacts.ColumnSipAddresses) {
		for _, sip := range c.SipAddresses() {
			ops = append(ops, newDataInsert(MimeTypeSipAddress, NewContactIndex).
				with(SipAddress, sip.Value.Raw).
				withLabel(KindSipAddress, sip.Label).
				build())
		}
	}
	if has(contacts.ColumnRelations) {
		for _, relation := range c.Relations() {
			ops = append(ops, newDataInsert(MimeTypeRelation, NewContactIndex).
				with(RelationName, relation.Value.Name).
				withLabel(KindRelation, relation.Label).
				build())
		}
	}

	if has(contacts.ColumnNote) {
		if note := c.Note(); note != nil {
			ops = append(ops, newDataInsert(MimeTypeNote, NewContactIndex).
				with(NoteText, note.Raw).
				build())
		}
	}

	if has(contacts.ColumnOrganization) && hasOrganizationDetails(c) {
		ops = append(ops, newDataInsert(MimeTypeOrganization, NewContactIndex).
			with(OrganizationTitle, nullable(c.JobTitle())).
			with(OrganizationName, nullable(c.Organization())).
			build())
	}

	if has(contacts.ColumnNickname) && strings.TrimSpace(c.Nickname()) != "" {
		ops = append(ops, newDataInsert(MimeTypeNickname, NewContactIndex).
			with(NicknameName, c.Nickname()).
			build())
	}
	if has(contacts.ColumnGroupMemberships) {
		for _, group := range c.Groups() {
			ops = append(ops, newDataInsert(MimeTypeGroupMembership, NewContactIndex).
				with(GroupRowID, group.GroupID).
				build())
		}
	}
	return ops
}

func hasOrganizationDetails(c *contacts.MutableContact) bool {
	return strings.TrimSpace(c.Organization()) != "" || strings.TrimSpace(c.JobTitle()) != ""
}

func insertLocalRawContact(c *contacts.MutableContact) Operation {
	return newInsert(TableRawContacts).
		with(ColumnAccountType, nil).
		with(ColumnAccountName, nil).
		with(ColumnStarred, boolToInt(c.IsStarred())).
		build()
}

// insertStructuredName emits the name row even when every part is empty.
func insertStructuredName(c *contacts.MutableContact) Operation {
	in := newDataInsert(MimeTypeStructuredName, NewContactIndex).
		with(NameDisplayName, nullable(c.DisplayName()))
	if !c.ContainsColumn(contacts.ColumnNames) {
		return in.
			with(NameFullNameStyle, int(contacts.FullNameStyleUndefined)).
			with(NamePhoneticNameStyle, int(contacts.PhoneticNameStyleUndefined)).
			build()
	}
	return in.
		with(NameGivenName, nullable(c.FirstName())).
		with(NameFamilyName, nullable(c.LastName())).
		with(NameMiddleName, nullable(c.MiddleName())).
		with(NameSuffix, nullable(c.Suffix())).
		with(NamePrefix, nullable(c.Prefix())).
		with(NameFullNameStyle, int(c.FullNameStyle())).
		with(NamePhoneticGivenName, nullable(c.PhoneticFirstName())).
		with(NamePhoneticFamilyName, nullable(c.PhoneticLastName())).
		with(NamePhoneticMiddleName, nullable(c.PhoneticMiddleName())).
		with(NamePhoneticNameStyle, int(c.PhoneticNameStyle())).
		build()
}

// nullable stores empty text as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
