package contacts

import "slices"

// MutableContact is an editable contact. Reads and writes are both gated by
// the columns the instance was built with; a write to a field outside them
// panics with a *ColumnError.
//
// A MutableContact has a single writer. Mutations never reach a store until
// the contact is handed to a persistence operation.
type MutableContact struct {
	record
}

var _ Contact = (*MutableContact)(nil)

// NewMutableContact returns an empty, unsaved contact that may populate
// every standard column.
func NewMutableContact() *MutableContact {
	return &MutableContact{record: record{data: Data{
		ContactID: NewContactID,
		Columns:   StandardColumns(),
	}}}
}

// DisplayName derives a name from the contact's fields, falling back from
// structured name parts to phonetic parts, nickname, organization, the first
// phone number and the first mail address.
func (m *MutableContact) DisplayName() string {
	return deriveDisplayName(&m.data)
}

// Equal reports whether m and other hold the same identity and the same
// values for every carried column.
func (m *MutableContact) Equal(other Contact) bool {
	return Equal(m, other)
}

func (m *MutableContact) String() string {
	return describe(m)
}

// SetStarred marks or unmarks the contact as a favourite.
func (m *MutableContact) SetStarred(starred bool) {
	m.data.IsStarred = starred
}

// SetPrefix sets the name prefix.
func (m *MutableContact) SetPrefix(v string) {
	m.require(FieldPrefix)
	m.data.Prefix = v
}

// SetFirstName sets the given name.
func (m *MutableContact) SetFirstName(v string) {
	m.require(FieldFirstName)
	m.data.FirstName = v
}

// SetMiddleName sets the middle name.
func (m *MutableContact) SetMiddleName(v string) {
	m.require(FieldMiddleName)
	m.data.MiddleName = v
}

// SetLastName sets the family name.
func (m *MutableContact) SetLastName(v string) {
	m.require(FieldLastName)
	m.data.LastName = v
}

// SetSuffix sets the name suffix.
func (m *MutableContact) SetSuffix(v string) {
	m.require(FieldSuffix)
	m.data.Suffix = v
}

// SetPhoneticFirstName sets the phonetic given name.
func (m *MutableContact) SetPhoneticFirstName(v string) {
	m.require(FieldPhoneticFirstName)
	m.data.PhoneticFirstName = v
}

// SetPhoneticMiddleName sets the phonetic middle name.
func (m *MutableContact) SetPhoneticMiddleName(v string) {
	m.require(FieldPhoneticMiddleName)
	m.data.PhoneticMiddleName = v
}

// SetPhoneticLastName sets the phonetic family name.
func (m *MutableContact) SetPhoneticLastName(v string) {
	m.require(FieldPhoneticLastName)
	m.data.PhoneticLastName = v
}

// SetFullNameStyle sets the full name style.
func (m *MutableContact) SetFullNameStyle(v FullNameStyle) {
	m.require(FieldFullNameStyle)
	m.data.FullNameStyle = v
}

// SetPhoneticNameStyle sets the phonetic name style.
func (m *MutableContact) SetPhoneticNameStyle(v PhoneticNameStyle) {
	m.require(FieldPhoneticNameStyle)
	m.data.PhoneticNameStyle = v
}

// SetNickname sets the nickname.
func (m *MutableContact) SetNickname(v string) {
	m.require(FieldNickname)
	m.data.Nickname = v
}

// SetOrganization sets the organization name.
func (m *MutableContact) SetOrganization(v string) {
	m.require(FieldOrganization)
	m.data.Organization = v
}

// SetJobTitle sets the job title.
func (m *MutableContact) SetJobTitle(v string) {
	m.require(FieldJobTitle)
	m.data.JobTitle = v
}

// SetImageData replaces the photo; nil removes it.
func (m *MutableContact) SetImageData(v *ImageData) {
	m.require(FieldImageData)
	m.data.ImageData = cloneImage(v)
}

// SetNote replaces the note; nil removes it.
func (m *MutableContact) SetNote(v *Note) {
	m.require(FieldNote)
	if v == nil {
		m.data.Note = nil
		return
	}
	note := *v
	m.data.Note = &note
}

// SetPhones replaces the phone numbers.
func (m *MutableContact) SetPhones(v []LabeledValue[PhoneNumber]) {
	m.require(FieldPhones)
	m.data.Phones = slices.Clone(v)
}

// AddPhone appends a labeled phone number.
func (m *MutableContact) AddPhone(value PhoneNumber, label Label) {
	m.require(FieldPhones)
	m.data.Phones = append(m.data.Phones, Labeled(value, label))
}

// SetMails replaces the mail addresses.
func (m *MutableContact) SetMails(v []LabeledValue[MailAddress]) {
	m.require(FieldMails)
	m.data.Mails = slices.Clone(v)
}

// AddMail appends a labeled mail address.
func (m *MutableContact) AddMail(value MailAddress, label Label) {
	m.require(FieldMails)
	m.data.Mails = append(m.data.Mails, Labeled(value, label))
}

// SetEvents replaces the events.
func (m *MutableContact) SetEvents(v []LabeledValue[EventDate]) {
	m.require(FieldEvents)
	m.data.Events = cloneEvents(v)
}

// AddEvent appends a labeled event.
func (m *MutableContact) AddEvent(value EventDate, label Label) {
	m.require(FieldEvents)
	m.data.Events = append(m.data.Events, cloneEvents([]LabeledValue[EventDate]{Labeled(value, label)})...)
}

// SetPostalAddresses replaces the postal addresses.
func (m *MutableContact) SetPostalAddresses(v []LabeledValue[PostalAddress]) {
	m.require(FieldPostalAddresses)
	m.data.PostalAddresses = slices.Clone(v)
}

// AddPostalAddress appends a labeled postal address.
func (m *MutableContact) AddPostalAddress(value PostalAddress, label Label) {
	m.require(FieldPostalAddresses)
	m.data.PostalAddresses = append(m.data.PostalAddresses, Labeled(value, label))
}

// SetWebAddresses replaces the web addresses.
func (m *MutableContact) SetWebAddresses(v []LabeledValue[WebAddress]) {
	m.require(FieldWebAddresses)
	m.data.WebAddresses = slices.Clone(v)
}

// AddWebAddress appends a labeled web address.
func (m *MutableContact) AddWebAddress(value WebAddress, label Label) {
	m.require(FieldWebAddresses)
	m.data.WebAddresses = append(m.data.WebAddresses, Labeled(value, label))
}

// SetImAddresses replaces the IM addresses.
func (m *MutableContact) SetImAddresses(v []LabeledValue[ImAddress]) {
	m.require(FieldImAddresses)
	m.data.ImAddresses = slices.Clone(v)
}

// AddImAddress appends a labeled IM address.
func (m *MutableContact) AddImAddress(value ImAddress, label Label) {
	m.require(FieldImAddresses)
	m.data.ImAddresses = append(m.data.ImAddresses, Labeled(value, label))
}

// SetSipAddresses replaces the SIP addresses.
func (m *MutableContact) SetSipAddresses(v []LabeledValue[SipAddress]) {
	m.require(FieldSipAddresses)
	m.data.SipAddresses = slices.Clone(v)
}

// AddSipAddress appends a labeled SIP address.
func (m *MutableContact) AddSipAddress(value SipAddress, label Label) {
	m.require(FieldSipAddresses)
	m.data.SipAddresses = append(m.data.SipAddresses, Labeled(value, label))
}

// SetRelations replaces the relations.
func (m *MutableContact) SetRelations(v []LabeledValue[Relation]) {
	m.require(FieldRelations)
	m.data.Relations = slices.Clone(v)
}

// AddRelation appends a labeled relation.
func (m *MutableContact) AddRelation(value Relation, label Label) {
	m.require(FieldRelations)
	m.data.Relations = append(m.data.Relations, Labeled(value, label))
}

// SetGroups replaces the group memberships.
func (m *MutableContact) SetGroups(v []GroupMembership) {
	m.require(FieldGroups)
	m.data.Groups = slices.Clone(v)
}

// AddGroup appends a group membership.
func (m *MutableContact) AddGroup(v GroupMembership) {
	m.require(FieldGroups)
	m.data.Groups = append(m.data.Groups, v)
}
