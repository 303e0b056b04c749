package contacts

import "slices"

// Contact is the read contract shared by [PartialContact] and
// [MutableContact].
//
// Identity accessors never fail. Every other accessor panics with a
// *ColumnError when the field's column is not in Columns: a missing column
// means "not fetched", never "empty".
type Contact interface {
	ContactID() int64
	LookupKey() LookupKey
	DisplayName() string
	IsStarred() bool
	Columns() []Column
	ContainsColumn(column Column) bool

	Prefix() string
	FirstName() string
	MiddleName() string
	LastName() string
	Suffix() string
	PhoneticFirstName() string
	PhoneticMiddleName() string
	PhoneticLastName() string
	FullNameStyle() FullNameStyle
	PhoneticNameStyle() PhoneticNameStyle
	Nickname() string
	Organization() string
	JobTitle() string
	ImageData() *ImageData
	Note() *Note
	Phones() []LabeledValue[PhoneNumber]
	Mails() []LabeledValue[MailAddress]
	Events() []LabeledValue[EventDate]
	PostalAddresses() []LabeledValue[PostalAddress]
	WebAddresses() []LabeledValue[WebAddress]
	ImAddresses() []LabeledValue[ImAddress]
	SipAddresses() []LabeledValue[SipAddress]
	Relations() []LabeledValue[Relation]
	Groups() []GroupMembership
	LinkedAccountValues() []LinkedAccountValue
}

// Data is the flat attribute record of one contact. Stores fill only the
// fields of the columns listed in Columns.
type Data struct {
	ContactID   int64
	LookupKey   LookupKey
	DisplayName string
	IsStarred   bool
	Columns     []Column

	Prefix             string
	FirstName          string
	MiddleName         string
	LastName           string
	Suffix             string
	PhoneticFirstName  string
	PhoneticMiddleName string
	PhoneticLastName   string
	FullNameStyle      FullNameStyle
	PhoneticNameStyle  PhoneticNameStyle
	Nickname           string
	Organization       string
	JobTitle           string
	ImageData          *ImageData
	Note               *Note

	Phones              []LabeledValue[PhoneNumber]
	Mails               []LabeledValue[MailAddress]
	Events              []LabeledValue[EventDate]
	PostalAddresses     []LabeledValue[PostalAddress]
	WebAddresses        []LabeledValue[WebAddress]
	ImAddresses         []LabeledValue[ImAddress]
	SipAddresses        []LabeledValue[SipAddress]
	Relations           []LabeledValue[Relation]
	Groups              []GroupMembership
	LinkedAccountValues []LinkedAccountValue
}

// clone returns a deep copy so no slice or pointer is shared with d.
func (d Data) clone() Data {
	out := d
	out.Columns = normalizeColumns(d.Columns)
	out.ImageData = cloneImage(d.ImageData)
	if d.Note != nil {
		note := *d.Note
		out.Note = &note
	}
	out.Phones = slices.Clone(d.Phones)
	out.Mails = slices.Clone(d.Mails)
	out.Events = cloneEvents(d.Events)
	out.PostalAddresses = slices.Clone(d.PostalAddresses)
	out.WebAddresses = slices.Clone(d.WebAddresses)
	out.ImAddresses = slices.Clone(d.ImAddresses)
	out.SipAddresses = slices.Clone(d.SipAddresses)
	out.Relations = slices.Clone(d.Relations)
	out.Groups = slices.Clone(d.Groups)
	out.LinkedAccountValues = slices.Clone(d.LinkedAccountValues)
	return out
}

func cloneImage(image *ImageData) *ImageData {
	if image == nil {
		return nil
	}
	return &ImageData{Raw: slices.Clone(image.Raw)}
}

func cloneEvents(events []LabeledValue[EventDate]) []LabeledValue[EventDate] {
	out := slices.Clone(events)
	for i := range out {
		if year := out[i].Value.Year; year != nil {
			y := *year
			out[i].Value.Year = &y
		}
	}
	return out
}

// record carries a contact's data and implements the guarded read side of
// [Contact]. Both contact variants embed it.
type record struct {
	data Data
}

func (r *record) require(f Field) {
	if !allows(r.data.Columns, f) {
		panic(&ColumnError{Field: f, Columns: slices.Clone(r.data.Columns)})
	}
}

// ContactID returns the store identifier, or [NewContactID].
func (r *record) ContactID() int64 { return r.data.ContactID }

// LookupKey returns the store lookup key, empty for unsaved contacts.
func (r *record) LookupKey() LookupKey { return r.data.LookupKey }

// IsStarred reports whether the contact is a favourite.
func (r *record) IsStarred() bool { return r.data.IsStarred }

// Columns returns the columns this contact carries.
func (r *record) Columns() []Column { return slices.Clone(r.data.Columns) }

// ContainsColumn reports whether column is carried. It never panics.
func (r *record) ContainsColumn(column Column) bool {
	return containsColumn(r.data.Columns, column)
}

func (r *record) Prefix() string {
	r.require(FieldPrefix)
	return r.data.Prefix
}

func (r *record) FirstName() string {
	r.require(FieldFirstName)
	return r.data.FirstName
}

func (r *record) MiddleName() string {
	r.require(FieldMiddleName)
	return r.data.MiddleName
}

func (r *record) LastName() string {
	r.require(FieldLastName)
	return r.data.LastName
}

func (r *record) Suffix() string {
	r.require(FieldSuffix)
	return r.data.Suffix
}

func (r *record) PhoneticFirstName() string {
	r.require(FieldPhoneticFirstName)
	return r.data.PhoneticFirstName
}

func (r *record) PhoneticMiddleName() string {
	r.require(FieldPhoneticMiddleName)
	return r.data.PhoneticMiddleName
}

func (r *record) PhoneticLastName() string {
	r.require(FieldPhoneticLastName)
	return r.data.PhoneticLastName
}

func (r *record) FullNameStyle() FullNameStyle {
	r.require(FieldFullNameStyle)
	return r.data.FullNameStyle
}

func (r *record) PhoneticNameStyle() PhoneticNameStyle {
	r.require(FieldPhoneticNameStyle)
	return r.data.PhoneticNameStyle
}

func (r *record) Nickname() string {
	r.require(FieldNickname)
	return r.data.Nickname
}

func (r *record) Organization() string {
	r.require(FieldOrganization)
	return r.data.Organization
}

func (r *record) JobTitle() string {
	r.require(FieldJobTitle)
	return r.data.JobTitle
}

func (r *record) ImageData() *ImageData {
	r.require(FieldImageData)
	return cloneImage(r.data.ImageData)
}

func (r *record) Note() *Note {
	r.require(FieldNote)
	if r.data.Note == nil {
		return nil
	}
	note := *r.data.Note
	return &note
}

func (r *record) Phones() []LabeledValue[PhoneNumber] {
	r.require(FieldPhones)
	return slices.Clone(r.data.Phones)
}

func (r *record) Mails() []LabeledValue[MailAddress] {
	r.require(FieldMails)
	return slices.Clone(r.data.Mails)
}

func (r *record) Events() []LabeledValue[EventDate] {
	r.require(FieldEvents)
	return cloneEvents(r.data.Events)
}

func (r *record) PostalAddresses() []LabeledValue[PostalAddress] {
	r.require(FieldPostalAddresses)
	return slices.Clone(r.data.PostalAddresses)
}

func (r *record) WebAddresses() []LabeledValue[WebAddress] {
	r.require(FieldWebAddresses)
	return slices.Clone(r.data.WebAddresses)
}

func (r *record) ImAddresses() []LabeledValue[ImAddress] {
	r.require(FieldImAddresses)
	return slices.Clone(r.data.ImAddresses)
}

func (r *record) SipAddresses() []LabeledValue[SipAddress] {
	r.require(FieldSipAddresses)
	return slices.Clone(r.data.SipAddresses)
}

func (r *record) Relations() []LabeledValue[Relation] {
	r.require(FieldRelations)
	return slices.Clone(r.data.Relations)
}

func (r *record) Groups() []GroupMembership {
	r.require(FieldGroups)
	return slices.Clone(r.data.Groups)
}

func (r *record) LinkedAccountValues() []LinkedAccountValue {
	r.require(FieldLinkedAccountValues)
	return slices.Clone(r.data.LinkedAccountValues)
}

// PartialContact is an immutable contact produced by a fetch. It carries the
// fetched columns only.
type PartialContact struct {
	record
}

var _ Contact = (*PartialContact)(nil)

// NewPartialContact builds a read-only contact from a fetched record. The
// record is copied; later changes to d are not observed.
func NewPartialContact(d Data) *PartialContact {
	return &PartialContact{record: record{data: d.clone()}}
}

// DisplayName returns the display name supplied by the store.
func (c *PartialContact) DisplayName() string {
	return c.data.DisplayName
}

// Equal reports whether c and other hold the same identity and the same
// values for every carried column.
func (c *PartialContact) Equal(other Contact) bool {
	return Equal(c, other)
}

func (c *PartialContact) String() string {
	return describe(c)
}
