package contacts

// MutableCopy returns an editable copy of c carrying the same columns plus
// any extra ones. Fields of the source's columns are copied; every other
// field starts empty, even when the source holds stray data for it. Use extra
// to open a column the source was not fetched with, for example to add a
// phone number to a contact fetched with names only.
func MutableCopy(c Contact, extra ...Column) *MutableContact {
	src := c.Columns()
	has := func(column Column) bool { return containsColumn(src, column) }

	d := Data{
		ContactID:         c.ContactID(),
		LookupKey:         c.LookupKey(),
		DisplayName:       c.DisplayName(),
		IsStarred:         c.IsStarred(),
		Columns:           normalizeColumns(append(src, extra...)),
		FullNameStyle:     FullNameStyleUndefined,
		PhoneticNameStyle: PhoneticNameStyleUndefined,
	}
	if has(ColumnNames) {
		d.Prefix = c.Prefix()
		d.FirstName = c.FirstName()
		d.MiddleName = c.MiddleName()
		d.LastName = c.LastName()
		d.Suffix = c.Suffix()
		d.PhoneticFirstName = c.PhoneticFirstName()
		d.PhoneticMiddleName = c.PhoneticMiddleName()
		d.PhoneticLastName = c.PhoneticLastName()
		d.FullNameStyle = c.FullNameStyle()
		d.PhoneticNameStyle = c.PhoneticNameStyle()
	}
	if has(ColumnNickname) {
		d.Nickname = c.Nickname()
	}
	if has(ColumnOrganization) {
		d.Organization = c.Organization()
		d.JobTitle = c.JobTitle()
	}
	if has(ColumnImage) {
		d.ImageData = c.ImageData()
	}
	if has(ColumnNote) {
		d.Note = c.Note()
	}
	if has(ColumnPhones) {
		d.Phones = c.Phones()
	}
	if has(ColumnMails) {
		d.Mails = c.Mails()
	}
	if has(ColumnEvents) {
		d.Events = c.Events()
	}
	if has(ColumnPostalAddresses) {
		d.PostalAddresses = c.PostalAddresses()
	}
	if has(ColumnWebAddresses) {
		d.WebAddresses = c.WebAddresses()
	}
	if has(ColumnImAddresses) {
		d.ImAddresses = c.ImAddresses()
	}
	if has(ColumnSipAddresses) {
		d.SipAddresses = c.SipAddresses()
	}
	if has(ColumnRelations) {
		d.Relations = c.Relations()
	}
	if has(ColumnGroupMemberships) {
		d.Groups = c.Groups()
	}
	if containsLinkedAccountColumn(src) {
		d.LinkedAccountValues = c.LinkedAccountValues()
	}
	// getters already returned copies
	return &MutableContact{record: record{data: d}}
}
