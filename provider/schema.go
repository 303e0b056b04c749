package provider

// Tables of the native contacts schema.
const (
	TableRawContacts = "raw_contacts"
	TableData        = "data"
)

// Raw contact columns. ColumnContactID attaches a raw contact to an existing
// contact; raw contacts inserted without it start a contact of their own.
const (
	ColumnContactID   = "contact_id"
	ColumnAccountType = "account_type"
	ColumnAccountName = "account_name"
	ColumnStarred     = "starred"
)

// Columns shared by every data row.
const (
	ColumnRawContactID = "raw_contact_id"
	ColumnMimeType     = "mimetype"
	ColumnData1        = "data1"
	ColumnData2        = "data2"
	ColumnData3        = "data3"
	ColumnData4        = "data4"
	ColumnData5        = "data5"
	ColumnData6        = "data6"
	ColumnData7        = "data7"
	ColumnData8        = "data8"
	ColumnData9        = "data9"
	ColumnData10       = "data10"
	ColumnData11       = "data11"
	ColumnData15       = "data15"
)

// DataColumns lists every value column of the data table.
var DataColumns = []string{
	ColumnData1, ColumnData2, ColumnData3, ColumnData4, ColumnData5,
	ColumnData6, ColumnData7, ColumnData8, ColumnData9, ColumnData10,
	ColumnData11, ColumnData15,
}

// Labeled data rows store the type code and custom label text here.
const (
	ColumnType  = ColumnData2
	ColumnLabel = ColumnData3
)

// TypeCustom is the type code of a row carrying a free-text label.
const TypeCustom = 0

// Mime types of data rows.
const (
	MimeTypeStructuredName  = "vnd.android.cursor.item/name"
	MimeTypePhone           = "vnd.android.cursor.item/phone_v2"
	MimeTypeEmail           = "vnd.android.cursor.item/email_v2"
	MimeTypeWebsite         = "vnd.android.cursor.item/website"
	MimeTypeEvent           = "vnd.android.cursor.item/contact_event"
	MimeTypePostal          = "vnd.android.cursor.item/postal-address_v2"
	MimeTypeIm              = "vnd.android.cursor.item/im"
	MimeTypeSipAddress      = "vnd.android.cursor.item/sip_address"
	MimeTypeRelation        = "vnd.android.cursor.item/relation"
	MimeTypeNote            = "vnd.android.cursor.item/note"
	MimeTypeOrganization    = "vnd.android.cursor.item/organization"
	MimeTypePhoto           = "vnd.android.cursor.item/photo"
	MimeTypeNickname        = "vnd.android.cursor.item/nickname"
	MimeTypeGroupMembership = "vnd.android.cursor.item/group_membership"
)

// Structured name columns.
const (
	NameDisplayName        = ColumnData1
	NameGivenName          = ColumnData2
	NameFamilyName         = ColumnData3
	NamePrefix             = ColumnData4
	NameMiddleName         = ColumnData5
	NameSuffix             = ColumnData6
	NamePhoneticGivenName  = ColumnData7
	NamePhoneticMiddleName = ColumnData8
	NamePhoneticFamilyName = ColumnData9
	NameFullNameStyle      = ColumnData10
	NamePhoneticNameStyle  = ColumnData11
)

// Per-kind value columns.
const (
	PhoneNumber        = ColumnData1
	EmailAddress       = ColumnData1
	WebsiteURL         = ColumnData1
	EventStartDate     = ColumnData1
	ImData             = ColumnData1
	ImCustomProtocol   = ColumnData6
	SipAddress         = ColumnData1
	RelationName       = ColumnData1
	NoteText           = ColumnData1
	NicknameName       = ColumnData1
	GroupRowID         = ColumnData1
	PhotoBlob          = ColumnData15
	OrganizationName   = ColumnData1
	OrganizationTitle  = ColumnData4
	PostalStreet       = ColumnData4
	PostalPOBox        = ColumnData5
	PostalNeighborhood = ColumnData6
	PostalCity         = ColumnData7
	PostalRegion       = ColumnData8
	PostalPostCode     = ColumnData9
	PostalCountry      = ColumnData10
	// Summary and detail of rows contributed by linked accounts.
	LinkedSummary = ColumnData2
	LinkedDetail  = ColumnData3
)
