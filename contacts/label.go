package contacts

// Label categorises a labeled value. It is either one of the named labels
// below or a custom label carrying free text (see [CustomLabel]).
//
// Labels are comparable and can be used as map keys. Which named labels are
// legal depends on the kind of value they decorate; the provider package owns
// the per-kind tables.
type Label struct {
	name   string
	custom bool
}

// The named labels below are package variables only because Go has no
// struct constants. Treat them as read-only; the per-kind tables in the
// provider package hold their own copies.

// Named labels shared across value kinds.
var (
	LabelLocationHome = Label{name: "home"}
	LabelLocationWork = Label{name: "work"}
	LabelOther        = Label{name: "other"}
	LabelMain         = Label{name: "main"}
)

// Phone number labels.
var (
	LabelPhoneNumberMobile      = Label{name: "mobile"}
	LabelPhoneNumberPager       = Label{name: "pager"}
	LabelPhoneNumberCar         = Label{name: "car"}
	LabelPhoneNumberFaxWork     = Label{name: "fax_work"}
	LabelPhoneNumberFaxHome     = Label{name: "fax_home"}
	LabelPhoneNumberCallback    = Label{name: "callback"}
	LabelPhoneNumberCompanyMain = Label{name: "company_main"}
	LabelPhoneNumberIsdn        = Label{name: "isdn"}
	LabelPhoneNumberOtherFax    = Label{name: "other_fax"}
	LabelPhoneNumberRadio       = Label{name: "radio"}
	LabelPhoneNumberTelex       = Label{name: "telex"}
	LabelPhoneNumberTtyTdd      = Label{name: "tty_tdd"}
	LabelPhoneNumberWorkPager   = Label{name: "work_pager"}
	LabelPhoneNumberWorkMobile  = Label{name: "work_mobile"}
	LabelPhoneNumberAssistant   = Label{name: "assistant"}
	LabelPhoneNumberMms         = Label{name: "mms"}
)

// Web address labels.
var (
	LabelWebsiteBlog     = Label{name: "blog"}
	LabelWebsiteFtp      = Label{name: "ftp"}
	LabelWebsiteHomePage = Label{name: "homepage"}
	LabelWebsiteProfile  = Label{name: "profile"}
)

// Event labels.
var (
	LabelDateAnniversary = Label{name: "anniversary"}
	LabelDateBirthday    = Label{name: "birthday"}
)

// Relation labels.
var (
	LabelRelationBrother         = Label{name: "brother"}
	LabelRelationChild           = Label{name: "child"}
	LabelRelationDomesticPartner = Label{name: "domestic_partner"}
	LabelRelationFather          = Label{name: "father"}
	LabelRelationFriend          = Label{name: "friend"}
	LabelRelationManager         = Label{name: "manager"}
	LabelRelationMother          = Label{name: "mother"}
	LabelRelationParent          = Label{name: "parent"}
	LabelRelationPartner         = Label{name: "partner"}
	LabelRelationReferredBy      = Label{name: "referred_by"}
	LabelRelationRelative        = Label{name: "relative"}
	LabelRelationSister          = Label{name: "sister"}
	LabelRelationSpouse          = Label{name: "spouse"}
)

// CustomLabel returns a label carrying free text.
func CustomLabel(text string) Label {
	return Label{name: text, custom: true}
}

// Custom returns the label text and true when l is a custom label.
func (l Label) Custom() (string, bool) {
	if !l.custom {
		return "", false
	}
	return l.name, true
}

// IsZero reports whether l is the zero Label, which is not a legal label for
// any value kind.
func (l Label) IsZero() bool {
	return l == Label{}
}

// String returns the label name, or "custom:<text>" for custom labels.
func (l Label) String() string {
	if l.custom {
		return "custom:" + l.name
	}
	if l.name == "" {
		return "<none>"
	}
	return l.name
}

// LabeledValue pairs a value with its label.
type LabeledValue[T any] struct {
	Value T
	Label Label
}

// Labeled is a shorthand constructor for [LabeledValue].
func Labeled[T any](value T, label Label) LabeledValue[T] {
	return LabeledValue[T]{Value: value, Label: label}
}
