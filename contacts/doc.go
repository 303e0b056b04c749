// Package contacts is the typed, column-aware contact model.
//
// A contact is always handled with respect to an explicit set of columns
// ([Column]). A column names one attribute group (names, phones, mails,
// organization, ...) and is both the unit a store fetches and the permission
// to touch the group's fields.
//
// # Variants
//
//   - [Contact]: the read contract.
//   - [PartialContact]: immutable result of a fetch.
//   - [MutableContact]: editable contact, either fresh from
//     [NewMutableContact] (all standard columns open) or derived from a
//     fetched contact with [MutableCopy].
//
// # Column gating
//
// Reading a field whose column is absent panics with a *[ColumnError]; so does
// writing one on a MutableContact. An absent column means "not fetched", and
// returning an empty value would hide the caller's mistake:
//
//	c, _ := s.Get(ctx, id, contacts.ColumnNames)
//	c.FirstName() // ok
//	c.Phones()    // panics: phones were not requested
//
// [Contact.ContainsColumn] never panics and can be used to branch.
//
// # Editing
//
// MutableCopy keeps the source's columns. Fields outside them start empty,
// so persisting the copy never overwrites data that was never read. To edit a
// group that was not fetched, widen the copy explicitly:
//
//	m := contacts.MutableCopy(c, contacts.ColumnPhones)
//	m.AddPhone(contacts.PhoneNumber{Raw: "555-1234"}, contacts.LabelPhoneNumberMobile)
//
// # Labels
//
// [Label] is a closed set of named labels plus [CustomLabel] for free text.
// Which named labels are legal depends on the value kind; the provider package
// enforces this when compiling writes.
package contacts
