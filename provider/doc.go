// Package provider maps the contact model onto the native contacts schema: a
// raw_contacts table plus a generic data table whose rows are typed by mime
// type, with per-kind type codes for labels.
//
// Writes are compiled into an ordered batch of [Operation] values by
// [NewContactOperations]. Operation 0 creates the raw contact; every later
// operation refers to it by back reference, so a [Repository] that applies the
// batch transactionally creates the whole contact or nothing.
//
// Reads go the other way: a Repository returns flat [Row] records and
// [DecodeContact] turns each into a contacts.PartialContact.
//
// Type codes, mime types and data columns are bit-compatible with the Android
// ContactsContract schema.
package provider
