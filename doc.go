// Package contactstore is a lightweight index for the subpackages in this
// module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/contactstore/contacts
//     The column-scoped contact model: partial and mutable contacts, labels,
//     values, copies and display names.
//   - github.com/spachava753/contactstore/provider
//     Label to type-code tables, the write-operation compiler, and the
//     Repository contract rows are fetched through.
//   - github.com/spachava753/contactstore/store
//     Find, Get, Lookup and Create over a Repository, with paging and
//     locale-aware sorting.
//   - github.com/spachava753/contactstore/store/sqlite
//     A SQLite-backed Repository.
//   - github.com/spachava753/contactstore/vcard
//     vCard import and export.
//   - github.com/spachava753/contactstore/storetest
//     An in-memory Repository and fixtures for tests.
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/contactstore
//   - Then drill in with:
//     go doc github.com/spachava753/contactstore/store
//     go doc github.com/spachava753/contactstore/contacts
//     go doc github.com/spachava753/contactstore/provider
package contactstore
