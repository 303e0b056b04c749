// Package storetest provides an in-memory provider.Repository and contact
// fixtures for tests.
//
// The repository holds a snapshot of provider.Row values, answers Fetch by
// filtering the snapshot on the requested columns, and applies batches
// atomically. FetchErr and ApplyErr inject repository failures.
package storetest
