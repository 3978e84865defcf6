// Package models defines the domain entities of the contact manager.
//
// There is a single persistent entity:
//   - [Contact] : one row of the contacts file, (id, name, email)
//
// A Contact is created either by decoding an existing line of the data file or by the add flow,
// which assigns it a fresh identifier. Contacts are never edited or removed once written.
package models
