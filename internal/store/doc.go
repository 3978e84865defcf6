// Package store loads and appends contacts in the flat contacts file.
//
// [Parse] and [Load] decode every line independently through the codec, keep file order,
// and drop malformed lines without failing: only a missing or unreadable file is an error ([shared.ErrIO]).
//
// A [Session] is the unit of work of one menu iteration. It owns the open file handle and the
// records loaded from it, appends new contacts through [Session.Add], and must be closed before
// the next iteration reopens the file.
package store
