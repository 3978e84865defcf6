// Package codec converts between lines of the contacts file and [models.Contact] values.
//
// A well-formed line holds exactly three comma separated fields, id, name and email:
//
//	1,Alice,alice@x.com
//	2,Bob,
//
// Fields follow CSV quoting rules, so a name containing a comma is written as "Doe, Jane".
// Decoding never fails hard: every problem with a line is reported as an error wrapping [ErrMalformed].
package codec
