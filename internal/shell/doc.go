// Package shell implements the interactive menu of the contact manager.
//
// Every pass through the menu opens a fresh [store.Session], reads one choice and hands the
// session to the matching handler, then closes it. Nothing carries over between iterations
// except the contacts file itself.
//
// Unreadable or non-numeric menu input and file errors end the loop with an error; an unknown
// menu number or an invalid contact only prints a message.
package shell
