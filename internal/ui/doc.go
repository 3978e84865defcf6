// Package ui implements an interactive contact browser using bubbletea's Elm architecture.
//
// The browser has two views:
//  1. [ListView] : scroll and fuzzy-filter the loaded contacts
//  2. [DetailView] : show a single contact
//
// The (view) [Model] loads the contacts file through the store on Init and on every reload (r).
// Malformed lines are skipped exactly as the other commands do, and their count is shown in the status line.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, /, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
