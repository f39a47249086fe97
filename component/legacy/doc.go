// Package legacy implements the legacy color-code grammar.
//
// A code is a prefix character followed by one code character: 0-9 and a-f select a palette
// color and clear decorations, k-o enable a decoration, r resets everything. The prefix is '&'
// in hand-written configuration and '§' in rendered text. A hex color may be written as
// "&#rrggbb". Anything that is not a valid code is kept as literal text.
//
//	legacy.Ampersand().Decode("&cError: &lfile missing")
package legacy
