// Package component models styled text.
//
// A Component is a tree: each node carries text, an optional Style and children that inherit
// the parent's style unless they override it. Markup grammars (see component/legacy and
// component/minimessage) decode strings into Components; a Serializer renders a Component back
// into a string, for example as plain text, legacy section-sign codes or ANSI escapes.
package component
