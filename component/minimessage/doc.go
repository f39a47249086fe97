// Package minimessage decodes tag-based markup into components.
//
// Supported tags:
//
//	<red> <dark_blue> ...           palette colors, closed by </red>
//	<color:gold> <c:#ff8800>        explicit color argument, closed by </color>
//	<#ff8800>                       hex color
//	<bold> <b> <italic> <i> <em> <underlined> <u> <strikethrough> <st> <obfuscated> <obf>
//	<!bold>                         explicitly disables a decoration
//	<reset>                         closes every open tag
//	<newline> <br>                  line break
//	</>                             closes the innermost tag
//
// Unknown or malformed tags are kept as literal text, and "\<" escapes a tag opener.
package minimessage
