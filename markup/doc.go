// Package markup applies a text markup transform to configuration strings.
//
// A Mode selects the strategy: Plain returns strings unchanged, Legacy decodes '&' color codes
// and Modern decodes tag markup. Legacy and Modern decode into a component.Component and render
// it back with a component.Serializer, so both need a Components bundle; asking for them
// without one fails immediately with ErrComponentsUnavailable.
//
//	codec, err := markup.New(markup.Legacy, markup.DefaultComponents())
//	if err != nil {
//	    // configuration error, stop here
//	}
//	codec.Transform("&cHello") // "Hello"
//
// Selector holds the active mode for code that wants to switch it at runtime.
package markup
