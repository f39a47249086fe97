// Package spindle loads configuration files from a folder and exposes them through typed,
// markup-aware accessors.
//
// A Loader owns a configuration folder. Setup creates the folder and copies bundled defaults
// into it for every file that does not exist yet; Load then reads a file by name, choosing the
// parser from its extension (.yml, .yaml, .toml, .json, .jsonc):
//
//	//go:embed defaults
//	var defaults embed.FS
//
//	resources, _ := fs.Sub(defaults, "defaults")
//	loader, err := spindle.Setup("/etc/myapp", []string{"config.yml", "messages.yml"},
//	    spindle.WithResources(resources))
//	if err != nil {
//	    return err
//	}
//
//	messages, err := loader.Load("messages.yml")
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(messages.GetString("join", "Welcome!"))
//
// String values pass through a markup.Codec; see the markup package for the available modes.
package spindle
