// Package config provides dotted-path access to loaded configuration documents.
//
// The package is organized around three pieces:
//   - Store: owns a decoded document (value.Map) and resolves dotted key paths
//   - Accessor: typed getters with caller-supplied defaults, applying a markup.Codec to strings
//   - Parser and DataFetcher: the loading seam, with implementations in config/parser/* and
//     config/fetcher/file
//
// # Key Paths
//
// Paths use dot (.) as the separator:
//
//	"messages.error.notfound"   -> config["messages"]["error"]["notfound"]
//	"server"                    -> config["server"]
//
// A missing key, a non-map intermediate value or a malformed path such as "a..b" never returns
// an error; the getter returns its default instead.
//
// # Example
//
//	accessor, err := config.Load(yamlparser.NewParser(), fetcher, "")
//	if err != nil {
//	    return err
//	}
//
//	greeting := accessor.GetString("messages.welcome", "Welcome!")
//	retries := accessor.GetInt("network.retries", 3)
package config
