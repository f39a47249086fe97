// Package value defines the dynamic values held by a loaded configuration document.
//
// A Value is one of String, Int, Float, Bool, List, Map or Null. Decoders produce plain Go data
// (map[string]any, []any, int64 ...) which Of converts into this closed set, so that consumers
// can match on the concrete type instead of inspecting arbitrary interfaces.
//
//	v, err := value.Of(map[string]any{"port": 8080})
//	m := v.(value.Map)
//	port := m["port"].(value.Int)
package value
