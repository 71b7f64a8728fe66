/*
 * Copyright (c) 2026-present TypeStore authors
 */

package istorage

// Persisted layout is backend-agnostic: one index document and one
// document per type. Backends map these keys onto file paths, object
// keys or bbolt keys as-is.
const IndexKey = "index.json"

func TypeKey(name string) string {
	return "types/" + name + ".json"
}
