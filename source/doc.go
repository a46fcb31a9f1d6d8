// Package source loads a social graph from disk.
//
// Supported documents map decimal node ids to neighbor lists:
//
//	JSON:  {"1": [2, 3], "2": [1], "3": [1]}
//	YAML:  1: [2, 3]
//	       2: [1]
//	       3: [1]
//
// Loading rejects structurally invalid adjacency: duplicate keys, null
// neighbor lists, non-integer ids. Dangling neighbor references are legal
// and passed through untouched.
package source
