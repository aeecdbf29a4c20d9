// Package manifest loads TOML signature manifests for plan generation.
//
// A manifest declares boundary-crossing functions and their parameters:
//
//	[[function]]
//	name = "read-lines"
//
//	[[function.param]]
//	name = "path"
//	type = "string"
//
//	[[function.param]]
//	name = "lines"
//	type = "list<string>"
//	byref = "out"
//	count-from = "retLen"
//
// Types use the WIT-ish strings understood by witshape.Parse. byref is one
// of none/in/out/inout (default none); intent is the by-value contents
// intent in/out/inout (default in); count-from supplies the element-count
// expression for collections that unmarshal back to the origin domain.
package manifest
