// Package jsondiff computes & applies structural differences between JSON-like
// document trees.
//
// Documents are represented as Values: an immutable tagged union of null,
// bool, number, string, array & map. Values can be built directly, converted
// from the go types produced by decoding JSON or YAML (FromInterface), or
// parsed (ParseJSON, ParseYAML).
//
// Diff produces an ordered edit script (Deltas) of inserts & deletes that
// transforms one document into another. Maps are compared key by key, arrays
// are compared with a greedy shortest-edit-script search, and any other
// difference replaces the subtree wholesale. Diffing is bounded rather than
// minimal: a tolerance caps the number of deltas, and once it's exceeded the
// comparison is abandoned in favor of a single delta that replaces the whole
// document. Equal is the same comparison run with a tolerance of zero, and is
// in turn the element equality used when diffing arrays.
//
// Patch applies deltas in order. Each delta observes the result of the
// previous ones, so array positions in a diff account for earlier insertions &
// deletions in the same array. Patching is copy-on-write: containers along the
// path of a delta are copied at most once per call, everything else is shared
// with the input.
//
// All functions are pure & safe for concurrent use. Diff, Equal & Patch recurse
// once per level of document nesting, so extremely deep documents can exhaust
// the goroutine stack. Documents decoded by encoding/json are limited to
// 10000 levels of nesting, which is well within bounds.
//
// Deltas encode to JSON positionally: an insert is [[...path], value] and a
// delete is the bare path [...path]. They can also be rendered as an RFC 6902
// JSON Patch (Deltas.JSONPatch) or applied directly to encoded JSON documents
// (PatchJSON)
package jsondiff
