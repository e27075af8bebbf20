// Package query implements the filter query grammar: a comma-separated list
// of field:operator:value conditions, with percent-encoded values and JSON
// array literals for collection operators. Parsing is best-effort per
// condition; serialization is canonical. The package also builds conditions
// for clickable rendered values and evaluates condition lists against a
// note's field map.
package query
