// Package types defines the entity types for the Notespace system (spaces,
// fields, notes, users, saved filters), the field-type registry that maps
// every field type to its operator set and value-shape contracts, and the
// standard error values shared across packages.
package types
