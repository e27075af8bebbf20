// Package rawvalue converts between typed field values and the raw string
// representation used on the wire (form payloads and filter values), in both
// directions, per field type. It also owns the deferred sentinel literals
// ($now, $me), which are resolved exactly once at the record mutation
// boundary, and the dirty-field diffing used for partial updates.
package rawvalue
