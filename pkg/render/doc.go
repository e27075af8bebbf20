// Package render renders notes into sanitized HTML through workspace-authored
// Liquid templates. The engine carries a fixed catalog of type-aware filters;
// values only reach markup through the sanitizer, which runs after template
// evaluation. Render failures are returned as values so a broken template
// never takes down the record view; callers fall back to the default
// structured view.
package render
