package types

import "errors"

// Configuration and schema errors.
var (
	ErrUnknownFieldType = errors.New("unknown field type")
	ErrInvalidDefault   = errors.New("invalid default value for field type")
	ErrInvalidOptions   = errors.New("invalid options for field type")
)

// Value and filter errors.
var (
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrInvalidOperator   = errors.New("invalid operator for field type")
	ErrRequiredField     = errors.New("required field missing")
	ErrUnknownField      = errors.New("field not defined in space schema")
)

// Template errors. Both are returned as values from the render engine and
// never escape it as panics.
var (
	ErrTemplateParse  = errors.New("template parse error")
	ErrTemplateRender = errors.New("template render error")
)

// Storage errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidID       = errors.New("invalid entity ID")
	ErrInvalidData     = errors.New("invalid entity data")
	ErrSpaceExists     = errors.New("space already exists")
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Config errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
