// Package main provides the notespace CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/plainfield/notespace/pkg/types"
)

// Exit codes: user errors (bad input, missing records) and system errors
// (storage failures) are distinguished for scripting.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrUnknownField),
		errors.Is(err, types.ErrUnknownFieldType),
		errors.Is(err, types.ErrInvalidFieldValue),
		errors.Is(err, types.ErrInvalidOperator),
		errors.Is(err, types.ErrInvalidDefault),
		errors.Is(err, types.ErrInvalidOptions),
		errors.Is(err, types.ErrRequiredField),
		errors.Is(err, types.ErrSpaceExists),
		errors.Is(err, types.ErrTemplateParse):
		return exitUserError
	default:
		return exitSysError
	}
}
