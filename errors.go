package params

import "errors"

// Sentinel errors for the registry's failure modes. Raise sites add context
// with fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	// ErrName reports an empty parameter name given to Define.
	ErrName = errors.New("params: empty parameter name")

	// ErrRedefinition reports a name redefined with a different type, or a
	// definition whose names resolve to two distinct parameters.
	ErrRedefinition = errors.New("params: conflicting redefinition")

	// ErrParse reports a malformed textual command line, such as an
	// unmatched quote.
	ErrParse = errors.New("params: command line parse error")

	// ErrIniFile reports a parameter file path that cannot be loaded.
	ErrIniFile = errors.New("params: parameter file error")

	// ErrNotFound reports access to a name that was never defined.
	ErrNotFound = errors.New("params: parameter not found")

	// ErrValue reports a read of a non-optional parameter with no value, or
	// of a parameter the command-line layer flagged with a syntax error.
	ErrValue = errors.New("params: no usable value")

	// ErrConvert reports a textual value that cannot be converted to the
	// requested type.
	ErrConvert = errors.New("params: conversion failed")

	// ErrNotParsed reports access before the first Parse call. Raised only
	// by registries in strict mode.
	ErrNotParsed = errors.New("params: parameters accessed before parse")

	// ErrNotBuilt reports read-only access before Build.
	ErrNotBuilt = errors.New("params: parameters accessed before build")
)
