package convert

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedVariant = errors.New("unsupported variant")
	ErrUnmappedOperator   = errors.New("unmapped operator")
	ErrArity              = errors.New("wrong number of arguments")
	ErrNoEvaluator        = errors.New("no evaluator for textual fallback")
)

// Side names the tree model a node came from.
type Side string

const (
	NativeSide      Side = "native"
	InterchangeSide Side = "interchange"
	SymSide         Side = "sym"
)

// UnsupportedVariantError reports a node with no conversion rule and no
// fallback.
type UnsupportedVariantError struct {
	Side Side
	Tag  string
	Err  error
}

func (e *UnsupportedVariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported %s variant %s: %v", e.Side, e.Tag, e.Err)
	}
	return fmt.Sprintf("unsupported %s variant %s", e.Side, e.Tag)
}

func (e *UnsupportedVariantError) Is(target error) bool {
	return target == ErrUnsupportedVariant
}

func (e *UnsupportedVariantError) Unwrap() error {
	return e.Err
}

// UnmappedOperatorError is the warning for an interchange tag missing from
// the reverse table. It is never returned: conversion carries on by
// evaluating the call text Fallback.
type UnmappedOperatorError struct {
	Tag      string
	Fallback string
}

func (e *UnmappedOperatorError) Error() string {
	return fmt.Sprintf("unmapped operator %s, evaluating %q", e.Tag, e.Fallback)
}

func (e *UnmappedOperatorError) Is(target error) bool {
	return target == ErrUnmappedOperator
}
