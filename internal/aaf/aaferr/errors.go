package aaferr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchema                  = errors.New("schema error")
	ErrMissingRequiredProperty = errors.New("missing required property")
	ErrMissingOptionalProperty = errors.New("missing optional property")
	ErrReferenceResolution     = errors.New("reference resolution error")
	ErrUnsupportedConstruct    = errors.New("unsupported construct")
	ErrMalformedStream         = errors.New("malformed stream")
)

// Kind is the short classification used in diagnostics and log attributes.
type Kind string

const (
	KindSchema      Kind = "schema"
	KindMissing     Kind = "missing_required"
	KindAbsent      Kind = "missing_optional"
	KindReference   Kind = "reference"
	KindUnsupported Kind = "unsupported"
	KindMalformed   Kind = "malformed"
	KindOther       Kind = "other"
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker. The marker should be one of the exported
// sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrMalformedStream
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Missing reports an absent required property on the object at path.
func Missing(path, property string) error {
	return fmt.Errorf("%w: %s: %s", ErrMissingRequiredProperty, path, property)
}

// Unsupported reports a known construct the interpreter does not handle.
func Unsupported(path, what string) error {
	return fmt.Errorf("%w: %s: %s", ErrUnsupportedConstruct, path, what)
}

// Classify maps an error onto its diagnostic kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSchema):
		return KindSchema
	case errors.Is(err, ErrMissingRequiredProperty):
		return KindMissing
	case errors.Is(err, ErrMissingOptionalProperty):
		return KindAbsent
	case errors.Is(err, ErrReferenceResolution):
		return KindReference
	case errors.Is(err, ErrUnsupportedConstruct):
		return KindUnsupported
	case errors.Is(err, ErrMalformedStream):
		return KindMalformed
	default:
		return KindOther
	}
}

// IsAbsent reports whether err only signals an optional property that is not
// present.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrMissingOptionalProperty)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "aaf failure"
	}
	return strings.Join(parts, ": ")
}
