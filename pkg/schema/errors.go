package schema

import "errors"

// ErrMissingField is returned when a required field is absent from a
// decoded structure. Per §7 this surfaces as a SchemaError: the caller
// logs it and drops the message rather than treating it as fatal.
var ErrMissingField = errors.New("schema: missing required field")
