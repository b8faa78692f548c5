// Package rdltypes defines the data types owned by the register-description
// model: the builtin enumerated property types (access, on-read, on-write,
// addressing, precedence, interrupt), user-defined enumerations, and the
// static type tags consumed by compile-time expression checking. Tags are
// opaque, equality-comparable values; consumers compare them against closed
// sets rather than inspecting their structure.
package rdltypes
