// Package diagnostic collects coded findings produced while checking a
// binding schema: unknown types and fields, broken strategy and filter
// definitions, and fields that are declared without any effect.
package diagnostic
