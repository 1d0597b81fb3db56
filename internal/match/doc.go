// Package match ranks field names by similarity to a misspelled one, so
// diagnostics can suggest what was probably meant.
package match
