// Package suggest finds likely intended names for misspelled references,
// such as a target pointing at a source that does not exist.
package suggest
