// Package validation evaluates declarative per-endpoint rule tables against
// decoded request bodies and query strings. Every failing field is reported;
// evaluation never stops at the first violation.
package validation
