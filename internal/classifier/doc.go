// Package classifier turns a query plus retrieval context into a taxonomy
// label triple.
//
// It builds a structured instruction prompt (hierarchy rules, authoritative
// taxonomy, optional nearest-neighbour examples, mandated output format),
// makes exactly one chat completion call, and parses the loosely-formatted
// answer with a table-driven line parser.
//
// The parsing contract is deliberately forgiving: emphasis markup, bullet
// markers and quoting are stripped, label spelling variants are matched from
// a data table, and each of the three fields independently falls back to the
// "None" sentinel. A failed completion call is not an error to callers; it
// is a sentinel result.
package classifier
