// Package manifest reads a batch of boarding-pass seat strings, one per
// line, decodes them in parallel and aggregates the result.
//
// Each line is decoded independently with a boarding.Decoder; the output
// keeps input order regardless of how work was spread across workers.
// Blank lines are skipped and surrounding whitespace is trimmed.
//
// Policy decides what a bad line does to the batch:
//
//   - Abort (default): Read fails with the first bad line (by position),
//     wrapped in ErrDecode.
//   - Skip: the line is recorded in Failures, logged, and the batch continues.
//
// A Manifest then answers the usual questions: highest and lowest seat id,
// the cabin seat map, and the one free seat enclosed by taken ones.
package manifest
