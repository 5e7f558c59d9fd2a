// Package validation gates food admission.
//
// Validate applies the shape, range and content quality rules and returns
// every violation as a user-facing message. IsDuplicate compares a candidate
// against the foods already visible to the caller. Sanitize, FormatNumber and
// Clean normalize raw form input before either check.
//
// Content quality combines a whole-word blocked list with a spam score: one
// strong signal (promotional phrase or URL, eight identical characters in a
// row, twenty capital letters in a run) or two weak ones (five to seven
// repeats, ten capitals, runs of ! or $, promotional words) mark text as spam.
package validation
