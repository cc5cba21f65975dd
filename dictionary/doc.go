// Package dictionary loads word lists for the ladder solver.
//
// Two formats are understood:
//
//   - plain text: one word per line; surrounding spaces are trimmed, blank
//     lines and lines starting with '#' are skipped, order is preserved.
//   - set files (YAML, or JSON with the same shape): several named lists in
//     one document.
//
//	dictionaries:
//	  small: [hot, dot, dog, lot, log, cog, hit]
//	  medium: [blue, blur, ball, ...]
//
// Loading never filters or deduplicates; Validate applies the optional
// stricter checks (non-empty, lowercase letters, one length).
package dictionary
