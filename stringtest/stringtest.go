// Package stringtest provides helpers for constructing expected multi-line
// test output, such as log history transcripts, with explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// Lines joins multiple strings, terminating each with LF.
// Use this to construct expected transcript contents where every entry ends
// with a line terminator.
//
// Example:
//
//	want := stringtest.Lines(
//		"line1",
//		"line2",
//	) // -> "line1\nline2\n"
func Lines(ss ...string) string {
	var sb strings.Builder
	for _, s := range ss {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	return sb.String()
}
