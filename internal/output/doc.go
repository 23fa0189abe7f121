// Package output turns raw calculator output into display-ready result strings.
//
// bc terminates every output line with a newline and wraps numbers wider than
// its line length (BC_LINE_LENGTH, 70 by default) using a backslash-newline
// continuation marker:
//
//	36972963764972677265718790562880544059566876428174110243025997242355\
//	25705545277523421410650010128232727940978889548326540119429996769494\
//	...
//
// Normalize removes the final newline and joins the continued lines back into
// a single unbroken value.
package output
