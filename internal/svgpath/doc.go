// Package svgpath parses SVG path data (the "d" attribute of a <path>).
//
// The parser recognises the full SVG 1.1 command alphabet but does not
// interpret geometry. Each command letter starts a new Command that owns every
// number up to the next command letter, so "m 0,0 10,0 0,10" is a single
// relative move carrying six parameters. Implicit line-to continuation is left
// to the consumer.
//
// # Syntax
//
// Numbers may be separated by whitespace, commas, or nothing at all when the
// sign or decimal point makes the boundary unambiguous ("10-5" is two
// numbers). Exponents are accepted ("1e3").
//
// # Errors
//
// Parse returns an error wrapping ErrSyntax when it meets a character that is
// neither a command letter nor the start of a number, or when the data does
// not begin with a command.
package svgpath
