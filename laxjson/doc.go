// Package laxjson implements a small, permissive JSON decoder.
//
// laxjson converts JSON-ish text into an owned tagged value tree (JValue)
// and renders that tree back to text. It is deliberately lenient where the
// JSON grammar is commonly bent:
//   - Trailing commas in arrays and objects are accepted
//   - Unknown string escapes degrade to the escaped character itself
//   - Empty (or whitespace-only) input parses to null, not an error
//   - Leading + on numbers is accepted
//
// It is strict where silence would hide bugs: unterminated strings and
// containers, malformed numbers, non-string object keys, and unrecognized
// dispatch characters all return a *ParseError carrying the byte offset.
// The parser never returns an unadvanced cursor with a nil error, so a
// caller that resumes at the returned offset cannot loop.
//
// # Data Model
//
// Scalars: null, bool, int, double, string
// Containers: list, dict (unique string keys, iteration order unspecified)
//
// # Parsing
//
//	v, err := laxjson.Parse(`{"key": 42, "array": [1, 2, 3]}`)
//
// ParseAt exposes the cursor-threading contract used for recursive
// composition: it parses one value starting at a byte offset and returns
// the offset just past the consumed text.
//
//	v, next, err := laxjson.ParseAt(buf, 0)
//
// # Rendering
//
//	s := laxjson.Emit(v)
//
// Emit escapes quotes, backslashes, and control characters using only the
// sequences the parser itself understands, so render→parse is the identity
// on every value the model can hold.
package laxjson
