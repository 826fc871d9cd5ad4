// Package scarp provides strongly typed wrappers over Go's scalar and text
// primitives. Each wrapper takes a phantom tag type parameter, so values with
// the same representation but different meaning cannot be mixed:
//
//	type Meter struct{}
//	type Gram struct{}
//
//	d := scarp.NewDecimal[Meter](decimal.RequireFromString("1.5"))
//	w := scarp.NewDecimal[Gram](decimal.RequireFromString("2"))
//	d.Add(d)  // ok
//	d.Add(w)  // does not compile
//
// The tag is a zero-sized field and never exists at run time. With a zero-size
// tag such as struct{}, a wrapper has the size, alignment and comparability of
// its primitive. Operators are methods (Add,
// Less, Equal, ...) and the only way back to the primitive is Raw:
//
//	total := scarp.NewInt64[Meter](3).Add(scarp.NewInt64[Meter](4)).Raw()
//
// Every wrapper implements fmt.Formatter, encoding.TextMarshaler,
// json.Marshaler, yaml.Marshaler, msgpack.CustomEncoder, sql.Scanner and
// driver.Valuer together with their decoding counterparts. A pointer is the
// nullable form for JSON, and sql.Null[V] for database columns.
//
// String forwards most of the strings package as methods, plus
// case-insensitive search, split options and locale-aware case mapping.
//
// The wrapper sources are rendered from templates by cmd/scarpgen.
package scarp

//go:generate go run ./cmd/scarpgen all
