package scarp

import (
	"encoding/json"
	"fmt"
	"hash/maphash"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// String is a string carrying the phantom tag Tag. Two String types with
// different tags are distinct and cannot be mixed or converted into each
// other. Tag should be a zero-size type such as struct{} so that String has
// the size of a string.
//
// Most functions of the strings package are available as methods whose first
// argument is the receiver; see string_generated.go. Offsets and lengths are
// in bytes unless a method says otherwise.
type String[Tag any] struct {
	_     [0]Tag
	value string
}

// NewString wraps s with the tag Tag.
func NewString[Tag any](s string) String[Tag] {
	return String[Tag]{value: s}
}

// StringFromRunes returns the string of runes r.
func StringFromRunes[Tag any](r []rune) String[Tag] {
	return String[Tag]{value: string(r)}
}

// StringFromBytes returns a String holding a copy of b.
func StringFromBytes[Tag any](b []byte) String[Tag] {
	return String[Tag]{value: string(b)}
}

// Raw returns the underlying string.
func (v String[Tag]) Raw() string { return v.value }

// Kind returns KindString.
func (v String[Tag]) Kind() Kind { return KindString }

func (v String[Tag]) String() string { return v.value }

// Format implements fmt.Formatter. The verb and flags apply to the underlying
// string, so %q quotes it and %x hex-encodes it.
func (v String[Tag]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.value)
}

func (v String[Tag]) Hash(seed maphash.Seed) uint64 { return maphash.String(seed, v.value) }

// Len returns the length of v in bytes.
func (v String[Tag]) Len() int { return len(v.value) }

func (v String[Tag]) IsEmpty() bool { return v.value == "" }

func (v String[Tag]) Equal(o String[Tag]) bool    { return v.value == o.value }
func (v String[Tag]) NotEqual(o String[Tag]) bool { return v.value != o.value }

// Compare compares v and o byte-wise, as strings.Compare does.
func (v String[Tag]) Compare(o String[Tag]) int { return strings.Compare(v.value, o.value) }

// CompareAny compares v with x when x is a String[Tag]. Any other value
// compares as less than v.
func (v String[Tag]) CompareAny(x any) int {
	if o, ok := x.(String[Tag]); ok {
		return v.Compare(o)
	}
	return 1
}

func (v String[Tag]) Less(o String[Tag]) bool           { return v.value < o.value }
func (v String[Tag]) Greater(o String[Tag]) bool        { return v.value > o.value }
func (v String[Tag]) LessOrEqual(o String[Tag]) bool    { return v.value <= o.value }
func (v String[Tag]) GreaterOrEqual(o String[Tag]) bool { return v.value >= o.value }

// Concat returns v followed by o.
func (v String[Tag]) Concat(o String[Tag]) String[Tag] {
	return String[Tag]{value: v.value + o.value}
}

// Clone returns a copy of v that does not share memory with it.
func (v String[Tag]) Clone() String[Tag] {
	return String[Tag]{value: strings.Clone(v.value)}
}

// All iterates over the byte offset and rune of each character in v.
func (v String[Tag]) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range v.value {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Runes iterates over the characters of v.
func (v String[Tag]) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range v.value {
			if !yield(r) {
				return
			}
		}
	}
}

func (v String[Tag]) ToRunes() []rune { return []rune(v.value) }
func (v String[Tag]) ToBytes() []byte { return []byte(v.value) }

// Comparison selects how the *With methods match text.
type Comparison uint8

// Comparisons.
const (
	// Ordinal matches bytes exactly.
	Ordinal Comparison = iota
	// OrdinalIgnoreCase matches runes under Unicode simple case folding.
	OrdinalIgnoreCase
)

// IndexWith returns the byte index of the first match of sub in v, or -1.
func (v String[Tag]) IndexWith(sub String[Tag], c Comparison) int {
	if c == OrdinalIgnoreCase {
		i, _ := indexFold(v.value, sub.value)
		return i
	}
	return strings.Index(v.value, sub.value)
}

// LastIndexWith returns the byte index of the last match of sub in v, or -1.
func (v String[Tag]) LastIndexWith(sub String[Tag], c Comparison) int {
	if c == OrdinalIgnoreCase {
		return lastIndexFold(v.value, sub.value)
	}
	return strings.LastIndex(v.value, sub.value)
}

func (v String[Tag]) ContainsWith(sub String[Tag], c Comparison) bool {
	return v.IndexWith(sub, c) >= 0
}

func (v String[Tag]) HasPrefixWith(prefix String[Tag], c Comparison) bool {
	if c == OrdinalIgnoreCase {
		_, ok := foldPrefix(v.value, prefix.value)
		return ok
	}
	return strings.HasPrefix(v.value, prefix.value)
}

func (v String[Tag]) HasSuffixWith(suffix String[Tag], c Comparison) bool {
	if c != OrdinalIgnoreCase {
		return strings.HasSuffix(v.value, suffix.value)
	}
	if suffix.value == "" {
		return true
	}
	for i := range v.value {
		if n, ok := foldPrefix(v.value[i:], suffix.value); ok && i+n == len(v.value) {
			return true
		}
	}
	return false
}

// EqualWith reports whether v and o are equal under c. OrdinalIgnoreCase is
// strings.EqualFold.
func (v String[Tag]) EqualWith(o String[Tag], c Comparison) bool {
	if c == OrdinalIgnoreCase {
		return strings.EqualFold(v.value, o.value)
	}
	return v.value == o.value
}

// ReplaceWith replaces every non-overlapping match of old with repl.
func (v String[Tag]) ReplaceWith(old, repl String[Tag], c Comparison) String[Tag] {
	if c != OrdinalIgnoreCase || old.value == "" {
		return String[Tag]{value: strings.ReplaceAll(v.value, old.value, repl.value)}
	}

	var b strings.Builder
	s := v.value
	for {
		i, n := indexFold(s, old.value)
		if i < 0 {
			break
		}
		b.WriteString(s[:i])
		b.WriteString(repl.value)
		s = s[i+n:]
	}
	b.WriteString(s)
	return String[Tag]{value: b.String()}
}

// foldPrefix reports whether s begins with prefix under simple case folding,
// and the number of bytes of s the prefix covered.
func foldPrefix(s, prefix string) (int, bool) {
	i := 0
	for _, pr := range prefix {
		if i >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// indexFold returns the byte index and matched length of the first match of
// sub in s, or -1.
func indexFold(s, sub string) (int, int) {
	if sub == "" {
		return 0, 0
	}
	for i := range s {
		if n, ok := foldPrefix(s[i:], sub); ok {
			return i, n
		}
	}
	return -1, 0
}

func lastIndexFold(s, sub string) int {
	if sub == "" {
		return len(s)
	}
	last := -1
	for i := range s {
		if _, ok := foldPrefix(s[i:], sub); ok {
			last = i
		}
	}
	return last
}

// IndexFrom returns the byte index of the first match of sub at or after
// start, or -1. It panics if start is out of range.
func (v String[Tag]) IndexFrom(sub String[Tag], start int) int {
	i := strings.Index(v.value[start:], sub.value)
	if i < 0 {
		return -1
	}
	return start + i
}

// IndexIn returns the byte index of the first match of sub that lies within
// the count bytes starting at start, or -1. It panics if start or
// start+count is out of range.
func (v String[Tag]) IndexIn(sub String[Tag], start, count int) int {
	i := strings.Index(v.value[start:start+count], sub.value)
	if i < 0 {
		return -1
	}
	return start + i
}

// LastIndexBefore returns the byte index of the last match of sub that ends
// at or before end, or -1. It panics if end is out of range.
func (v String[Tag]) LastIndexBefore(sub String[Tag], end int) int {
	return strings.LastIndex(v.value[:end], sub.value)
}

// SplitOptions adjust the pieces returned by the Split* methods. They may be
// combined.
type SplitOptions uint8

// Split options.
const (
	SplitNone SplitOptions = 0
	// SplitRemoveEmpty drops empty pieces, after trimming when
	// SplitTrimEntries is also set.
	SplitRemoveEmpty SplitOptions = 1
	// SplitTrimEntries trims surrounding white space from every piece.
	SplitTrimEntries SplitOptions = 2
)

// SplitWith splits v around each instance of sep.
func (v String[Tag]) SplitWith(sep String[Tag], opts SplitOptions) []String[Tag] {
	return splitPieces[Tag](strings.Split(v.value, sep.value), opts)
}

// SplitMany splits v around each instance of any of seps. Where several
// separators match at the same position, the one listed first wins. Empty
// separators are ignored, and with no others v is returned as the only piece.
func (v String[Tag]) SplitMany(seps []String[Tag], opts SplitOptions) []String[Tag] {
	var parts []string
	start := 0
	for i := 0; i < len(v.value); {
		n := 0
		for _, sep := range seps {
			if sep.value != "" && strings.HasPrefix(v.value[i:], sep.value) {
				n = len(sep.value)
				break
			}
		}
		if n == 0 {
			i++
			continue
		}
		parts = append(parts, v.value[start:i])
		i += n
		start = i
	}
	parts = append(parts, v.value[start:])
	return splitPieces[Tag](parts, opts)
}

// SplitAny splits v around each rune contained in chars.
func (v String[Tag]) SplitAny(chars String[Tag], opts SplitOptions) []String[Tag] {
	return v.SplitRunes(opts, []rune(chars.value)...)
}

// SplitRunes splits v around each of seps. With no separators v is returned
// as the only piece.
func (v String[Tag]) SplitRunes(opts SplitOptions, seps ...rune) []String[Tag] {
	var parts []string
	start := 0
	for i := 0; i < len(v.value); {
		r, size := utf8.DecodeRuneInString(v.value[i:])
		for _, sep := range seps {
			if r == sep {
				parts = append(parts, v.value[start:i])
				start = i + size
				break
			}
		}
		i += size
	}
	parts = append(parts, v.value[start:])
	return splitPieces[Tag](parts, opts)
}

func splitPieces[Tag any](parts []string, opts SplitOptions) []String[Tag] {
	out := make([]String[Tag], 0, len(parts))
	for _, p := range parts {
		if opts&SplitTrimEntries != 0 {
			p = strings.TrimSpace(p)
		}
		if opts&SplitRemoveEmpty != 0 && p == "" {
			continue
		}
		out = append(out, String[Tag]{value: p})
	}
	return out
}

// ToUpperIn maps v to upper case using the rules of locale.
func (v String[Tag]) ToUpperIn(locale language.Tag) String[Tag] {
	return String[Tag]{value: cases.Upper(locale).String(v.value)}
}

// ToLowerIn maps v to lower case using the rules of locale.
func (v String[Tag]) ToLowerIn(locale language.Tag) String[Tag] {
	return String[Tag]{value: cases.Lower(locale).String(v.value)}
}

// ToTitleIn maps the first letter of each word to title case and the rest to
// lower case using the rules of locale.
func (v String[Tag]) ToTitleIn(locale language.Tag) String[Tag] {
	return String[Tag]{value: cases.Title(locale).String(v.value)}
}

// PadLeft right-aligns v in width runes by prepending pad.
func (v String[Tag]) PadLeft(width int, pad rune) String[Tag] {
	n := width - utf8.RuneCountInString(v.value)
	if n <= 0 {
		return v
	}
	return String[Tag]{value: strings.Repeat(string(pad), n) + v.value}
}

// PadRight left-aligns v in width runes by appending pad.
func (v String[Tag]) PadRight(width int, pad rune) String[Tag] {
	n := width - utf8.RuneCountInString(v.value)
	if n <= 0 {
		return v
	}
	return String[Tag]{value: v.value + strings.Repeat(string(pad), n)}
}

// Insert returns v with s inserted at byte offset i.
func (v String[Tag]) Insert(i int, s String[Tag]) String[Tag] {
	return String[Tag]{value: v.value[:i] + s.value + v.value[i:]}
}

// Remove returns v without the count bytes starting at start.
func (v String[Tag]) Remove(start, count int) String[Tag] {
	return String[Tag]{value: v.value[:start] + v.value[start+count:]}
}

// Substring returns the length bytes of v starting at start.
func (v String[Tag]) Substring(start, length int) String[Tag] {
	return String[Tag]{value: v.value[start : start+length]}
}

// Normalize returns v in the Unicode normalization form f.
func (v String[Tag]) Normalize(f norm.Form) String[Tag] {
	return String[Tag]{value: f.String(v.value)}
}

func (v String[Tag]) IsNormalized(f norm.Form) bool { return f.IsNormalString(v.value) }

func wrapStrings[Tag any](ss []string) []String[Tag] {
	if ss == nil {
		return nil
	}
	out := make([]String[Tag], len(ss))
	for i, s := range ss {
		out[i] = String[Tag]{value: s}
	}
	return out
}

func wrapSeq[Tag any](seq iter.Seq[string]) iter.Seq[String[Tag]] {
	return func(yield func(String[Tag]) bool) {
		for s := range seq {
			if !yield(String[Tag]{value: s}) {
				return
			}
		}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v String[Tag]) MarshalText() ([]byte, error) { return []byte(v.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *String[Tag]) UnmarshalText(text []byte) error {
	v.value = string(text)
	return nil
}

// MarshalJSON encodes v as a JSON string.
func (v String[Tag]) MarshalJSON() ([]byte, error) { return json.Marshal(v.value) }

// UnmarshalJSON decodes a JSON string. A JSON null leaves v unchanged.
func (v *String[Tag]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &v.value)
}

// MarshalYAML implements yaml.Marshaler.
func (v String[Tag]) MarshalYAML() (any, error) { return v.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *String[Tag]) UnmarshalYAML(node *yaml.Node) error { return node.Decode(&v.value) }

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v String[Tag]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(v.value)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *String[Tag]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v.value = s
	return nil
}
