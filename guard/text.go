package guard

// TextLike matches any text representation a caller might hold: plain or
// named strings, byte slices, and rune slices.
type TextLike interface {
	~string | ~[]byte | ~[]rune
}

// Str converts any text-like value into one canonical owned string.
// Generated condition and assignment methods for text fields take string;
// callers holding byte or rune slices (or named string types) adapt them
// with Str instead of the generator duplicating methods per
// representation.
func Str[S TextLike](s S) string {
	return string(s)
}
