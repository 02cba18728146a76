package console

import "encoding"

// ParseFunc turns confirmed text into an application value.
type ParseFunc[T any] func(text string) (T, error)

// Confirm parses the displayed entry with parse and commits it to history.
// The entry is committed and the console returns to live editing whether or
// not parsing succeeds; the parser's error is returned unchanged.
func Confirm[T any](c Console, parse ParseFunc[T]) (T, error) {
	return parse(c.Commit())
}

// ConfirmText is Confirm for types that parse themselves through
// encoding.TextUnmarshaler.
func ConfirmText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](c Console) (T, error) {
	return Confirm[T](c, func(text string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(text))
		return v, err
	})
}

// ConfirmString commits the displayed entry and returns it as typed.
func ConfirmString(c Console) string {
	return c.Commit()
}
