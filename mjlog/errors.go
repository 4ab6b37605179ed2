package mjlog

import "fmt"

// DecodeError reports a raw element that cannot be turned into an
// event. It is independent of game state and always fatal; there is no
// partial decode.
type DecodeError struct {
	Tag    string
	Attr   map[string]string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode <%s %v>: %s", e.Tag, e.Attr, e.Reason)
}

func decodeErrorf(node Node, format string, args ...any) *DecodeError {
	return &DecodeError{
		Tag:    node.Tag,
		Attr:   node.Attr,
		Reason: fmt.Sprintf(format, args...),
	}
}
