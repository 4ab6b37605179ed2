package mjlog

// Node is one raw element of a mjlog file: a tag plus its unordered
// attribute map. Producing Nodes is the loader's job; giving them
// meaning is the parser's.
type Node struct {
	Tag  string
	Attr map[string]string
}
