package mjlog

import (
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a mjlog file, gzipped or plain XML, and returns its
// elements in document order. The root element itself carries no data.
func Load(path string) ([]Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.Contains(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open gzipped mjlog: %w", err)
		}
		defer gz.Close()
		reader = gz
	}
	return ReadNodes(reader)
}

// ReadNodes decodes the XML element stream into Nodes.
func ReadNodes(reader io.Reader) ([]Node, error) {
	decoder := xml.NewDecoder(reader)
	var nodes []Node
	depth := 0
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mjlog: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				continue // root element
			}
			attr := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attr[a.Name.Local] = a.Value
			}
			nodes = append(nodes, Node{Tag: t.Name.Local, Attr: attr})
		case xml.EndElement:
			depth--
		}
	}
	return nodes, nil
}
