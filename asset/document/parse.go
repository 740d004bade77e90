package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// Parse reads an XML document and returns its root element. Character data,
// comments and processing instructions are discarded.
func Parse(r io.Reader) (*Node, error) {
	// Keep a copy of consumed bytes so that we can report line numbers.
	var consumed bytes.Buffer
	decoder := xml.NewDecoder(io.TeeReader(r, &consumed))
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Node
	stack := make([]*Node, 0, 16)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Name: t.Name.Local,
				Line: lineAt(consumed.Bytes(), decoder.InputOffset()),
			}
			for _, attr := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("document: multiple root elements (<%s> and <%s>)", root.Name, node.Name)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("document: unclosed element <%s>", stack[len(stack)-1].Name)
	}
	return root, nil
}

// Get the 1-based line number for a byte offset. Offsets past the end of the
// consumed input (possible after charset conversion) are clamped.
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}
