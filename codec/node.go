package codec

import "encoding/xml"

// Node is one element of a command payload value tree. Commands build
// unordered Node sets; the per-command Spec orders and validates them
// before the encoder renders anything.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []Node
}

// Elem returns an element node with the given children.
func Elem(name xml.Name, children ...Node) Node {
	return Node{Name: name, Children: children}
}

// Text returns an element node holding character data.
func Text(name xml.Name, text string) Node {
	return Node{Name: name, Text: text}
}

// Attr returns an XML attribute.
func Attr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: local}, Value: value}
}

// WithAttrs returns a copy of the node carrying the given attributes.
func (n Node) WithAttrs(attrs ...xml.Attr) Node {
	n.Attrs = append(n.Attrs[:len(n.Attrs):len(n.Attrs)], attrs...)
	return n
}

// Add appends children to the node.
func (n *Node) Add(children ...Node) {
	n.Children = append(n.Children, children...)
}

// IsZero reports whether the node is empty. Zero nodes returned by
// optional builders are skipped by the encoder.
func (n Node) IsZero() bool {
	return n.Name.Local == "" && n.Text == "" && len(n.Children) == 0 && len(n.Attrs) == 0
}
