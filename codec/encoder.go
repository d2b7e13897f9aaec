package codec

import (
	"encoding/xml"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// Encoder renders command value trees into schema-conformant EPP
// documents. The protocol namespace is the document default; object
// and extension namespaces are prefixed and declared at the subtree
// where they first appear, the way registry schemas present them.
type Encoder struct {
	set      schema.Set
	prefixes xmlutil.PrefixMap
}

// NewEncoder returns an Encoder for the given namespace set.
func NewEncoder(set schema.Set) *Encoder {
	return &Encoder{set: set, prefixes: set.Prefixes()}
}

// Command renders a complete <epp><command> document. The payload is
// ordered and cardinality-checked against spec first, extension blocks
// are wrapped in a dedicated <extension> element, and clTRID is
// appended last unless empty.
func (e *Encoder) Command(payload Node, spec *Spec, exts []Node, clTRID string) ([]byte, error) {
	if spec != nil {
		if spec.Name != (xml.Name{}) && spec.Name != payload.Name {
			return nil, errors.Errorf("encode: payload <%s> does not match declared <%s>",
				payload.Name.Local, spec.Name.Local)
		}
		ordered, err := spec.Apply(payload.Children)
		if err != nil {
			return nil, err
		}
		payload.Children = ordered
	}

	doc, root := e.document()
	cmd := root.CreateElement("command")
	if err := e.render(cmd, payload, e.set.EPP); err != nil {
		return nil, err
	}
	if len(exts) > 0 {
		ext := cmd.CreateElement("extension")
		for _, x := range exts {
			if err := e.render(ext, x, e.set.EPP); err != nil {
				return nil, err
			}
		}
	}
	if clTRID != "" {
		cmd.CreateElement("clTRID").SetText(clTRID)
	}
	return doc.WriteToBytes()
}

// Extension renders a command carried in an <extension> element
// directly under <epp> instead of <command>, the document shape of the
// fred extcommand family. The transaction id travels inside the
// payload's own namespace and is appended after the ordered children.
func (e *Encoder) Extension(payload Node, spec *Spec, clTRID string) ([]byte, error) {
	if spec != nil {
		if spec.Name != (xml.Name{}) && spec.Name != payload.Name {
			return nil, errors.Errorf("encode: payload <%s> does not match declared <%s>",
				payload.Name.Local, spec.Name.Local)
		}
		ordered, err := spec.Apply(payload.Children)
		if err != nil {
			return nil, err
		}
		payload.Children = ordered
	}
	if clTRID != "" {
		payload.Add(Text(xmlutil.Name("clTRID", payload.Name.Space), clTRID))
	}

	doc, root := e.document()
	ext := root.CreateElement("extension")
	if err := e.render(ext, payload, e.set.EPP); err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

// Hello renders the <epp><hello/> document. Hello carries no
// transaction id; the schema forbids one.
func (e *Encoder) Hello() ([]byte, error) {
	doc, root := e.document()
	root.CreateElement("hello")
	return doc.WriteToBytes()
}

func (e *Encoder) document() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("epp")
	root.CreateAttr("xmlns", e.set.EPP)
	root.CreateAttr("xmlns:xsi", schema.NSXSI)
	if e.set.SchemaLocation != "" {
		root.CreateAttr("xsi:schemaLocation", e.set.SchemaLocation)
	}
	return doc, root
}

// render appends the node subtree under parent. parentNS is the
// namespace in force at the parent; entering a different non-protocol
// namespace declares it on the entered element.
func (e *Encoder) render(parent *etree.Element, n Node, parentNS string) error {
	if n.IsZero() {
		return nil
	}
	ns := n.Name.Space
	if ns == "" {
		ns = parentNS
	}
	tag := n.Name.Local
	if ns != e.set.EPP {
		pfx, ok := e.prefixes.Prefix(ns)
		if !ok {
			return errors.Errorf("encode: no prefix bound for namespace %s", ns)
		}
		tag = pfx + ":" + n.Name.Local
		el := parent.CreateElement(tag)
		if ns != parentNS {
			el.CreateAttr("xmlns:"+pfx, ns)
		}
		return e.fill(el, n, ns)
	}
	return e.fill(parent.CreateElement(tag), n, ns)
}

func (e *Encoder) fill(el *etree.Element, n Node, ns string) error {
	for _, a := range n.Attrs {
		el.CreateAttr(e.attrName(a.Name), a.Value)
	}
	if n.Text != "" {
		el.SetText(n.Text)
	}
	for _, c := range n.Children {
		if err := e.render(el, c, ns); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) attrName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return e.prefixes.Qualify(name)
}
