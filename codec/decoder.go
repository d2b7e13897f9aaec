package codec

import (
	"bytes"
	"strconv"
	"strings"
	"sync"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/regkit/epp/epperr"
	"github.com/regkit/epp/schema"
)

// Decoder locates elements of parsed response documents by
// namespace-qualified path. Formatting whitespace and attribute order
// are not significant; paths bind the prefixes of the configured
// namespace set regardless of the prefixes the registry chose.
type Decoder struct {
	prefixes map[string]string

	mu    sync.Mutex
	cache map[string]*xpath.Expr
}

// NewDecoder returns a Decoder for the given namespace set.
func NewDecoder(set schema.Set) *Decoder {
	return &Decoder{
		prefixes: map[string]string(set.Prefixes()),
		cache:    map[string]*xpath.Expr{},
	}
}

// Parse parses raw response bytes into a query-able document.
func (d *Decoder) Parse(raw []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, epperr.Parse("malformed XML", epperr.WithCause(err), epperr.WithRawResponse(raw))
	}
	return doc, nil
}

// Find returns the first node matching the namespace-qualified path,
// or nil.
func (d *Decoder) Find(n *xmlquery.Node, path string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	return xmlquery.QuerySelector(n, d.compile(path))
}

// FindAll returns every node matching the namespace-qualified path.
func (d *Decoder) FindAll(n *xmlquery.Node, path string) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	return xmlquery.QuerySelectorAll(n, d.compile(path))
}

// Text returns the trimmed inner text of the first match, or "".
func (d *Decoder) Text(n *xmlquery.Node, path string) string {
	if found := d.Find(n, path); found != nil {
		return strings.TrimSpace(found.InnerText())
	}
	return ""
}

// TextAll returns the trimmed inner text of every match.
func (d *Decoder) TextAll(n *xmlquery.Node, path string) []string {
	var out []string
	for _, found := range d.FindAll(n, path) {
		out = append(out, strings.TrimSpace(found.InnerText()))
	}
	return out
}

// Int parses the first match's text as an integer. Missing elements
// and bad numbers both report failure through the second result.
func (d *Decoder) Int(n *xmlquery.Node, path string) (int, bool) {
	s := d.Text(n, path)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Attrib returns the named attribute of the node.
func Attrib(n *xmlquery.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (d *Decoder) compile(path string) *xpath.Expr {
	d.mu.Lock()
	defer d.mu.Unlock()
	if expr, ok := d.cache[path]; ok {
		return expr
	}
	expr, err := xpath.CompileWithNS(path, d.prefixes)
	if err != nil {
		// paths are compile-time constants of the model layer
		panic("codec: bad query path " + path + ": " + err.Error())
	}
	d.cache[path] = expr
	return expr
}
