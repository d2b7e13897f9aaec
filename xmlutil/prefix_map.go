package xmlutil

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map. It serves both directions
// of the codec: decoding binds the prefixes of namespace-qualified
// query paths, encoding assigns prefixes to element names and emits the
// matching xmlns declarations.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap containing any xmlns:<prefix>
// declarations found among the passed XML attributes.
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			pmap[attr.Name.Local] = attr.Value
		}
	}
	return pmap
}

// Bind adds a prefix binding and returns the map for chaining.
func (m PrefixMap) Bind(prefix, nsURI string) PrefixMap {
	m[prefix] = nsURI
	return m
}

// Attr returns the prefix map contents as a series of
// xmlns:<prefix>=<nsuri> attributes, sorted lexically by prefix.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		a = append(a, xml.Attr{Name: xml.Name{Space: "xmlns", Local: k}, Value: v})
	}
	if len(a) > 0 {
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}

// Namespace returns the namespace URI for the given prefix.
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefixes returns all prefixes bound to the namespace URI, sorted.
func (m PrefixMap) Prefixes(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Prefix returns the canonical (lexically first) prefix bound to the
// namespace URI. The second result reports whether a binding exists.
func (m PrefixMap) Prefix(nsURI string) (string, bool) {
	if pfxes := m.Prefixes(nsURI); len(pfxes) > 0 {
		return pfxes[0], true
	}
	return "", false
}

// Qualify renders the name as prefix:local using the canonical prefix
// for its namespace. Names without a namespace, and names whose
// namespace has no binding, render as the bare local name.
func (m PrefixMap) Qualify(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if pfx, ok := m.Prefix(name.Space); ok && pfx != "" {
		return pfx + ":" + name.Local
	}
	return name.Local
}
