package schema

import (
	"github.com/regkit/epp/xmlutil"
)

// Namespace URIs shared by every registry.
const (
	NSEPP = "urn:ietf:params:xml:ns:epp-1.0"
	NSXSI = "http://www.w3.org/2001/XMLSchema-instance"
)

// Set names the object and extension namespaces of one registry's
// schema family. The protocol engine never hard-binds namespace URIs;
// a Set is passed explicitly to the model layer and the session at
// construction time.
//
// An empty URI means the registry does not serve that object type.
type Set struct {
	// EPP is the protocol namespace, NSEPP unless the registry is
	// running something exotic.
	EPP string
	// SchemaLocation is emitted as xsi:schemaLocation on the document
	// root when non-empty.
	SchemaLocation string

	// Object namespaces.
	Domain  string
	Contact string
	Host    string
	Nsset   string
	Keyset  string

	// Extension namespaces.
	SecDNS string
	Fred   string
}

// FRED returns the namespace set of the CZ.NIC FRED registry family.
func FRED() Set {
	return Set{
		EPP:            NSEPP,
		SchemaLocation: NSEPP + " epp-1.0.xsd",
		Domain:         "http://www.nic.cz/xml/epp/domain-1.4",
		Contact:        "http://www.nic.cz/xml/epp/contact-1.6",
		Nsset:          "http://www.nic.cz/xml/epp/nsset-1.2",
		Keyset:         "http://www.nic.cz/xml/epp/keyset-1.3",
		Fred:           "http://www.nic.cz/xml/epp/fred-1.5",
	}
}

// IETF returns the namespace set of the standard-track schemas
// (RFC 5731-5733 plus the secDNS extension). The set binds decoding
// and login advertisement to the standard URIs; the command catalogue
// still writes FRED lexical shapes (bare <authInfo> text rather than
// the RFC <authInfo><pw> wrapper), which standard-track registries
// reject on transfer and create.
func IETF() Set {
	return Set{
		EPP:            NSEPP,
		SchemaLocation: NSEPP + " epp-1.0.xsd",
		Domain:         "urn:ietf:params:xml:ns:domain-1.0",
		Contact:        "urn:ietf:params:xml:ns:contact-1.0",
		Host:           "urn:ietf:params:xml:ns:host-1.0",
		SecDNS:         "urn:ietf:params:xml:ns:secDNS-1.1",
	}
}

// ObjURIs returns the object namespace URIs the set serves, in the
// order they are advertised during login.
func (s Set) ObjURIs() []string {
	return nonEmpty(s.Contact, s.Domain, s.Host, s.Nsset, s.Keyset)
}

// ExtURIs returns the extension namespace URIs the set serves.
func (s Set) ExtURIs() []string {
	return nonEmpty(s.Fred, s.SecDNS)
}

// Prefixes returns the prefix bindings for the set, used by the codec
// in both directions.
func (s Set) Prefixes() xmlutil.PrefixMap {
	m := xmlutil.PrefixMap{}.Bind("epp", s.EPP).Bind("xsi", NSXSI)
	for pfx, uri := range map[string]string{
		"domain":  s.Domain,
		"contact": s.Contact,
		"host":    s.Host,
		"nsset":   s.Nsset,
		"keyset":  s.Keyset,
		"secDNS":  s.SecDNS,
		"fred":    s.Fred,
	} {
		if uri != "" {
			m.Bind(pfx, uri)
		}
	}
	return m
}

func nonEmpty(uris ...string) []string {
	out := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri != "" {
			out = append(out, uri)
		}
	}
	return out
}
