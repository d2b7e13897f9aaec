package model

import (
	"sort"
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/xmlutil"
)

// DiscloseField names one subelement of the contact disclose element.
type DiscloseField string

const (
	DiscloseAddr        DiscloseField = "addr"
	DiscloseVoice       DiscloseField = "voice"
	DiscloseFax         DiscloseField = "fax"
	DiscloseEmail       DiscloseField = "email"
	DiscloseVAT         DiscloseField = "vat"
	DiscloseIdent       DiscloseField = "ident"
	DiscloseNotifyEmail DiscloseField = "notifyEmail"
)

// IdentType enumerates the type attribute of the contact ident element.
type IdentType string

const (
	IdentOp       IdentType = "op"
	IdentPassport IdentType = "passport"
	IdentMpsv     IdentType = "mpsv"
	IdentIco      IdentType = "ico"
	IdentBirthday IdentType = "birthday"
)

// Unit is the unit of a registration period.
type Unit string

const (
	UnitMonth Unit = "m"
	UnitYear  Unit = "y"
)

// Addr is a postal address. Street is limited to three lines by the
// schemas.
type Addr struct {
	Street []string
	City   string
	Sp     string
	Pc     string
	Cc     string
}

// Payload returns the addr element in the given object namespace.
func (a Addr) Payload(ns string) codec.Node {
	addr := codec.Elem(xmlutil.Name("addr", ns))
	for _, line := range a.Street {
		addr.Add(codec.Text(xmlutil.Name("street", ns), line))
	}
	addr.Add(codec.Text(xmlutil.Name("city", ns), a.City))
	if a.Sp != "" {
		addr.Add(codec.Text(xmlutil.Name("sp", ns), a.Sp))
	}
	addr.Add(codec.Text(xmlutil.Name("pc", ns), a.Pc))
	addr.Add(codec.Text(xmlutil.Name("cc", ns), a.Cc))
	return addr
}

// ExtractAddr reads an addr element; alias is the path prefix of the
// element's namespace ("contact", "extra-addr", ...).
func ExtractAddr(d *codec.Decoder, n *xmlquery.Node, alias string) Addr {
	return Addr{
		Street: d.TextAll(n, "./"+alias+":street"),
		City:   d.Text(n, "./"+alias+":city"),
		Sp:     d.Text(n, "./"+alias+":sp"),
		Pc:     d.Text(n, "./"+alias+":pc"),
		Cc:     d.Text(n, "./"+alias+":cc"),
	}
}

// PostalInfo is the contact postalInfo element.
type PostalInfo struct {
	Name string
	Org  string
	Addr *Addr
}

func (p PostalInfo) Payload(ns string) codec.Node {
	pi := codec.Elem(xmlutil.Name("postalInfo", ns))
	pi.Add(codec.Text(xmlutil.Name("name", ns), p.Name))
	if p.Org != "" {
		pi.Add(codec.Text(xmlutil.Name("org", ns), p.Org))
	}
	if p.Addr != nil {
		pi.Add(p.Addr.Payload(ns))
	}
	return pi
}

func ExtractPostalInfo(d *codec.Decoder, n *xmlquery.Node, alias string) PostalInfo {
	pi := PostalInfo{
		Name: d.Text(n, "./"+alias+":name"),
		Org:  d.Text(n, "./"+alias+":org"),
	}
	if addr := d.Find(n, "./"+alias+":addr"); addr != nil {
		a := ExtractAddr(d, addr, alias)
		pi.Addr = &a
	}
	return pi
}

// Disclose is the contact disclose element: a flag plus the set of
// fields it applies to. Fields are emitted sorted, matching the schema
// sequence.
type Disclose struct {
	Flag   bool
	Fields []DiscloseField
}

func (dc Disclose) Payload(ns string) codec.Node {
	el := codec.Elem(xmlutil.Name("disclose", ns)).
		WithAttrs(codec.Attr("flag", codec.FormatBool(dc.Flag)))
	fields := append([]DiscloseField(nil), dc.Fields...)
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	for _, f := range fields {
		el.Add(codec.Elem(xmlutil.Name(string(f), ns)))
	}
	return el
}

func ExtractDisclose(d *codec.Decoder, n *xmlquery.Node) *Disclose {
	if n == nil {
		return nil
	}
	dc := &Disclose{}
	if flag, ok := codec.Attrib(n, "flag"); ok {
		dc.Flag, _ = codec.ParseBool(flag)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			dc.Fields = append(dc.Fields, DiscloseField(child.Data))
		}
	}
	return dc
}

// Ident is the contact ident element.
type Ident struct {
	Type  IdentType
	Value string
}

func (i Ident) Payload(ns string) codec.Node {
	return codec.Text(xmlutil.Name("ident", ns), i.Value).
		WithAttrs(codec.Attr("type", string(i.Type)))
}

func ExtractIdent(d *codec.Decoder, n *xmlquery.Node) *Ident {
	if n == nil {
		return nil
	}
	typ, _ := codec.Attrib(n, "type")
	return &Ident{Type: IdentType(typ), Value: n.InnerText()}
}

// Period is a registration period.
type Period struct {
	Length int
	Unit   Unit
}

func (p Period) Payload(ns string) codec.Node {
	return codec.Text(xmlutil.Name("period", ns), strconv.Itoa(p.Length)).
		WithAttrs(codec.Attr("unit", string(p.Unit)))
}

// Ns is one nameserver entry of an nsset, with optional glue addresses.
type Ns struct {
	Name  string
	Addrs []string
}

func (ns Ns) Payload(nsURI string) codec.Node {
	el := codec.Elem(xmlutil.Name("ns", nsURI))
	el.Add(codec.Text(xmlutil.Name("name", nsURI), ns.Name))
	for _, addr := range ns.Addrs {
		el.Add(codec.Text(xmlutil.Name("addr", nsURI), addr))
	}
	return el
}

func ExtractNs(d *codec.Decoder, n *xmlquery.Node) Ns {
	return Ns{
		Name:  d.Text(n, "./nsset:name"),
		Addrs: d.TextAll(n, "./nsset:addr"),
	}
}

// Dnskey is one DNSKEY record of a keyset.
type Dnskey struct {
	Flags    int
	Protocol int
	Alg      int
	PubKey   string
}

func (k Dnskey) Payload(ns string) codec.Node {
	el := codec.Elem(xmlutil.Name("dnskey", ns))
	el.Add(
		codec.Text(xmlutil.Name("flags", ns), strconv.Itoa(k.Flags)),
		codec.Text(xmlutil.Name("protocol", ns), strconv.Itoa(k.Protocol)),
		codec.Text(xmlutil.Name("alg", ns), strconv.Itoa(k.Alg)),
		codec.Text(xmlutil.Name("pubKey", ns), k.PubKey),
	)
	return el
}

func ExtractDnskey(d *codec.Decoder, n *xmlquery.Node) Dnskey {
	flags, _ := d.Int(n, "./keyset:flags")
	protocol, _ := d.Int(n, "./keyset:protocol")
	alg, _ := d.Int(n, "./keyset:alg")
	return Dnskey{
		Flags:    flags,
		Protocol: protocol,
		Alg:      alg,
		PubKey:   d.Text(n, "./keyset:pubKey"),
	}
}

// Status is one status entry of an info result.
type Status struct {
	State       string
	Description string
	Lang        string
}

func ExtractStatus(n *xmlquery.Node) Status {
	s := Status{Description: n.InnerText(), Lang: "en"}
	if state, ok := codec.Attrib(n, "s"); ok {
		s.State = state
	}
	if lang, ok := codec.Attrib(n, "lang"); ok {
		s.Lang = lang
	}
	return s
}

// Statement is one data-collection-policy statement of a greeting.
type Statement struct {
	Purpose   []string
	Recipient []string
	Retention string
}

// TestResult is one result element of a technical check.
type TestResult struct {
	Testname string
	Status   bool
	Note     string
}

func ExtractTestResult(d *codec.Decoder, n *xmlquery.Node) TestResult {
	status, _ := codec.ParseBool(d.Text(n, "./nsset:status"))
	return TestResult{
		Testname: d.Text(n, "./nsset:testname"),
		Status:   status,
		Note:     d.Text(n, "./nsset:note"),
	}
}
