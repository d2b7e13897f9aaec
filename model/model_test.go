package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// render wraps the node in a command document and returns the XML.
func render(t *testing.T, n codec.Node) string {
	t.Helper()
	payload := codec.Elem(xmlutil.Name("create", schema.NSEPP), n)
	out, err := codec.NewEncoder(schema.FRED()).Command(payload, nil, nil, "")
	require.NoError(t, err)
	return string(out)
}

func TestAddrPayload(t *testing.T) {
	ns := schema.FRED().Contact
	got := render(t, Addr{
		Street: []string{"Milesovska 5", "Floor 3"},
		City:   "Praha 3",
		Pc:     "130 00",
		Cc:     "CZ",
	}.Payload(ns))
	assert.Contains(t, got,
		`<contact:addr xmlns:contact="http://www.nic.cz/xml/epp/contact-1.6">`+
			`<contact:street>Milesovska 5</contact:street>`+
			`<contact:street>Floor 3</contact:street>`+
			`<contact:city>Praha 3</contact:city>`+
			`<contact:pc>130 00</contact:pc>`+
			`<contact:cc>CZ</contact:cc>`+
			`</contact:addr>`)
}

func TestAddrPayloadWithSp(t *testing.T) {
	ns := schema.FRED().Contact
	got := render(t, Addr{City: "Brno", Sp: "Morava", Pc: "602 00", Cc: "CZ"}.Payload(ns))
	// sp sits between city and pc per the schema sequence
	assert.Contains(t, got,
		`<contact:city>Brno</contact:city><contact:sp>Morava</contact:sp><contact:pc>602 00</contact:pc>`)
}

func TestDisclosePayloadSortsFields(t *testing.T) {
	ns := schema.FRED().Contact
	got := render(t, Disclose{
		Flag:   true,
		Fields: []DiscloseField{DiscloseVoice, DiscloseAddr, DiscloseEmail},
	}.Payload(ns))
	assert.Contains(t, got,
		`flag="1"><contact:addr/><contact:email/><contact:voice/></contact:disclose>`)
}

func TestPeriodPayload(t *testing.T) {
	got := render(t, Period{Length: 3, Unit: UnitYear}.Payload(schema.FRED().Domain))
	assert.Contains(t, got, `<domain:period unit="y">3</domain:period>`)
}

func TestDnskeyPayload(t *testing.T) {
	got := render(t, Dnskey{Flags: 257, Protocol: 3, Alg: 5, PubKey: "AwEAAddt2AkLf"}.Payload(schema.FRED().Keyset))
	assert.Contains(t, got,
		`<keyset:flags>257</keyset:flags>`+
			`<keyset:protocol>3</keyset:protocol>`+
			`<keyset:alg>5</keyset:alg>`+
			`<keyset:pubKey>AwEAAddt2AkLf</keyset:pubKey>`)
}

func TestNsPayload(t *testing.T) {
	got := render(t, Ns{Name: "ns1.example.cz", Addrs: []string{"217.31.207.130"}}.Payload(schema.FRED().Nsset))
	assert.Contains(t, got,
		`<nsset:name>ns1.example.cz</nsset:name><nsset:addr>217.31.207.130</nsset:addr>`)
}

const infoFragment = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
 <c:infData xmlns:c="http://www.nic.cz/xml/epp/contact-1.6">
  <c:postalInfo>
   <c:name>John Doe</c:name>
   <c:org>ACME</c:org>
   <c:addr>
    <c:street>Milesovska 5</c:street>
    <c:city>Praha 3</c:city>
    <c:pc>130 00</c:pc>
    <c:cc>CZ</c:cc>
   </c:addr>
  </c:postalInfo>
  <c:status s="ok" lang="en">Object is without restrictions</c:status>
  <c:disclose flag="0"><c:voice/><c:email/></c:disclose>
  <c:ident type="op">12345</c:ident>
 </c:infData>
</epp>`

func TestExtractors(t *testing.T) {
	ck := assert.New(t)
	d := codec.NewDecoder(schema.FRED())
	doc, err := d.Parse([]byte(infoFragment))
	require.NoError(t, err)

	pi := ExtractPostalInfo(d, d.Find(doc, "//contact:postalInfo"), "contact")
	ck.Equal("John Doe", pi.Name)
	ck.Equal("ACME", pi.Org)
	require.NotNil(t, pi.Addr)
	ck.Equal([]string{"Milesovska 5"}, pi.Addr.Street)
	ck.Equal("Praha 3", pi.Addr.City)
	ck.Equal("CZ", pi.Addr.Cc)

	st := ExtractStatus(d.Find(doc, "//contact:status"))
	ck.Equal(Status{State: "ok", Description: "Object is without restrictions", Lang: "en"}, st)

	dc := ExtractDisclose(d, d.Find(doc, "//contact:disclose"))
	require.NotNil(t, dc)
	ck.False(dc.Flag)
	ck.Equal([]DiscloseField{DiscloseVoice, DiscloseEmail}, dc.Fields)

	id := ExtractIdent(d, d.Find(doc, "//contact:ident"))
	require.NotNil(t, id)
	ck.Equal(IdentOp, id.Type)
	ck.Equal("12345", id.Value)

	ck.Nil(ExtractDisclose(d, nil))
	ck.Nil(ExtractIdent(d, nil))
}

func TestExtractDnskey(t *testing.T) {
	doc := `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
 <k:dnskey xmlns:k="http://www.nic.cz/xml/epp/keyset-1.3">
  <k:flags>257</k:flags><k:protocol>3</k:protocol><k:alg>5</k:alg><k:pubKey>AwEAA</k:pubKey>
 </k:dnskey>
</epp>`
	d := codec.NewDecoder(schema.FRED())
	n, err := d.Parse([]byte(doc))
	require.NoError(t, err)
	got := ExtractDnskey(d, d.Find(n, "//keyset:dnskey"))
	assert.Equal(t, Dnskey{Flags: 257, Protocol: 3, Alg: 5, PubKey: "AwEAA"}, got)
}
