package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrefixMap(t *testing.T) {
	ck := assert.New(t)
	m := NewPrefixMap(
		xml.Attr{Name: xml.Name{Space: "xmlns", Local: "epp"}, Value: "urn:ietf:params:xml:ns:epp-1.0"},
		xml.Attr{Name: xml.Name{Local: "lang"}, Value: "en"},
	)
	ck.Equal("urn:ietf:params:xml:ns:epp-1.0", m.Namespace("epp"))
	ck.Equal("", m.Namespace("domain"))
}

func TestPrefix(t *testing.T) {
	ck := assert.New(t)
	m := PrefixMap{}.
		Bind("domain", "http://www.nic.cz/xml/epp/domain-1.4").
		Bind("d", "http://www.nic.cz/xml/epp/domain-1.4").
		Bind("contact", "http://www.nic.cz/xml/epp/contact-1.6")

	ck.Equal([]string{"d", "domain"}, m.Prefixes("http://www.nic.cz/xml/epp/domain-1.4"))

	pfx, ok := m.Prefix("http://www.nic.cz/xml/epp/domain-1.4")
	ck.True(ok)
	ck.Equal("d", pfx)

	_, ok = m.Prefix("urn:example:unbound")
	ck.False(ok)
}

func TestQualify(t *testing.T) {
	ck := assert.New(t)
	m := PrefixMap{}.Bind("contact", "http://www.nic.cz/xml/epp/contact-1.6")
	ck.Equal("contact:id", m.Qualify(xml.Name{Space: "http://www.nic.cz/xml/epp/contact-1.6", Local: "id"}))
	ck.Equal("clTRID", m.Qualify(xml.Name{Local: "clTRID"}))
	ck.Equal("id", m.Qualify(xml.Name{Space: "urn:example:unbound", Local: "id"}))
}

func TestAttr(t *testing.T) {
	m := PrefixMap{}.
		Bind("nsset", "http://www.nic.cz/xml/epp/nsset-1.2").
		Bind("keyset", "http://www.nic.cz/xml/epp/keyset-1.3")
	attrs := m.Attr()
	assert.Equal(t, []xml.Attr{
		{Name: xml.Name{Space: "xmlns", Local: "keyset"}, Value: "http://www.nic.cz/xml/epp/keyset-1.3"},
		{Name: xml.Name{Space: "xmlns", Local: "nsset"}, Value: "http://www.nic.cz/xml/epp/nsset-1.2"},
	}, attrs)
}
