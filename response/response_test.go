package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regkit/epp/epperr"
	"github.com/regkit/epp/schema"
)

const checkDomainResponse = `<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000">
      <msg lang="en">Command completed successfully</msg>
    </result>
    <resData>
      <domain:chkData xmlns:domain="http://www.nic.cz/xml/epp/domain-1.4">
        <domain:cd>
          <domain:name avail="1">free.cz</domain:name>
        </domain:cd>
        <domain:cd>
          <domain:name avail="0">taken.cz</domain:name>
          <domain:reason>already registered</domain:reason>
        </domain:cd>
      </domain:chkData>
    </resData>
    <trID>
      <clTRID>req-0001</clTRID>
      <svTRID>sv-42</svTRID>
    </trID>
  </response>
</epp>`

func TestParseCheckDomains(t *testing.T) {
	ck := assert.New(t)
	p := NewParser(schema.FRED())

	resp, err := p.Parse([]byte(checkDomainResponse), ExtractCheckDomains)
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	ck.Equal(1000, resp.Code())
	ck.Equal("Command completed successfully", resp.Message())
	ck.Equal("en", resp.Results[0].MsgLang)
	ck.True(resp.Success())
	ck.Equal("req-0001", resp.ClTRID)
	ck.Equal("sv-42", resp.SvTRID)

	items, ok := resp.Data.([]CheckItem)
	require.True(t, ok)
	require.Len(t, items, 2)
	ck.Equal(CheckItem{Value: "free.cz", Avail: true}, items[0])
	ck.Equal(CheckItem{Value: "taken.cz", Avail: false, Reason: "already registered"}, items[1])
}

func TestParseFailureCodeIsNotAnError(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="2303">
      <msg>Object does not exist</msg>
      <extValue>
        <value><dummy/></value>
        <reason>domain missing.cz not found</reason>
      </extValue>
    </result>
    <trID><clTRID>req-0002</clTRID><svTRID>sv-43</svTRID></trID>
  </response>
</epp>`
	ck := assert.New(t)
	p := NewParser(schema.FRED())

	resp, err := p.Parse([]byte(raw), nil)
	require.NoError(t, err)
	ck.False(resp.Success())
	ck.Equal(2303, resp.Code())
	require.Len(t, resp.Results[0].ExtValues, 1)
	ck.Equal("domain missing.cz not found", resp.Results[0].ExtValues[0].Reason)
}

func TestParseMultipleResults(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>ok</msg></result>
    <result code="2308"><msg>data management violation</msg></result>
    <trID><svTRID>sv-44</svTRID></trID>
  </response>
</epp>`
	p := NewParser(schema.FRED())
	resp, err := p.Parse([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2308, resp.Results[1].Code)
}

func TestParseEmptyResponse(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response></response></epp>`
	p := NewParser(schema.FRED())
	_, err := p.Parse([]byte(raw), nil)
	var empty *epperr.EmptyResponseError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, []byte(raw), empty.RawResponse)
}

func TestParseMissingResponseElement(t *testing.T) {
	p := NewParser(schema.FRED())
	_, err := p.Parse([]byte(`<?xml version="1.0"?><epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`), nil)
	var pe *epperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseMalformed(t *testing.T) {
	p := NewParser(schema.FRED())
	_, err := p.Parse([]byte("<epp><resp"), nil)
	var pe *epperr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []byte("<epp><resp"), pe.RawResponse)
}

func TestParseBadResultCode(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response><result code="one thousand"><msg>ok</msg></result></response>
</epp>`
	p := NewParser(schema.FRED())
	_, err := p.Parse([]byte(raw), nil)
	var pe *epperr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "not numeric")
}

const infoContactResponse = `<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>Command completed successfully</msg></result>
    <resData>
      <contact:infData xmlns:contact="http://www.nic.cz/xml/epp/contact-1.6">
        <contact:id>CID-MYCONTACT</contact:id>
        <contact:roid>C0009746170-CZ</contact:roid>
        <contact:status s="linked">The object is linked</contact:status>
        <contact:clID>REG-MYREG</contact:clID>
        <contact:crID>REG-MYREG</contact:crID>
        <contact:crDate>2017-07-25T08:21:00+02:00</contact:crDate>
        <contact:postalInfo>
          <contact:name>John Doe</contact:name>
          <contact:addr>
            <contact:street>Milesovska 5</contact:street>
            <contact:city>Praha 3</contact:city>
            <contact:pc>130 00</contact:pc>
            <contact:cc>CZ</contact:cc>
          </contact:addr>
        </contact:postalInfo>
        <contact:voice>+420.222745111</contact:voice>
        <contact:email>info@example.cz</contact:email>
        <contact:ident type="op">84322155</contact:ident>
        <contact:authInfo>a6tg85jk57yu97</contact:authInfo>
      </contact:infData>
    </resData>
    <trID><clTRID>req-0003</clTRID><svTRID>sv-45</svTRID></trID>
  </response>
</epp>`

func TestParseInfoContact(t *testing.T) {
	ck := assert.New(t)
	p := NewParser(schema.FRED())

	resp, err := p.Parse([]byte(infoContactResponse), ExtractInfoContact)
	require.NoError(t, err)

	info, ok := resp.Data.(*InfoContact)
	require.True(t, ok)
	ck.Equal("CID-MYCONTACT", info.ID)
	ck.Equal("C0009746170-CZ", info.Roid)
	require.Len(t, info.Statuses, 1)
	ck.Equal("linked", info.Statuses[0].State)
	ck.Equal("REG-MYREG", info.ClID)
	ck.Equal("2017-07-25T08:21:00+02:00", info.CrDate.String())
	ck.Equal("John Doe", info.PostalInfo.Name)
	require.NotNil(t, info.PostalInfo.Addr)
	ck.Equal("Praha 3", info.PostalInfo.Addr.City)
	ck.Equal("+420.222745111", info.Voice)
	require.NotNil(t, info.Ident)
	ck.Equal("84322155", info.Ident.Value)
	ck.Equal("a6tg85jk57yu97", info.AuthInfo)
	ck.True(info.UpDate.IsZero())
}

const infoDomainResponse = `<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>Command completed successfully</msg></result>
    <resData>
      <domain:infData xmlns:domain="http://www.nic.cz/xml/epp/domain-1.4">
        <domain:name>mydomain.cz</domain:name>
        <domain:roid>D0009907597-CZ</domain:roid>
        <domain:status s="ok">Object is without restrictions</domain:status>
        <domain:registrant>CID-MYOWN</domain:registrant>
        <domain:admin>CID-ADMIN1</domain:admin>
        <domain:admin>CID-ADMIN2</domain:admin>
        <domain:nsset>NID-MYNSSET</domain:nsset>
        <domain:clID>REG-MYREG</domain:clID>
        <domain:crID>REG-MYREG</domain:crID>
        <domain:crDate>2017-07-11T13:28:48+02:00</domain:crDate>
        <domain:exDate>2020-07-11</domain:exDate>
      </domain:infData>
    </resData>
    <trID><clTRID>req-0004</clTRID><svTRID>sv-46</svTRID></trID>
  </response>
</epp>`

func TestParseInfoDomain(t *testing.T) {
	ck := assert.New(t)
	p := NewParser(schema.FRED())

	resp, err := p.Parse([]byte(infoDomainResponse), ExtractInfoDomain)
	require.NoError(t, err)

	info, ok := resp.Data.(*InfoDomain)
	require.True(t, ok)
	ck.Equal("mydomain.cz", info.Name)
	ck.Equal("CID-MYOWN", info.Registrant)
	ck.Equal([]string{"CID-ADMIN1", "CID-ADMIN2"}, info.Admins)
	ck.Equal("NID-MYNSSET", info.Nsset)
	ck.Equal("", info.Keyset)
	ck.Equal("2020-07-11", info.ExDate.String())
}

func TestParseCreateAndRenew(t *testing.T) {
	ck := assert.New(t)
	p := NewParser(schema.FRED())

	const creData = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>ok</msg></result>
    <resData>
      <domain:creData xmlns:domain="http://www.nic.cz/xml/epp/domain-1.4">
        <domain:name>new.cz</domain:name>
        <domain:crDate>2018-07-11T13:28:48+02:00</domain:crDate>
        <domain:exDate>2021-07-11</domain:exDate>
      </domain:creData>
    </resData>
  </response>
</epp>`
	resp, err := p.Parse([]byte(creData), ExtractCreateDomain)
	require.NoError(t, err)
	cre, ok := resp.Data.(*CreateDomain)
	require.True(t, ok)
	ck.Equal("new.cz", cre.Name)
	ck.Equal("2021-07-11", cre.ExDate.String())

	const renData = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>ok</msg></result>
    <resData>
      <domain:renData xmlns:domain="http://www.nic.cz/xml/epp/domain-1.4">
        <domain:name>new.cz</domain:name>
        <domain:exDate>2024-07-11</domain:exDate>
      </domain:renData>
    </resData>
  </response>
</epp>`
	resp, err = p.Parse([]byte(renData), ExtractRenewDomain)
	require.NoError(t, err)
	ren, ok := resp.Data.(*RenewDomain)
	require.True(t, ok)
	ck.Equal("2024-07-11", ren.ExDate.String())
}

func TestParseCreditInfo(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>ok</msg></result>
    <resData>
      <fred:resCreditInfo xmlns:fred="http://www.nic.cz/xml/epp/fred-1.5">
        <fred:zoneCredit>
          <fred:zone>cz</fred:zone>
          <fred:credit>4999.00</fred:credit>
        </fred:zoneCredit>
        <fred:zoneCredit>
          <fred:zone>0.2.4.e164.arpa</fred:zone>
          <fred:credit>1234.50</fred:credit>
        </fred:zoneCredit>
      </fred:resCreditInfo>
    </resData>
  </response>
</epp>`
	p := NewParser(schema.FRED())
	resp, err := p.Parse([]byte(raw), ExtractCreditInfo)
	require.NoError(t, err)
	credits, ok := resp.Data.([]ZoneCredit)
	require.True(t, ok)
	assert.Equal(t, []ZoneCredit{
		{Zone: "cz", Credit: "4999.00"},
		{Zone: "0.2.4.e164.arpa", Credit: "1234.50"},
	}, credits)
}
