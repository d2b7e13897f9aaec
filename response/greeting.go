package response

import (
	"github.com/antchfx/xmlquery"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/epperr"
	"github.com/regkit/epp/model"
)

// Greeting is the unsolicited capability advertisement the server
// sends after connect and in reply to hello.
type Greeting struct {
	SvID     string
	SvDate   string
	Versions []string
	Langs    []string
	ObjURIs  []string
	ExtURIs  []string

	// Data collection policy.
	Access     string
	Statements []model.Statement
	Expiry     *Expiry
}

// Expiry is the dcp expiry advertisement. Exactly one of the two
// fields is set: Absolute as a point in time, Relative as the lexical
// xsd:duration the server sent.
type Expiry struct {
	Absolute codec.DateTime
	Relative string
}

// ParseGreeting decodes a greeting frame.
func (p *Parser) ParseGreeting(raw []byte) (*Greeting, error) {
	doc, err := p.dec.Parse(raw)
	if err != nil {
		return nil, err
	}
	g := p.dec.Find(doc, "/epp:epp/epp:greeting")
	if g == nil {
		return nil, epperr.Parse("missing greeting element", epperr.WithRawResponse(raw))
	}
	if p.dec.Find(g, "./epp:svID") == nil {
		return nil, epperr.Parse("greeting missing svID element", epperr.WithRawResponse(raw))
	}

	out := &Greeting{
		SvID:     p.dec.Text(g, "./epp:svID"),
		SvDate:   p.dec.Text(g, "./epp:svDate"),
		Versions: p.dec.TextAll(g, "./epp:svcMenu/epp:version"),
		Langs:    p.dec.TextAll(g, "./epp:svcMenu/epp:lang"),
		ObjURIs:  p.dec.TextAll(g, "./epp:svcMenu/epp:objURI"),
		ExtURIs:  p.dec.TextAll(g, "./epp:svcMenu/epp:svcExtension/epp:extURI"),
	}

	if access := childElements(p.dec.Find(g, "./epp:dcp/epp:access")); len(access) > 0 {
		out.Access = access[0].Data
	}
	for _, st := range p.dec.FindAll(g, "./epp:dcp/epp:statement") {
		out.Statements = append(out.Statements, p.statement(st))
	}

	expiry, err := p.expiry(p.dec.Find(g, "./epp:dcp/epp:expiry"), raw)
	if err != nil {
		return nil, err
	}
	out.Expiry = expiry
	return out, nil
}

// statement reads one dcp statement; purpose, recipient and retention
// are advertised as empty marker elements whose names carry the value.
func (p *Parser) statement(n *xmlquery.Node) model.Statement {
	st := model.Statement{}
	for _, c := range childElements(p.dec.Find(n, "./epp:purpose")) {
		st.Purpose = append(st.Purpose, c.Data)
	}
	for _, c := range childElements(p.dec.Find(n, "./epp:recipient")) {
		st.Recipient = append(st.Recipient, c.Data)
	}
	if ret := childElements(p.dec.Find(n, "./epp:retention")); len(ret) > 0 {
		st.Retention = ret[0].Data
	}
	return st
}

func (p *Parser) expiry(n *xmlquery.Node, raw []byte) (*Expiry, error) {
	kids := childElements(n)
	if len(kids) == 0 {
		return nil, nil
	}
	spec := kids[0]
	switch spec.Data {
	case "absolute":
		dt, err := codec.ParseDateTime(spec.InnerText())
		if err != nil {
			return nil, epperr.Parse("bad absolute expiry",
				epperr.WithCause(err), epperr.WithRawResponse(raw))
		}
		return &Expiry{Absolute: dt}, nil
	case "relative":
		return &Expiry{Relative: spec.InnerText()}, nil
	}
	return nil, epperr.Parse("unknown expiry kind <"+spec.Data+">", epperr.WithRawResponse(raw))
}
