package response

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/epperr"
	"github.com/regkit/epp/schema"
)

// Result is one <result> tuple of a response. A response carries at
// least one; servers may attach several on partial failures.
type Result struct {
	Code      int
	Msg       string
	MsgLang   string
	Values    []string
	ExtValues []ExtValue
}

// ExtValue is one <extValue> child of a result: the offending value
// plus a human-readable reason.
type ExtValue struct {
	Value  string
	Reason string
}

// Success reports whether the code is in the 1xxx success range.
// Failure codes are still valid responses, not errors; the caller
// decides what a 2xxx code means for its use case.
func (r Result) Success() bool {
	return r.Code >= 1000 && r.Code < 2000
}

// Response is a fully decoded <epp><response> document.
type Response struct {
	Results []Result
	ClTRID  string
	SvTRID  string

	// MsgQ is the message-queue notice, present on poll responses and
	// on any response sent while messages are waiting.
	MsgQ *MsgQ

	// Data holds the typed resData payload when the command declared
	// an extractor and the server sent a resData block, nil otherwise.
	Data interface{}

	// Raw is the response frame as received.
	Raw []byte
}

// Code returns the first result's code.
func (r *Response) Code() int {
	return r.Results[0].Code
}

// Message returns the first result's message.
func (r *Response) Message() string {
	return r.Results[0].Msg
}

// Success reports whether the first result succeeded.
func (r *Response) Success() bool {
	return r.Results[0].Success()
}

// Extractor turns a resData element into a command-specific typed
// payload. Implementations live alongside the result types in this
// package; commands name the extractor that matches their verb.
type Extractor func(p *Parser, resData *xmlquery.Node) (interface{}, error)

// Parser decodes response and greeting documents for one namespace
// set. Safe for concurrent use.
type Parser struct {
	dec *codec.Decoder
	set schema.Set
}

// NewParser returns a Parser bound to the given namespace set.
func NewParser(set schema.Set) *Parser {
	return &Parser{dec: codec.NewDecoder(set), set: set}
}

// Set returns the namespace set the parser is bound to.
func (p *Parser) Set() schema.Set { return p.set }

// Decoder exposes the underlying query decoder for extractors.
func (p *Parser) Decoder() *codec.Decoder { return p.dec }

// Parse decodes a response frame. Malformed XML and a missing
// response structure surface as ParseError with the raw frame
// attached; a well-formed response with zero result tuples surfaces
// as EmptyResponseError, a server defect distinct from wire
// corruption.
func (p *Parser) Parse(raw []byte, extract Extractor) (*Response, error) {
	doc, err := p.dec.Parse(raw)
	if err != nil {
		return nil, err
	}
	resp := p.dec.Find(doc, "/epp:epp/epp:response")
	if resp == nil {
		return nil, epperr.Parse("missing response element", epperr.WithRawResponse(raw))
	}

	nodes := p.dec.FindAll(resp, "./epp:result")
	if len(nodes) == 0 {
		return nil, epperr.EmptyResponse(raw)
	}

	out := &Response{Raw: raw}
	for _, n := range nodes {
		res, err := p.result(n, raw)
		if err != nil {
			return nil, err
		}
		out.Results = append(out.Results, res)
	}

	out.ClTRID = p.dec.Text(resp, "./epp:trID/epp:clTRID")
	out.SvTRID = p.dec.Text(resp, "./epp:trID/epp:svTRID")

	if q := p.dec.Find(resp, "./epp:msgQ"); q != nil {
		msgQ, err := p.msgQ(q, raw)
		if err != nil {
			return nil, err
		}
		out.MsgQ = msgQ
	}

	if extract != nil {
		if resData := p.dec.Find(resp, "./epp:resData"); resData != nil {
			data, err := extract(p, resData)
			if err != nil {
				return nil, err
			}
			out.Data = data
		}
	}
	return out, nil
}

func (p *Parser) result(n *xmlquery.Node, raw []byte) (Result, error) {
	codeAttr, ok := codec.Attrib(n, "code")
	if !ok {
		return Result{}, epperr.Parse("result code attribute missing", epperr.WithRawResponse(raw))
	}
	code, err := strconv.Atoi(codeAttr)
	if err != nil {
		return Result{}, epperr.Parse("result code is not numeric",
			epperr.WithCause(err), epperr.WithRawResponse(raw))
	}

	res := Result{
		Code:   code,
		Msg:    p.dec.Text(n, "./epp:msg"),
		Values: p.dec.TextAll(n, "./epp:value"),
	}
	if msg := p.dec.Find(n, "./epp:msg"); msg != nil {
		res.MsgLang, _ = codec.Attrib(msg, "lang")
	}
	for _, ev := range p.dec.FindAll(n, "./epp:extValue") {
		res.ExtValues = append(res.ExtValues, ExtValue{
			Value:  p.dec.Text(ev, "./epp:value"),
			Reason: p.dec.Text(ev, "./epp:reason"),
		})
	}
	return res, nil
}

// date parses an optional dateTime element; absence yields the zero
// DateTime, a bad lexical form a ParseError.
func (p *Parser) date(n *xmlquery.Node, path string, raw []byte) (codec.DateTime, error) {
	s := p.dec.Text(n, path)
	if s == "" {
		return codec.DateTime{}, nil
	}
	dt, err := codec.ParseDateTime(s)
	if err != nil {
		return codec.DateTime{}, epperr.Parse("bad dateTime value "+strconv.Quote(s),
			epperr.WithCause(err), epperr.WithRawResponse(raw))
	}
	return dt, nil
}

// childElements returns the element children of n.
func childElements(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
