package command

import (
	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/schema"
)

// Login authenticates the registrar. The zero values of Version, Lang
// and the URI lists default to protocol version 1.0, English, and the
// namespace set's advertised URIs.
type Login struct {
	ClID        string
	Password    string
	NewPassword string
	Version     string
	Lang        string
	ObjURIs     []string
	ExtURIs     []string
}

func (l Login) Details(set schema.Set) Details {
	version := l.Version
	if version == "" {
		version = "1.0"
	}
	lang := l.Lang
	if lang == "" {
		lang = "en"
	}
	objURIs := l.ObjURIs
	if objURIs == nil {
		objURIs = set.ObjURIs()
	}
	extURIs := l.ExtURIs
	if extURIs == nil {
		extURIs = set.ExtURIs()
	}

	login := codec.Elem(epp(set, "login"),
		codec.Text(epp(set, "clID"), l.ClID),
		codec.Text(epp(set, "pw"), l.Password),
		codec.Elem(epp(set, "options"),
			codec.Text(epp(set, "version"), version),
			codec.Text(epp(set, "lang"), lang),
		),
	)
	if l.NewPassword != "" {
		login.Add(codec.Text(epp(set, "newPW"), l.NewPassword))
	}

	svcs := codec.Elem(epp(set, "svcs"))
	for _, uri := range objURIs {
		svcs.Add(codec.Text(epp(set, "objURI"), uri))
	}
	if len(extURIs) > 0 {
		svcExt := codec.Elem(epp(set, "svcExtension"))
		for _, uri := range extURIs {
			svcExt.Add(codec.Text(epp(set, "extURI"), uri))
		}
		svcs.Add(svcExt)
	}
	login.Add(svcs)

	spec := codec.NewSpec(epp(set, "login"),
		codec.Required(epp(set, "clID")),
		codec.Required(epp(set, "pw")),
		codec.Optional(epp(set, "newPW")),
		codec.Required(epp(set, "options")).Nested(codec.NewSpec(epp(set, "options"),
			codec.Required(epp(set, "version")),
			codec.Required(epp(set, "lang")),
		)),
		codec.Required(epp(set, "svcs")).Nested(codec.NewSpec(epp(set, "svcs"),
			codec.Repeated(epp(set, "objURI"), 1, codec.Unbounded),
			codec.Optional(epp(set, "svcExtension")).Nested(codec.NewSpec(epp(set, "svcExtension"),
				codec.Repeated(epp(set, "extURI"), 1, codec.Unbounded),
			)),
		)),
	)
	return Details{Payload: login, Spec: spec}
}

// Logout ends the authenticated session; the server closes the
// connection after answering.
type Logout struct{}

func (Logout) Details(set schema.Set) Details {
	return Details{Payload: codec.Elem(epp(set, "logout"))}
}

// PollReq asks for the oldest queued message.
type PollReq struct{}

func (PollReq) Details(set schema.Set) Details {
	return Details{
		Payload: codec.Elem(epp(set, "poll")).WithAttrs(codec.Attr("op", "req")),
	}
}

// PollAck dequeues the message with the given id.
type PollAck struct {
	MsgID string
}

func (a PollAck) Details(set schema.Set) Details {
	return Details{
		Payload: codec.Elem(epp(set, "poll")).WithAttrs(
			codec.Attr("op", "ack"),
			codec.Attr("msgID", a.MsgID),
		),
	}
}
