package command

import (
	"encoding/xml"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// epp names a protocol-namespace element of the set.
func epp(set schema.Set, local string) xml.Name {
	return xmlutil.Name(local, set.EPP)
}

// Details is everything the session needs to put one command on the
// wire and decode its answer: the payload tree, the sequence
// declaration the encoder orders it by, optional extension blocks,
// and the extractor for the typed resData payload.
type Details struct {
	Payload codec.Node
	Spec    *codec.Spec
	Exts    []codec.Node

	// ExtCommand marks commands carried in <extension> directly under
	// <epp> instead of <command>, the fred extcommand document shape.
	ExtCommand bool

	Extract response.Extractor
}

// Command is a typed EPP request. Details renders it against a
// namespace set; the set decides which registry's URIs the object
// elements carry.
type Command interface {
	Details(set schema.Set) Details
}

// object wraps an object-namespace payload in its protocol verb
// element and declares the two-level sequence.
func object(set schema.Set, verb string, obj codec.Node, objSpec *codec.Spec, extract response.Extractor) Details {
	payload := codec.Elem(epp(set, verb), obj)
	spec := codec.NewSpec(payload.Name, codec.Required(obj.Name).Nested(objSpec))
	return Details{Payload: payload, Spec: spec, Extract: extract}
}
