package command

import (
	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

func transfer(set schema.Set, ns, tag, item, authInfo string) Details {
	tr := codec.Elem(xmlutil.Name("transfer", ns),
		codec.Text(xmlutil.Name(tag, ns), item),
		codec.Text(xmlutil.Name("authInfo", ns), authInfo),
	)
	spec := codec.NewSpec(tr.Name,
		codec.Required(xmlutil.Name(tag, ns)),
		codec.Required(xmlutil.Name("authInfo", ns)),
	)
	d := object(set, "transfer", tr, spec, nil)
	d.Payload = d.Payload.WithAttrs(codec.Attr("op", "request"))
	return d
}

// TransferDomain requests a domain transfer to the calling registrar,
// authorized by the domain's transfer password.
type TransferDomain struct {
	Name     string
	AuthInfo string
}

func (c TransferDomain) Details(set schema.Set) Details {
	return transfer(set, set.Domain, "name", c.Name, c.AuthInfo)
}

// TransferContact requests a contact transfer.
type TransferContact struct {
	ID       string
	AuthInfo string
}

func (c TransferContact) Details(set schema.Set) Details {
	return transfer(set, set.Contact, "id", c.ID, c.AuthInfo)
}

// TransferNsset requests an nsset transfer.
type TransferNsset struct {
	ID       string
	AuthInfo string
}

func (c TransferNsset) Details(set schema.Set) Details {
	return transfer(set, set.Nsset, "id", c.ID, c.AuthInfo)
}

// TransferKeyset requests a keyset transfer.
type TransferKeyset struct {
	ID       string
	AuthInfo string
}

func (c TransferKeyset) Details(set schema.Set) Details {
	return transfer(set, set.Keyset, "id", c.ID, c.AuthInfo)
}
