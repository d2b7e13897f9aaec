package command

import (
	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

func info(set schema.Set, ns, tag, item string, extract response.Extractor) Details {
	inf := codec.Elem(xmlutil.Name("info", ns),
		codec.Text(xmlutil.Name(tag, ns), item),
	)
	spec := codec.NewSpec(inf.Name, codec.Required(xmlutil.Name(tag, ns)))
	return object(set, "info", inf, spec, extract)
}

// InfoDomain queries the state of one domain.
type InfoDomain struct {
	Name string
}

func (c InfoDomain) Details(set schema.Set) Details {
	return info(set, set.Domain, "name", c.Name, response.ExtractInfoDomain)
}

// InfoContact queries the state of one contact.
type InfoContact struct {
	ID string
}

func (c InfoContact) Details(set schema.Set) Details {
	return info(set, set.Contact, "id", c.ID, response.ExtractInfoContact)
}

// InfoNsset queries the state of one nsset.
type InfoNsset struct {
	ID string
}

func (c InfoNsset) Details(set schema.Set) Details {
	return info(set, set.Nsset, "id", c.ID, response.ExtractInfoNsset)
}

// InfoKeyset queries the state of one keyset.
type InfoKeyset struct {
	ID string
}

func (c InfoKeyset) Details(set schema.Set) Details {
	return info(set, set.Keyset, "id", c.ID, response.ExtractInfoKeyset)
}
