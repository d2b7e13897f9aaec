package command

import (
	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

func check(set schema.Set, ns, tag string, items []string, extract response.Extractor) Details {
	chk := codec.Elem(xmlutil.Name("check", ns))
	for _, item := range items {
		chk.Add(codec.Text(xmlutil.Name(tag, ns), item))
	}
	spec := codec.NewSpec(chk.Name,
		codec.Repeated(xmlutil.Name(tag, ns), 1, codec.Unbounded),
	)
	return object(set, "check", chk, spec, extract)
}

// CheckDomains queries the availability of one or more domain names.
type CheckDomains struct {
	Names []string
}

func (c CheckDomains) Details(set schema.Set) Details {
	return check(set, set.Domain, "name", c.Names, response.ExtractCheckDomains)
}

// CheckContacts queries the availability of contact ids.
type CheckContacts struct {
	IDs []string
}

func (c CheckContacts) Details(set schema.Set) Details {
	return check(set, set.Contact, "id", c.IDs, response.ExtractCheckContacts)
}

// CheckNssets queries the availability of nsset ids.
type CheckNssets struct {
	IDs []string
}

func (c CheckNssets) Details(set schema.Set) Details {
	return check(set, set.Nsset, "id", c.IDs, response.ExtractCheckNssets)
}

// CheckKeysets queries the availability of keyset ids.
type CheckKeysets struct {
	IDs []string
}

func (c CheckKeysets) Details(set schema.Set) Details {
	return check(set, set.Keyset, "id", c.IDs, response.ExtractCheckKeysets)
}
