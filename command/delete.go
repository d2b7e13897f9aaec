package command

import (
	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

func del(set schema.Set, ns, tag, item string) Details {
	d := codec.Elem(xmlutil.Name("delete", ns),
		codec.Text(xmlutil.Name(tag, ns), item),
	)
	spec := codec.NewSpec(d.Name, codec.Required(xmlutil.Name(tag, ns)))
	return object(set, "delete", d, spec, nil)
}

// DeleteDomain removes a domain. The registry refuses the delete
// while other objects reference it.
type DeleteDomain struct {
	Name string
}

func (c DeleteDomain) Details(set schema.Set) Details {
	return del(set, set.Domain, "name", c.Name)
}

// DeleteContact removes a contact.
type DeleteContact struct {
	ID string
}

func (c DeleteContact) Details(set schema.Set) Details {
	return del(set, set.Contact, "id", c.ID)
}

// DeleteNsset removes an nsset.
type DeleteNsset struct {
	ID string
}

func (c DeleteNsset) Details(set schema.Set) Details {
	return del(set, set.Nsset, "id", c.ID)
}

// DeleteKeyset removes a keyset.
type DeleteKeyset struct {
	ID string
}

func (c DeleteKeyset) Details(set schema.Set) Details {
	return del(set, set.Keyset, "id", c.ID)
}
