package command

import (
	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/model"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// RenewDomain extends a registration. CurExDate must match the
// expiration date the registry holds; it guards against renewing on
// stale data.
type RenewDomain struct {
	Name      string
	CurExDate string
	Period    *model.Period
}

func (c RenewDomain) Details(set schema.Set) Details {
	ns := set.Domain
	ren := codec.Elem(xmlutil.Name("renew", ns),
		codec.Text(xmlutil.Name("name", ns), c.Name),
		codec.Text(xmlutil.Name("curExpDate", ns), c.CurExDate),
	)
	if c.Period != nil {
		ren.Add(c.Period.Payload(ns))
	}

	spec := codec.NewSpec(ren.Name,
		codec.Required(xmlutil.Name("name", ns)),
		codec.Required(xmlutil.Name("curExpDate", ns)),
		codec.Optional(xmlutil.Name("period", ns)),
	)
	return object(set, "renew", ren, spec, response.ExtractRenewDomain)
}
