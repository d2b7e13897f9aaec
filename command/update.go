package command

import (
	"strconv"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/model"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// UpdateDomain changes domain data: admin contacts in and out, and
// new values for the chg fields. Empty chg fields stay untouched on
// the server.
type UpdateDomain struct {
	Name       string
	AddAdmins  []string
	RemAdmins  []string
	Nsset      string
	Keyset     string
	Registrant string
	AuthInfo   string
}

func (c UpdateDomain) Details(set schema.Set) Details {
	ns := set.Domain
	upd := codec.Elem(xmlutil.Name("update", ns),
		codec.Text(xmlutil.Name("name", ns), c.Name),
	)
	if len(c.AddAdmins) > 0 {
		add := codec.Elem(xmlutil.Name("add", ns))
		for _, admin := range c.AddAdmins {
			add.Add(codec.Text(xmlutil.Name("admin", ns), admin))
		}
		upd.Add(add)
	}
	if len(c.RemAdmins) > 0 {
		rem := codec.Elem(xmlutil.Name("rem", ns))
		for _, admin := range c.RemAdmins {
			rem.Add(codec.Text(xmlutil.Name("admin", ns), admin))
		}
		upd.Add(rem)
	}
	chg := codec.Elem(xmlutil.Name("chg", ns))
	if c.Nsset != "" {
		chg.Add(codec.Text(xmlutil.Name("nsset", ns), c.Nsset))
	}
	if c.Keyset != "" {
		chg.Add(codec.Text(xmlutil.Name("keyset", ns), c.Keyset))
	}
	if c.Registrant != "" {
		chg.Add(codec.Text(xmlutil.Name("registrant", ns), c.Registrant))
	}
	if c.AuthInfo != "" {
		chg.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}
	if len(chg.Children) > 0 {
		upd.Add(chg)
	}

	spec := codec.NewSpec(upd.Name,
		codec.Required(xmlutil.Name("name", ns)),
		codec.Optional(xmlutil.Name("add", ns)),
		codec.Optional(xmlutil.Name("rem", ns)),
		codec.Optional(xmlutil.Name("chg", ns)).Nested(codec.NewSpec(xmlutil.Name("chg", ns),
			codec.Optional(xmlutil.Name("nsset", ns)),
			codec.Optional(xmlutil.Name("keyset", ns)),
			codec.Optional(xmlutil.Name("registrant", ns)),
			codec.Optional(xmlutil.Name("authInfo", ns)),
		)),
	)
	return object(set, "update", upd, spec, nil)
}

// UpdateContact changes contact data. Only the non-zero chg fields
// are sent.
type UpdateContact struct {
	ID          string
	PostalInfo  *model.PostalInfo
	Voice       string
	Fax         string
	Email       string
	AuthInfo    string
	Disclose    *model.Disclose
	Vat         string
	Ident       *model.Ident
	NotifyEmail string
}

func (c UpdateContact) Details(set schema.Set) Details {
	ns := set.Contact
	upd := codec.Elem(xmlutil.Name("update", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
	)
	chg := codec.Elem(xmlutil.Name("chg", ns))
	if c.PostalInfo != nil {
		chg.Add(c.PostalInfo.Payload(ns))
	}
	if c.Voice != "" {
		chg.Add(codec.Text(xmlutil.Name("voice", ns), c.Voice))
	}
	if c.Fax != "" {
		chg.Add(codec.Text(xmlutil.Name("fax", ns), c.Fax))
	}
	if c.Email != "" {
		chg.Add(codec.Text(xmlutil.Name("email", ns), c.Email))
	}
	if c.AuthInfo != "" {
		chg.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}
	if c.Disclose != nil {
		chg.Add(c.Disclose.Payload(ns))
	}
	if c.Vat != "" {
		chg.Add(codec.Text(xmlutil.Name("vat", ns), c.Vat))
	}
	if c.Ident != nil {
		chg.Add(c.Ident.Payload(ns))
	}
	if c.NotifyEmail != "" {
		chg.Add(codec.Text(xmlutil.Name("notifyEmail", ns), c.NotifyEmail))
	}
	if len(chg.Children) > 0 {
		upd.Add(chg)
	}

	spec := codec.NewSpec(upd.Name,
		codec.Required(xmlutil.Name("id", ns)),
		codec.Optional(xmlutil.Name("chg", ns)).Nested(codec.NewSpec(xmlutil.Name("chg", ns),
			codec.Optional(xmlutil.Name("postalInfo", ns)),
			codec.Optional(xmlutil.Name("voice", ns)),
			codec.Optional(xmlutil.Name("fax", ns)),
			codec.Optional(xmlutil.Name("email", ns)),
			codec.Optional(xmlutil.Name("authInfo", ns)),
			codec.Optional(xmlutil.Name("disclose", ns)),
			codec.Optional(xmlutil.Name("vat", ns)),
			codec.Optional(xmlutil.Name("ident", ns)),
			codec.Optional(xmlutil.Name("notifyEmail", ns)),
		)),
	)
	return object(set, "update", upd, spec, nil)
}

// UpdateNsset changes nsset data: nameservers and tech contacts in
// and out, plus new authInfo or report level.
type UpdateNsset struct {
	ID          string
	AddNs       []model.Ns
	AddTechs    []string
	RemNames    []string
	RemTechs    []string
	AuthInfo    string
	ReportLevel *int
}

func (c UpdateNsset) Details(set schema.Set) Details {
	ns := set.Nsset
	upd := codec.Elem(xmlutil.Name("update", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
	)
	if len(c.AddNs) > 0 || len(c.AddTechs) > 0 {
		add := codec.Elem(xmlutil.Name("add", ns))
		for _, server := range c.AddNs {
			add.Add(server.Payload(ns))
		}
		for _, tech := range c.AddTechs {
			add.Add(codec.Text(xmlutil.Name("tech", ns), tech))
		}
		upd.Add(add)
	}
	if len(c.RemNames) > 0 || len(c.RemTechs) > 0 {
		rem := codec.Elem(xmlutil.Name("rem", ns))
		for _, name := range c.RemNames {
			rem.Add(codec.Text(xmlutil.Name("name", ns), name))
		}
		for _, tech := range c.RemTechs {
			rem.Add(codec.Text(xmlutil.Name("tech", ns), tech))
		}
		upd.Add(rem)
	}
	chg := codec.Elem(xmlutil.Name("chg", ns))
	if c.AuthInfo != "" {
		chg.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}
	if c.ReportLevel != nil {
		chg.Add(codec.Text(xmlutil.Name("reportlevel", ns), strconv.Itoa(*c.ReportLevel)))
	}
	if len(chg.Children) > 0 {
		upd.Add(chg)
	}

	spec := codec.NewSpec(upd.Name,
		codec.Required(xmlutil.Name("id", ns)),
		codec.Optional(xmlutil.Name("add", ns)).Nested(codec.NewSpec(xmlutil.Name("add", ns),
			codec.Repeated(xmlutil.Name("ns", ns), 0, codec.Unbounded),
			codec.Repeated(xmlutil.Name("tech", ns), 0, codec.Unbounded),
		)),
		codec.Optional(xmlutil.Name("rem", ns)).Nested(codec.NewSpec(xmlutil.Name("rem", ns),
			codec.Repeated(xmlutil.Name("name", ns), 0, codec.Unbounded),
			codec.Repeated(xmlutil.Name("tech", ns), 0, codec.Unbounded),
		)),
		codec.Optional(xmlutil.Name("chg", ns)).Nested(codec.NewSpec(xmlutil.Name("chg", ns),
			codec.Optional(xmlutil.Name("authInfo", ns)),
			codec.Optional(xmlutil.Name("reportlevel", ns)),
		)),
	)
	return object(set, "update", upd, spec, nil)
}

// UpdateKeyset changes keyset data: DNSKEY records and tech contacts
// in and out, plus new authInfo.
type UpdateKeyset struct {
	ID         string
	AddDnskeys []model.Dnskey
	AddTechs   []string
	RemDnskeys []model.Dnskey
	RemTechs   []string
	AuthInfo   string
}

func (c UpdateKeyset) Details(set schema.Set) Details {
	ns := set.Keyset
	upd := codec.Elem(xmlutil.Name("update", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
	)
	if len(c.AddDnskeys) > 0 || len(c.AddTechs) > 0 {
		add := codec.Elem(xmlutil.Name("add", ns))
		for _, key := range c.AddDnskeys {
			add.Add(key.Payload(ns))
		}
		for _, tech := range c.AddTechs {
			add.Add(codec.Text(xmlutil.Name("tech", ns), tech))
		}
		upd.Add(add)
	}
	if len(c.RemDnskeys) > 0 || len(c.RemTechs) > 0 {
		rem := codec.Elem(xmlutil.Name("rem", ns))
		for _, key := range c.RemDnskeys {
			rem.Add(key.Payload(ns))
		}
		for _, tech := range c.RemTechs {
			rem.Add(codec.Text(xmlutil.Name("tech", ns), tech))
		}
		upd.Add(rem)
	}
	if c.AuthInfo != "" {
		upd.Add(codec.Elem(xmlutil.Name("chg", ns),
			codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo),
		))
	}

	spec := codec.NewSpec(upd.Name,
		codec.Required(xmlutil.Name("id", ns)),
		codec.Optional(xmlutil.Name("add", ns)).Nested(codec.NewSpec(xmlutil.Name("add", ns),
			codec.Repeated(xmlutil.Name("dnskey", ns), 0, codec.Unbounded),
			codec.Repeated(xmlutil.Name("tech", ns), 0, codec.Unbounded),
		)),
		codec.Optional(xmlutil.Name("rem", ns)).Nested(codec.NewSpec(xmlutil.Name("rem", ns),
			codec.Repeated(xmlutil.Name("dnskey", ns), 0, codec.Unbounded),
			codec.Repeated(xmlutil.Name("tech", ns), 0, codec.Unbounded),
		)),
		codec.Optional(xmlutil.Name("chg", ns)),
	)
	return object(set, "update", upd, spec, nil)
}
