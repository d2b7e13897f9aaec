package command

import (
	"strconv"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/model"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// CreateDomain registers a domain under the given registrant.
type CreateDomain struct {
	Name       string
	Registrant string
	Period     *model.Period
	Nsset      string
	Keyset     string
	Admins     []string
	AuthInfo   string
}

func (c CreateDomain) Details(set schema.Set) Details {
	ns := set.Domain
	cre := codec.Elem(xmlutil.Name("create", ns),
		codec.Text(xmlutil.Name("name", ns), c.Name),
		codec.Text(xmlutil.Name("registrant", ns), c.Registrant),
	)
	if c.Period != nil {
		cre.Add(c.Period.Payload(ns))
	}
	if c.Nsset != "" {
		cre.Add(codec.Text(xmlutil.Name("nsset", ns), c.Nsset))
	}
	if c.Keyset != "" {
		cre.Add(codec.Text(xmlutil.Name("keyset", ns), c.Keyset))
	}
	for _, admin := range c.Admins {
		cre.Add(codec.Text(xmlutil.Name("admin", ns), admin))
	}
	if c.AuthInfo != "" {
		cre.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}

	spec := codec.NewSpec(cre.Name,
		codec.Required(xmlutil.Name("name", ns)),
		codec.Optional(xmlutil.Name("period", ns)),
		codec.Optional(xmlutil.Name("nsset", ns)),
		codec.Optional(xmlutil.Name("keyset", ns)),
		codec.Required(xmlutil.Name("registrant", ns)),
		codec.Repeated(xmlutil.Name("admin", ns), 0, codec.Unbounded),
		codec.Optional(xmlutil.Name("authInfo", ns)),
	)
	return object(set, "create", cre, spec, response.ExtractCreateDomain)
}

// CreateContact registers a contact.
type CreateContact struct {
	ID          string
	PostalInfo  model.PostalInfo
	Voice       string
	Fax         string
	Email       string
	Vat         string
	Ident       *model.Ident
	NotifyEmail string
	Disclose    *model.Disclose
	AuthInfo    string
}

func (c CreateContact) Details(set schema.Set) Details {
	ns := set.Contact
	cre := codec.Elem(xmlutil.Name("create", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
		c.PostalInfo.Payload(ns),
		codec.Text(xmlutil.Name("email", ns), c.Email),
	)
	if c.Voice != "" {
		cre.Add(codec.Text(xmlutil.Name("voice", ns), c.Voice))
	}
	if c.Fax != "" {
		cre.Add(codec.Text(xmlutil.Name("fax", ns), c.Fax))
	}
	if c.Vat != "" {
		cre.Add(codec.Text(xmlutil.Name("vat", ns), c.Vat))
	}
	if c.Ident != nil {
		cre.Add(c.Ident.Payload(ns))
	}
	if c.NotifyEmail != "" {
		cre.Add(codec.Text(xmlutil.Name("notifyEmail", ns), c.NotifyEmail))
	}
	if c.Disclose != nil {
		cre.Add(c.Disclose.Payload(ns))
	}
	if c.AuthInfo != "" {
		cre.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}

	spec := codec.NewSpec(cre.Name,
		codec.Required(xmlutil.Name("id", ns)),
		codec.Required(xmlutil.Name("postalInfo", ns)),
		codec.Optional(xmlutil.Name("voice", ns)),
		codec.Optional(xmlutil.Name("fax", ns)),
		codec.Required(xmlutil.Name("email", ns)),
		codec.Optional(xmlutil.Name("vat", ns)),
		codec.Optional(xmlutil.Name("ident", ns)),
		codec.Optional(xmlutil.Name("notifyEmail", ns)),
		codec.Optional(xmlutil.Name("disclose", ns)),
		codec.Optional(xmlutil.Name("authInfo", ns)),
	)
	return object(set, "create", cre, spec, response.ExtractCreateContact)
}

// CreateNsset registers a set of nameservers.
type CreateNsset struct {
	ID          string
	Ns          []model.Ns
	Techs       []string
	ReportLevel *int
	AuthInfo    string
}

func (c CreateNsset) Details(set schema.Set) Details {
	ns := set.Nsset
	cre := codec.Elem(xmlutil.Name("create", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
	)
	if c.AuthInfo != "" {
		cre.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}
	for _, server := range c.Ns {
		cre.Add(server.Payload(ns))
	}
	for _, tech := range c.Techs {
		cre.Add(codec.Text(xmlutil.Name("tech", ns), tech))
	}
	if c.ReportLevel != nil {
		cre.Add(codec.Text(xmlutil.Name("reportlevel", ns), strconv.Itoa(*c.ReportLevel)))
	}

	spec := codec.NewSpec(cre.Name,
		codec.Required(xmlutil.Name("id", ns)),
		codec.Optional(xmlutil.Name("authInfo", ns)),
		codec.Repeated(xmlutil.Name("ns", ns), 1, codec.Unbounded),
		codec.Repeated(xmlutil.Name("tech", ns), 1, codec.Unbounded),
		codec.Optional(xmlutil.Name("reportlevel", ns)),
	)
	return object(set, "create", cre, spec, response.ExtractCreateNsset)
}

// CreateKeyset registers a set of DNSKEY records.
type CreateKeyset struct {
	ID       string
	Dnskeys  []model.Dnskey
	Techs    []string
	AuthInfo string
}

func (c CreateKeyset) Details(set schema.Set) Details {
	ns := set.Keyset
	cre := codec.Elem(xmlutil.Name("create", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
	)
	if c.AuthInfo != "" {
		cre.Add(codec.Text(xmlutil.Name("authInfo", ns), c.AuthInfo))
	}
	for _, key := range c.Dnskeys {
		cre.Add(key.Payload(ns))
	}
	for _, tech := range c.Techs {
		cre.Add(codec.Text(xmlutil.Name("tech", ns), tech))
	}

	spec := codec.NewSpec(cre.Name,
		codec.Required(xmlutil.Name("id", ns)),
		codec.Optional(xmlutil.Name("authInfo", ns)),
		codec.Repeated(xmlutil.Name("dnskey", ns), 1, codec.Unbounded),
		codec.Repeated(xmlutil.Name("tech", ns), 1, codec.Unbounded),
	)
	return object(set, "create", cre, spec, response.ExtractCreateKeyset)
}
