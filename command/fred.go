package command

import (
	"strconv"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/xmlutil"
)

// extCommand wraps a fred payload in the extcommand element. These
// commands travel in <extension> directly under <epp>.
func extCommand(set schema.Set, body codec.Node, extract response.Extractor) Details {
	return Details{
		Payload:    codec.Elem(xmlutil.Name("extcommand", set.Fred), body),
		ExtCommand: true,
		Extract:    extract,
	}
}

// CreditInfo asks for the remaining credit per zone.
type CreditInfo struct{}

func (CreditInfo) Details(set schema.Set) Details {
	return extCommand(set,
		codec.Elem(xmlutil.Name("creditInfo", set.Fred)),
		response.ExtractCreditInfo,
	)
}

func sendAuthInfo(set schema.Set, ns, tag, item string) Details {
	return extCommand(set,
		codec.Elem(xmlutil.Name("sendAuthInfo", set.Fred),
			codec.Elem(xmlutil.Name("sendAuthInfo", ns),
				codec.Text(xmlutil.Name(tag, ns), item),
			),
		),
		nil,
	)
}

// SendAuthInfoDomain asks the registry to mail the domain's transfer
// password to its holder.
type SendAuthInfoDomain struct {
	Name string
}

func (c SendAuthInfoDomain) Details(set schema.Set) Details {
	return sendAuthInfo(set, set.Domain, "name", c.Name)
}

// SendAuthInfoContact asks for the contact's transfer password.
type SendAuthInfoContact struct {
	ID string
}

func (c SendAuthInfoContact) Details(set schema.Set) Details {
	return sendAuthInfo(set, set.Contact, "id", c.ID)
}

// SendAuthInfoNsset asks for the nsset's transfer password.
type SendAuthInfoNsset struct {
	ID string
}

func (c SendAuthInfoNsset) Details(set schema.Set) Details {
	return sendAuthInfo(set, set.Nsset, "id", c.ID)
}

// SendAuthInfoKeyset asks for the keyset's transfer password.
type SendAuthInfoKeyset struct {
	ID string
}

func (c SendAuthInfoKeyset) Details(set schema.Set) Details {
	return sendAuthInfo(set, set.Keyset, "id", c.ID)
}

// TestNsset starts a technical check of an nsset. The outcome arrives
// asynchronously through the poll queue. Level 0 keeps the registry
// default; Names restricts the check to the given domains.
type TestNsset struct {
	ID    string
	Level int
	Names []string
}

func (c TestNsset) Details(set schema.Set) Details {
	ns := set.Nsset
	test := codec.Elem(xmlutil.Name("test", ns),
		codec.Text(xmlutil.Name("id", ns), c.ID),
	)
	if c.Level > 0 {
		test.Add(codec.Text(xmlutil.Name("level", ns), strconv.Itoa(c.Level)))
	}
	for _, name := range c.Names {
		test.Add(codec.Text(xmlutil.Name("name", ns), name))
	}
	return extCommand(set,
		codec.Elem(xmlutil.Name("test", set.Fred), test),
		nil,
	)
}
