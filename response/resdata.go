package response

import (
	"github.com/antchfx/xmlquery"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/model"
)

// CheckItem is one availability entry of a check response. Value is
// the domain name or object id as echoed by the server.
type CheckItem struct {
	Value  string
	Avail  bool
	Reason string
}

func checkItems(p *Parser, resData *xmlquery.Node, alias, tag string) (interface{}, error) {
	var items []CheckItem
	for _, cd := range p.dec.FindAll(resData, "./"+alias+":chkData/"+alias+":cd") {
		item := CheckItem{
			Value:  p.dec.Text(cd, "./"+alias+":"+tag),
			Reason: p.dec.Text(cd, "./"+alias+":reason"),
		}
		if v := p.dec.Find(cd, "./"+alias+":"+tag); v != nil {
			if avail, ok := codec.Attrib(v, "avail"); ok {
				item.Avail, _ = codec.ParseBool(avail)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// Check extractors return []CheckItem.

func ExtractCheckDomains(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return checkItems(p, resData, "domain", "name")
}

func ExtractCheckContacts(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return checkItems(p, resData, "contact", "id")
}

func ExtractCheckNssets(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return checkItems(p, resData, "nsset", "id")
}

func ExtractCheckKeysets(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return checkItems(p, resData, "keyset", "id")
}

// InfoObject carries the fields common to every info result.
type InfoObject struct {
	Roid     string
	Statuses []model.Status
	ClID     string
	CrID     string
	CrDate   codec.DateTime
	UpID     string
	UpDate   codec.DateTime
	TrDate   codec.DateTime
	AuthInfo string
}

func (p *Parser) infoObject(inf *xmlquery.Node, alias string, raw []byte) (InfoObject, error) {
	obj := InfoObject{
		Roid:     p.dec.Text(inf, "./"+alias+":roid"),
		ClID:     p.dec.Text(inf, "./"+alias+":clID"),
		CrID:     p.dec.Text(inf, "./"+alias+":crID"),
		UpID:     p.dec.Text(inf, "./"+alias+":upID"),
		AuthInfo: p.dec.Text(inf, "./"+alias+":authInfo"),
	}
	for _, st := range p.dec.FindAll(inf, "./"+alias+":status") {
		obj.Statuses = append(obj.Statuses, model.ExtractStatus(st))
	}
	var err error
	if obj.CrDate, err = p.date(inf, "./"+alias+":crDate", raw); err != nil {
		return obj, err
	}
	if obj.UpDate, err = p.date(inf, "./"+alias+":upDate", raw); err != nil {
		return obj, err
	}
	if obj.TrDate, err = p.date(inf, "./"+alias+":trDate", raw); err != nil {
		return obj, err
	}
	return obj, nil
}

// InfoDomain is the resData payload of an info domain response.
type InfoDomain struct {
	InfoObject
	Name       string
	Registrant string
	Admins     []string
	Nsset      string
	Keyset     string
	ExDate     codec.DateTime
}

func ExtractInfoDomain(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	inf := p.dec.Find(resData, "./domain:infData")
	if inf == nil {
		return nil, nil
	}
	obj, err := p.infoObject(inf, "domain", nil)
	if err != nil {
		return nil, err
	}
	out := &InfoDomain{
		InfoObject: obj,
		Name:       p.dec.Text(inf, "./domain:name"),
		Registrant: p.dec.Text(inf, "./domain:registrant"),
		Admins:     p.dec.TextAll(inf, "./domain:admin"),
		Nsset:      p.dec.Text(inf, "./domain:nsset"),
		Keyset:     p.dec.Text(inf, "./domain:keyset"),
	}
	if out.ExDate, err = p.date(inf, "./domain:exDate", nil); err != nil {
		return nil, err
	}
	return out, nil
}

// InfoContact is the resData payload of an info contact response.
type InfoContact struct {
	InfoObject
	ID          string
	PostalInfo  model.PostalInfo
	Voice       string
	Fax         string
	Email       string
	Disclose    *model.Disclose
	Vat         string
	Ident       *model.Ident
	NotifyEmail string
}

func ExtractInfoContact(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	inf := p.dec.Find(resData, "./contact:infData")
	if inf == nil {
		return nil, nil
	}
	obj, err := p.infoObject(inf, "contact", nil)
	if err != nil {
		return nil, err
	}
	out := &InfoContact{
		InfoObject:  obj,
		ID:          p.dec.Text(inf, "./contact:id"),
		Voice:       p.dec.Text(inf, "./contact:voice"),
		Fax:         p.dec.Text(inf, "./contact:fax"),
		Email:       p.dec.Text(inf, "./contact:email"),
		Disclose:    model.ExtractDisclose(p.dec, p.dec.Find(inf, "./contact:disclose")),
		Vat:         p.dec.Text(inf, "./contact:vat"),
		Ident:       model.ExtractIdent(p.dec, p.dec.Find(inf, "./contact:ident")),
		NotifyEmail: p.dec.Text(inf, "./contact:notifyEmail"),
	}
	if pi := p.dec.Find(inf, "./contact:postalInfo"); pi != nil {
		out.PostalInfo = model.ExtractPostalInfo(p.dec, pi, "contact")
	}
	return out, nil
}

// InfoNsset is the resData payload of an info nsset response.
type InfoNsset struct {
	InfoObject
	ID          string
	Ns          []model.Ns
	Techs       []string
	ReportLevel int
}

func ExtractInfoNsset(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	inf := p.dec.Find(resData, "./nsset:infData")
	if inf == nil {
		return nil, nil
	}
	obj, err := p.infoObject(inf, "nsset", nil)
	if err != nil {
		return nil, err
	}
	out := &InfoNsset{
		InfoObject: obj,
		ID:         p.dec.Text(inf, "./nsset:id"),
		Techs:      p.dec.TextAll(inf, "./nsset:tech"),
	}
	out.ReportLevel, _ = p.dec.Int(inf, "./nsset:reportlevel")
	for _, ns := range p.dec.FindAll(inf, "./nsset:ns") {
		out.Ns = append(out.Ns, model.ExtractNs(p.dec, ns))
	}
	return out, nil
}

// InfoKeyset is the resData payload of an info keyset response.
type InfoKeyset struct {
	InfoObject
	ID      string
	Dnskeys []model.Dnskey
	Techs   []string
}

func ExtractInfoKeyset(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	inf := p.dec.Find(resData, "./keyset:infData")
	if inf == nil {
		return nil, nil
	}
	obj, err := p.infoObject(inf, "keyset", nil)
	if err != nil {
		return nil, err
	}
	out := &InfoKeyset{
		InfoObject: obj,
		ID:         p.dec.Text(inf, "./keyset:id"),
		Techs:      p.dec.TextAll(inf, "./keyset:tech"),
	}
	for _, k := range p.dec.FindAll(inf, "./keyset:dnskey") {
		out.Dnskeys = append(out.Dnskeys, model.ExtractDnskey(p.dec, k))
	}
	return out, nil
}

// CreateDomain is the resData payload of a create domain response.
type CreateDomain struct {
	Name   string
	CrDate codec.DateTime
	ExDate codec.DateTime
}

func ExtractCreateDomain(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	cre := p.dec.Find(resData, "./domain:creData")
	if cre == nil {
		return nil, nil
	}
	out := &CreateDomain{Name: p.dec.Text(cre, "./domain:name")}
	var err error
	if out.CrDate, err = p.date(cre, "./domain:crDate", nil); err != nil {
		return nil, err
	}
	if out.ExDate, err = p.date(cre, "./domain:exDate", nil); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateObject is the resData payload of contact, nsset and keyset
// create responses.
type CreateObject struct {
	ID     string
	CrDate codec.DateTime
}

func createObject(p *Parser, resData *xmlquery.Node, alias string) (interface{}, error) {
	cre := p.dec.Find(resData, "./"+alias+":creData")
	if cre == nil {
		return nil, nil
	}
	out := &CreateObject{ID: p.dec.Text(cre, "./"+alias+":id")}
	var err error
	if out.CrDate, err = p.date(cre, "./"+alias+":crDate", nil); err != nil {
		return nil, err
	}
	return out, nil
}

func ExtractCreateContact(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return createObject(p, resData, "contact")
}

func ExtractCreateNsset(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return createObject(p, resData, "nsset")
}

func ExtractCreateKeyset(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	return createObject(p, resData, "keyset")
}

// RenewDomain is the resData payload of a renew domain response.
type RenewDomain struct {
	Name   string
	ExDate codec.DateTime
}

func ExtractRenewDomain(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	ren := p.dec.Find(resData, "./domain:renData")
	if ren == nil {
		return nil, nil
	}
	out := &RenewDomain{Name: p.dec.Text(ren, "./domain:name")}
	var err error
	if out.ExDate, err = p.date(ren, "./domain:exDate", nil); err != nil {
		return nil, err
	}
	return out, nil
}

// ZoneCredit is one zone entry of a credit info response. Credit is a
// decimal amount kept in its lexical form.
type ZoneCredit struct {
	Zone   string
	Credit string
}

func ExtractCreditInfo(p *Parser, resData *xmlquery.Node) (interface{}, error) {
	var credits []ZoneCredit
	for _, zc := range p.dec.FindAll(resData, "./fred:resCreditInfo/fred:zoneCredit") {
		credits = append(credits, ZoneCredit{
			Zone:   p.dec.Text(zc, "./fred:zone"),
			Credit: p.dec.Text(zc, "./fred:credit"),
		})
	}
	return credits, nil
}
