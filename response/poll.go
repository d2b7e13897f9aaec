package response

import (
	"github.com/antchfx/xmlquery"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/model"
)

// MsgQ is the message-queue notice of a response. Msg holds the typed
// poll message when the notice carries one (poll req responses do,
// ordinary responses only advertise Count and ID).
type MsgQ struct {
	Count int
	ID    string
	QDate codec.DateTime
	Msg   interface{}
}

// LowCredit reports a zone credit dropping below the registrar's
// limit. Amounts are decimals kept in lexical form.
type LowCredit struct {
	Zone       string
	CreditZone string
	Credit     string
	LimitZone  string
	Limit      string
}

// RequestUsage is the periodical request fee report. Price is a
// decimal kept in lexical form.
type RequestUsage struct {
	PeriodFrom     codec.DateTime
	PeriodTo       codec.DateTime
	TotalFreeCount int
	UsedCount      int
	Price          string
}

// ExpirationKind discriminates the domain lifecycle notices, named
// after the element the registry sends.
type ExpirationKind string

const (
	ImpendingExpiration ExpirationKind = "impendingExpData"
	Expiration          ExpirationKind = "expData"
	DNSOutage           ExpirationKind = "dnsOutageData"
	PendingDeletion     ExpirationKind = "delData"
)

// DomainExpiration is a domain lifecycle notice.
type DomainExpiration struct {
	Kind   ExpirationKind
	Name   string
	ExDate codec.DateTime
}

// ObjectTransfer reports an object transferred away. Handle is the
// domain name or object id.
type ObjectTransfer struct {
	Object string
	Handle string
	TrDate codec.DateTime
	ClID   string
}

// ObjectUpdate reports a server-side update of an object the registrar
// sponsors. OldData and NewData hold the object states before and
// after, as sent.
type ObjectUpdate struct {
	Object  string
	OpTRID  string
	OldData *xmlquery.Node
	NewData *xmlquery.Node
}

// IdleDeletion reports an unused object deleted by the registry.
type IdleDeletion struct {
	Object string
	ID     string
}

// TechCheckResult is the outcome of an asynchronous nsset technical
// check.
type TechCheckResult struct {
	ID      string
	Names   []string
	Results []model.TestResult
}

// RawMessage is the fallback for poll messages this package has no
// typed mapping for; the decoded element is kept for the caller.
type RawMessage struct {
	Node *xmlquery.Node
}

func (p *Parser) msgQ(q *xmlquery.Node, raw []byte) (*MsgQ, error) {
	out := &MsgQ{}
	out.Count, _ = p.dec.Int(q, "./@count")
	out.ID, _ = codec.Attrib(q, "id")

	var err error
	if out.QDate, err = p.date(q, "./epp:qDate", raw); err != nil {
		return nil, err
	}

	body := childElements(p.dec.Find(q, "./epp:msg"))
	if len(body) == 0 {
		return out, nil
	}
	if out.Msg, err = p.pollMessage(body[0], raw); err != nil {
		return nil, err
	}
	return out, nil
}

// pollMessage maps the msg body element to its typed representation
// by namespace and local name, falling back to RawMessage.
func (p *Parser) pollMessage(n *xmlquery.Node, raw []byte) (interface{}, error) {
	switch n.NamespaceURI {
	case p.set.Fred:
		switch n.Data {
		case "lowCreditData":
			return p.lowCredit(n), nil
		case "requestFeeInfoData":
			return p.requestUsage(n, raw)
		}
	case p.set.Domain:
		switch n.Data {
		case "impendingExpData", "expData", "dnsOutageData", "delData":
			return p.domainExpiration(n, raw)
		case "trnData":
			return p.objectTransfer(n, "domain", "name", raw)
		case "updateData":
			return p.objectUpdate(n, "domain"), nil
		}
	case p.set.Contact:
		switch n.Data {
		case "trnData":
			return p.objectTransfer(n, "contact", "id", raw)
		case "idleDelData":
			return &IdleDeletion{Object: "contact", ID: p.dec.Text(n, "./contact:id")}, nil
		case "updateData":
			return p.objectUpdate(n, "contact"), nil
		}
	case p.set.Nsset:
		switch n.Data {
		case "trnData":
			return p.objectTransfer(n, "nsset", "id", raw)
		case "idleDelData":
			return &IdleDeletion{Object: "nsset", ID: p.dec.Text(n, "./nsset:id")}, nil
		case "testData":
			return p.techCheckResult(n), nil
		case "updateData":
			return p.objectUpdate(n, "nsset"), nil
		}
	case p.set.Keyset:
		switch n.Data {
		case "trnData":
			return p.objectTransfer(n, "keyset", "id", raw)
		case "idleDelData":
			return &IdleDeletion{Object: "keyset", ID: p.dec.Text(n, "./keyset:id")}, nil
		case "updateData":
			return p.objectUpdate(n, "keyset"), nil
		}
	}
	return &RawMessage{Node: n}, nil
}

func (p *Parser) lowCredit(n *xmlquery.Node) *LowCredit {
	return &LowCredit{
		Zone:       p.dec.Text(n, "./fred:zone"),
		CreditZone: p.dec.Text(n, "./fred:credit/fred:zone"),
		Credit:     p.dec.Text(n, "./fred:credit/fred:credit"),
		LimitZone:  p.dec.Text(n, "./fred:limit/fred:zone"),
		Limit:      p.dec.Text(n, "./fred:limit/fred:credit"),
	}
}

func (p *Parser) requestUsage(n *xmlquery.Node, raw []byte) (*RequestUsage, error) {
	out := &RequestUsage{Price: p.dec.Text(n, "./fred:price")}
	out.TotalFreeCount, _ = p.dec.Int(n, "./fred:totalFreeCount")
	out.UsedCount, _ = p.dec.Int(n, "./fred:usedCount")
	var err error
	if out.PeriodFrom, err = p.date(n, "./fred:periodFrom", raw); err != nil {
		return nil, err
	}
	if out.PeriodTo, err = p.date(n, "./fred:periodTo", raw); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) domainExpiration(n *xmlquery.Node, raw []byte) (*DomainExpiration, error) {
	out := &DomainExpiration{
		Kind: ExpirationKind(n.Data),
		Name: p.dec.Text(n, "./domain:name"),
	}
	var err error
	if out.ExDate, err = p.date(n, "./domain:exDate", raw); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) objectTransfer(n *xmlquery.Node, alias, tag string, raw []byte) (*ObjectTransfer, error) {
	out := &ObjectTransfer{
		Object: alias,
		Handle: p.dec.Text(n, "./"+alias+":"+tag),
		ClID:   p.dec.Text(n, "./"+alias+":clID"),
	}
	var err error
	if out.TrDate, err = p.date(n, "./"+alias+":trDate", raw); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) objectUpdate(n *xmlquery.Node, alias string) *ObjectUpdate {
	return &ObjectUpdate{
		Object:  alias,
		OpTRID:  p.dec.Text(n, "./"+alias+":opTRID"),
		OldData: p.dec.Find(n, "./"+alias+":oldData"),
		NewData: p.dec.Find(n, "./"+alias+":newData"),
	}
}

func (p *Parser) techCheckResult(n *xmlquery.Node) *TechCheckResult {
	out := &TechCheckResult{
		ID:    p.dec.Text(n, "./nsset:id"),
		Names: p.dec.TextAll(n, "./nsset:name"),
	}
	for _, r := range p.dec.FindAll(n, "./nsset:result") {
		out.Results = append(out.Results, model.ExtractTestResult(p.dec, r))
	}
	return out
}
