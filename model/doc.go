/*
Package model holds the EPP value types shared by commands and
responses: addresses, postal info, disclose policies, registration
periods, nameserver and DNSKEY records, object statuses.

Each type knows how to render itself as a codec payload node in a given
object namespace and how to extract itself from a decoded response
element; which namespace applies is decided by the caller's schema.Set.
*/
package model
