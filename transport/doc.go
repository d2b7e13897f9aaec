/*
Package transport provides the EPP transport layer.

A Conn owns the TLS socket and converts between the raw byte stream and
discrete protocol frames using the length-prefix framing. Every read
and write is bounded by a deadline; expiry surfaces as a
epperr.TransportError whose Timeout method reports true. Whether a
timed-out command may be retried depends on its idempotence and is the
caller's decision.
*/
package transport
