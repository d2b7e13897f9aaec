/*
Package epp is a client implementation of the Extensible Provisioning
Protocol (RFC 5730) over its TLS transport (RFC 5734).

The libraries split the protocol into layers: length-prefix frame
encoding and decoding (framing), the TLS connection owning socket I/O
(transport), a declaration-driven XML codec turning typed commands into
schema-conformant documents and registry replies back into typed results
(codec, model, command, response), and the synchronous session state
machine orchestrating connect, greeting, login, command exchange and
logout (session).

The registry grammar is configuration: namespace URIs and schema
locations are carried by a schema.Set value handed to the session and
the model layer, with ready-made sets for the IETF standard schemas and
the FRED registry family (domain, contact, nsset, keyset and the fred
extension).

See the session package for the client entry point.
*/
package epp
