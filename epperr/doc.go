/*
Package epperr defines the error taxonomy of the EPP client.

Transport failures (ConnectionError, TransportError, FrameError) are
fatal to the connection. Decoding failures (ParseError,
EmptyResponseError) leave the session state unchanged and carry the raw
payload for diagnostics. ProtocolSequenceError indicates incorrect use
of the session state machine or a transaction-id echo mismatch.

Protocol-level failure result codes (2000-2999) are not errors: they
are fully decoded responses, and their classification belongs to the
caller.
*/
package epperr
