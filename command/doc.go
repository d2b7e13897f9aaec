/*
Package command defines the typed EPP requests.

Each command is a plain value; Details renders it against a namespace
set into the payload tree, the sequence declaration the encoder
orders it by, and the extractor for its typed response payload. The
codec owns ordering and cardinality, so a command only states which
elements it carries; adding an object type means writing a new
declaration, not new serialization logic.

The fred extension commands (credit info, send auth info, technical
check) use a different document shape and are marked accordingly; the
session routes them through the encoder's extension path.
*/
package command
