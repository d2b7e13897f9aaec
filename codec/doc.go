/*
Package codec is the generic XML (de)serialization substrate of the
client.

Commands are value trees (Node) paired with per-command declarations
(Spec) listing child order and cardinality; one encoder consumes any
declaration, so new object types are added by supplying declarations,
not serialization code. Decoding locates response elements by
namespace-qualified path, tolerant of formatting variance, with the
namespace set supplied as configuration.
*/
package codec
