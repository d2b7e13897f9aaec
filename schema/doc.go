/*
Package schema carries the namespace configuration of a registry.

The exact element names, ordering and cardinalities of EPP documents
are fixed by externally supplied XSD schema documents; which schema
family is in force is configuration. A Set value names the object and
extension namespace URIs and is handed to the model layer and the
session at construction time. There is no global mutable namespace
table.
*/
package schema
