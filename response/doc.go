/*
Package response decodes EPP response and greeting documents.

A Parser bound to a namespace set turns raw frames into Response
values: the result tuples, transaction ids, the message-queue notice
with its typed poll messages, and, when the command declared an
Extractor, a typed resData payload. Greetings are decoded separately
since they carry no result structure.

Server failure codes are not errors here. A response decodes
successfully whatever its code; only structural defects (malformed
XML, missing response element, zero result tuples) surface as errors.
*/
package response
