/*
Package framing offers the RFC5734 length-prefix frame encoding.

Each protocol message on the wire is a 4 byte big-endian length header,
counting the header itself plus the payload, followed by the payload (a
complete UTF-8 XML document). Split returns a bufio.SplitFunc for use
with a *bufio.Scanner and will return io.ErrUnexpectedEOF when input
terminates other than at a frame boundary.
*/
package framing
