/*
Package session drives a single EPP connection through its lifecycle.

A Client connects, reads the greeting, authenticates with login, and
then exchanges commands one at a time over the half-duplex connection.
Every command gets a fresh client transaction id and the response's
echo is verified before the response is handed back. Responses with
failure result codes are ordinary responses; errors from Send mean the
exchange itself broke and, for transport failures, that the session is
gone.

	client := session.NewClient(cfg, schema.FRED())
	if _, err := client.Connect(); err != nil { ... }
	resp, err := client.Send(command.Login{ClID: id, Password: pw})
	...
	client.Send(command.Logout{})
*/
package session
