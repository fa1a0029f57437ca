// Package http implements the REST API of the vault server.
//
// It wires chi routes for authentication, the wrapped key and encrypted
// records, plus middleware for panics, trace ids, access logging, gzip and
// bearer-token authentication. Handlers never look inside envelopes; they
// decode the request, call the service layer and map its errors to status
// codes.
package http
