// Package server is the HTTP surface of the service: the chi router, the
// bearer-token middleware, and the handlers for registration, login,
// classification and taxonomy entry management.
//
// Status mapping follows the pipeline's degrade policy: only admission
// rejection (429) and embedding failure (500) are non-success outcomes of
// /api/classify; a sentinel label triple still travels as 200.
package server
