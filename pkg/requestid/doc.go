// Package requestid attaches a correlation identifier to every HTTP
// request.
//
// A client-supplied X-Request-ID is validated and reused; anything missing
// or malformed is replaced with a fresh UUIDv4. The ID is stored in the
// request context, echoed in the response header, and exposed to the
// logger via LoggerExtractor so every record of a request carries the same
// identifier.
package requestid
