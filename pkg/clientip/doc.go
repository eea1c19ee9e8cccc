// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers are spoofable, so an Extractor only reads the headers it
// was told to trust, for example "CF-Connecting-IP" behind Cloudflare or
// "X-Forwarded-For" behind a proxy that overwrites it. Without trusted
// headers the TCP peer address is used.
//
//	ips := clientip.New("X-Forwarded-For")
//	r.Use(ips.Middleware)
//
//	ip := clientip.FromContext(req.Context())
package clientip
