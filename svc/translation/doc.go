// Package translation serves identifier translations over HTTP.
//
// Routes:
//
//	GET  /v1/translations/{identifier}?lang=ru_ru
//	POST /v1/translations               {"identifiers": ["DIAMOND"], "lang": "de_de"}
//	GET  /v1/languages
//	GET  /health/live
//	GET  /health/ready
//
// When lang is omitted the Accept-Language header is negotiated against the
// languages the resolver can serve, then the resolver default is used. A
// missing translation is not an error: the response carries the original
// identifier with is_translated set to false.
package translation
