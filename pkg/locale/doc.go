// Package locale picks a game language for an HTTP request from its
// Accept-Language header.
//
// Game codes such as "pt_br" are mapped to BCP 47 tags and matched with
// golang.org/x/text/language, so "pt-BR,pt;q=0.9" selects pt_br and "de"
// selects de_de when that is the only German variant offered.
package locale
