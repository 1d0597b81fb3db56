package naming

import (
	"strings"
	"unicode"
)

// commonInitialisms are kept fully upper-cased when a snake_case key is
// turned back into a Go field name, so "order_id" hydrates to "OrderID".
var commonInitialisms = map[string]struct{}{
	"ACL": {}, "API": {}, "ASCII": {}, "CPU": {}, "CSS": {}, "DNS": {}, "EOF": {}, "GUID": {},
	"HTML": {}, "HTTP": {}, "HTTPS": {}, "ID": {}, "IP": {}, "JSON": {}, "LHS": {}, "QPS": {},
	"RAM": {}, "RHS": {}, "RPC": {}, "SKU": {}, "SLA": {}, "SMTP": {}, "SQL": {}, "SSH": {},
	"TCP": {}, "TLS": {}, "TTL": {}, "UDP": {}, "UI": {}, "UID": {}, "URI": {}, "URL": {},
	"UTF8": {}, "UUID": {}, "VM": {}, "XML": {}, "XMPP": {}, "XSRF": {}, "XSS": {},
}

// Underscore converts Go field names to snake_case keys and back.
//
//   - "IsActive" <-> "is_active"
//   - "OrderID" <-> "order_id"
//   - "XMLParser" <-> "xml_parser"
type Underscore struct{}

func (Underscore) Extract(name string) string {
	tokens := TokenizeIdent(name)
	return strings.Join(tokens, "_")
}

func (Underscore) Hydrate(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for token := range strings.SplitSeq(name, "_") {
		if token == "" {
			continue
		}

		upper := strings.ToUpper(token)
		if _, ok := commonInitialisms[upper]; ok {
			b.WriteString(upper)
			continue
		}

		runes := []rune(token)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	return b.String()
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
