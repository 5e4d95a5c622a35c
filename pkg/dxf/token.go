// Package dxf decodes DXF drawings into the normalized scene model.
//
// DXF is treated as a flat stream of (group code, value) string pairs with
// no nesting. Layer table entries and entities are both introduced by a
// code-0 record whose value names the record type (LAYER, LINE, CIRCLE).
package dxf

import "strings"

// Token is one group-code/value pair from a DXF stream.
type Token struct {
	Code  string
	Value string
}

// Tokenize splits a DXF text buffer into group-code tokens. Lines are
// trimmed and paired positionally: even lines are codes, odd lines are
// values. A trailing unpaired line is dropped.
func Tokenize(data []byte) []Token {
	lines := strings.Split(string(data), "\n")

	tokens := make([]Token, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		tokens = append(tokens, Token{
			Code:  strings.TrimSpace(lines[i]),
			Value: strings.TrimSpace(lines[i+1]),
		})
	}
	return tokens
}
