package ast

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

// bomUTF8 is the UTF-8 Byte Order Mark.
var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// NormalizeIdent strips a leading UTF-8 BOM and applies Unicode NFC
// normalization, so identifiers that are visually identical but differ in
// encoding compare equal under identifier byte-wise comparison.
//
// There is no lexer in this package (no text-source frontend is in scope),
// so normalization happens here, at the point host code hands the builder
// a name, rather than at a token boundary.
func NormalizeIdent(name string) string {
	b := bytes.TrimPrefix([]byte(name), bomUTF8)
	if norm.NFC.IsNormal(b) {
		if len(b) == len(name) {
			return name
		}
		return string(b)
	}
	return string(norm.NFC.Bytes(b))
}
