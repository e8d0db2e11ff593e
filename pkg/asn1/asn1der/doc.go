// Package asn1der is a small Distinguished Encoding Rules codec covering the
// handful of ASN.1 types needed to carry elliptic-curve signatures and keys:
// SEQUENCE, INTEGER, BIT STRING, OCTET STRING, OBJECT IDENTIFIER and
// context-specific constructed values.
//
// Encoders return complete TLV units. Decoders take the remaining input and
// return the decoded value together with every byte after the consumed unit,
// so a caller walks a structure by passing the remainder back in:
//
//	body, rest, err := asn1der.RemoveSequence(data)
//	r, body, err := asn1der.RemoveInteger(body)
//
// There is no parser state; all functions are safe for concurrent use.
package asn1der
