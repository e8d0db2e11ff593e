package asn1der

import "strings"

var (
	OIDECPublicKey     = OID{1, 2, 840, 10045, 2, 1}
	OIDECDSAWithSHA256 = OID{1, 2, 840, 10045, 4, 3, 2}
	OIDECDSAWithSHA384 = OID{1, 2, 840, 10045, 4, 3, 3}
	OIDECDSAWithSHA512 = OID{1, 2, 840, 10045, 4, 3, 4}
	OIDPrime256v1      = OID{1, 2, 840, 10045, 3, 1, 7}
	OIDSecp256k1       = OID{1, 3, 132, 0, 10}
	OIDSecp384r1       = OID{1, 3, 132, 0, 34}
	OIDSecp521r1       = OID{1, 3, 132, 0, 35}
)

var oidNames = []struct {
	name string
	oid  OID
}{
	{"id-ecPublicKey", OIDECPublicKey},
	{"ecdsa-with-SHA256", OIDECDSAWithSHA256},
	{"ecdsa-with-SHA384", OIDECDSAWithSHA384},
	{"ecdsa-with-SHA512", OIDECDSAWithSHA512},
	{"prime256v1", OIDPrime256v1},
	{"secp256k1", OIDSecp256k1},
	{"secp384r1", OIDSecp384r1},
	{"secp521r1", OIDSecp521r1},
}

var oidByName = map[string]OID{}

func init() {
	for _, n := range oidNames {
		oidByName[strings.ToLower(n.name)] = n.oid
	}
}

// OIDName returns the conventional name of a well known curve or algorithm
// identifier, or the dotted form when the OID is not known.
func OIDName(oid OID) string {
	for _, n := range oidNames {
		if n.oid.Equal(oid) {
			return n.name
		}
	}
	return oid.String()
}
