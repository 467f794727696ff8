package dirsyn

import "time"

/*
matchvalues.go implements the remaining matching-rule functions
referenced by the matchingRuleAssertions registry in common.go. Each
is grounded on an existing RFC constructor the same way booleanMatch
(bool.go) and uuidMatch (uuid.go) are grounded on their own typed
constructors.
*/

/*
distinguishedNameMatch implements [§ 4.2.15 of RFC 4517].

OID: 2.5.13.1.

[§ 4.2.15 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.15
*/
func distinguishedNameMatch(a, b any) (result Boolean, err error) {
	var r RFC4517
	var A, B *DistinguishedName
	if A, err = r.DistinguishedName(a); err != nil {
		return
	}
	if B, err = r.DistinguishedName(b); err != nil {
		return
	}

	result.Set(A.Equal(B))

	return
}

/*
uniqueMemberMatch implements [§ 4.2.31 of RFC 4517].

OID: 2.5.13.23.

[§ 4.2.31 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.31
*/
func uniqueMemberMatch(a, b any) (result Boolean, err error) {
	var r RFC4517
	var A, B NameAndOptionalUID
	if A, err = r.NameAndOptionalUID(a); err != nil {
		return
	}
	if B, err = r.NameAndOptionalUID(b); err != nil {
		return
	}

	dnA, dnB := A.DN, B.DN
	result.Set(dnA.Equal(&dnB) && A.UID.String() == B.UID.String())

	return
}

/*
generalizedTimeMatch implements [§ 4.2.16 of RFC 4517].

OID: 2.5.13.27.

[§ 4.2.16 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.16
*/
func generalizedTimeMatch(a, b any) (result Boolean, err error) {
	var r RFC4517
	var A, B GeneralizedTime
	if A, err = r.GeneralizedTime(a); err != nil {
		return
	}
	if B, err = r.GeneralizedTime(b); err != nil {
		return
	}

	result.Set(time.Time(A).Equal(time.Time(B)))

	return
}

/*
generalizedTimeOrderingMatch implements [§ 4.2.17 of RFC 4517].

OID: 2.5.13.28.

[§ 4.2.17 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.17
*/
func generalizedTimeOrderingMatch(a, b any, operator byte) (result Boolean, err error) {
	var r RFC4517
	var A, B GeneralizedTime
	if A, err = r.GeneralizedTime(a); err != nil {
		return
	}
	if B, err = r.GeneralizedTime(b); err != nil {
		return
	}

	ta, tb := time.Time(A), time.Time(B)
	if operator == GreaterOrEqual {
		result.Set(ta.After(tb) || ta.Equal(tb))
	} else {
		result.Set(ta.Before(tb) || ta.Equal(tb))
	}

	return
}

/*
canonicalOID returns the canonical dotted-decimal or descriptor string
form of x, whichever form it conforms to.
*/
func canonicalOID(x any) (s string, err error) {
	var r RFC4512
	var noid NumericOID
	if noid, err = r.NumericOID(x); err == nil {
		s = noid.String()
		return
	}

	var descr Descriptor
	if descr, err = r.Descriptor(x); err == nil {
		s = string(descr)
		err = nil
	}

	return
}

/*
objectIdentifierMatch implements [§ 4.2.26 of RFC 4517].

OID: 2.5.13.0.

[§ 4.2.26 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.26
*/
func objectIdentifierMatch(a, b any) (result Boolean, err error) {
	var A, B string
	if A, err = canonicalOID(a); err != nil {
		return
	}
	if B, err = canonicalOID(b); err != nil {
		return
	}

	result.Set(eqf(A, B))

	return
}

/*
objectIdentifierFirstComponentMatch implements [§ 4.2.25 of RFC 4517].

OID: 2.5.13.30.

[§ 4.2.25 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.25
*/
func objectIdentifierFirstComponentMatch(a, b any) (result Boolean, err error) {
	first := assertFirstStructField(a)
	if first == nil {
		first = a
	}

	return objectIdentifierMatch(first, b)
}

/*
telephoneNumberMatch implements [§ 4.2.29 of RFC 4517].

OID: 2.5.13.20.

[§ 4.2.29 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.29
*/
func telephoneNumberMatch(a, b any) (result Boolean, err error) {
	var r RFC4517
	var A, B TelephoneNumber
	if A, err = r.TelephoneNumber(a); err != nil {
		return
	}
	if B, err = r.TelephoneNumber(b); err != nil {
		return
	}

	result.Set(eqf(condenseWHSP(A.String()), condenseWHSP(B.String())))

	return
}

/*
telephoneNumberSubstringsMatch implements [§ 4.2.30 of RFC 4517].

OID: 2.5.13.21.

[§ 4.2.30 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.30
*/
func telephoneNumberSubstringsMatch(a, b any) (result Boolean, err error) {
	return substringsMatch(a, b, true)
}
