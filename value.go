package dirsyn

import "hash/fnv"

/*
value.go implements the schema-aware attribute [Value] engine: a value
that starts out as opaque user-supplied bytes and, once [Value.Bind]
attaches an attribute type from a [SchemaRegistry], gains a normalized
form, a syntax verdict, and equality/ordering comparators resolved
through that attribute type's EQUALITY/ORDERING matching rules
(matchvalues.go, common.go).
*/

/*
Value implements a single schema-aware attribute value. The zero
Value is unbound: it carries only the raw bytes supplied by
[ValueFromBytes]/[ValueFromString] until [Value.Bind] attaches an
attribute type.
*/
type Value struct {
	raw           []byte
	normalized    []byte
	hasNormalized bool
	humanReadable bool
	boundAttrOID  string
	bound         bool
	hash          uint32
	hashValid     bool
}

/*
ValueFromBytes returns a new, unbound [Value] wrapping b. b is copied;
later mutation of the caller's slice does not affect the receiver.
*/
func ValueFromBytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{raw: cp, humanReadable: true}
}

/*
ValueFromString returns a new, unbound [Value] wrapping the bytes of
s.
*/
func ValueFromString(s string) Value {
	return ValueFromBytes([]byte(s))
}

/*
IsZero returns a Boolean value indicative of a [Value] carrying no
user-supplied bytes at all and not bound to an attribute type.
*/
func (r Value) IsZero() bool { return len(r.raw) == 0 && !r.bound }

/*
IsBound returns a Boolean value indicative of the receiver having
completed [Value.Bind] against an attribute type.
*/
func (r Value) IsBound() bool { return r.bound }

/*
IsHumanReadable returns a Boolean value indicative of the receiver's
LDAPSyntax being human readable. Prior to [Value.Bind], this always
returns true (the conservative assumption for raw, unschematized
bytes).
*/
func (r Value) IsHumanReadable() bool { return r.humanReadable }

/*
Bytes returns the receiver's raw, unnormalized byte payload.
*/
func (r Value) Bytes() []byte { return r.raw }

/*
String returns the string representation of the receiver's raw
payload.
*/
func (r Value) String() string { return string(r.raw) }

/*
Normalized returns the normalized byte payload produced by
[Value.Bind], and a Boolean indicative of whether normalization
actually succeeded. A false return is not itself an error: per
[SchemaError], normalization failure during Bind is tolerated and the
raw payload is retained in its place.
*/
func (r Value) Normalized() ([]byte, bool) {
	if r.hasNormalized {
		return r.normalized, true
	}
	return r.raw, false
}

/*
Bind attaches attrIDOrName -- an attribute type OID or NAME known to
reg -- to the receiver instance. Bind is idempotent: binding a second
time to the same attribute type is a no-op, while binding to a
different attribute type than one already bound returns a
[SchemaError] of kind [SchemaErrAlreadyBound].

Bind looks up the attribute type's LDAPSyntax (by way of its SYNTAX
OID) and, if the registry knows a [SchemaRegistry.SyntaxChecker] for
it, verifies the raw payload against that syntax, returning
[SchemaErrInvalidSyntax] on mismatch. It then attempts normalization
via [SchemaRegistry.Normalizer]; a normalizer failure is tolerated
(the raw bytes stand in for the normalized form) rather than treated
as a Bind failure, since many EQUALITY rules are defined for syntaxes
richer than plain strings.
*/
func (r *Value) Bind(reg *SchemaRegistry, attrIDOrName string) error {
	at, ok := reg.AttributeType(attrIDOrName)
	if !ok {
		return schemaErr(SchemaErrNoSuchAttributeType, attrIDOrName)
	}

	if r.bound {
		if r.boundAttrOID == at.OID {
			return nil
		}
		return schemaErr(SchemaErrAlreadyBound, r.boundAttrOID)
	}

	r.humanReadable = true
	if at.Syntax != "" {
		if syn, ok := reg.Syntax(at.Syntax); ok {
			r.humanReadable = isHumanReadableSyntax(syn)
		}
		if checker, ok := reg.SyntaxChecker(at.Syntax); ok {
			if !checker(string(r.raw)) {
				return schemaErr(SchemaErrInvalidSyntax, at.Syntax)
			}
		}
	}

	if normalize, ok := reg.Normalizer(at.OID); ok {
		if norm, err := normalize(string(r.raw)); err == nil {
			r.normalized = []byte(norm)
			r.hasNormalized = true
		}
	}

	r.boundAttrOID = at.OID
	r.bound = true
	r.hashValid = false

	return nil
}

/*
isHumanReadableSyntax reports whether syn carries the "X-NOT-HUMAN-READABLE
'TRUE'" extension conventionally used (per [§ 3.2 of RFC 4517]) to mark
a binary LDAPSyntax.

[§ 3.2 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-3.2
*/
func isHumanReadableSyntax(syn LDAPSyntaxDescription) bool {
	for _, ext := range syn.Extensions {
		if !eqf(ext.XString, "X-NOT-HUMAN-READABLE") {
			continue
		}
		for _, v := range ext.Values {
			if eqf(v, "TRUE") {
				return false
			}
		}
	}
	return true
}

/*
Equals compares the receiver against other. If the receiver is bound
and reg exposes a [SchemaRegistry.Comparator] for its attribute type's
EQUALITY rule, comparison proceeds through that comparator. Otherwise
the receiver falls back to an octet-for-octet comparison of the
normalized (or, lacking that, raw) forms on each side; when only one
side is bound, the unbound side's raw bytes are first normalized with
the bound side's normalizer, if reg has one.
*/
func (r Value) Equals(reg *SchemaRegistry, other Value) (bool, error) {
	if r.bound && reg != nil {
		if at, ok := reg.AttributeType(r.boundAttrOID); ok && at.Equality != "" {
			if cmp, ok := reg.Comparator(at.Equality); ok {
				return cmp(r.String(), other.String())
			}
		}
	}

	a, _ := r.Normalized()
	b, _ := other.Normalized()
	if reg != nil && r.bound != other.bound {
		typed, untyped := r, other
		if other.bound {
			typed, untyped = other, r
		}
		if normalize, ok := reg.Normalizer(typed.boundAttrOID); ok {
			if norm, err := normalize(string(untyped.raw)); err == nil {
				if r.bound {
					b = []byte(norm)
				} else {
					a = []byte(norm)
				}
			}
		}
	}
	if len(a) != len(b) {
		return false, nil
	}
	for i := range a {
		if a[i] != b[i] {
			return false, nil
		}
	}
	return true, nil
}

/*
Compare orders the receiver against other using operator
([GreaterOrEqual]/[LessOrEqual]) via the bound attribute type's
ORDERING rule, if one is registered. It returns [SchemaErrNoSuchMatchingRule]
if the receiver is unbound or carries no usable ORDERING rule.
*/
func (r Value) Compare(reg *SchemaRegistry, other Value, operator byte) (bool, error) {
	if !r.bound || reg == nil {
		return false, schemaErr(SchemaErrNoSuchMatchingRule, "unbound value")
	}

	at, ok := reg.AttributeType(r.boundAttrOID)
	if !ok || at.Ordering == "" {
		return false, schemaErr(SchemaErrNoSuchMatchingRule, r.boundAttrOID)
	}

	cmp, ok := reg.OrderingComparator(at.Ordering)
	if !ok {
		return false, schemaErr(SchemaErrNoSuchMatchingRule, at.Ordering)
	}

	return cmp(r.String(), other.String(), operator)
}

/*
Hash returns a 32-bit FNV-1a digest of the receiver's normalized
payload (or, lacking that, its raw payload), computed once and cached
thereafter.
*/
func (r *Value) Hash() uint32 {
	if r.hashValid {
		return r.hash
	}

	h := fnv.New32a()
	norm, _ := r.Normalized()
	h.Write(norm)
	r.hash = h.Sum32()
	r.hashValid = true

	return r.hash
}

/*
Marshal serializes the receiver instance per the following layout:

	[1 byte is_human_readable]
	[1 byte has_user_value](+4-byte BE length +payload, if set)
	[1 byte has_normalized](+4-byte BE length +payload, if set)
	[4 bytes BE cached hash]
*/
func (r *Value) Marshal() []byte {
	var out []byte

	if r.humanReadable {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}

	if len(r.raw) > 0 {
		out = append(out, 1)
		lb := make([]byte, 4)
		uint32p(lb, uint32(len(r.raw)))
		out = append(out, lb...)
		out = append(out, r.raw...)
	} else {
		out = append(out, 0)
	}

	if r.hasNormalized {
		out = append(out, 1)
		lb := make([]byte, 4)
		uint32p(lb, uint32(len(r.normalized)))
		out = append(out, lb...)
		out = append(out, r.normalized...)
	} else {
		out = append(out, 0)
	}

	hb := make([]byte, 4)
	uint32p(hb, r.Hash())
	out = append(out, hb...)

	return out
}

/*
UnmarshalValue decodes b, as produced by [Value.Marshal], into a new
[Value]. The decoded value is left unbound -- only [Value.Bind]
re-establishes a schema attachment, since the wire form carries no
attribute type identity.
*/
func UnmarshalValue(b []byte) (v Value, err error) {
	if len(b) < 2 {
		err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value")
		return
	}

	off := 0
	v.humanReadable = b[off] != 0
	off++

	hasUser := b[off] != 0
	off++
	if hasUser {
		if off+4 > len(b) {
			err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value user length")
			return
		}
		n := int(uint32g(b[off : off+4]))
		off += 4
		if off+n > len(b) {
			err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value user payload")
			return
		}
		v.raw = make([]byte, n)
		copy(v.raw, b[off:off+n])
		off += n
	}

	if off >= len(b) {
		err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value has_normalized")
		return
	}
	hasNorm := b[off] != 0
	off++
	if hasNorm {
		if off+4 > len(b) {
			err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value normalized length")
			return
		}
		n := int(uint32g(b[off : off+4]))
		off += 4
		if off+n > len(b) {
			err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value normalized payload")
			return
		}
		v.normalized = make([]byte, n)
		copy(v.normalized, b[off:off+n])
		v.hasNormalized = true
		off += n
	}

	if off+4 > len(b) {
		err = decoderErr(DecoderErrUnexpectedEndOfInput, "Value cached hash")
		return
	}
	v.hash = uint32g(b[off : off+4])
	v.hashValid = true

	return
}
