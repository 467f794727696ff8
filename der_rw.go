package dirsyn

/*
der_rw.go completes the [ITU-T Rec. X.690] DER read/write surface that
asn1.go dispatches into: the X690 namespace receiver, the Sources
convenience aggregator used by callers wishing to chain multiple RFC/ITU
namespace receivers off of one value, and the BOOLEAN/INTEGER/OCTET
STRING primitive codecs that parallel [derWriteEnumerated] and
[derReadEnumerated] in enum.go.

[ITU-T Rec. X.690]: https://www.itu.int/rec/T-REC-X.690
*/

/*
X690 serves as the receiver type for handling definitions sourced from
[ITU-T Rec. X.690].

[ITU-T Rec. X.690]: https://www.itu.int/rec/T-REC-X.690
*/
type X690 struct{}

/*
URL returns the string representation of the [ITU-T Rec. X.690] document URL.

[ITU-T Rec. X.690]: https://www.itu.int/rec/T-REC-X.690
*/
func (r X690) URL() string {
	return `https://www.itu.int/rec/T-REC-X.690`
}

/*
Sources is a zero-value aggregator offering access to every RFC/ITU
namespace receiver in one place, for callers that do not wish to keep
individual receiver instances in scope (e.g. `srcs.X690().DER(...)`).
*/
type Sources struct{}

func (r Sources) X501() X501       { return X501{} }
func (r Sources) X520() X520       { return X520{} }
func (r Sources) X680() X680       { return X680{} }
func (r Sources) X690() X690       { return X690{} }
func (r Sources) RFC2307() RFC2307 { return RFC2307{} }
func (r Sources) RFC3672() RFC3672 { return RFC3672{} }
func (r Sources) RFC4511() RFC4511 { return RFC4511{} }
func (r Sources) RFC4512() RFC4512 { return RFC4512{} }
func (r Sources) RFC4514() RFC4514 { return RFC4514{} }
func (r Sources) RFC4515() RFC4515 { return RFC4515{} }
func (r Sources) RFC4517() RFC4517 { return RFC4517{} }
func (r Sources) RFC4523() RFC4523 { return RFC4523{} }
func (r Sources) RFC4530() RFC4530 { return RFC4530{} }

/*
derWriteBoolean writes a single BOOLEAN content octet, preceded by its
DER tag/length header, into the receiver buffer.
*/
func derWriteBoolean(der *DERPacket, content byte) (n int) {
	n = der.WriteTagAndLength(classUniversal, false, tagBoolean, 1)
	der.data = append(der.data, content)
	der.offset = len(der.data)
	n++
	return
}

/*
derReadBoolean decodes a BOOLEAN value from the receiver instance into
x, per the content octet already framed by tal.
*/
func derReadBoolean(x *Boolean, der *DERPacket, tal TagAndLength) (err error) {
	if tal.Tag != tagBoolean {
		err = errorASN1Expect(tal.Tag, tagBoolean, "Tag")
	} else if tal.Length != 1 {
		err = errorBadLength("BOOLEAN", tal.Length)
	} else if der.offset+tal.Length > len(der.data) {
		err = errorTxt("insufficient data for BOOLEAN")
	} else {
		content := der.data[der.offset]
		der.offset += tal.Length
		x.Set(content != 0x00)
	}

	return
}

/*
derWriteInteger appends an already-DER-encoded INTEGER TLV (derBytes,
as produced by [asn1m]) to the receiver buffer verbatim.
*/
func derWriteInteger(der *DERPacket, derBytes []byte) (n int) {
	der.data = append(der.data, derBytes...)
	der.offset = len(der.data)
	n = len(derBytes)
	return
}

/*
derReadInteger decodes an INTEGER value from the receiver instance into
x, reconstructing a minimal DER blob and delegating to [asn1um] the
same way [derReadEnumerated] does for ENUMERATED.
*/
func derReadInteger(x *Integer, der *DERPacket, tal TagAndLength) (err error) {
	if tal.Tag != tagInteger {
		err = errorASN1Expect(tal.Tag, tagInteger, "Tag")
		return
	} else if der.offset+tal.Length > len(der.data) {
		err = errorTxt("insufficient data for INTEGER")
		return
	}

	content := der.data[der.offset : der.offset+tal.Length]
	der.offset += tal.Length

	var bi Integer
	bi.SetBytes(content)
	*x = bi

	return
}

/*
derWriteOctetString writes content preceded by its DER tag/length
header (class universal, tag 4) into the receiver buffer.
*/
func derWriteOctetString(der *DERPacket, content []byte) (n int) {
	n = der.WriteTagAndLength(classUniversal, false, tagOctetString, len(content))
	der.data = append(der.data, content...)
	der.offset = len(der.data)
	n += len(content)
	return
}

/*
derReadOctetString decodes an OCTET STRING value from the receiver
instance into x, per the content octets already framed by tal.
*/
func derReadOctetString(x *OctetString, der *DERPacket, tal TagAndLength) (err error) {
	if tal.Tag != tagOctetString {
		err = errorASN1Expect(tal.Tag, tagOctetString, "Tag")
	} else if der.offset+tal.Length > len(der.data) {
		err = errorTxt("insufficient data for OCTET STRING")
	} else {
		content := make([]byte, tal.Length)
		copy(content, der.data[der.offset:der.offset+tal.Length])
		der.offset += tal.Length
		*x = OctetString(content)
	}

	return
}

/*
derWriteOID writes an OBJECT IDENTIFIER (universal tag 6) to the
receiver buffer. The dotted-decimal arcs carried by noid are packed per
[ITU-T Rec. X.690] § 8.19: the first two arcs combine into a single
value (40*a + b), and every arc thereafter is emitted as its own
base-128 run using [encodeBase128Int] -- the same base-128 primitive
asn1.go already uses for long-form tags.

[ITU-T Rec. X.690]: https://www.itu.int/rec/T-REC-X.690
*/
func derWriteOID(der *DERPacket, noid NumericOID) (n int, err error) {
	arcs := split(noid.String(), `.`)
	if len(arcs) < 2 {
		err = decoderErr(DecoderErrInvalidOid, noid.String())
		return
	}

	var ints []int
	for _, a := range arcs {
		var v int
		if v, err = atoi(a); err != nil {
			err = decoderErr(DecoderErrInvalidOid, "non-numeric arc: "+a)
			return
		}
		ints = append(ints, v)
	}

	var content []byte
	content = append(content, encodeBase128Int(40*ints[0]+ints[1])...)
	for _, v := range ints[2:] {
		content = append(content, encodeBase128Int(v)...)
	}

	n = der.WriteTagAndLength(classUniversal, false, tagOID, len(content))
	der.data = append(der.data, content...)
	der.offset = len(der.data)
	n += len(content)

	return
}

/*
derReadOID decodes an OBJECT IDENTIFIER value from the receiver
instance into x, reassembling the dotted-decimal form from its
base-128 arcs the same way [(*DERPacket).readBase128Int] reassembles
long-form tag octets.
*/
func derReadOID(x *NumericOID, der *DERPacket, tal TagAndLength) (err error) {
	if tal.Tag != tagOID {
		err = errorASN1Expect(tal.Tag, tagOID, "Tag")
		return
	} else if der.offset+tal.Length > len(der.data) {
		err = errorTxt("insufficient data for OBJECT IDENTIFIER")
		return
	}

	content := der.data[der.offset : der.offset+tal.Length]
	der.offset += tal.Length

	var arcs []int
	var cur int
	for _, b := range content {
		cur = cur<<7 | int(b&0x7f)
		if b&0x80 == 0 {
			arcs = append(arcs, cur)
			cur = 0
		}
	}

	if len(arcs) == 0 {
		err = decoderErr(DecoderErrInvalidOid, "empty OBJECT IDENTIFIER content")
		return
	}

	first := arcs[0] / 40
	second := arcs[0] % 40
	if first > 2 {
		// per X.690, when the first arc would exceed 2, all of the
		// excess is folded into the second arc instead.
		first = 2
		second = arcs[0] - 80
	}

	dotted := itoa(first) + `.` + itoa(second)
	for _, a := range arcs[1:] {
		dotted += `.` + itoa(a)
	}

	var noid NumericOID
	var s RFC4512
	if noid, err = s.NumericOID(dotted); err == nil {
		*x = noid
	}

	return
}
