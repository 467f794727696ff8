package dirsyn

import "math/big"

/*
wire.go supplies the primitive helpers the BER codec (encoder.go,
decoder.go) builds on: writing and reading INTEGER/BOOLEAN/OCTET
STRING content under an arbitrary class/tag rather than the fixed
UNIVERSAL tags [DERPacket.Write]/[DERPacket.Read] dispatch to. RFC4511
leans on IMPLICIT CONTEXT/APPLICATION tagging throughout (bind
authentication, search filter CHOICEs, optional response fields), so
the codec needs a tag-parametric sibling to der_rw.go's
derWrite... and derRead... helper families.
*/

/*
writeTagged writes content preceded by a DER tag/length header built
from class and tag (primitive, i.e. not compound) into der.
*/
func writeTagged(der *DERPacket, class, tag int, content []byte) (n int) {
	n = der.WriteTagAndLength(class, false, tag, len(content))
	der.data = append(der.data, content...)
	der.offset = len(der.data)
	n += len(content)
	return
}

/*
writeTaggedBool writes a single BOOLEAN content octet under class/tag.
*/
func writeTaggedBool(der *DERPacket, class, tag int, v bool) int {
	c := byte(0x00)
	if v {
		c = 0xff
	}
	return writeTagged(der, class, tag, []byte{c})
}

/*
intContent returns the minimal two's-complement content octets of v,
as would appear inside a DER INTEGER TLV, by delegating to [asn1m] and
stripping its tag/length header.
*/
func intContent(v int) (content []byte, err error) {
	var full []byte
	if full, err = asn1m(v); err != nil {
		return
	}
	tmp := &DERPacket{data: full}
	var tal TagAndLength
	if tal, err = tmp.TagAndLength(); err != nil {
		return
	}
	content = full[tmp.offset : tmp.offset+tal.Length]
	return
}

/*
writeTaggedInt writes v's INTEGER content octets under class/tag.
*/
func writeTaggedInt(der *DERPacket, class, tag, v int) (n int, err error) {
	var content []byte
	if content, err = intContent(v); err == nil {
		n = writeTagged(der, class, tag, content)
	}
	return
}

/*
readTagged parses the next tag/length header from der and returns it
alongside its content octets, advancing der past both.
*/
func readTagged(der *DERPacket) (tal TagAndLength, content []byte, err error) {
	if tal, err = der.TagAndLength(); err != nil {
		return
	}
	if der.offset+tal.Length > len(der.data) {
		err = decoderErr(DecoderErrChildOverrunsParent, "insufficient data for tagged element")
		return
	}
	content = der.data[der.offset : der.offset+tal.Length]
	der.offset += tal.Length
	return
}

/*
intFromContent decodes content -- the raw octets of an INTEGER TLV,
regardless of the tag/class under which they were framed -- into an
int, by reassembling a minimal UNIVERSAL INTEGER TLV and delegating to
[asn1um].
*/
func intFromContent(content []byte) (v int, err error) {
	hdr := &DERPacket{}
	hdr.WriteTagAndLength(classUniversal, false, tagInteger, len(content))
	full := append(append([]byte{}, hdr.data...), content...)
	_, err = asn1um(full, &v)
	if err != nil {
		err = decoderErr(DecoderErrInvalidInteger, err.Error())
	}
	return
}

/*
bigIntFromContent decodes content as an arbitrary-precision two's
complement INTEGER, for fields too wide to trust to a Go int (the
resultCode enumerations and message counters in this package never
need this, but [AbandonRequest]'s messageID and large sizeLimit/timeLimit
values from hostile peers might).
*/
func bigIntFromContent(content []byte) *big.Int {
	bi := new(big.Int).SetBytes(content)
	if len(content) > 0 && content[0]&0x80 != 0 {
		twoC := new(big.Int).Lsh(big.NewInt(1), uint(len(content)*8))
		bi.Sub(bi, twoC)
	}
	return bi
}
