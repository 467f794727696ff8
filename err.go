package dirsyn

func errorBadLength(name string, length int) error {
	return mkerr(`Invalid length '` + fmtInt(int64(length), 10) + `' for ` + name)
}

func errorBadType(name string) error {
	return mkerr(`Incompatible input type for ` + name)
}

func errorTxt(txt string) error {
	return mkerr(txt)
}

func anyToStr(x any) string {
	switch tv := x.(type) {
	case int:
		return itoa(tv)
	case bool:
		if tv {
			return "true"
		}
		return "false"
	case string:
		return tv
	default:
		return ""
	}
}

func errorASN1Expect(got, want any, label string) error {
	return mkerr("ASN.1 " + label + " mismatch: wanted '" +
		anyToStr(want) + "', got '" + anyToStr(got) + "'")
}

func errorASN1ConstructedTagClass(expect, got TagAndLength) error {
	return mkerr("ASN.1 constructed element mismatch: wanted class '" +
		itoa(expect.Class) + "' tag '" + itoa(expect.Tag) + "', got class '" +
		itoa(got.Class) + "' tag '" + itoa(got.Tag) + "'")
}

var (
	nilBEREncodeErr   error = mkerr("Cannot BER encode nil instance")
	nilInstanceErr    error = mkerr("Receiver instance is nil")
	unknownBERPacket  error = mkerr("Unidentified BER packet; cannot process")
	endOfFilterErr    error = mkerr("Unexpected end of filter")
	invalidFilterErr  error = mkerr("Invalid or malformed filter")
	emptyFilterSetErr error = mkerr("Zero or invalid filter SET")
)
