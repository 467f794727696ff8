package dirsyn

/*
decoder.go implements the forward direction of the wire codec: turning
BER octets back into an [LDAPMessage] (message.go) per [§ 4 of
RFC4511]. Every constructed element is parsed with
[DERPacket.ReadConstructed] (asn1.go), which already enforces the
"child cannot overrun parent" invariant that a poisoned or truncated
TLV stream would otherwise violate; [readTagged] (wire.go) plays the
same role for the package's many IMPLICIT CONTEXT-tagged optional
fields, which carry no UNIVERSAL tag for [DERPacket.Read] to dispatch
on.

[§ 4 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4
*/

func parseDNBytes(b []byte) (DistinguishedName, error) {
	var r RFC4514
	dn, err := r.DistinguishedName(string(b))
	if err != nil {
		return DistinguishedName{}, dnErr(DnErrBadChar, err.Error())
	}
	if dn == nil {
		return DistinguishedName{}, nil
	}
	return *dn, nil
}

func readOctetStringUniversal(der *DERPacket) (string, error) {
	var o OctetString
	if err := der.Read(&o); err != nil {
		return "", err
	}
	return string(o), nil
}

func readIntUniversal(der *DERPacket) (int, error) {
	var iv Integer
	if err := der.Read(&iv); err != nil {
		return 0, err
	}
	return int(iv.Cast().Int64()), nil
}

func readBoolUniversal(der *DERPacket) (bool, error) {
	var b Boolean
	if err := der.Read(&b); err != nil {
		return false, err
	}
	return b.True(), nil
}

func readEnumeratedUniversal(der *DERPacket) (int, error) {
	tal, content, err := readTagged(der)
	if err != nil {
		return 0, err
	}
	if tal.Tag != tagEnum {
		return 0, decoderErr(DecoderErrGrammarMismatch, "expected ENUMERATED")
	}
	return intFromContent(content)
}

func peekTagAndLength(der *DERPacket) (TagAndLength, error) {
	save := der.offset
	tal, err := der.TagAndLength()
	der.offset = save
	return tal, err
}

/*
DecodeMessage parses data as a complete LDAPMessage SEQUENCE per [§
4.1.1 of RFC4511].

[§ 4.1.1 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.1.1
*/
func DecodeMessage(data []byte) (msg *LDAPMessage, err error) {
	der := newDERPacket(data)
	msg = &LDAPMessage{}

	err = der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		mid, e := readIntUniversal(sub)
		if e != nil {
			return e
		}
		msg.MessageID = mid

		op, e := decodeProtocolOp(sub)
		if e != nil {
			return e
		}
		msg.ProtocolOp = op

		ctrls, e := decodeControls(sub)
		if e != nil {
			return e
		}
		msg.Controls = ctrls

		return nil
	})

	return
}

func decodeControls(der *DERPacket) (ctrls Controls, err error) {
	if !der.HasMoreData() {
		return
	}
	tal, e := peekTagAndLength(der)
	if e != nil || tal.Class != classContextSpecific || tal.Tag != 0 {
		return
	}

	_, content, e := readTagged(der)
	if e != nil {
		err = e
		return
	}
	sub := &DERPacket{data: content}

	for sub.HasMoreData() {
		var c Control
		if err = sub.ReadConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
			oid, e := readOctetStringUniversal(one)
			if e != nil {
				return e
			}
			c.OID = oid
			for one.HasMoreData() {
				tal, content, e := readTagged(one)
				if e != nil {
					return e
				}
				switch tal.Tag {
				case tagBoolean:
					c.Criticality = len(content) > 0 && content[0] != 0
				case tagOctetString:
					c.ControlValue = append([]byte{}, content...)
				}
			}
			return nil
		}); err != nil {
			return
		}
		ctrls.Set(c)
	}

	return
}

func decodeLDAPResult(sub *DERPacket) (res LDAPResult, err error) {
	rc, e := readEnumeratedUniversal(sub)
	if e != nil {
		err = e
		return
	}
	res.ResultCode = ResultCode(rc)

	matchedDN, e := readOctetStringUniversal(sub)
	if e != nil {
		err = e
		return
	}
	if res.MatchedDN, err = parseDNBytes([]byte(matchedDN)); err != nil {
		return
	}

	if res.DiagnosticMessage, err = readOctetStringUniversal(sub); err != nil {
		return
	}

	if sub.HasMoreData() {
		var tal TagAndLength
		if tal, err = peekTagAndLength(sub); err != nil {
			return
		}
		if tal.Class == classContextSpecific && tal.Tag == 3 {
			var content []byte
			if _, content, err = readTagged(sub); err != nil {
				return
			}
			refSub := &DERPacket{data: content}
			for refSub.HasMoreData() {
				var s string
				if s, err = readOctetStringUniversal(refSub); err != nil {
					return
				}
				var u URL
				if u, err = (RFC4516{}).URL(s); err != nil {
					return
				}
				res.Referral = append(res.Referral, u)
			}
		}
	}

	return
}

func decodePartialAttributes(sub *DERPacket) (attrs []PartialAttribute, err error) {
	err = sub.ReadConstructed(classUniversal, tagSequence, func(seq *DERPacket) error {
		for seq.HasMoreData() {
			var pa PartialAttribute
			if e := seq.ReadConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
				desc, e := readOctetStringUniversal(one)
				if e != nil {
					return e
				}
				pa.Description = desc
				return one.ReadConstructed(classUniversal, tagSet, func(vals *DERPacket) error {
					for vals.HasMoreData() {
						var o OctetString
						if e := vals.Read(&o); e != nil {
							return e
						}
						pa.Values = append(pa.Values, o)
					}
					return nil
				})
			}); e != nil {
				return e
			}
			attrs = append(attrs, pa)
		}
		return nil
	})
	return
}

func decodeBindRequest(sub *DERPacket) (req BindRequest, err error) {
	if req.Version, err = readIntUniversal(sub); err != nil {
		return
	}
	var name string
	if name, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.Name, err = parseDNBytes([]byte(name)); err != nil {
		return
	}

	tal, content, e := readTagged(sub)
	if e != nil {
		err = e
		return
	}
	switch tal.Tag {
	case 0:
		s := string(content)
		req.AuthSimple = &s
	case 3:
		sasl := &DERPacket{data: content}
		if req.AuthSASLMech, err = readOctetStringUniversal(sasl); err != nil {
			return
		}
		if sasl.HasMoreData() {
			var creds string
			if creds, err = readOctetStringUniversal(sasl); err != nil {
				return
			}
			req.AuthSASLCreds = []byte(creds)
		}
	default:
		err = decoderErr(DecoderErrGrammarMismatch, "unknown BindRequest authentication choice")
	}

	return
}

func decodeBindResponse(sub *DERPacket) (resp BindResponse, err error) {
	if resp.LDAPResult, err = decodeLDAPResult(sub); err != nil {
		return
	}
	if sub.HasMoreData() {
		var tal TagAndLength
		if tal, err = peekTagAndLength(sub); err != nil {
			return
		}
		if tal.Tag == 7 {
			var content []byte
			if _, content, err = readTagged(sub); err != nil {
				return
			}
			resp.ServerSASLCreds = content
		}
	}
	return
}

func decodeSearchRequest(sub *DERPacket) (req SearchRequest, err error) {
	var base string
	if base, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.BaseObject, err = parseDNBytes([]byte(base)); err != nil {
		return
	}
	if req.Scope, err = readEnumeratedUniversal(sub); err != nil {
		return
	}
	if req.DerefAliases, err = readEnumeratedUniversal(sub); err != nil {
		return
	}
	if req.SizeLimit, err = readIntUniversal(sub); err != nil {
		return
	}
	if req.TimeLimit, err = readIntUniversal(sub); err != nil {
		return
	}
	if req.TypesOnly, err = readBoolUniversal(sub); err != nil {
		return
	}
	if req.Filter, err = decodeFilter(sub); err != nil {
		return
	}
	err = sub.ReadConstructed(classUniversal, tagSequence, func(attrs *DERPacket) error {
		for attrs.HasMoreData() {
			a, e := readOctetStringUniversal(attrs)
			if e != nil {
				return e
			}
			req.Attributes = append(req.Attributes, a)
		}
		return nil
	})
	return
}

func decodeSearchResultEntry(sub *DERPacket) (res SearchResultEntry, err error) {
	var name string
	if name, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if res.ObjectName, err = parseDNBytes([]byte(name)); err != nil {
		return
	}
	res.Attributes, err = decodePartialAttributes(sub)
	return
}

func decodeSearchResultReference(sub *DERPacket) (refs SearchResultReference, err error) {
	for sub.HasMoreData() {
		var s string
		if s, err = readOctetStringUniversal(sub); err != nil {
			return
		}
		var u URL
		if u, err = (RFC4516{}).URL(s); err != nil {
			return
		}
		refs = append(refs, u)
	}
	return
}

func decodeModifyRequest(sub *DERPacket) (req ModifyRequest, err error) {
	var obj string
	if obj, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.Object, err = parseDNBytes([]byte(obj)); err != nil {
		return
	}
	err = sub.ReadConstructed(classUniversal, tagSequence, func(changes *DERPacket) error {
		for changes.HasMoreData() {
			var m Modification
			if e := changes.ReadConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
				op, e := readEnumeratedUniversal(one)
				if e != nil {
					return e
				}
				m.Operation = ModificationOperation(op)
				return one.ReadConstructed(classUniversal, tagSequence, func(pa *DERPacket) error {
					desc, e := readOctetStringUniversal(pa)
					if e != nil {
						return e
					}
					m.Description = desc
					return pa.ReadConstructed(classUniversal, tagSet, func(vals *DERPacket) error {
						for vals.HasMoreData() {
							var o OctetString
							if e := vals.Read(&o); e != nil {
								return e
							}
							m.Values = append(m.Values, string(o))
						}
						return nil
					})
				})
			}); e != nil {
				return e
			}
			req.Changes = append(req.Changes, m)
		}
		return nil
	})
	return
}

func decodeAddRequest(sub *DERPacket) (req AddRequest, err error) {
	var entry string
	if entry, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.Entry, err = parseDNBytes([]byte(entry)); err != nil {
		return
	}
	req.Attributes, err = decodePartialAttributes(sub)
	return
}

func decodeModifyDNRequest(sub *DERPacket) (req ModifyDNRequest, err error) {
	var entry string
	if entry, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.Entry, err = parseDNBytes([]byte(entry)); err != nil {
		return
	}
	if req.NewRDN, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.DeleteOldRDN, err = readBoolUniversal(sub); err != nil {
		return
	}
	if sub.HasMoreData() {
		tal, content, e := readTagged(sub)
		if e != nil {
			err = e
			return
		}
		if tal.Tag == 0 {
			dn, e := parseDNBytes(content)
			if e != nil {
				err = e
				return
			}
			req.NewSuperior = &dn
		}
	}
	return
}

func decodeCompareRequest(sub *DERPacket) (req CompareRequest, err error) {
	var entry string
	if entry, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	if req.Entry.DN, err = parseDNBytes([]byte(entry)); err != nil {
		return
	}
	err = sub.ReadConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
		desc, e := readOctetStringUniversal(one)
		if e != nil {
			return e
		}
		val, e := readOctetStringUniversal(one)
		if e != nil {
			return e
		}
		req.Entry.Assertion = AttributeValueAssertion{
			Desc:  AttributeDescription(desc),
			Value: AssertionValue(val),
		}
		return nil
	})
	return
}

func decodeExtendedRequest(sub *DERPacket) (req ExtendedRequest, err error) {
	_, content, e := readTagged(sub)
	if e != nil {
		err = e
		return
	}
	req.Name = string(content)
	if sub.HasMoreData() {
		var tal TagAndLength
		if tal, content, err = readTagged(sub); err != nil {
			return
		}
		if tal.Tag == 1 {
			req.Value = content
		}
	}
	return
}

func decodeExtendedResponse(sub *DERPacket) (resp ExtendedResponse, err error) {
	if resp.LDAPResult, err = decodeLDAPResult(sub); err != nil {
		return
	}
	for sub.HasMoreData() {
		tal, content, e := readTagged(sub)
		if e != nil {
			err = e
			return
		}
		switch tal.Tag {
		case 10:
			resp.Name = string(content)
		case 11:
			resp.Value = content
		}
	}
	return
}

func decodeIntermediateResponse(sub *DERPacket) (res IntermediateResponse, err error) {
	for sub.HasMoreData() {
		tal, content, e := readTagged(sub)
		if e != nil {
			err = e
			return
		}
		switch tal.Tag {
		case 0:
			res.Name = string(content)
		case 1:
			res.Value = content
		}
	}
	return
}

/*
decodeProtocolOp reads the next element of der -- a CHOICE distinguished
by APPLICATION tag per [§ 4.2 of RFC4511] -- and returns the
corresponding Request/Response value.

[§ 4.2 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.2
*/
func decodeProtocolOp(der *DERPacket) (op any, err error) {
	tal, err := der.TagAndLength()
	if err != nil {
		return nil, err
	}
	if tal.Class != classApplication {
		return nil, decoderErr(DecoderErrGrammarMismatch, "protocolOp must be APPLICATION class")
	}
	if der.offset+tal.Length > len(der.data) {
		return nil, decoderErr(DecoderErrChildOverrunsParent, "protocolOp")
	}
	content := der.data[der.offset : der.offset+tal.Length]
	der.offset += tal.Length
	sub := &DERPacket{data: content}

	switch tal.Tag {
	case TagBindRequest:
		op, err = decodeBindRequest(sub)
	case TagBindResponse:
		op, err = decodeBindResponse(sub)
	case TagUnbindRequest:
		op = UnbindRequest{}
	case TagSearchRequest:
		op, err = decodeSearchRequest(sub)
	case TagSearchResultEntry:
		op, err = decodeSearchResultEntry(sub)
	case TagSearchResultDone:
		var res SearchResultDone
		res.LDAPResult, err = decodeLDAPResult(sub)
		op = res
	case TagModifyRequest:
		op, err = decodeModifyRequest(sub)
	case TagModifyResponse:
		var res ModifyResponse
		res.LDAPResult, err = decodeLDAPResult(sub)
		op = res
	case TagAddRequest:
		op, err = decodeAddRequest(sub)
	case TagAddResponse:
		var res AddResponse
		res.LDAPResult, err = decodeLDAPResult(sub)
		op = res
	case TagDelRequest:
		var dn DistinguishedName
		dn, err = parseDNBytes(content)
		op = DelRequest(dn)
	case TagDelResponse:
		var res DelResponse
		res.LDAPResult, err = decodeLDAPResult(sub)
		op = res
	case TagModifyDNRequest:
		op, err = decodeModifyDNRequest(sub)
	case TagModifyDNResponse:
		var res ModifyDNResponse
		res.LDAPResult, err = decodeLDAPResult(sub)
		op = res
	case TagCompareRequest:
		op, err = decodeCompareRequest(sub)
	case TagCompareResponse:
		var res CompareResponse
		res.LDAPResult, err = decodeLDAPResult(sub)
		op = res
	case TagAbandonRequest:
		var v int
		v, err = intFromContent(content)
		op = AbandonRequest(v)
	case TagSearchResultReference:
		op, err = decodeSearchResultReference(sub)
	case TagExtendedRequest:
		op, err = decodeExtendedRequest(sub)
	case TagExtendedResponse:
		op, err = decodeExtendedResponse(sub)
	case TagIntermediateResponse:
		op, err = decodeIntermediateResponse(sub)
	default:
		err = decoderErr(DecoderErrUnknownOperationTag, itoa(tal.Tag))
	}

	return
}

func decodeAVAContent(content []byte) (ava AttributeValueAssertion, err error) {
	sub := &DERPacket{data: content}
	desc, e := readOctetStringUniversal(sub)
	if e != nil {
		err = e
		return
	}
	val, e := readOctetStringUniversal(sub)
	if e != nil {
		err = e
		return
	}
	ava = AttributeValueAssertion{Desc: AttributeDescription(desc), Value: AssertionValue(val)}
	return
}

func decodeSubstringsContent(content []byte) (typ AttributeDescription, sa SubstringAssertion, err error) {
	sub := &DERPacket{data: content}
	var t string
	if t, err = readOctetStringUniversal(sub); err != nil {
		return
	}
	typ = AttributeDescription(t)

	err = sub.ReadConstructed(classUniversal, tagSequence, func(seq *DERPacket) error {
		for seq.HasMoreData() {
			tal, c, e := readTagged(seq)
			if e != nil {
				return e
			}
			switch tal.Tag {
			case 0:
				sa.Initial = AssertionValue(c)
			case 1:
				sa.Any = AssertionValue(c)
			case 2:
				sa.Final = AssertionValue(c)
			}
		}
		return nil
	})
	return
}

func decodeExtensibleMatchContent(content []byte) (m MatchingRuleAssertionFilter, err error) {
	sub := &DERPacket{data: content}
	for sub.HasMoreData() {
		tal, c, e := readTagged(sub)
		if e != nil {
			err = e
			return
		}
		switch tal.Tag {
		case 1:
			m.MatchingRule = string(c)
		case 2:
			m.Type = AttributeDescription(c)
		case 3:
			m.MatchValue = AssertionValue(c)
		case 4:
			m.DNAttributes = len(c) > 0 && c[0] != 0
		}
	}
	return
}

/*
decodeFilter reads the next element of der as a [Filter] CHOICE per the
context-specific tag table of [§ 4.5.1.7 of RFC4511].

[§ 4.5.1.7 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.5.1.7
*/
func decodeFilter(der *DERPacket) (f Filter, err error) {
	tal, err := der.TagAndLength()
	if err != nil {
		return
	}
	if der.offset+tal.Length > len(der.data) {
		err = decoderErr(DecoderErrChildOverrunsParent, "filter")
		return
	}
	content := der.data[der.offset : der.offset+tal.Length]
	der.offset += tal.Length
	sub := &DERPacket{data: content}

	switch tal.Tag {
	case 0:
		var items AndFilter
		for sub.HasMoreData() {
			item, e := decodeFilter(sub)
			if e != nil {
				return nil, e
			}
			items = append(items, item)
		}
		f = items

	case 1:
		var items OrFilter
		for sub.HasMoreData() {
			item, e := decodeFilter(sub)
			if e != nil {
				return nil, e
			}
			items = append(items, item)
		}
		f = items

	case 2:
		inner, e := decodeFilter(sub)
		if e != nil {
			return nil, e
		}
		f = NotFilter{inner}

	case 3:
		ava, e := decodeAVAContent(content)
		if e != nil {
			return nil, e
		}
		f = EqualityMatchFilter(ava)

	case 4:
		typ, sa, e := decodeSubstringsContent(content)
		if e != nil {
			return nil, e
		}
		f = SubstringsFilter{Type: typ, Substrings: sa}

	case 5:
		ava, e := decodeAVAContent(content)
		if e != nil {
			return nil, e
		}
		f = GreaterOrEqualFilter(ava)

	case 6:
		ava, e := decodeAVAContent(content)
		if e != nil {
			return nil, e
		}
		f = LessOrEqualFilter(ava)

	case 7:
		f = PresentFilter{Desc: AttributeDescription(content)}

	case 8:
		ava, e := decodeAVAContent(content)
		if e != nil {
			return nil, e
		}
		f = ApproximateMatchFilter(ava)

	case 9:
		m, e := decodeExtensibleMatchContent(content)
		if e != nil {
			return nil, e
		}
		f = ExtensibleMatchFilter(m)

	default:
		err = decoderErr(DecoderErrUnknownOperationTag, "filter choice "+itoa(tal.Tag))
	}

	return
}
