package dirsyn

/*
encoder.go implements the reverse direction of the wire codec: turning
an [LDAPMessage] (message.go) back into BER octets per [§ 4 of
RFC4511]. It leans entirely on [DERPacket.WriteConstructed] (asn1.go)
for every SEQUENCE/SET/CHOICE-constructed element -- content is built
bottom-up into a temporary buffer before the header is ever written,
exactly as der_rw.go already does for OCTET STRING/INTEGER/OID -- and
on the tag-parametric helpers in wire.go for the IMPLICIT
CONTEXT/APPLICATION-tagged primitives RFC4511's ASN.1 module is full
of.

[§ 4 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4
*/

func dnBytes(dn DistinguishedName) []byte {
	d := dn
	return []byte((&d).String())
}

/*
EncodeMessage serializes msg as a complete LDAPMessage SEQUENCE,
including its Controls when present, per [§ 4.1.1 of RFC4511].

[§ 4.1.1 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.1.1
*/
func EncodeMessage(msg *LDAPMessage) (out []byte, err error) {
	der := &DERPacket{}
	_, err = der.WriteConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		if _, e := sub.Write(msg.MessageID); e != nil {
			return e
		}
		if e := encodeProtocolOp(sub, msg.ProtocolOp); e != nil {
			return e
		}
		if !msg.Controls.IsZero() {
			if e := encodeControls(sub, msg.Controls); e != nil {
				return e
			}
		}
		return nil
	})
	if err == nil {
		out = der.Data()
	}
	return
}

func encodeControls(der *DERPacket, ctrls Controls) (err error) {
	_, err = der.WriteConstructed(classContextSpecific, 0, func(s *DERPacket) error {
		for _, c := range ctrls.Slice() {
			if _, e := s.WriteConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
				if _, e := one.Write(OctetString(c.OID)); e != nil {
					return e
				}
				if c.Criticality {
					if _, e := one.Write(true); e != nil {
						return e
					}
				}
				if c.ControlValue != nil {
					if _, e := one.Write(OctetString(c.ControlValue)); e != nil {
						return e
					}
				}
				return nil
			}); e != nil {
				return e
			}
		}
		return nil
	})
	return
}

func encodeLDAPResult(der *DERPacket, res LDAPResult) (err error) {
	if _, err = der.Write(Enumerated(res.ResultCode)); err != nil {
		return
	}
	if _, err = der.Write(OctetString(dnBytes(res.MatchedDN))); err != nil {
		return
	}
	if _, err = der.Write(OctetString(res.DiagnosticMessage)); err != nil {
		return
	}
	if len(res.Referral) > 0 {
		_, err = der.WriteConstructed(classContextSpecific, 3, func(s *DERPacket) error {
			for _, u := range res.Referral {
				if _, e := s.Write(OctetString(u.String())); e != nil {
					return e
				}
			}
			return nil
		})
	}
	return
}

func encodePartialAttributes(der *DERPacket, attrs []PartialAttribute) (err error) {
	_, err = der.WriteConstructed(classUniversal, tagSequence, func(seq *DERPacket) error {
		for _, pa := range attrs {
			if _, e := seq.WriteConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
				if _, e := one.Write(OctetString(pa.Description)); e != nil {
					return e
				}
				_, e := one.WriteConstructed(classUniversal, tagSet, func(vals *DERPacket) error {
					for _, v := range pa.Values {
						if _, e := vals.Write(v); e != nil {
							return e
						}
					}
					return nil
				})
				return e
			}); e != nil {
				return e
			}
		}
		return nil
	})
	return
}

func encodeProtocolOp(der *DERPacket, op any) (err error) {
	switch tv := op.(type) {
	case BindRequest:
		_, err = der.WriteConstructed(classApplication, TagBindRequest, func(s *DERPacket) error {
			if _, e := s.Write(tv.Version); e != nil {
				return e
			}
			if _, e := s.Write(OctetString(dnBytes(tv.Name))); e != nil {
				return e
			}
			if tv.AuthSimple != nil {
				writeTagged(s, classContextSpecific, 0, []byte(*tv.AuthSimple))
				return nil
			}
			_, e := s.WriteConstructed(classContextSpecific, 3, func(sasl *DERPacket) error {
				if _, e := sasl.Write(OctetString(tv.AuthSASLMech)); e != nil {
					return e
				}
				if tv.AuthSASLCreds != nil {
					if _, e := sasl.Write(OctetString(tv.AuthSASLCreds)); e != nil {
						return e
					}
				}
				return nil
			})
			return e
		})

	case BindResponse:
		_, err = der.WriteConstructed(classApplication, TagBindResponse, func(s *DERPacket) error {
			if e := encodeLDAPResult(s, tv.LDAPResult); e != nil {
				return e
			}
			if tv.ServerSASLCreds != nil {
				writeTagged(s, classContextSpecific, 7, tv.ServerSASLCreds)
			}
			return nil
		})

	case UnbindRequest:
		writeTagged(der, classApplication, TagUnbindRequest, nil)

	case SearchRequest:
		_, err = der.WriteConstructed(classApplication, TagSearchRequest, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(dnBytes(tv.BaseObject))); e != nil {
				return e
			}
			if _, e := s.Write(Enumerated(tv.Scope)); e != nil {
				return e
			}
			if _, e := s.Write(Enumerated(tv.DerefAliases)); e != nil {
				return e
			}
			if _, e := s.Write(tv.SizeLimit); e != nil {
				return e
			}
			if _, e := s.Write(tv.TimeLimit); e != nil {
				return e
			}
			if _, e := s.Write(tv.TypesOnly); e != nil {
				return e
			}
			if tv.Filter == nil {
				tv.Filter = PresentFilter{Desc: AttributeDescription("objectClass")}
			}
			if e := encodeFilter(s, tv.Filter); e != nil {
				return e
			}
			_, e := s.WriteConstructed(classUniversal, tagSequence, func(attrs *DERPacket) error {
				for _, a := range tv.Attributes {
					if _, e := attrs.Write(OctetString(a)); e != nil {
						return e
					}
				}
				return nil
			})
			return e
		})

	case SearchResultEntry:
		_, err = der.WriteConstructed(classApplication, TagSearchResultEntry, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(dnBytes(tv.ObjectName))); e != nil {
				return e
			}
			return encodePartialAttributes(s, tv.Attributes)
		})

	case SearchResultReference:
		_, err = der.WriteConstructed(classApplication, TagSearchResultReference, func(s *DERPacket) error {
			for _, u := range tv {
				if _, e := s.Write(OctetString(u.String())); e != nil {
					return e
				}
			}
			return nil
		})

	case SearchResultDone:
		_, err = der.WriteConstructed(classApplication, TagSearchResultDone, func(s *DERPacket) error {
			return encodeLDAPResult(s, tv.LDAPResult)
		})

	case ModifyRequest:
		_, err = der.WriteConstructed(classApplication, TagModifyRequest, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(dnBytes(tv.Object))); e != nil {
				return e
			}
			_, e := s.WriteConstructed(classUniversal, tagSequence, func(changes *DERPacket) error {
				for _, m := range tv.Changes {
					if _, e := changes.WriteConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
						if _, e := one.Write(Enumerated(int(m.Operation))); e != nil {
							return e
						}
						_, e := one.WriteConstructed(classUniversal, tagSequence, func(pa *DERPacket) error {
							if _, e := pa.Write(OctetString(m.Description)); e != nil {
								return e
							}
							_, e := pa.WriteConstructed(classUniversal, tagSet, func(vals *DERPacket) error {
								for _, v := range m.Values {
									if _, e := vals.Write(OctetString(v)); e != nil {
										return e
									}
								}
								return nil
							})
							return e
						})
						return e
					}); e != nil {
						return e
					}
				}
				return nil
			})
			return e
		})

	case ModifyResponse:
		_, err = der.WriteConstructed(classApplication, TagModifyResponse, func(s *DERPacket) error {
			return encodeLDAPResult(s, tv.LDAPResult)
		})

	case AddRequest:
		_, err = der.WriteConstructed(classApplication, TagAddRequest, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(dnBytes(tv.Entry))); e != nil {
				return e
			}
			return encodePartialAttributes(s, tv.Attributes)
		})

	case AddResponse:
		_, err = der.WriteConstructed(classApplication, TagAddResponse, func(s *DERPacket) error {
			return encodeLDAPResult(s, tv.LDAPResult)
		})

	case DelRequest:
		writeTagged(der, classApplication, TagDelRequest, dnBytes(DistinguishedName(tv)))

	case DelResponse:
		_, err = der.WriteConstructed(classApplication, TagDelResponse, func(s *DERPacket) error {
			return encodeLDAPResult(s, tv.LDAPResult)
		})

	case ModifyDNRequest:
		_, err = der.WriteConstructed(classApplication, TagModifyDNRequest, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(dnBytes(tv.Entry))); e != nil {
				return e
			}
			if _, e := s.Write(OctetString(tv.NewRDN)); e != nil {
				return e
			}
			if _, e := s.Write(tv.DeleteOldRDN); e != nil {
				return e
			}
			if tv.NewSuperior != nil {
				writeTagged(s, classContextSpecific, 0, dnBytes(*tv.NewSuperior))
			}
			return nil
		})

	case ModifyDNResponse:
		_, err = der.WriteConstructed(classApplication, TagModifyDNResponse, func(s *DERPacket) error {
			return encodeLDAPResult(s, tv.LDAPResult)
		})

	case CompareRequest:
		_, err = der.WriteConstructed(classApplication, TagCompareRequest, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(dnBytes(tv.Entry.DN))); e != nil {
				return e
			}
			_, e := s.WriteConstructed(classUniversal, tagSequence, func(ava *DERPacket) error {
				if _, e := ava.Write(OctetString(tv.Entry.Assertion.Desc)); e != nil {
					return e
				}
				_, e := ava.Write(OctetString(tv.Entry.Assertion.Value))
				return e
			})
			return e
		})

	case CompareResponse:
		_, err = der.WriteConstructed(classApplication, TagCompareResponse, func(s *DERPacket) error {
			return encodeLDAPResult(s, tv.LDAPResult)
		})

	case AbandonRequest:
		_, err = writeTaggedInt(der, classApplication, TagAbandonRequest, int(tv))

	case ExtendedRequest:
		_, err = der.WriteConstructed(classApplication, TagExtendedRequest, func(s *DERPacket) error {
			writeTagged(s, classContextSpecific, 0, []byte(tv.Name))
			if tv.Value != nil {
				writeTagged(s, classContextSpecific, 1, tv.Value)
			}
			return nil
		})

	case ExtendedResponse:
		_, err = der.WriteConstructed(classApplication, TagExtendedResponse, func(s *DERPacket) error {
			if e := encodeLDAPResult(s, tv.LDAPResult); e != nil {
				return e
			}
			if tv.Name != "" {
				writeTagged(s, classContextSpecific, 10, []byte(tv.Name))
			}
			if tv.Value != nil {
				writeTagged(s, classContextSpecific, 11, tv.Value)
			}
			return nil
		})

	case IntermediateResponse:
		_, err = der.WriteConstructed(classApplication, TagIntermediateResponse, func(s *DERPacket) error {
			if tv.Name != "" {
				writeTagged(s, classContextSpecific, 0, []byte(tv.Name))
			}
			if tv.Value != nil {
				writeTagged(s, classContextSpecific, 1, tv.Value)
			}
			return nil
		})

	default:
		err = encoderErr(EncoderErrUnsupportedVariant, "unrecognized protocolOp type")
	}

	return
}

func encodeAVAFilter(der *DERPacket, tag int, ava AttributeValueAssertion) (err error) {
	_, err = der.WriteConstructed(classContextSpecific, tag, func(s *DERPacket) error {
		if _, e := s.Write(OctetString(ava.Desc)); e != nil {
			return e
		}
		_, e := s.Write(OctetString(ava.Value))
		return e
	})
	return
}

func encodeSubstrings(der *DERPacket, sa SubstringAssertion) (err error) {
	_, err = der.WriteConstructed(classUniversal, tagSequence, func(s *DERPacket) error {
		if len(sa.Initial) > 0 {
			writeTagged(s, classContextSpecific, 0, sa.Initial)
		}
		if len(sa.Any) > 0 {
			writeTagged(s, classContextSpecific, 1, sa.Any)
		}
		if len(sa.Final) > 0 {
			writeTagged(s, classContextSpecific, 2, sa.Final)
		}
		return nil
	})
	return
}

/*
encodeFilter writes f per the context-specific CHOICE tag table of [§
4.5.1.7 of RFC4511].

[§ 4.5.1.7 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.5.1.7
*/
func encodeFilter(der *DERPacket, f Filter) (err error) {
	switch tv := f.(type) {
	case AndFilter:
		_, err = der.WriteConstructed(classContextSpecific, 0, func(s *DERPacket) error {
			for _, sub := range tv {
				if e := encodeFilter(s, sub); e != nil {
					return e
				}
			}
			return nil
		})

	case OrFilter:
		_, err = der.WriteConstructed(classContextSpecific, 1, func(s *DERPacket) error {
			for _, sub := range tv {
				if e := encodeFilter(s, sub); e != nil {
					return e
				}
			}
			return nil
		})

	case NotFilter:
		_, err = der.WriteConstructed(classContextSpecific, 2, func(s *DERPacket) error {
			return encodeFilter(s, tv.Filter)
		})

	case EqualityMatchFilter:
		err = encodeAVAFilter(der, 3, AttributeValueAssertion(tv))

	case SubstringsFilter:
		_, err = der.WriteConstructed(classContextSpecific, 4, func(s *DERPacket) error {
			if _, e := s.Write(OctetString(tv.Type)); e != nil {
				return e
			}
			return encodeSubstrings(s, tv.Substrings)
		})

	case GreaterOrEqualFilter:
		err = encodeAVAFilter(der, 5, AttributeValueAssertion(tv))

	case LessOrEqualFilter:
		err = encodeAVAFilter(der, 6, AttributeValueAssertion(tv))

	case PresentFilter:
		writeTagged(der, classContextSpecific, 7, []byte(tv.Desc))

	case ApproximateMatchFilter:
		err = encodeAVAFilter(der, 8, AttributeValueAssertion(tv))

	case ExtensibleMatchFilter:
		_, err = der.WriteConstructed(classContextSpecific, 9, func(s *DERPacket) error {
			if tv.MatchingRule != "" {
				writeTagged(s, classContextSpecific, 1, []byte(tv.MatchingRule))
			}
			if tv.Type != "" {
				writeTagged(s, classContextSpecific, 2, []byte(tv.Type))
			}
			writeTagged(s, classContextSpecific, 3, tv.MatchValue)
			if tv.DNAttributes {
				writeTaggedBool(s, classContextSpecific, 4, true)
			}
			return nil
		})

	default:
		err = encoderErr(EncoderErrUnsupportedVariant, f.Choice())
	}

	return
}
