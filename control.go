package dirsyn

/*
control.go implements a registry of [ControlFactory] functions keyed
by control OID, plus typed codecs for the LDAPv3 controls most
directories negotiate day to day. Each control value is itself a
small BER-encoded blob carried inside [Control.ControlValue]
(message.go); [ControlRegistry.Decode] is the one place that knows how
to turn that opaque blob into a typed Go value.
*/

// Well-known control OIDs this package understands natively.
const (
	OIDPagedResults            = "1.2.840.113556.1.4.319"
	OIDSortRequest             = "1.2.840.113556.1.4.473"
	OIDSortResponse            = "1.2.840.113556.1.4.474"
	OIDVirtualListViewRequest  = "2.16.840.1.113730.3.4.9"
	OIDVirtualListViewResponse = "2.16.840.1.113730.3.4.10"
	OIDManageDsaIT             = "2.16.840.1.113730.3.4.2"
	OIDSubentries              = "1.3.6.1.4.1.4203.1.10.1"
	OIDProxiedAuthorization    = "2.16.840.1.113730.3.4.18"
	OIDPasswordPolicy          = "1.3.6.1.4.1.42.2.27.8.5.1"
	OIDSyncRequest             = "1.3.6.1.4.1.4203.1.9.1.1"
	OIDSyncState               = "1.3.6.1.4.1.4203.1.9.1.2"
	OIDSyncDone                = "1.3.6.1.4.1.4203.1.9.1.3"
	OIDAssertion               = "1.3.6.1.1.12"
	OIDPreRead                 = "1.3.6.1.1.13.1"
	OIDPostRead                = "1.3.6.1.1.13.2"
	OIDPersistentSearch        = "2.16.840.1.113730.3.4.3"
	OIDEntryChangeNotification = "2.16.840.1.113730.3.4.7"
	OIDTreeDelete              = "1.2.840.113556.1.4.805"
)

/*
ControlFactory decodes the ControlValue octets of a [Control] sharing
the factory's registered OID into a typed value.
*/
type ControlFactory func(value []byte) (any, error)

/*
ControlRegistry implements an OID-keyed table of [ControlFactory]
functions, mirroring the lookup-by-OID shape of [SchemaRegistry] but
for the control extension space rather than schema description types.
*/
type ControlRegistry struct {
	factories map[string]ControlFactory
}

/*
NewControlRegistry returns a *[ControlRegistry] pre-populated with
factories for every control this package implements natively.
*/
func NewControlRegistry() *ControlRegistry {
	r := &ControlRegistry{factories: make(map[string]ControlFactory)}
	r.Register(OIDPagedResults, decodePagedResultsValue)
	r.Register(OIDSortRequest, decodeSortRequestValue)
	r.Register(OIDSortResponse, decodeSortResponseValue)
	r.Register(OIDVirtualListViewRequest, decodeVLVRequestValue)
	r.Register(OIDVirtualListViewResponse, decodeVLVResponseValue)
	r.Register(OIDProxiedAuthorization, decodeProxiedAuthorizationValue)
	r.Register(OIDPasswordPolicy, decodePasswordPolicyValue)
	r.Register(OIDSyncRequest, decodeSyncRequestValue)
	r.Register(OIDSyncState, decodeSyncStateValue)
	r.Register(OIDSyncDone, decodeSyncDoneValue)
	r.Register(OIDAssertion, decodeAssertionValue)
	r.Register(OIDEntryChangeNotification, decodeEntryChangeNotificationValue)
	return r
}

/*
Register installs factory under oid, replacing any prior factory
registered for that OID.
*/
func (r *ControlRegistry) Register(oid string, factory ControlFactory) {
	r.factories[oid] = factory
}

/*
Decode resolves c.ControlValue through the factory registered for
c.OID. Controls with no registered factory (ManageDsaIT, Subentries,
PreRead/PostRead's companion SearchResultEntry, TreeDelete,
PersistentSearch) carry no structured value of their own -- presence
of the OID is the signal -- so Decode returns the raw octets
unmodified alongside a false "known" Boolean in that case.
*/
func (r *ControlRegistry) Decode(c Control) (val any, known bool, err error) {
	factory, ok := r.factories[c.OID]
	if !ok {
		return c.ControlValue, false, nil
	}
	val, err = factory(c.ControlValue)
	known = err == nil
	return
}

/*
PagedResultsControl implements the Simple Paged Results Control of
[RFC 2696]:

	realSearchControlValue ::= SEQUENCE {
	    size            INTEGER (0..maxInt),
	    cookie          OCTET STRING }

[RFC 2696]: https://datatracker.ietf.org/doc/html/rfc2696
*/
type PagedResultsControl struct {
	Size   int
	Cookie []byte
}

func decodePagedResultsValue(value []byte) (any, error) {
	if len(value) == 0 {
		return PagedResultsControl{}, nil
	}
	der := newDERPacket(value)
	var prc PagedResultsControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		size, e := readIntUniversal(sub)
		if e != nil {
			return e
		}
		prc.Size = size
		cookie, e := readOctetStringUniversal(sub)
		if e != nil {
			return e
		}
		prc.Cookie = []byte(cookie)
		return nil
	})
	return prc, err
}

/*
Encode serializes the receiver per [RFC 2696]'s realSearchControlValue
layout.

[RFC 2696]: https://datatracker.ietf.org/doc/html/rfc2696
*/
func (r PagedResultsControl) Encode() ([]byte, error) {
	der := &DERPacket{}
	_, err := der.WriteConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		if _, e := sub.Write(r.Size); e != nil {
			return e
		}
		_, e := sub.Write(OctetString(r.Cookie))
		return e
	})
	return der.Data(), err
}

/*
SortKey implements a single key of a [SortRequestControl], per [RFC
2891].

[RFC 2891]: https://datatracker.ietf.org/doc/html/rfc2891
*/
type SortKey struct {
	AttributeType string
	OrderingRule  string
	ReverseOrder  bool
}

/*
SortRequestControl implements [RFC 2891]'s SortKeyList.

[RFC 2891]: https://datatracker.ietf.org/doc/html/rfc2891
*/
type SortRequestControl struct {
	Keys []SortKey
}

func decodeSortRequestValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl SortRequestControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(seq *DERPacket) error {
		for seq.HasMoreData() {
			var key SortKey
			e := seq.ReadConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
				at, e := readOctetStringUniversal(one)
				if e != nil {
					return e
				}
				key.AttributeType = at
				for one.HasMoreData() {
					tal, content, e := readTagged(one)
					if e != nil {
						return e
					}
					switch tal.Tag {
					case 0:
						key.OrderingRule = string(content)
					case 1:
						key.ReverseOrder = len(content) > 0 && content[0] != 0
					}
				}
				return nil
			})
			if e != nil {
				return e
			}
			ctrl.Keys = append(ctrl.Keys, key)
		}
		return nil
	})
	return ctrl, err
}

/*
Encode serializes the receiver per [RFC 2891].

[RFC 2891]: https://datatracker.ietf.org/doc/html/rfc2891
*/
func (r SortRequestControl) Encode() ([]byte, error) {
	der := &DERPacket{}
	_, err := der.WriteConstructed(classUniversal, tagSequence, func(seq *DERPacket) error {
		for _, key := range r.Keys {
			if _, e := seq.WriteConstructed(classUniversal, tagSequence, func(one *DERPacket) error {
				if _, e := one.Write(OctetString(key.AttributeType)); e != nil {
					return e
				}
				if key.OrderingRule != "" {
					writeTagged(one, classContextSpecific, 0, []byte(key.OrderingRule))
				}
				if key.ReverseOrder {
					writeTaggedBool(one, classContextSpecific, 1, true)
				}
				return nil
			}); e != nil {
				return e
			}
		}
		return nil
	})
	return der.Data(), err
}

/*
SortResponseControl implements [RFC 2891]'s sortResult value.

[RFC 2891]: https://datatracker.ietf.org/doc/html/rfc2891
*/
type SortResponseControl struct {
	SortResult    ResultCode
	AttributeType string
}

func decodeSortResponseValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl SortResponseControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		rc, e := readEnumeratedUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.SortResult = ResultCode(rc)
		if sub.HasMoreData() {
			tal, content, e := readTagged(sub)
			if e != nil {
				return e
			}
			if tal.Tag == 0 {
				ctrl.AttributeType = string(content)
			}
		}
		return nil
	})
	return ctrl, err
}

/*
VLVRequestControl implements the Virtual List View request control of
[draft-ietf-ldapext-ldapv3-vlv].

[draft-ietf-ldapext-ldapv3-vlv]: https://datatracker.ietf.org/doc/html/draft-ietf-ldapext-ldapv3-vlv
*/
type VLVRequestControl struct {
	BeforeCount  int
	AfterCount   int
	TargetOffset int
	ContentCount int
	GreaterThanOrEqual string
	ContextID    []byte
}

func decodeVLVRequestValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl VLVRequestControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		before, e := readIntUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.BeforeCount = before
		after, e := readIntUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.AfterCount = after

		tal, content, e := readTagged(sub)
		if e != nil {
			return e
		}
		switch tal.Tag {
		case 0:
			sub2 := &DERPacket{data: content}
			off, e := readIntUniversal(sub2)
			if e != nil {
				return e
			}
			ctrl.TargetOffset = off
			cnt, e := readIntUniversal(sub2)
			if e != nil {
				return e
			}
			ctrl.ContentCount = cnt
		case 1:
			ctrl.GreaterThanOrEqual = string(content)
		}

		if sub.HasMoreData() {
			_, content, e := readTagged(sub)
			if e != nil {
				return e
			}
			ctrl.ContextID = content
		}
		return nil
	})
	return ctrl, err
}

/*
VLVResponseControl implements the Virtual List View response control
of [draft-ietf-ldapext-ldapv3-vlv].

[draft-ietf-ldapext-ldapv3-vlv]: https://datatracker.ietf.org/doc/html/draft-ietf-ldapext-ldapv3-vlv
*/
type VLVResponseControl struct {
	TargetPosition int
	ContentCount   int
	VirtualListViewResult ResultCode
	ContextID      []byte
}

func decodeVLVResponseValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl VLVResponseControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		pos, e := readIntUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.TargetPosition = pos
		cnt, e := readIntUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.ContentCount = cnt
		rc, e := readEnumeratedUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.VirtualListViewResult = ResultCode(rc)
		if sub.HasMoreData() {
			var cid string
			if cid, e = readOctetStringUniversal(sub); e != nil {
				return e
			}
			ctrl.ContextID = []byte(cid)
		}
		return nil
	})
	return ctrl, err
}

/*
ProxiedAuthorizationControl implements [RFC 4370]'s authzId-carrying
control value. authzId is a "dn:<DN>" or "u:<username>" string;
[ProxiedAuthorizationControl.DN] resolves the dn: form through
[RFC4514.DistinguishedName].

[RFC 4370]: https://datatracker.ietf.org/doc/html/rfc4370
*/
type ProxiedAuthorizationControl struct {
	AuthzID string
}

func decodeProxiedAuthorizationValue(value []byte) (any, error) {
	return ProxiedAuthorizationControl{AuthzID: string(value)}, nil
}

/*
DN resolves the receiver's "dn:"-prefixed authzId to a
[DistinguishedName], returning a zero value and false for the
anonymous ("") or username ("u:...") forms.
*/
func (r ProxiedAuthorizationControl) DN() (DistinguishedName, bool) {
	if !hasPfx(r.AuthzID, "dn:") {
		return DistinguishedName{}, false
	}
	dn, err := parseDNBytes([]byte(r.AuthzID[3:]))
	return dn, err == nil
}

/*
PasswordPolicyResponseControl implements the response form of
[draft-behera-ldap-password-policy]'s control, carrying whichever of
the warning/error CHOICE members the server populated.

[draft-behera-ldap-password-policy]: https://datatracker.ietf.org/doc/html/draft-behera-ldap-password-policy
*/
type PasswordPolicyResponseControl struct {
	TimeBeforeExpiration int
	GraceAuthNsRemaining int
	HasWarning           bool
	Error                int
	HasError             bool
}

func decodePasswordPolicyValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl PasswordPolicyResponseControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		for sub.HasMoreData() {
			tal, content, e := readTagged(sub)
			if e != nil {
				return e
			}
			switch tal.Tag {
			case 0:
				inner := &DERPacket{data: content}
				tal2, content2, e := readTagged(inner)
				if e != nil {
					return e
				}
				v, e := intFromContent(content2)
				if e != nil {
					return e
				}
				ctrl.HasWarning = true
				switch tal2.Tag {
				case 0:
					ctrl.TimeBeforeExpiration = v
				case 1:
					ctrl.GraceAuthNsRemaining = v
				}
			case 1:
				v, e := intFromContent(content)
				if e != nil {
					return e
				}
				ctrl.Error = v
				ctrl.HasError = true
			}
		}
		return nil
	})
	return ctrl, err
}

/*
SyncRequestControl implements the syncRequestValue of [RFC 4533].

[RFC 4533]: https://datatracker.ietf.org/doc/html/rfc4533
*/
type SyncRequestControl struct {
	Mode      int
	Cookie    []byte
	ReloadHint bool
}

func decodeSyncRequestValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl SyncRequestControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		mode, e := readEnumeratedUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.Mode = mode
		if sub.HasMoreData() {
			cookie, e := readOctetStringUniversal(sub)
			if e != nil {
				return e
			}
			ctrl.Cookie = []byte(cookie)
		}
		if sub.HasMoreData() {
			reload, e := readBoolUniversal(sub)
			if e != nil {
				return e
			}
			ctrl.ReloadHint = reload
		}
		return nil
	})
	return ctrl, err
}

/*
SyncStateControl implements the syncStateValue of [RFC 4533].

[RFC 4533]: https://datatracker.ietf.org/doc/html/rfc4533
*/
type SyncStateControl struct {
	State  int
	EntryUUID []byte
	Cookie []byte
}

func decodeSyncStateValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl SyncStateControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		state, e := readEnumeratedUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.State = state
		uuid, e := readOctetStringUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.EntryUUID = []byte(uuid)
		if sub.HasMoreData() {
			cookie, e := readOctetStringUniversal(sub)
			if e != nil {
				return e
			}
			ctrl.Cookie = []byte(cookie)
		}
		return nil
	})
	return ctrl, err
}

/*
SyncDoneControl implements the syncDoneValue of [RFC 4533].

[RFC 4533]: https://datatracker.ietf.org/doc/html/rfc4533
*/
type SyncDoneControl struct {
	Cookie          []byte
	RefreshDeletes  bool
}

func decodeSyncDoneValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl SyncDoneControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		if sub.HasMoreData() {
			tal, e := peekTagAndLength(sub)
			if e != nil {
				return e
			}
			if tal.Tag == tagOctetString {
				cookie, e := readOctetStringUniversal(sub)
				if e != nil {
					return e
				}
				ctrl.Cookie = []byte(cookie)
			}
		}
		if sub.HasMoreData() {
			rd, e := readBoolUniversal(sub)
			if e != nil {
				return e
			}
			ctrl.RefreshDeletes = rd
		}
		return nil
	})
	return ctrl, err
}

/*
AssertionControl implements the single-[Filter] value of [RFC 4528].

[RFC 4528]: https://datatracker.ietf.org/doc/html/rfc4528
*/
type AssertionControl struct {
	Filter Filter
}

func decodeAssertionValue(value []byte) (any, error) {
	der := newDERPacket(value)
	f, err := decodeFilter(der)
	return AssertionControl{Filter: f}, err
}

/*
Encode serializes the receiver's [Filter] per [RFC 4528].

[RFC 4528]: https://datatracker.ietf.org/doc/html/rfc4528
*/
func (r AssertionControl) Encode() ([]byte, error) {
	der := &DERPacket{}
	err := encodeFilter(der, r.Filter)
	return der.Data(), err
}

/*
EntryChangeNotificationControl implements the response control of the
Persistent Search extension (draft-ietf-ldapext-psearch), returned
alongside a [SearchResultEntry] to describe the change that produced
it.
*/
type EntryChangeNotificationControl struct {
	ChangeType      int
	PreviousDN      DistinguishedName
	ChangeNumber    int
	HasChangeNumber bool
}

func decodeEntryChangeNotificationValue(value []byte) (any, error) {
	der := newDERPacket(value)
	var ctrl EntryChangeNotificationControl
	err := der.ReadConstructed(classUniversal, tagSequence, func(sub *DERPacket) error {
		ct, e := readEnumeratedUniversal(sub)
		if e != nil {
			return e
		}
		ctrl.ChangeType = ct
		if sub.HasMoreData() {
			tal, e := peekTagAndLength(sub)
			if e != nil {
				return e
			}
			if tal.Tag == tagOctetString {
				dnStr, e := readOctetStringUniversal(sub)
				if e != nil {
					return e
				}
				if ctrl.PreviousDN, e = parseDNBytes([]byte(dnStr)); e != nil {
					return e
				}
			}
		}
		if sub.HasMoreData() {
			cn, e := readIntUniversal(sub)
			if e != nil {
				return e
			}
			ctrl.ChangeNumber = cn
			ctrl.HasChangeNumber = true
		}
		return nil
	})
	return ctrl, err
}
