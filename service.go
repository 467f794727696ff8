package dirsyn

/*
service.go implements [CodecService], the package-root facade gluing
the control registry (control.go) to the message encoder/decoder
(encoder.go, decoder.go): the one stop a caller needs for turning wire
octets into an [LDAPMessage] (with its controls resolved to typed
values where a factory is registered) and back.
*/

/*
CodecService wraps a [SchemaRegistry] and a [ControlRegistry],
providing the single Decode/Encode entry point a server or client
loop calls per PDU. The zero value is not usable; construct with
[NewCodecService].
*/
type CodecService struct {
	Schema   *SchemaRegistry
	Controls *ControlRegistry
}

/*
NewCodecService returns a *[CodecService] with a fresh, empty
[SchemaRegistry] and a [ControlRegistry] pre-populated with every
control this package implements natively. Callers wanting schema
awareness replace Schema with a registry built by [NewSchemaRegistry]
from a populated [SubschemaSubentry] before calling [CodecService.Decode].
*/
func NewCodecService() *CodecService {
	return &CodecService{
		Schema:   NewSchemaRegistry(SubschemaSubentry{}),
		Controls: NewControlRegistry(),
	}
}

/*
DecodedMessage wraps an [*LDAPMessage] together with its controls
resolved through the receiver's [ControlRegistry], so a caller never
has to re-dispatch on OID to make sense of [Control.ControlValue]
itself.
*/
type DecodedMessage struct {
	Message  *LDAPMessage
	Resolved map[string]any
}

/*
Decode parses input as a single BER-encoded LDAPMessage envelope and
resolves every control it carries through the receiver's
[ControlRegistry]. Controls with no registered factory are omitted
from Resolved; their raw octets remain reachable via
Message.Controls.
*/
func (svc *CodecService) Decode(input []byte) (out DecodedMessage, err error) {
	var msg *LDAPMessage
	if msg, err = DecodeMessage(input); err != nil {
		return
	}
	out.Message = msg
	out.Resolved = make(map[string]any)

	for _, ctrl := range msg.Controls.Slice() {
		val, known, derr := svc.Controls.Decode(ctrl)
		if derr != nil {
			err = derr
			return
		}
		if known {
			out.Resolved[ctrl.OID] = val
		}
	}

	return
}

/*
Encode serializes msg to its BER wire form. It is a thin pass-through
to [EncodeMessage]; kept as a method so callers depending only on
[*CodecService] never need to import the package-level encoder
function directly.
*/
func (svc *CodecService) Encode(msg *LDAPMessage) ([]byte, error) {
	return EncodeMessage(msg)
}

/*
BindAttribute resolves a string value against the receiver's schema,
the same normalization path [Entry.ApplyModification] uses, exposed
standalone so a caller building an [Attribute] outside of a
ModifyRequest (e.g. composing an AddRequest) gets identical binding
semantics.
*/
func (svc *CodecService) BindAttribute(description string, values ...string) (attr Attribute, err error) {
	attr = Attribute{Description: description}
	for _, s := range values {
		v := ValueFromString(s)
		if svc.Schema != nil {
			if err = v.Bind(svc.Schema, description); err != nil {
				return
			}
		}
		attr.AddValues(v)
	}
	return
}
