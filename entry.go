package dirsyn

/*
entry.go implements the schema-aware [Attribute], [Entry] and
[Modification] model of [§ 4.6]/[§ 4.7] of RFC4511: a set-valued
attribute built from [Value] (value.go), an entry as an ordered
collection of such attributes, and [Entry.ApplyModification] which
interprets the add/delete/replace/increment semantics of a
[ModifyRequest]'s changes (message.go).

[§ 4.6]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.6
[§ 4.7]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.7
*/

/*
ModificationOperation implements the "operation" CHOICE of [§ 4.6 of
RFC4511].

[§ 4.6 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.6
*/
type ModificationOperation int

const (
	ModAdd ModificationOperation = iota
	ModDelete
	ModReplace
	ModIncrement
)

/*
Modification implements a single change of a [ModifyRequest]'s
"changes" SEQUENCE.
*/
type Modification struct {
	Operation   ModificationOperation
	Description string
	Values      []string
}

/*
Attribute implements a schema-aware, set-valued attribute: a
description paired with zero or more distinct [Value] instances. Per
[§ 4.1.7 of RFC4511], an attribute present in an entry carries at
least one value; an explicit "no values" state (used only inside a
[ModifyRequest]'s delete-all-values change) is represented by a nil
Values slice on an otherwise-valid Attribute, never by a single null
[Value] mixed in among real ones.

[§ 4.1.7 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.1.7
*/
type Attribute struct {
	Description string
	Values      []Value
}

/*
IsZero returns a Boolean value indicative of a nil Description.
*/
func (r Attribute) IsZero() bool { return r.Description == "" }

/*
indexOf returns the position of a [Value] within the receiver's
Values slice whose raw bytes equal v's, or -1 if none match. Equality
here is always raw-byte comparison: set membership must be decidable
before a schema is necessarily attached.
*/
func (r Attribute) indexOf(v Value) int {
	for i, existing := range r.Values {
		if len(existing.raw) != len(v.raw) {
			continue
		}
		match := true
		for j := range existing.raw {
			if existing.raw[j] != v.raw[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

/*
AddValues appends every value in vs not already present (by raw-byte
equality) to the receiver instance, enforcing the set semantics of [§
4.1.7 of RFC4511].

[§ 4.1.7 of RFC4511]: https://datatracker.ietf.org/doc/html/rfc4511#section-4.1.7
*/
func (r *Attribute) AddValues(vs ...Value) {
	for _, v := range vs {
		if r.indexOf(v) == -1 {
			r.Values = append(r.Values, v)
		}
	}
}

/*
RemoveValues deletes every value in vs from the receiver instance that
matches by raw-byte equality, leaving other values in place.
*/
func (r *Attribute) RemoveValues(vs ...Value) {
	for _, v := range vs {
		if idx := r.indexOf(v); idx != -1 {
			r.Values = append(r.Values[:idx], r.Values[idx+1:]...)
		}
	}
}

/*
Entry implements a schema-aware directory entry: a distinguished name
paired with an insertion-ordered collection of [Attribute] values,
keyed internally by a case-folded attribute description the way
[AttributeTypes.Contains] folds NAME lookups.
*/
type Entry struct {
	DN         DistinguishedName
	order      []string
	attributes map[string]*Attribute
}

/*
NewEntry returns an initialized, empty *[Entry] for dn.
*/
func NewEntry(dn DistinguishedName) *Entry {
	return &Entry{DN: dn, attributes: make(map[string]*Attribute)}
}

/*
Attribute returns the [*Attribute] registered under description
(case-insensitive), and a Boolean indicative of its presence.
*/
func (r *Entry) Attribute(description string) (*Attribute, bool) {
	a, ok := r.attributes[lc(description)]
	return a, ok
}

/*
Attributes returns the receiver's attributes in insertion order.
*/
func (r *Entry) Attributes() []*Attribute {
	out := make([]*Attribute, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.attributes[k])
	}
	return out
}

/*
setAttribute installs attr under its (case-folded) description,
recording a new order slot only the first time that description is
seen.
*/
func (r *Entry) setAttribute(attr *Attribute) {
	key := lc(attr.Description)
	if _, exists := r.attributes[key]; !exists {
		r.order = append(r.order, key)
	}
	r.attributes[key] = attr
}

/*
deleteAttribute removes description entirely from the receiver
instance, including its order slot.
*/
func (r *Entry) deleteAttribute(description string) {
	key := lc(description)
	if _, exists := r.attributes[key]; !exists {
		return
	}
	delete(r.attributes, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

/*
ApplyModification mutates the receiver instance per mod, resolving
mod.Description against reg (when non-nil) to bind each incoming
value before it is stored. The four operations behave as follows:

  - [ModAdd]: values are merged into the named attribute's value set
    (creating the attribute if absent), duplicates silently ignored
    per set semantics.
  - [ModDelete]: with no values given, the entire attribute is
    removed; otherwise, only the named values are removed, and the
    attribute itself is removed if that empties its value set.
  - [ModReplace]: the named attribute's value set is replaced outright
    by mod.Values; supplying no values removes the attribute.
  - [ModIncrement]: the named attribute must carry exactly one
    existing, integer-syntax value, and mod.Values must carry exactly
    one value parsing as an integer delta; the stored value becomes
    their sum. [SchemaErrInvalidIncrement] is returned for any other
    shape.
*/
func (r *Entry) ApplyModification(reg *SchemaRegistry, mod Modification) error {
	bind := func(s string) (Value, error) {
		v := ValueFromString(s)
		if reg != nil && mod.Description != "" {
			if err := v.Bind(reg, mod.Description); err != nil {
				return v, err
			}
		}
		return v, nil
	}

	switch mod.Operation {
	case ModAdd:
		attr, ok := r.Attribute(mod.Description)
		if !ok {
			attr = &Attribute{Description: mod.Description}
			r.setAttribute(attr)
		}
		for _, s := range mod.Values {
			v, err := bind(s)
			if err != nil {
				return err
			}
			attr.AddValues(v)
		}

	case ModDelete:
		attr, ok := r.Attribute(mod.Description)
		if !ok {
			return nil
		}
		if len(mod.Values) == 0 {
			r.deleteAttribute(mod.Description)
			return nil
		}
		for _, s := range mod.Values {
			v, err := bind(s)
			if err != nil {
				return err
			}
			attr.RemoveValues(v)
		}
		if len(attr.Values) == 0 {
			r.deleteAttribute(mod.Description)
		}

	case ModReplace:
		if len(mod.Values) == 0 {
			r.deleteAttribute(mod.Description)
			return nil
		}
		attr := &Attribute{Description: mod.Description}
		for _, s := range mod.Values {
			v, err := bind(s)
			if err != nil {
				return err
			}
			attr.AddValues(v)
		}
		r.setAttribute(attr)

	case ModIncrement:
		if len(mod.Values) != 1 {
			return schemaErr(SchemaErrInvalidIncrement, "increment requires exactly one delta value")
		}
		attr, ok := r.Attribute(mod.Description)
		if !ok || len(attr.Values) != 1 {
			return schemaErr(SchemaErrInvalidIncrement, "increment requires exactly one existing value")
		}

		var s RFC4517
		cur, err := s.Integer(attr.Values[0].String())
		if err != nil {
			return schemaErr(SchemaErrInvalidIncrement, "existing value is not an INTEGER")
		}
		delta, err := s.Integer(mod.Values[0])
		if err != nil {
			return schemaErr(SchemaErrInvalidIncrement, "delta value is not an INTEGER")
		}

		sum := cur.Cast()
		sum.Add(sum, delta.Cast())

		v, err := bind(sum.String())
		if err != nil {
			return err
		}
		attr.Values[0] = v

	default:
		return schemaErr(SchemaErrInvalidIncrement, "unknown modification operation")
	}

	return nil
}
