package dirsyn

/*
schema_registry.go builds live, OID- and name-keyed lookup tables on
top of [SubschemaSubentry]'s parse-only description slices
(schema.go), and wires [matchingRuleAssertions] (common.go) and
[syntaxVerifiers] (syn.go) into those lookups as callable
comparator/syntax-checker capabilities, the same closures the teacher
already built for EQUALITY/ORDERING/SUBSTR matching and LDAPSyntax
verification, just reached by OID through a registry instead of a bare
package-level map.
*/

/*
SchemaRegistry indexes a [SubschemaSubentry] snapshot by OID (and, for
attribute types and object classes, by every NAME alias) so that
lookups during decode/encode and Value binding do not require a linear
scan of [AttributeTypes.Contains] and its siblings.
*/
type SchemaRegistry struct {
	sub SubschemaSubentry

	attrsByOID  map[string]AttributeTypeDescription
	attrsByName map[string]AttributeTypeDescription
	mrsByOID    map[string]MatchingRuleDescription
	synByOID    map[string]LDAPSyntaxDescription
	ocsByOID    map[string]ObjectClassDescription
	ocsByName   map[string]ObjectClassDescription
}

/*
NewSchemaRegistry returns a freshly indexed *[SchemaRegistry] built
from sub. Callers that mutate sub afterward (e.g. via
[SubschemaSubentry.AddLDAPSyntax]) should call [SchemaRegistry.Reindex]
before relying on the registry again.
*/
func NewSchemaRegistry(sub SubschemaSubentry) *SchemaRegistry {
	r := &SchemaRegistry{sub: sub}
	r.Reindex()
	return r
}

/*
Reindex rebuilds every lookup table from the registry's current
[SubschemaSubentry] snapshot.
*/
func (r *SchemaRegistry) Reindex() {
	r.attrsByOID = make(map[string]AttributeTypeDescription, len(r.sub.AttributeTypes))
	r.attrsByName = make(map[string]AttributeTypeDescription, len(r.sub.AttributeTypes))
	for _, at := range r.sub.AttributeTypes {
		r.attrsByOID[at.OID] = at
		for _, n := range at.Name {
			r.attrsByName[lc(n)] = at
		}
	}

	r.mrsByOID = make(map[string]MatchingRuleDescription, len(r.sub.MatchingRules))
	for _, mr := range r.sub.MatchingRules {
		r.mrsByOID[mr.OID] = mr
	}

	r.synByOID = make(map[string]LDAPSyntaxDescription, len(r.sub.LDAPSyntaxes))
	for _, syn := range r.sub.LDAPSyntaxes {
		r.synByOID[syn.OID] = syn
	}

	r.ocsByOID = make(map[string]ObjectClassDescription, len(r.sub.ObjectClasses))
	r.ocsByName = make(map[string]ObjectClassDescription, len(r.sub.ObjectClasses))
	for _, oc := range r.sub.ObjectClasses {
		r.ocsByOID[oc.OID] = oc
		for _, n := range oc.Name {
			r.ocsByName[lc(n)] = oc
		}
	}
}

/*
AttributeType returns the [AttributeTypeDescription] registered under
idOrName, matching against the numeric OID first and a case-folded
NAME alias second.
*/
func (r *SchemaRegistry) AttributeType(idOrName string) (AttributeTypeDescription, bool) {
	if at, ok := r.attrsByOID[idOrName]; ok {
		return at, true
	}
	at, ok := r.attrsByName[lc(idOrName)]
	return at, ok
}

/*
MatchingRule returns the [MatchingRuleDescription] registered under
oid.
*/
func (r *SchemaRegistry) MatchingRule(oid string) (MatchingRuleDescription, bool) {
	mr, ok := r.mrsByOID[oid]
	return mr, ok
}

/*
Syntax returns the [LDAPSyntaxDescription] registered under oid.
*/
func (r *SchemaRegistry) Syntax(oid string) (LDAPSyntaxDescription, bool) {
	syn, ok := r.synByOID[oid]
	return syn, ok
}

/*
ObjectClass returns the [ObjectClassDescription] registered under
idOrName, matching against the numeric OID first and a case-folded
NAME alias second.
*/
func (r *SchemaRegistry) ObjectClass(idOrName string) (ObjectClassDescription, bool) {
	if oc, ok := r.ocsByOID[idOrName]; ok {
		return oc, true
	}
	oc, ok := r.ocsByName[lc(idOrName)]
	return oc, ok
}

/*
IsDescendant reports whether the attribute type named by child (OID or
NAME) is the ancestor attribute type itself, or descends from it via
one or more SUP clauses. A SUP chain that cycles back on itself, or
that runs off the end of the registry, resolves to false rather than
looping forever.
*/
func (r *SchemaRegistry) IsDescendant(child, ancestor string) bool {
	cur, ok := r.AttributeType(child)
	if !ok {
		return false
	}

	visited := map[string]bool{}
	for {
		if cur.OID == ancestor || eqf(ancestor, cur.OID) {
			return true
		}
		for _, n := range cur.Name {
			if eqf(n, ancestor) {
				return true
			}
		}

		if cur.SuperType == "" {
			return false
		}
		if visited[cur.SuperType] {
			return false
		}
		visited[cur.SuperType] = true

		cur, ok = r.AttributeType(cur.SuperType)
		if !ok {
			return false
		}
	}
}

/*
Comparator returns a closure wrapping the EQUALITY matching rule
registered under mrOID in [matchingRuleAssertions], or false if mrOID
names no matching rule, or names one that is not an EQUALITY rule.
*/
func (r *SchemaRegistry) Comparator(mrOID string) (func(a, b any) (bool, error), bool) {
	mra, ok := matchingRuleAssertions[mrOID]
	if !ok {
		return nil, false
	}
	era, ok := mra.(EqualityRuleAssertion)
	if !ok {
		return nil, false
	}

	return func(a, b any) (bool, error) {
		result, err := era(a, b)
		return result.True(), err
	}, true
}

/*
OrderingComparator returns a closure wrapping the ORDERING matching
rule registered under mrOID in [matchingRuleAssertions], or false if
mrOID names no matching rule, or names one that is not an ORDERING
rule.
*/
func (r *SchemaRegistry) OrderingComparator(mrOID string) (func(a, b any, operator byte) (bool, error), bool) {
	mra, ok := matchingRuleAssertions[mrOID]
	if !ok {
		return nil, false
	}
	ora, ok := mra.(OrderingRuleAssertion)
	if !ok {
		return nil, false
	}

	return func(a, b any, operator byte) (bool, error) {
		result, err := ora(a, b, operator)
		return result.True(), err
	}, true
}

/*
SyntaxChecker returns a closure wrapping the [SyntaxVerification]
registered under syntaxOID in [syntaxVerifiers].
*/
func (r *SchemaRegistry) SyntaxChecker(syntaxOID string) (func(any) bool, bool) {
	sv, ok := syntaxVerifiers[syntaxOID]
	if !ok {
		return nil, false
	}

	return func(v any) bool {
		return sv(v).True()
	}, true
}

/*
caseSensitiveMatchingRules lists the EQUALITY/ORDERING matching rule
OIDs (per [matchingRuleAssertions]) whose comparison semantics are
case-sensitive; every other registered matching rule folds case during
normalization.
*/
var caseSensitiveMatchingRules = map[string]bool{
	"2.5.13.5":                   true, // caseExactMatch
	"2.5.13.6":                   true, // caseExactOrderingMatch
	"2.5.13.7":                   true, // caseExactSubstringsMatch
	"1.3.6.1.4.1.1466.109.114.1": true, // caseExactIA5Match
}

/*
Normalizer returns a best-effort normalization closure for the
attribute type named by attrIDOrName: whitespace is condensed via
[condenseWHSP] and, unless the attribute type's EQUALITY rule is
case-sensitive per [caseSensitiveMatchingRules], the result is folded
to lower case. It returns false if attrIDOrName names no known
attribute type, or one with no EQUALITY clause.
*/
func (r *SchemaRegistry) Normalizer(attrIDOrName string) (func(any) (string, error), bool) {
	at, ok := r.AttributeType(attrIDOrName)
	if !ok || at.Equality == "" {
		return nil, false
	}

	caseFold := !caseSensitiveMatchingRules[at.Equality]

	return func(x any) (string, error) {
		s, err := assertString(x, 0, "normalize")
		if err != nil {
			return "", err
		}
		s = condenseWHSP(s)
		if caseFold {
			s = lc(s)
		}
		return s, nil
	}, true
}
