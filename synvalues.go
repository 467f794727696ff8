package dirsyn

/*
synvalues.go implements the remaining [SyntaxVerification] closures
referenced by the syntaxVerifiers registry in syn.go. Each wraps an
existing RFC constructor (or, for the schema description syntaxes, an
existing parseXDescription function plus its Valid method) the same
way boolean (bool.go) and uUID (uuid.go) wrap theirs.
*/

func attributeTypeDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseAttributeTypeDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func deliveryMethod(x any) (result Boolean) {
	var r RFC4517
	_, err := r.DeliveryMethod(x)
	result.Set(err == nil)
	return
}

func dITContentRuleDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseDITContentRuleDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func dITStructureRuleDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseDITStructureRuleDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func dN(x any) (result Boolean) {
	var r RFC4517
	_, err := r.DistinguishedName(x)
	result.Set(err == nil)
	return
}

func enhancedGuide(x any) (result Boolean) {
	var r RFC4517
	err := r.EnhancedGuide(x)
	result.Set(err == nil)
	return
}

func facsimileTelephoneNumber(x any) (result Boolean) {
	var r RFC4517
	_, err := r.FacsimileTelephoneNumber(x)
	result.Set(err == nil)
	return
}

func fax(x any) (result Boolean) {
	var r RFC4517
	_, err := r.Fax(x)
	result.Set(err == nil)
	return
}

func generalizedTime(x any) (result Boolean) {
	var r RFC4517
	_, err := r.GeneralizedTime(x)
	result.Set(err == nil)
	return
}

func guide(x any) (result Boolean) {
	var r RFC4517
	err := r.Guide(x)
	result.Set(err == nil)
	return
}

func jPEG(x any) (result Boolean) {
	var r RFC4517
	err := r.JPEG(x)
	result.Set(err == nil)
	return
}

func lDAPSyntaxDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseLDAPSyntaxDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func matchingRuleDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseMatchingRuleDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func matchingRuleUseDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseMatchingRuleUseDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func nameAndOptionalUID(x any) (result Boolean) {
	var r RFC4517
	_, err := r.NameAndOptionalUID(x)
	result.Set(err == nil)
	return
}

func nameFormDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseNameFormDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func objectClassDescription(x any) (result Boolean) {
	str, ok := x.(string)
	if !ok {
		return
	}
	def, err := parseObjectClassDescription(str)
	result.Set(err == nil && def.Valid())
	return
}

func oID(x any) (result Boolean) {
	var r RFC4517
	err := r.OID(x)
	result.Set(err == nil)
	return
}

func otherMailbox(x any) (result Boolean) {
	var r RFC4517
	_, err := r.OtherMailbox(x)
	result.Set(err == nil)
	return
}

func postalAddress(x any) (result Boolean) {
	var r RFC4517
	_, err := r.PostalAddress(x)
	result.Set(err == nil)
	return
}

func telephoneNumber(x any) (result Boolean) {
	var r RFC4517
	_, err := r.TelephoneNumber(x)
	result.Set(err == nil)
	return
}

func teletexTerminalIdentifier(x any) (result Boolean) {
	var r RFC4517
	_, err := r.TeletexTerminalIdentifier(x)
	result.Set(err == nil)
	return
}

func telexNumber(x any) (result Boolean) {
	var r RFC4517
	_, err := r.TelexNumber(x)
	result.Set(err == nil)
	return
}

func uTCTime(x any) (result Boolean) {
	var r RFC4517
	_, err := r.UTCTime(x)
	result.Set(err == nil)
	return
}
