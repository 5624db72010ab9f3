package diag

import "fmt"

// Kind identifies a doc comment problem. The numeric value is stable and is
// used as the diagnostic code in machine readable output.
type Kind uint16

const (
	UnknownKind            Kind = 0
	UnexpectedTag          Kind = 1001
	MissingParamTag        Kind = 1002
	MissingThrowsTag       Kind = 1003
	MissingReturnTag       Kind = 1004
	DuplicatedParamTag     Kind = 1005
	UndeclaredParamTagName Kind = 1006
	InvalidValueReference  Kind = 1007
	InvalidReference       Kind = 1008
	InvalidThrowsClassName Kind = 1009
	UndefinedType          Kind = 1010
	UndefinedField         Kind = 1011
	UndefinedMethod        Kind = 1012
	UndefinedConstructor   Kind = 1013
)

var kindNames = map[Kind]string{
	UnknownKind:            "Unknown",
	UnexpectedTag:          "UnexpectedTag",
	MissingParamTag:        "MissingParamTag",
	MissingThrowsTag:       "MissingThrowsTag",
	MissingReturnTag:       "MissingReturnTag",
	DuplicatedParamTag:     "DuplicatedParamTag",
	UndeclaredParamTagName: "UndeclaredParamTagName",
	InvalidValueReference:  "InvalidValueReference",
	InvalidReference:       "InvalidReference",
	InvalidThrowsClassName: "InvalidThrowsClassName",
	UndefinedType:          "UndefinedType",
	UndefinedField:         "UndefinedField",
	UndefinedMethod:        "UndefinedMethod",
	UndefinedConstructor:   "UndefinedConstructor",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// Code formats the kind as it appears in CLI output, e.g. "JD1002".
func (k Kind) Code() string {
	return fmt.Sprintf("JD%04d", uint16(k))
}

// IsMissing reports whether the kind is one of the "missing tag" problems,
// which are subject to the missing-tags visibility option.
func (k Kind) IsMissing() bool {
	switch k {
	case MissingParamTag, MissingThrowsTag, MissingReturnTag:
		return true
	}
	return false
}

// Kinds returns every known kind except UnknownKind, ordered by code.
func Kinds() []Kind {
	return []Kind{
		UnexpectedTag, MissingParamTag, MissingThrowsTag, MissingReturnTag,
		DuplicatedParamTag, UndeclaredParamTagName, InvalidValueReference,
		InvalidReference, InvalidThrowsClassName, UndefinedType,
		UndefinedField, UndefinedMethod, UndefinedConstructor,
	}
}

// ParseKind looks a kind up by its name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && k != UnknownKind {
			return k, true
		}
	}
	return UnknownKind, false
}
