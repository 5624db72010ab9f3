package diag

import (
	"fmt"

	"github.com/dhamidi/doccheck/source"
)

// Problem is one reported doc comment problem.
type Problem struct {
	Kind     Kind
	Severity Severity
	Span     source.Span
	// Args are the names the message refers to (parameter name, type name, ...).
	Args    []string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %s [%s] %s", p.Span, p.Severity, p.Kind, p.Message)
}

// Message renders the default English message for kind and args.
func Message(kind Kind, args ...string) string {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return "?"
	}
	switch kind {
	case UnexpectedTag:
		return "Javadoc: Unexpected tag"
	case MissingParamTag:
		return fmt.Sprintf("Javadoc: Missing tag for parameter %s", arg(0))
	case MissingThrowsTag:
		return fmt.Sprintf("Javadoc: Missing tag for declared exception %s", arg(0))
	case MissingReturnTag:
		return "Javadoc: Missing tag for return type"
	case DuplicatedParamTag:
		return fmt.Sprintf("Javadoc: Duplicate tag for parameter %s", arg(0))
	case UndeclaredParamTagName:
		return fmt.Sprintf("Javadoc: Parameter %s is not declared", arg(0))
	case InvalidValueReference:
		return "Javadoc: Only static field reference is allowed for @value tag"
	case InvalidReference:
		return "Javadoc: Invalid reference"
	case InvalidThrowsClassName:
		return fmt.Sprintf("Javadoc: Exception %s is not declared", arg(0))
	case UndefinedType:
		return fmt.Sprintf("Javadoc: %s cannot be resolved to a type", arg(0))
	case UndefinedField:
		return fmt.Sprintf("Javadoc: %s cannot be resolved or is not a field", arg(0))
	case UndefinedMethod:
		return fmt.Sprintf("Javadoc: The method %s is undefined", arg(0))
	case UndefinedConstructor:
		return fmt.Sprintf("Javadoc: The constructor %s is undefined", arg(0))
	}
	return "Javadoc: " + kind.String()
}
