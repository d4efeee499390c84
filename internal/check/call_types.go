package check

import "github.com/max1624/jakt/internal/types"

// SafetyMode tracks whether the expression currently being checked lies
// lexically inside an unsafe block; it gates raw-pointer dereference.
type SafetyMode int

const (
	Safe SafetyMode = iota
	Unsafe
)

// CheckedArgument is one resolved call-site argument: its original label
// (possibly empty) alongside the checked expression it was bound to.
type CheckedArgument struct {
	Label string
	Value CheckedExpression
}

// CheckedCall is a resolved call or method call.
// Namespace is empty for method calls: the record is implicit via the
// receiver, never spelled out in the checked form.
type CheckedCall struct {
	Namespace []string
	Name      string
	Args      []CheckedArgument
	Type      types.Type
}
