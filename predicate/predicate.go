// Package predicate provides types and interfaces for conditional operations.
// It defines predicate logic used in transactional conditional execution.
package predicate

// Predicate represents a condition used for conditional operations.
// Predicates are used in transactions to specify conditions for execution.
type Predicate interface {
	// Key returns the key that this predicate applies to.
	Key() []byte
	// Operation returns the comparison operation (Equal, NotEqual, Greater, Less).
	Operation() Op
	// Target returns what aspect of the key to compare (Version, Value).
	Target() Target
	// Value returns the comparison value for the predicate.
	Value() any
}

type predicate struct {
	key    []byte
	op     Op
	target Target
	value  any
}

func (p predicate) Key() []byte    { return p.key }
func (p predicate) Operation() Op  { return p.op }
func (p predicate) Target() Target { return p.target }
func (p predicate) Value() any     { return p.value }

// ValueEqual is true when the value of key equals value.
func ValueEqual(key []byte, value any) Predicate {
	return predicate{key: key, op: OpEqual, target: TargetValue, value: value}
}

// ValueNotEqual is true when the value of key differs from value or key is absent.
func ValueNotEqual(key []byte, value any) Predicate {
	return predicate{key: key, op: OpNotEqual, target: TargetValue, value: value}
}

// VersionEqual is true when the mod revision of key equals revision.
func VersionEqual(key []byte, revision int64) Predicate {
	return predicate{key: key, op: OpEqual, target: TargetVersion, value: revision}
}

// VersionNotEqual is true when the mod revision of key differs from revision.
func VersionNotEqual(key []byte, revision int64) Predicate {
	return predicate{key: key, op: OpNotEqual, target: TargetVersion, value: revision}
}

// VersionGreater is true when the mod revision of key is greater than revision.
func VersionGreater(key []byte, revision int64) Predicate {
	return predicate{key: key, op: OpGreater, target: TargetVersion, value: revision}
}

// VersionLess is true when the mod revision of key is less than revision.
func VersionLess(key []byte, revision int64) Predicate {
	return predicate{key: key, op: OpLess, target: TargetVersion, value: revision}
}
