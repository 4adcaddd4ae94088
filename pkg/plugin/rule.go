// SPDX-License-Identifier: MPL-2.0

package plugin

type (
	// ConditionOp is a comparison operator in a permission rule condition.
	ConditionOp string

	// Condition is one node of a permission rule's condition tree. A node
	// is either a leaf comparison (Field/Op/Value set) or a branch (All or
	// Any set). The composition engine treats the tree as opaque data; the
	// host runtime's permission layer interprets it.
	Condition struct {
		// Field is the attribute path the leaf comparison reads (e.g.,
		// "resource.ownerId").
		Field string `json:"field,omitempty"`
		// Op is the leaf comparison operator.
		Op ConditionOp `json:"op,omitempty"`
		// Value is the literal the field is compared against.
		Value any `json:"value,omitempty"`
		// All holds child conditions that must all hold (logical AND).
		All []Condition `json:"all,omitempty"`
		// Any holds child conditions of which at least one must hold
		// (logical OR).
		Any []Condition `json:"any,omitempty"`
	}

	// Rule is a permission rule contributed under a permission slug.
	Rule struct {
		// Description is optional human-readable documentation.
		Description string `json:"description,omitempty"`
		// When restricts when the permission applies. A nil When means the
		// permission is unconditional.
		When *Condition `json:"when,omitempty"`
	}
)

const (
	// OpEqual compares for equality.
	OpEqual ConditionOp = "eq"
	// OpNotEqual compares for inequality.
	OpNotEqual ConditionOp = "ne"
	// OpIn checks membership in a list value.
	OpIn ConditionOp = "in"
	// OpContains checks that a list or string field contains the value.
	OpContains ConditionOp = "contains"
)

// IsLeaf reports whether the condition is a leaf comparison rather than an
// All/Any branch.
func (c Condition) IsLeaf() bool {
	return len(c.All) == 0 && len(c.Any) == 0
}
