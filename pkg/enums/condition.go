package enums

import "fmt"

// Condition is the physical state of an inventory item.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionUsed    Condition = "used"
	ConditionOpenBox Condition = "open_box"
	ConditionDamaged Condition = "damaged"
)

var validConditions = []Condition{
	ConditionNew,
	ConditionUsed,
	ConditionOpenBox,
	ConditionDamaged,
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Condition.
func (c Condition) IsValid() bool {
	for _, candidate := range validConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsIntake reports whether an item may be created in this condition.
// Damaged is only reached by marking an existing item.
func (c Condition) IsIntake() bool {
	return c.IsValid() && c != ConditionDamaged
}

// ParseCondition converts raw input into a Condition.
func ParseCondition(value string) (Condition, error) {
	for _, candidate := range validConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition %q", value)
}

// Conditions lists every known condition in display order.
func Conditions() []Condition {
	out := make([]Condition, len(validConditions))
	copy(out, validConditions)
	return out
}
