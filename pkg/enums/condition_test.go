package enums

import "testing"

func TestParseCondition(t *testing.T) {
	for _, raw := range []string{"new", "used", "open_box", "damaged"} {
		got, err := ParseCondition(raw)
		if err != nil {
			t.Fatalf("ParseCondition(%q) returned error: %v", raw, err)
		}
		if got.String() != raw {
			t.Fatalf("expected %q got %q", raw, got)
		}
	}

	if _, err := ParseCondition("NEW"); err == nil {
		t.Fatal("expected case-sensitive parse to reject NEW")
	}
	if _, err := ParseCondition("broken"); err == nil {
		t.Fatal("expected unknown condition to fail")
	}
}

func TestConditionIntake(t *testing.T) {
	if !ConditionOpenBox.IsIntake() {
		t.Fatal("open_box should be accepted at intake")
	}
	if ConditionDamaged.IsIntake() {
		t.Fatal("damaged should not be accepted at intake")
	}
	if !ConditionDamaged.IsValid() {
		t.Fatal("damaged is still a valid stored condition")
	}
	if Condition("").IsValid() {
		t.Fatal("empty condition should be invalid")
	}
}

func TestConditionsReturnsCopy(t *testing.T) {
	all := Conditions()
	all[0] = "mutated"
	if Conditions()[0] != ConditionNew {
		t.Fatal("Conditions should not expose the backing slice")
	}
}
