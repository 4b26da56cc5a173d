package agent

import (
	"strings"
	"testing"

	"medcrm/models"
)

func TestInsertVariableAtCaret(t *testing.T) {
	got, caret := InsertVariable("Hello , welcome", 6, 6, "name")
	if got != "Hello {{name}}, welcome" {
		t.Errorf("template = %q, want %q", got, "Hello {{name}}, welcome")
	}
	if caret != 14 {
		t.Errorf("caret = %d, want 14", caret)
	}
}

func TestInsertVariableReplacesSelection(t *testing.T) {
	// The selected range is replaced by the token.
	got, caret := InsertVariable("Hello PATIENT, welcome", 6, 13, "name")
	if got != "Hello {{name}}, welcome" {
		t.Errorf("template = %q, want %q", got, "Hello {{name}}, welcome")
	}
	if caret != 6+len("{{name}}") {
		t.Errorf("caret = %d, want %d", caret, 6+len("{{name}}"))
	}
}

func TestInsertVariableAtBounds(t *testing.T) {
	got, caret := InsertVariable("", 0, 0, "clinic_name")
	if got != "{{clinic_name}}" || caret != len("{{clinic_name}}") {
		t.Errorf("empty template insert: %q caret=%d", got, caret)
	}

	got, caret = InsertVariable("Welcome", 7, 7, "name")
	if got != "Welcome{{name}}" || caret != 15 {
		t.Errorf("end-of-template insert: %q caret=%d", got, caret)
	}
}

func TestInsertVariableTwiceKeepsBothTokens(t *testing.T) {
	first, caret := InsertVariable("Call  today", 5, 5, "name")
	second, _ := InsertVariable(first, caret, caret, "clinic_name")

	if strings.Count(second, "{{name}}") != 1 || strings.Count(second, "{{clinic_name}}") != 1 {
		t.Errorf("double insert result = %q", second)
	}
	if second != "Call {{name}}{{clinic_name}} today" {
		t.Errorf("second insert lands at the returned caret, got %q", second)
	}
}

func TestInsertVariableSameTokenTwice(t *testing.T) {
	// Inserting an already-present variable again is allowed.
	first, caret := InsertVariable("", 0, 0, "name")
	second, _ := InsertVariable(first, caret, caret, "name")
	if strings.Count(second, "{{name}}") != 2 {
		t.Errorf("expected two name tokens, got %q", second)
	}
}

func TestClampCaret(t *testing.T) {
	tests := []struct {
		name         string
		start, end   int
		wantS, wantE int
	}{
		{"negative start", -4, 2, 0, 2},
		{"start past end of template", 99, 99, 5, 5},
		{"end before start", 3, 1, 3, 3},
		{"end past template", 2, 99, 2, 5},
		{"in bounds untouched", 1, 4, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := ClampCaret("hello", tt.start, tt.end)
			if s != tt.wantS || e != tt.wantE {
				t.Errorf("ClampCaret(%d, %d) = (%d, %d), want (%d, %d)", tt.start, tt.end, s, e, tt.wantS, tt.wantE)
			}
		})
	}
}

func TestVariablesForField(t *testing.T) {
	for _, field := range []string{
		models.ScriptFieldGreeting,
		models.ScriptFieldServiceDescription,
		models.ScriptFieldAvailability,
	} {
		if len(VariablesForField(field)) == 0 {
			t.Errorf("field %s has an empty catalog", field)
		}
	}
	if VariablesForField("unknown") != nil {
		t.Error("unknown field should yield nil")
	}

	// Greeting offers the caller-name placeholder.
	found := false
	for _, v := range VariablesForField(models.ScriptFieldGreeting) {
		if v.Name == "name" {
			found = true
		}
	}
	if !found {
		t.Error("greeting catalog should include the name variable")
	}
}

func TestFillSampleLeavesUnknownTokens(t *testing.T) {
	out := FillSample("Hi {{name}}, this is {{mystery}}")
	if strings.Contains(out, "{{name}}") {
		t.Error("known variables must be substituted")
	}
	if !strings.Contains(out, "{{mystery}}") {
		t.Error("unknown variables must be left in place")
	}
}
