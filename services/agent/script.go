// File: services/agent/script.go
package agent

import "medcrm/models"

// Variable catalogs offered by the script editor. Each script field exposes
// its own subset; the lists are static and defined here, not fetched.
var (
	greetingVariables = []models.ScriptVariable{
		{Name: "name", Description: "Caller's name, when recognized"},
		{Name: "clinic_name", Description: "Name of the clinic"},
		{Name: "agent_name", Description: "Name of the voice agent"},
	}

	serviceDescriptionVariables = []models.ScriptVariable{
		{Name: "clinic_name", Description: "Name of the clinic"},
		{Name: "doctor_name", Description: "Name of the requested doctor"},
		{Name: "specialty", Description: "Doctor's specialty"},
		{Name: "consultation_price", Description: "Consultation price for the requested doctor"},
	}

	availabilityVariables = []models.ScriptVariable{
		{Name: "doctor_name", Description: "Name of the requested doctor"},
		{Name: "next_available_date", Description: "Next date with an open slot"},
		{Name: "next_available_time", Description: "Start of the next open slot"},
	}
)

// VariablesForField returns the catalog for one script field, unfiltered:
// already-inserted variables stay listed, since a template may reference the
// same variable more than once. Unknown fields yield an empty catalog.
func VariablesForField(field string) []models.ScriptVariable {
	switch field {
	case models.ScriptFieldGreeting:
		return greetingVariables
	case models.ScriptFieldServiceDescription:
		return serviceDescriptionVariables
	case models.ScriptFieldAvailability:
		return availabilityVariables
	}
	return nil
}

// InsertVariable splices the {{name}} token over the selected range
// [caretStart, caretEnd) of the template and returns the new template along
// with the caret position immediately after the token. Callers are expected
// to hand in caret positions already clamped to the template bounds; the
// splice itself performs no validation.
func InsertVariable(template string, caretStart, caretEnd int, name string) (string, int) {
	token := "{{" + name + "}}"
	newTemplate := template[:caretStart] + token + template[caretEnd:]
	return newTemplate, caretStart + len(token)
}

// ClampCaret pins a caret selection to the template bounds and guarantees
// start <= end. The HTTP boundary uses this before calling InsertVariable.
func ClampCaret(template string, caretStart, caretEnd int) (int, int) {
	n := len(template)
	if caretStart < 0 {
		caretStart = 0
	}
	if caretStart > n {
		caretStart = n
	}
	if caretEnd < caretStart {
		caretEnd = caretStart
	}
	if caretEnd > n {
		caretEnd = n
	}
	return caretStart, caretEnd
}
