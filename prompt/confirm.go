package prompt

// confirmDirtyMessage guides the user when the answer is not y/n.
const confirmDirtyMessage = `Please, write either "y" or "n" to confirm`

// Confirm asks a yes/no question and returns the answer. The yes flag
// selects which answer an empty commit means: true shows "Y/n" and treats
// anything but an explicit no as consent, false shows "y/N" and requires
// an explicit yes. A cancelled prompt answers no.
func Confirm(question string, yes bool) bool {
	defaultValue := "y/N"
	if yes {
		defaultValue = "Y/n"
	}

	answer, err := Input(question, defaultValue, confirmValid, confirmDirtyMessage)
	if err != nil {
		return false
	}
	return confirmResult(answer, yes)
}

// confirmValid accepts an empty commit (falls back to the default) or a
// single y/Y/n/N.
func confirmValid(s string) bool {
	switch s {
	case "", "y", "Y", "n", "N":
		return true
	}
	return false
}

// confirmResult maps a committed answer to a boolean. With a yes default
// the committed default string "Y/n" is not an explicit no; with a no
// default "y/N" is not an explicit yes.
func confirmResult(answer string, yes bool) bool {
	if yes {
		return answer != "n" && answer != "N"
	}
	return answer == "y" || answer == "Y"
}
