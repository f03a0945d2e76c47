package jsgen

import (
	"github.com/npillmayer/pagescript/script"
)

// Alert brings up a simple message box with an OK button.
func Alert(text interface{}) script.Snippet {
	return script.Snippet("alert(" + script.ToJsString(text) + ");")
}

// OkBox is the same as Alert.
func OkBox(text interface{}) script.Snippet {
	return Alert(text)
}

// Confirm brings up a simple yes/no dialog.
func Confirm(text interface{}) script.Snippet {
	return script.Snippet("confirm(" + script.ToJsString(text) + ");")
}

// YesNoBox is the same as Confirm.
func YesNoBox(text interface{}) script.Snippet {
	return Confirm(text)
}

// Prompt brings up a simple input dialog, pre-filled with a default value.
func Prompt(text interface{}, deflt interface{}) script.Snippet {
	return script.Snippet("prompt(" + script.ToJsString(text) + "," + script.ToJsString(deflt) + ");")
}

// PromptBox is the same as Prompt.
func PromptBox(text interface{}, deflt interface{}) script.Snippet {
	return Prompt(text, deflt)
}
