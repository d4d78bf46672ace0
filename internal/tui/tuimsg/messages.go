// Package tuimsg holds the messages scenes send to the root model.
package tuimsg

// FieldChangedMsg signals a pricing field was edited
type FieldChangedMsg struct {
	Field string
	Value string
}

// FileChosenMsg signals the user entered a sales data file path
type FileChosenMsg struct {
	Path string
}

// SubmitRequestedMsg asks the root model to submit the form. FilePath is the
// path currently in the file field; it is (re)loaded before submitting.
type SubmitRequestedMsg struct {
	FilePath string
}
