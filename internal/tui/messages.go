package tui

import (
	"errors"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/session"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Optimize"
	case SceneResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// FileLoadedMsg carries a file read from disk. Submit is set when the load was
// triggered by a submit request.
type FileLoadedMsg struct {
	File   *domain.SelectedFile
	Path   string
	Submit bool
}

// FileLoadFailedMsg reports a file that could not be read
type FileLoadFailedMsg struct {
	Path   string
	Err    error
	Submit bool
}

// SubmissionResolvedMsg carries the outcome of one optimizer request
type SubmissionResolvedMsg struct {
	Ticket session.Ticket
	Result *domain.OptimizationResult
	Err    error
}

var errNoOptimizer = errors.New("no optimizer configured")
