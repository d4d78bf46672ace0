// Package tui is the interactive terminal front end for the optimizer.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/config"
	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/session"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/scenes"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/tuistyles"
)

// Options configures a new Model
type Options struct {
	Session   *session.Session
	Optimizer session.Optimizer
	Projector *display.Projector
	Logger    *zap.Logger

	// Context is passed to every optimizer request. Defaults to context.Background.
	Context context.Context

	// Initial form values
	FilePath string
	Inputs   domain.FormInputs

	// Endpoint is shown in the status bar
	Endpoint string
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	// Submission
	session   *session.Session
	optimizer session.Optimizer
	projector *display.Projector
	ctx       context.Context
	logger    *zap.Logger
	endpoint  string

	// Form data. loadingPath is the path of the most recent file load; results
	// for any other path are ignored.
	file        *domain.SelectedFile
	filePath    string
	loadingPath string
	inputs      domain.FormInputs

	spinner spinner.Model

	formModel    *scenes.FormModel
	resultsModel *scenes.ResultsModel
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sess := opts.Session
	if sess == nil {
		sess = session.New(logger)
	}
	projector := opts.Projector
	if projector == nil {
		projector = display.NewProjector(config.Default().Display.LanguageTag())
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = InfoStyle.Foreground(tuistyles.ColorAccent)

	return Model{
		currentScene: SceneForm,
		width:        80,
		height:       24,
		session:      sess,
		optimizer:    opts.Optimizer,
		projector:    projector,
		ctx:          ctx,
		logger:       logger,
		endpoint:     opts.Endpoint,
		loadingPath:  opts.FilePath,
		inputs:       opts.Inputs,
		spinner:      sp,
		formModel:    scenes.NewFormModel(opts.FilePath, opts.Inputs),
		resultsModel: scenes.NewResultsModel(projector),
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.loadingPath == "" {
		return nil
	}
	return loadFileCmd(m.loadingPath, false)
}

// loadFileCmd returns a command that reads the sales data file
func loadFileCmd(path string, submit bool) tea.Cmd {
	return func() tea.Msg {
		file, err := config.LoadSelectedFile(path)
		if err != nil {
			return FileLoadFailedMsg{Path: path, Err: err, Submit: submit}
		}
		return FileLoadedMsg{File: file, Path: path, Submit: submit}
	}
}

// submitCmd returns a command that performs the request for an accepted ticket
func submitCmd(ctx context.Context, opt session.Optimizer, ticket session.Ticket) tea.Cmd {
	return func() tea.Msg {
		result, err := opt.Optimize(ctx, ticket.Payload, ticket.RequestID)
		return SubmissionResolvedMsg{Ticket: ticket, Result: result, Err: err}
	}
}
