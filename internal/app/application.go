package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/dirhop/internal/fs"
	"github.com/kk-code-lab/dirhop/internal/logging"
	searchpkg "github.com/kk-code-lab/dirhop/internal/search"
	statepkg "github.com/kk-code-lab/dirhop/internal/state"
	inputui "github.com/kk-code-lab/dirhop/internal/ui/input"
	renderui "github.com/kk-code-lab/dirhop/internal/ui/render"
	"go.uber.org/zap"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	clipboard  Clipboard
	logger     *zap.Logger
	shouldQuit bool
	chosenPath string
}

// NewApplication opens the terminal and lists the start directory. Any
// failure here is fatal to the program; the screen is released before
// returning it.
func NewApplication(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, OutputPath: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	app, err := newApplication(screen, cfg, fsutil.NewOSLister(), detectClipboard(), logger)
	if err != nil {
		screen.Fini()
		_ = logger.Sync()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, cfg Config, lister fsutil.Lister, clipboard Clipboard, logger *zap.Logger) (*Application, error) {
	scroll, match, err := cfg.policies()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	start, err := cfg.startDir()
	if err != nil {
		return nil, err
	}

	state := &statepkg.AppState{
		RowsPerPage:        cfg.rowsPerPage(),
		Scroll:             scroll,
		ClipboardAvailable: clipboard != nil,
	}

	reducer := statepkg.NewStateReducer(lister, searchpkg.NewResolver(match))
	reducer.SetLogger(logger)
	if err := reducer.LoadDirectory(state, start); err != nil {
		return nil, fmt.Errorf("open start directory: %w", err)
	}

	inputHandler := inputui.NewInputHandler()
	inputHandler.SetState(state)

	logger.Info("started",
		zap.String("dir", state.CurrentPath),
		zap.Stringer("scroll", scroll),
		zap.Stringer("match", match),
		zap.Bool("clipboard", clipboard != nil),
	)

	return &Application{
		screen:    screen,
		state:     state,
		reducer:   reducer,
		renderer:  renderui.NewRenderer(screen),
		input:     inputHandler,
		clipboard: clipboard,
		logger:    logger,
	}, nil
}

// Close releases the terminal and flushes the log.
func (app *Application) Close() error {
	app.screen.Fini()
	flushPendingInput()
	_ = app.logger.Sync()
	return nil
}

// ChosenPath returns the directory to hand back to the shell. It reports
// false unless the user quit with the change-directory command.
func (app *Application) ChosenPath() (string, bool) {
	return app.chosenPath, app.chosenPath != ""
}
