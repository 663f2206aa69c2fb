package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/philipparndt/arruler/internal/config"
	"github.com/philipparndt/arruler/internal/tracking"
	"github.com/philipparndt/arruler/pkg/stl"
	"github.com/philipparndt/arruler/pkg/watcher"
)

// App is the measuring window
type App struct {
	window   fyne.Window
	cfg      config.Config
	logger   zerolog.Logger
	world    string
	tracking *tracking.Session
	view     *ARView

	stateLabel    *widget.Label
	distanceLabel *widget.Label
	trackingLabel *widget.Label
}

// Run opens the measuring window for the world at worldPath and blocks until it closes
func Run(worldPath string, cfg config.Config, logger zerolog.Logger) error {
	model, err := stl.Parse(worldPath)
	if err != nil {
		return fmt.Errorf("failed to load world %s: %w", worldPath, err)
	}

	fa := fyneapp.NewWithID("com.github.philipparndt.arruler")
	a := &App{
		window:   fa.NewWindow("AR Ruler"),
		cfg:      cfg,
		logger:   logger,
		world:    worldPath,
		tracking: tracking.NewSession(model, logger),
	}
	a.tracking.Debug.ShowFeaturePoints = cfg.ShowFeaturePoints
	a.setupUI()

	// The tracking session follows the window in and out of the foreground
	fa.Lifecycle().SetOnEnteredForeground(a.resume)
	fa.Lifecycle().SetOnExitedForeground(a.pause)
	a.window.SetOnClosed(a.pause)

	if cfg.WatchEnabled {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		fw, err := a.watchWorld(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("World file will not be reloaded")
		} else {
			defer fw.Close()
		}
	}

	a.resume()
	a.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	a.window.ShowAndRun()
	return nil
}

func (a *App) setupUI() {
	a.stateLabel = widget.NewLabel("")
	a.distanceLabel = widget.NewLabel("")
	a.distanceLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.trackingLabel = widget.NewLabel("")

	a.view = NewARView(a.tracking, a.logger)
	a.view.SetOnChange(a.updateStatus)

	featureCheck := widget.NewCheck("Show feature points", func(checked bool) {
		a.tracking.Debug.ShowFeaturePoints = checked
		a.view.Refresh()
	})
	featureCheck.SetChecked(a.tracking.Debug.ShowFeaturePoints)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Tap a feature point to place the first marker\n" +
			"• Tap again to place the second marker and show the distance\n" +
			"• Tap once more to clear\n" +
			"• Drag to move the camera, scroll to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Tracking:"),
		a.trackingLabel,
		widget.NewSeparator(),
		widget.NewLabel("Measurement:"),
		a.stateLabel,
		a.distanceLabel,
		widget.NewSeparator(),
		featureCheck,
		widget.NewSeparator(),
		instructions,
	)
	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(280, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, scroll, a.view))
	a.updateStatus()
}

func (a *App) updateStatus() {
	m := a.view.Measurement()
	a.stateLabel.SetText(statusText(m))
	if d, ok := m.Distance(); ok {
		a.distanceLabel.SetText(fmt.Sprintf("Distance: %s (%.4f)", m.LabelText(), d))
	} else {
		a.distanceLabel.SetText("Distance: -")
	}

	world := a.tracking.World()
	a.trackingLabel.SetText(fmt.Sprintf("%s\n%d feature points\nhit-test: %s",
		a.tracking.State(), len(a.tracking.FeaturePoints()), a.tracking.Configuration().HitTest))
	if world.Name != "" {
		a.window.SetTitle("AR Ruler - " + world.Name)
	}
}

func (a *App) resume() {
	if a.tracking.State() == tracking.Running {
		return
	}
	a.tracking.Run(a.cfg.Tracking)
	a.updateStatus()
}

func (a *App) pause() {
	a.tracking.Pause()
}

// watchWorld reloads the world whenever its file changes on disk
func (a *App) watchWorld(ctx context.Context) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(a.cfg.WatchDebounce, a.logger)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(a.world, a.reloadWorld); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start(ctx)
	return fw, nil
}

// reloadWorld runs on the watcher goroutine
func (a *App) reloadWorld(path string) {
	model, err := stl.Parse(path)
	if err != nil {
		a.logger.Error().Err(err).Str("file", path).Msg("Failed to reload world")
		return
	}

	fyne.Do(func() {
		a.tracking.ReplaceWorld(model)
		a.view.Reset()
	})
}
