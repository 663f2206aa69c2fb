package main

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/philipparndt/arruler/internal/config"
	"github.com/philipparndt/arruler/internal/logging"
	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/internal/tracking"
	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
)

// dragThreshold separates a click from a camera drag, in pixels
const dragThreshold = 4

type App struct {
	tracking *tracking.Session
	session  *measurement.Session
	scene    *gpuScene
	mesh     rl.Mesh
	material rl.Material
	camera   rl.Camera3D
	logger   zerolog.Logger

	worldSize    float32
	mouseDownPos rl.Vector2
	mouseMoved   bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: arruler-raylib <world.stl>")
		os.Exit(1)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	model, err := stl.Parse(os.Args[1])
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load world")
		os.Exit(1)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "AR Ruler")
	rl.SetTargetFPS(60)

	app := &App{
		tracking:  tracking.NewSession(model, logger),
		scene:     newGPUScene(),
		logger:    logger,
		worldSize: float32(model.BoundingBox().MaxDimension()),
	}
	app.session = measurement.NewSession(app.scene)
	app.tracking.Debug.ShowFeaturePoints = cfg.ShowFeaturePoints
	app.mesh = worldMesh(model)
	app.material = rl.LoadMaterialDefault()
	app.tracking.Run(cfg.Tracking)

	for !rl.WindowShouldClose() {
		app.syncCamera()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera)
		rl.DrawMesh(app.mesh, app.material, rl.MatrixIdentity())
		if app.tracking.Debug.ShowFeaturePoints {
			app.drawFeaturePoints()
		}
		app.scene.draw3D(app.worldSize * 0.002)
		rl.EndMode3D()

		app.scene.drawLabels(app.camera)
		app.drawStatus()

		rl.EndDrawing()
	}

	app.tracking.Pause()
	rl.UnloadMesh(&app.mesh)
	rl.CloseWindow()
}

// syncCamera mirrors the tracked camera into raylib
func (app *App) syncCamera() {
	cam := app.tracking.Camera()
	app.camera = rl.Camera3D{
		Position:   toRL(cam.Position),
		Target:     toRL(cam.Target),
		Up:         toRL(cam.Up),
		Fovy:       float32(cam.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

func (app *App) handleInput() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.mouseDownPos = rl.GetMousePosition()
		app.mouseMoved = false
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if rl.Vector2Distance(app.mouseDownPos, rl.GetMousePosition()) > dragThreshold {
			app.mouseMoved = true
		}
		if app.mouseMoved {
			app.tracking.Camera().Rotate(float64(delta.Y)*0.01, float64(-delta.X)*0.01)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && !app.mouseMoved {
		app.tap(rl.GetMousePosition())
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.tracking.Camera().Zoom(-float64(wheel) * 0.1)
	}

	if rl.IsKeyPressed(rl.KeyF) {
		app.tracking.Debug.ShowFeaturePoints = !app.tracking.Debug.ShowFeaturePoints
	}
}

// tap hit-tests along the mouse ray and advances the measurement
func (app *App) tap(pos rl.Vector2) {
	ray := rl.GetMouseRay(pos, app.camera)
	worldRay := geometry.NewRay(
		geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	)

	tester := measurement.HitTesterFunc(func(float64, float64) (measurement.Point3, bool) {
		return app.tracking.HitTestRay(worldRay)
	})
	for _, effect := range app.session.Tap(float64(pos.X), float64(pos.Y), tester) {
		app.logger.Info().Stringer("effect", effect.Kind).Str("text", effect.Text).Msg("Scene updated")
	}
}

func (app *App) drawFeaturePoints() {
	size := app.worldSize * 0.001
	color := rl.NewColor(255, 220, 0, 255)
	for _, p := range app.tracking.FeaturePoints() {
		rl.DrawCubeV(toRL(p), rl.Vector3{X: size, Y: size, Z: size}, color)
	}
}

func (app *App) drawStatus() {
	y := int32(10)
	rl.DrawText(fmt.Sprintf("Tracking: %s", app.tracking.State()), 10, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("Measurement: %s", app.session.State()), 10, y, 16, rl.White)
	y += 20
	if _, ok := app.session.Distance(); ok {
		rl.DrawText(fmt.Sprintf("Distance: %s", app.session.LabelText()), 10, y, 16, rl.Yellow)
	}
	rl.DrawText("Click: measure  Drag: orbit  Wheel: zoom  F: feature points", 10, int32(rl.GetScreenHeight())-26, 16, rl.Gray)
}
