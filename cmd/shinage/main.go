package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shinage/internal/config"
	"shinage/internal/game"
	"shinage/internal/input"
	"shinage/internal/linalg"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	settings := flag.String("config", "", "YAML settings file applied before flags")
	fovDeg := flag.Float64("fov", 0, "vertical field of view in degrees")
	fpsLimit := flag.Int("fps", config.GetFPSLimit(), "frame rate cap, 0 for uncapped")
	vsync := flag.Bool("vsync", config.GetVSync(), "wait for vertical sync")
	flag.Parse()

	if *settings != "" {
		if err := config.Load(*settings); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	// Explicit flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fov":
			config.SetFOV(linalg.DegToRad(*fovDeg))
		case "fps":
			config.SetFPSLimit(*fpsLimit)
		case "vsync":
			config.SetVSync(*vsync)
		}
	})

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow()
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	app, err := game.NewApp(window, input.NewManager())
	if err != nil {
		panic(err)
	}
	log.Printf("F1 grabs the pointer, F2 locks yaw to world Y, left click resets, right click dumps vertices")
	app.Run()
}
