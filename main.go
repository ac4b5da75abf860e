package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stewi1014/glbuddhabrot/buddha"
)

const debug = true

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	sceneName := flag.String("scene", "", "scene to render, overriding the configuration file")
	verbose := flag.Bool("v", false, "log generation progress")
	flag.Parse()

	buddha.Verbose = *verbose

	runtime.LockOSThread()
	if err := run(*configPath, *sceneName); err != nil {
		log.Fatalln(err)
	}
}

func run(configPath, sceneName string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if sceneName != "" {
		cfg.Scene = sceneName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scene, err := GetScene(cfg.Scene)
	if err != nil {
		return err
	}

	log.Printf("rendering %v at %vx%v", scene.Name, cfg.Width, cfg.Height)
	vertices, err := scene.Vertices(cfg)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	w, err := NewRenderWindow(cfg.Width, cfg.Height, "GLBuddhabrot Render")
	if err != nil {
		return err
	}
	if err := w.LoadProgram(); err != nil {
		return err
	}
	w.SetVertices(vertices, scene.Mode)
	w.Run()
	return nil
}
