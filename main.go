package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/hollowvale/config"
	"github.com/automoto/hollowvale/fonts"
	"github.com/automoto/hollowvale/game"
	"github.com/automoto/hollowvale/input/device"
	"github.com/automoto/hollowvale/logger"
	"github.com/automoto/hollowvale/scenes"
	"github.com/automoto/hollowvale/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	window config.WindowConfig
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.window.Width, g.window.Height)
	return g.window.Width, g.window.Height
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	levelPath := flag.String("level", "", "path to a TMX level, overrides the config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}

	log, err := logger.New(cfg.Logging, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("set up logging")
	}

	saved := settings.Default()
	store, err := settings.Open("hollowvale", log)
	if err != nil {
		log.WithError(err).Warn("settings will not persist")
	} else {
		saved = store.Load()
	}

	if err := fonts.LoadFile(fonts.Dialog, cfg.UI.FontPath, cfg.UI.FontSize); err != nil {
		log.WithError(err).Fatal("load dialog font")
	}
	if err := fonts.LoadFile(fonts.Label, cfg.UI.FontPath, cfg.UI.FontSize*0.8); err != nil {
		log.WithError(err).Fatal("load label font")
	}

	lvl, err := game.LoadLevel(cfg.Level)
	if err != nil {
		log.WithError(err).Fatal("load level")
	}

	src := device.NewSource(device.DefaultBindings(), cfg.Input.AnalogDeadzone)
	session, err := game.New(cfg, lvl, src, log)
	if err != nil {
		log.WithError(err).Fatal("start level")
	}
	session.SetDebug(cfg.UI.ShowDebug || saved.ShowDebug)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*saved.WindowScale), int(float64(cfg.Window.Height)*saved.WindowScale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(saved.Fullscreen)

	g := &Game{
		scene:  scenes.NewWorldScene(session, cfg),
		window: cfg.Window,
	}
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop")
	}

	if store != nil {
		saved.ShowDebug = session.DebugEnabled()
		saved.Fullscreen = ebiten.IsFullscreen()
		if err := store.Save(saved); err != nil {
			log.WithError(err).Warn("could not save settings")
		}
	}
}
