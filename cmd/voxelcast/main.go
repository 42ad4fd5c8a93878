package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/scene"
	"github.com/oliverbestmann/voxelcast/sceneconf"
	"github.com/oliverbestmann/voxelcast/view/ebitenview"
	"github.com/oliverbestmann/voxelcast/view/termview"
	"github.com/pkg/profile"
)

type options struct {
	Scene   string
	Cache   string
	View    string
	Profile string
	Dump    bool
	Verbose bool
}

func main() {
	var opts options

	flag.StringVar(&opts.Scene, "scene", "", "path or go-getter url of a scene, uses a built-in scene if empty")
	flag.StringVar(&opts.Cache, "cache", filepath.Join(os.TempDir(), "voxelcast"), "directory for downloaded scenes")
	flag.StringVar(&opts.View, "view", "ebiten", "viewer to use: ebiten, term or none")
	flag.StringVar(&opts.Profile, "profile", "", "write a profile: cpu or mem")
	flag.BoolVar(&opts.Dump, "dump", false, "print the effective scene as yaml and exit")
	flag.BoolVar(&opts.Verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		slog.Error("voxelcast failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts options) error {
	switch opts.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile %q", opts.Profile)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	desc, err := loadScene(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Dump {
		return desc.Encode(os.Stdout)
	}

	tree := scene.NewTree()

	scene.Observe(tree, func(ev scene.On[display.CastFinished]) {
		result := ev.Event.Result

		slog.Info("Cast finished",
			slog.String("display", tree.Path(ev.Target)),
			slog.Int("levels", len(result.Levels)),
			slog.Int("visible", result.Visible.Len()),
			slog.Int("blocking", result.Blocking.Len()),
			slog.Duration("duration", result.Duration))
	})

	_, d, err := sceneconf.Build(tree, desc)
	if err != nil {
		return err
	}

	switch opts.View {
	case "ebiten":
		return ebitenview.Run(tree, d, ebitenview.DefaultWindowConfig)

	case "term":
		return termview.Run(d)

	case "none":
		for _, pos := range d.Result().BlockingCells() {
			fmt.Println("blocking", pos)
		}

		return nil

	default:
		return errors.New("unknown view: " + opts.View)
	}
}

func loadScene(ctx context.Context, opts options) (sceneconf.Scene, error) {
	if opts.Scene == "" {
		return sceneconf.Default(), nil
	}

	path, err := sceneconf.Fetch(ctx, opts.Scene, opts.Cache)
	if err != nil {
		return sceneconf.Scene{}, err
	}

	return sceneconf.LoadFile(path)
}
