// Stickers is a board of draggable, resizable and rotatable PNG overlays.
// Add an overlay by pasting a PNG from the clipboard (toolbar button or
// Ctrl+V), by dropping PNG files on the window, or by copying them into the
// drop folder. At most five overlays are shown at once; close one with its
// "X" to make room.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/phanxgames/sticker"
	"github.com/phanxgames/sticker/internal/intake"
)

type app struct {
	board  *sticker.Board
	chrome *chrome
	log    *slog.Logger

	clipboardOK bool
	pasted      int

	watcher *intake.Watcher
	decoded chan decodeResult
	runner  *sticker.TestRunner
}

type decodeResult struct {
	payload intake.Payload
	err     error
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	dropDir := flag.String("drop", "", "folder watched for new PNG files (overrides drop_dir)")
	script := flag.String("script", "", "YAML test script to run; exits when done")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := sticker.NewLogger(os.Stderr, *debug)

	cfg := sticker.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sticker.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *dropDir != "" {
		cfg.DropDir = *dropDir
	}

	a := newApp(cfg, logger, *debug)
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatal(err)
		}
		if a.runner, err = sticker.LoadTestScript(data); err != nil {
			log.Fatal(err)
		}
		a.board.SetTestRunner(a.runner)
	}
	if cfg.DropDir != "" {
		if err := a.watch(cfg.DropDir); err != nil {
			log.Fatal(err)
		}
		defer a.watcher.Close()
	}

	err := sticker.Run(a.board, sticker.RunConfig{
		Before:  a.before,
		After:   a.after,
		Overlay: a.chrome.draw,
		Blocked: a.chrome.blocked,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func newApp(cfg sticker.Config, logger *slog.Logger, debug bool) *app {
	a := &app{
		board:   sticker.NewBoard(cfg),
		log:     logger,
		decoded: make(chan decodeResult, 8),
	}
	a.board.SetLogger(logger)
	a.board.SetDebugMode(debug)
	a.board.ClearColor = sticker.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}
	a.chrome = newChrome(a.pasteFromClipboard)
	a.board.OnNotice(a.chrome.showNotice)
	a.board.OnFilesDropped(a.dropped)
	a.board.SetPressFilter(a.chrome.covers)

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable; paste disabled", "error", err)
	} else {
		a.clipboardOK = true
	}
	return a
}

// watch starts the drop-folder watcher. Each settled PNG is decoded off the
// game loop and delivered through a.decoded.
func (a *app) watch(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("drop folder %s: %w", dir, err)
	}
	w, err := intake.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	a.watcher = w
	a.log.Info("watching drop folder", "dir", dir)

	go func() {
		for path := range w.Events {
			f, err := os.Open(path)
			if err != nil {
				a.decoded <- decodeResult{err: err}
				continue
			}
			p, err := intake.Read(path, f)
			f.Close()
			a.decoded <- decodeResult{payload: p, err: err}
		}
	}()
	go func() {
		for err := range w.Errors {
			a.log.Warn("drop folder watcher", "error", err)
		}
	}()
	return nil
}

// before runs ahead of the board each frame. Decodes that completed since
// the last frame are placed in completion order, so with two in flight the
// later completion is placed last.
func (a *app) before() error {
	for {
		select {
		case r := <-a.decoded:
			a.place(r.payload, r.err)
		default:
			a.chrome.update()
			if !a.chrome.blocked() && a.clipboardOK && pastePressed() {
				a.pasteFromClipboard()
			}
			return nil
		}
	}
}

func (a *app) after() error {
	if a.runner != nil && a.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// place hands a decoded payload to the board, or surfaces the rejection.
func (a *app) place(p intake.Payload, err error) {
	if err != nil {
		var invalid *intake.InvalidPayloadError
		if errors.As(err, &invalid) {
			a.log.Info("payload rejected", "src", invalid.Src, "reason", invalid.Reason)
			a.board.Notify(invalid.Error())
			return
		}
		a.log.Warn("payload unreadable", "error", err)
		return
	}
	// A capacity failure has already been surfaced by the board.
	_, _ = a.board.AddImage(p.Src, p.Image)
}

func (a *app) pasteFromClipboard() {
	if !a.clipboardOK {
		a.board.Notify("Clipboard is not available on this system.")
		return
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		a.board.Notify(intake.RejectMessage)
		return
	}
	a.pasted++
	p, err := intake.Decode(fmt.Sprintf("clipboard:%d", a.pasted), data)
	a.place(p, err)
}

func (a *app) dropped(files fs.FS) {
	payloads, errs := intake.ReadAll(files)
	for _, err := range errs {
		a.place(intake.Payload{}, err)
	}
	for _, p := range payloads {
		a.place(p, nil)
	}
}

func pastePressed() bool {
	mod := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	return mod && inpututil.IsKeyJustPressed(ebiten.KeyV)
}
