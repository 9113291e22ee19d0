package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/yes-no-rings/internal/audio"
	"github.com/iburimskiy/yes-no-rings/internal/audio/device"
	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/game"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

const windowTitle = "Yes or No - 0: Pause"

type app struct {
	game *game.Game
	view physics.Viewport

	lastTick time.Time
	notified bool
}

func newApp(g *game.Game, view physics.Viewport) *app {
	return &app{game: g, view: view}
}

func (a *app) Update() error {
	now := time.Now()
	dt := 0.0
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick).Seconds()
	}
	a.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		a.game.TogglePause()
	}

	a.game.Update(dt)

	if a.game.RoundOver() && !a.notified {
		a.notified = true
		go notifyRoundOver(a.game.Score(physics.Yes), a.game.Score(physics.No))
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	a.drawRings(screen)
	a.drawBall(screen, a.game.Ball(physics.Yes))
	a.drawBall(screen, a.game.Ball(physics.No))
	a.drawExplosions(screen)
	a.drawTimer(screen)
	a.drawScores(screen)
	a.drawStatus(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func notifyRoundOver(yes, no int) {
	msg := fmt.Sprintf("Time's up! Yes %d : %d No", yes, no)
	if err := zenity.Notify(msg, zenity.Title(windowTitle)); err != nil {
		log.Printf("Notification failed: %v", err)
	}
}

// newAudio sets up audio. Audio is optional: on any speaker error it
// returns nil and the game runs silent.
func newAudio(seed int64) *audio.Manager {
	bank := audio.LoadBank(config.AssetDir, config.SampleRate)
	mgr := audio.NewManager(bank, device.Locker, rand.New(rand.NewSource(seed)))
	if err := device.Open(mgr.SampleRate(), mgr.Streamer()); err != nil {
		log.Printf("Audio disabled: %v", err)
		return nil
	}
	return mgr
}

func main() {
	seed := time.Now().UnixNano()

	var cues game.Cues
	if mgr := newAudio(seed); mgr != nil {
		cues = mgr
		defer func() {
			mgr.Stop()
			device.Close()
		}()
	}

	env := game.NewEnv(cues, seed)
	g := game.New(env)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(config.TicksPerSec)

	if err := ebiten.RunGame(newApp(g, env.View)); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title(windowTitle))
		panic(err)
	}
}
