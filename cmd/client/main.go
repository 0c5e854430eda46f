package main

import (
	"log"
	"rentvsbuy/actor/consumer/model"
	"rentvsbuy/app"

	"github.com/anthdm/hollywood/actor"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		log.Fatal(err)
	}

	engine.Spawn(model.New(), "model", actor.WithID("1"))

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Rent vs Buy v0.1")
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := app.New(engine)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
