package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/gleam3d"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

func main() {
	envMap := flag.String("envmap", "", "path to an environment map image for ambient lighting")
	flag.Parse()

	game, err := gleam3d.NewGame(screenWidth, screenHeight, *envMap)
	if err != nil {
		log.Fatalf("Error initializing world: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("gleam3d")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
