package gleam3d

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game drives the render loop. It owns the World and feeds it the external
// time signal: one Tick per frame recomputes the time-dependent lights and
// the scene rotation. The core stays pure; "updates" always build new node
// and light values.
type Game struct {
	world  *World
	opts   Options
	width  int
	height int

	base     Node // scene at t=0; Tick derives the posed scene from it
	orbit    Axis
	elapsed  float64
	lookup   EnvLookup
	fallback string
}

// NewGame assembles the demo world: two instanced spheres and a cube under a
// rotating group, a camera, and an ambient light backed by an environment
// map when one can be loaded from envMapPath.
func NewGame(width, height int, envMapPath string) (*Game, error) {
	g := &Game{
		world:  NewWorld(),
		opts:   DefaultOptions(),
		width:  width,
		height: height,
	}

	vp, err := LookAt(NewPoint3d(6, 4, 8), NewPoint3d(0, 0, 0), NewVector3(0, 1, 0))
	if err != nil {
		return nil, err
	}
	cam, err := Perspective(vp, width, height, math.Pi/3, 0.1, 100)
	if err != nil {
		return nil, err
	}
	g.world.SetCamera(cam)

	if envMapPath != "" {
		env, err := LoadEnvironmentMap(envMapPath)
		if err != nil {
			log.Printf("Environment map unavailable, using flat ambient: %v", err)
			g.fallback = "environment map unavailable: flat ambient"
		} else {
			g.lookup = env.Lookup
		}
	}

	// One sphere mesh shared by two leaves: drawables are referenced, not
	// owned, so instancing is free.
	sphere := NewDrawable(NewUVSphereMesh(1, 24, 16), Material{
		Color:     NewColor(0.8, 0.2, 0.2),
		Roughness: 0.3,
		Metallic:  0.1,
	})
	cube := NewDrawable(NewCubeMesh(1.5), Material{
		Color:     NewColor(0.2, 0.5, 0.9),
		Roughness: 0.7,
		Metallic:  0,
	})

	g.base = Group(
		TranslateBy(NewLeafNode(sphere), NewVector3(-2, 0, 0)),
		TranslateBy(NewLeafNode(sphere), NewVector3(2, 0, 0)),
		TranslateBy(NewLeafNode(cube), NewVector3(0, 0, -2)),
	)

	axis, err := NewAxis(NewPoint3d(0, 0, 0), NewVector3(0, 1, 0))
	if err != nil {
		return nil, err
	}
	g.orbit = axis

	g.Tick(0)
	log.Println("World initialized")
	return g, nil
}

// Tick supplies the monotonically increasing external time in seconds and
// recomputes everything time-dependent for the next frame.
func (g *Game) Tick(seconds float64) {
	g.elapsed = seconds

	// The scene slowly rotates about the world Y axis. The base scene is
	// never mutated; each tick derives a freshly posed root from it.
	g.world.SetScene(RotateAround(g.base, g.orbit, seconds*0.4))

	// A point light orbits the scene while the directional light sweeps its
	// azimuth.
	pointPos := NewPoint3d(4*math.Cos(seconds), 2.5, 4*math.Sin(seconds))
	sunDir := NewVector3(math.Cos(seconds*0.3), 0.8, math.Sin(seconds*0.3))

	lights := []Light{
		NewAmbientLight(NewColor(0.18, 0.18, 0.22), g.lookup),
		NewDirectionalLight(sunDir, NewColor(0.9, 0.85, 0.8)),
		PointLight{Position: pointPos, Color: NewColor(1.2, 1.1, 0.9), Radius: 0.25},
	}
	g.world.SetLights(lights)
}

func (g *Game) Update() error {
	g.Tick(g.elapsed + 1.0/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	Present(screen, g.world.Render(g.opts))
	PresentMessage(screen, g.fallback)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(float64(g.width)*g.opts.DevicePixelRatio + 0.5)
	h := int(float64(g.height)*g.opts.DevicePixelRatio + 0.5)
	return w, h
}

// SetOptions replaces the render options; non-positive fields are replaced
// with defaults at render time.
func (g *Game) SetOptions(opts Options) {
	g.opts = opts
}

func (g *Game) World() *World {
	return g.world
}
