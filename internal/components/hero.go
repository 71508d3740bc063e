package components

import (
	"html/template"

	"github.com/Dulitha99/Research-Website/internal/model"
)

// Particle is one decorative dot drifting between two points in the hero banner.
type Particle struct {
	FromX, FromY int
	ToX, ToY     int
	Duration     int // seconds
}

// Trajectories are fixed so every render of the banner emits identical markup.
var particles = [...]Particle{
	{100, 200, 800, 400, 15},
	{300, 150, 900, 600, 18},
	{500, 300, 200, 700, 12},
	{700, 100, 1100, 500, 20},
	{200, 400, 600, 200, 16},
	{900, 250, 400, 800, 14},
	{150, 500, 750, 150, 17},
	{650, 350, 950, 650, 19},
	{400, 100, 1000, 300, 13},
	{800, 450, 300, 750, 21},
	{250, 300, 850, 550, 15},
	{550, 200, 150, 600, 18},
	{750, 400, 1050, 100, 16},
	{350, 600, 700, 250, 14},
	{950, 150, 500, 700, 20},
	{100, 350, 600, 500, 17},
	{600, 500, 1000, 200, 19},
	{450, 250, 800, 650, 13},
	{850, 300, 200, 550, 21},
	{300, 450, 900, 100, 15},
}

type heroView struct {
	model.Hero
	Particles []Particle
}

func (r *Renderer) Hero(h model.Hero) (template.HTML, error) {
	return r.render("hero", heroView{Hero: h, Particles: particles[:]})
}
