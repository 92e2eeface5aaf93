package spriterun

// PhysicsState integrates the sprite's vertical motion.
// Y is the offset above the ground and never goes negative.
type PhysicsState struct {
	Y        float64
	Velocity float64
	Jumping  bool
}

// Jump launches the sprite with the given upward velocity.
// It reports false and changes nothing while the sprite is airborne.
func (p *PhysicsState) Jump(force float64) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.Velocity = force
	return true
}

// Update advances the jump by one tick.
// Position moves first, then gravity is applied, including on the landing tick.
func (p *PhysicsState) Update(gravity float64) {
	if !p.Jumping {
		return
	}

	y := p.Y + p.Velocity
	if y <= 0 {
		y = 0
		p.Jumping = false
	}
	p.Y = y
	p.Velocity -= gravity
}
