// Package sim is the simulation core shared by both game variants:
// physics integration, the difficulty ratchet, obstacle scheduling and the
// Start/Playing/Paused/GameOver state machine. Variant geometry (collision
// shapes, spawn points, scoring formula) is supplied through Rules.
//
// Everything here is single-threaded and advanced by elapsed seconds, so
// it stays speed-correct under a variable frame rate.
package sim

import "github.com/vovakirdan/flappy-fish/internal/core"

// Agent is the player-controlled entity. Only Y and VY affect gameplay;
// X is pinned by the variant and Tilt is derived for drawing.
type Agent struct {
	X    float64 // Horizontal position (fixed during play)
	Y    float64 // Vertical position
	VY   float64 // Vertical velocity, units per second
	Tilt float64 // Visual rotation in degrees
}

// PhysicsParams tunes the integrator. Signs follow the variant's world:
// y-up worlds use a negative Gravity and positive Jump, y-down the reverse.
type PhysicsParams struct {
	Gravity    float64 // Acceleration, units per second squared
	Jump       float64 // Velocity set on a flap
	MaxFall    float64 // Terminal fall speed; 0 disables the clamp
	TiltFactor float64 // Degrees of tilt per unit of velocity
	MaxTilt    float64 // Tilt is clamped to [-MaxTilt, MaxTilt]
}

// Integrate advances the agent by dt seconds.
// A flap sets the velocity to Jump, overriding whatever it was.
// Gravity is then applied for the full frame.
func Integrate(a *Agent, flap bool, p PhysicsParams, dt float64) {
	if flap {
		a.VY = p.Jump
	}

	a.Tilt = core.ClampF(-a.VY*p.TiltFactor, -p.MaxTilt, p.MaxTilt)

	a.VY += p.Gravity * dt
	if p.MaxFall > 0 {
		switch {
		case p.Gravity > 0 && a.VY > p.MaxFall:
			a.VY = p.MaxFall
		case p.Gravity < 0 && a.VY < -p.MaxFall:
			a.VY = -p.MaxFall
		}
	}

	a.Y += a.VY * dt
}
