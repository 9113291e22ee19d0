package config

import "time"

const (
	WindowWidth  = 540
	WindowHeight = 960
	TicksPerSec  = 120

	// Largest frame delta fed to the simulation, in seconds
	MaxFrameDelta = 0.1

	// Physics world
	PixelsPerMeter   = 10.0
	GravityY         = -20.0
	PhysicsStep      = 1.0 / 60.0
	SolverIterations = 8

	// Balls
	BallRadius     = 1.0
	BallDensity    = 1.0
	BallElasticity = 1.01
	BallOffsetX    = 30.0 // px from centre
	BallOffsetY    = 50.0 // px above centre
	BallSpeedX     = 1.0
	BallSpeedY     = 0.5
	TrailLength    = 30

	// Rings
	RingVertexCount    = 50
	RingGapEndDegrees  = 90.0 // arc segments start at or after this angle
	RingStartAngle     = 110.0
	RingElasticity     = 1.2
	RingRotationScale  = 1.5
	RingShrinkSpeed    = 15.0 * 1.15
	InitialRings       = 25
	MaxRings           = 30
	InitialRingRadius  = 1.0
	RingRadiusStep     = 1.1
	InitialRingDir     = 1.5
	RingDirDecay       = 0.97
	NewRingDirMin      = 0.8
	NewRingDirMax      = 1.2
	RingStrokeWidth    = 4
	BallEdgeStrokeFrac = 0.1

	// Shrink factor: max(base - (growth^(n^exp) - 1) * scale, floor)
	ShrinkBase     = 0.90
	ShrinkGrowth   = 1.025
	ShrinkExponent = 1.025
	ShrinkScale    = 0.01
	ShrinkFloor    = 0.3

	// Pulse
	PulseDuration = 0.05 // seconds per ring
	PulseWidth    = 3

	// Countdown
	TimerStart     = 65.0
	ScoreThreshold = 60.0

	// Particles
	ParticleAngleMin = 80.0
	ParticleAngleMax = 90.0
	ParticleSpeedMax = 4.0 // px per tick, either sign
	ParticleLifeMin  = 10
	ParticleLifeMax  = 30
	ParticleRadius   = 1.0

	// Audio
	AssetDir          = "assets"
	SampleRate        = 44100
	SpeakerBuffer     = time.Second / 20
	AmbientClipPrefix = "gravity fall"
	AmbientClipMax    = 15
	YesClip           = "YES"
	NoClip            = "NO"
	FallbackClip      = "none"
)
