package simulation

//-----------------------------------------------------------------------------
// Energy (alpha) levels
//-----------------------------------------------------------------------------

const (
	// AlphaFull is the seeded energy of a fresh, unpositioned graph.
	AlphaFull = 1.0

	// AlphaAppend is the reduced restart energy after an append merge onto
	// a preserved layout; a full-energy restart would visibly explode the
	// existing positions.
	AlphaAppend = 0.3

	// AlphaReheat is the fixed mid-level energy injected by a manual
	// reheat of an already-settled graph.
	AlphaReheat = 0.5

	// AlphaDrag is the sustaining energy held while a node is dragged with
	// physics enabled, so the rest of the graph reacts live.
	AlphaDrag = 0.3

	// AlphaMin is the settle threshold: below it the simulation stops
	// emitting position updates and the settled signal fires.
	AlphaMin = 0.001

	// AlphaSettling is the band below which the simulation reports
	// Settling rather than Running.
	AlphaSettling = 0.01

	// AlphaDecay is the default geometric decay rate per tick
	// (alpha ← alpha·(1−AlphaDecay)); ≈300 ticks from full to minimum.
	AlphaDecay = 0.0228

	// AlphaDecayFast is the faster decay paired with AlphaAppend restarts.
	AlphaDecayFast = 0.05
)

//-----------------------------------------------------------------------------
// Force tuning
//-----------------------------------------------------------------------------

const (
	// DefaultCharge is the base pairwise repulsion strength. The inverse-
	// square law needs a large numerator to clear the link distance: two
	// default-size nodes must repel past DefaultLinkDistance before the
	// centering force balances them.
	DefaultCharge = 800.0

	// DefaultLinkDistance is the target length of a visible edge.
	DefaultLinkDistance = 60.0

	// DefaultGravity is the weak centering pull toward the viewport center.
	DefaultGravity = 0.005

	// DefaultFriction is the fraction of velocity retained per tick.
	DefaultFriction = 0.6

	// LinkStrength scales how hard link attraction corrects length error.
	LinkStrength = 0.1

	// SyntheticDistanceFactor shortens the target distance of synthetic/
	// clustering edges relative to semantically visible ones.
	SyntheticDistanceFactor = 0.5

	// CategorySynthetic tags clustering edges that pull tighter than
	// semantically visible edges.
	CategorySynthetic = "synthetic"

	// CollisionPadding is the clearance kept between rendered node radii.
	CollisionPadding = 2.0

	// minDistance floors pairwise distances before inverse-law forces so
	// coincident nodes cannot produce unbounded repulsion.
	minDistance = 1e-3

	// seedRadiusStep is the radial step of the phyllotaxis seeding spiral.
	seedRadiusStep = 12.0

	// goldenAngle is the phyllotaxis divergence angle in radians, spacing
	// seeded nodes evenly without collinear artifacts.
	goldenAngle = 2.399963229728653
)
