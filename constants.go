package lambert

// Standard gravitational parameters, km^3/s^2, so a porkchop sweep is not
// limited to Earth/Sun pairs.
const (
	MuSun     = 1.32712440018e11
	MuVenus   = 3.24858599e5
	MuEarth   = 398600.4418
	MuMars    = 4.28283100e4
	MuJupiter = 1.266865361e8
	MuSaturn  = 3.7931208e7
	MuUranus  = 5.7939513e6
	MuPluto   = 9.0e2
)

const (
	// defaultMaxIter is the Householder/Halley iteration cap used when a
	// caller leaves MaxIter unset.
	defaultMaxIter = 35
	// defaultRTol is the relative tolerance used when a caller leaves
	// RTol unset.
	defaultRTol = 1e-8
	// maxRevolutions is the hard cap on the requested revolution count,
	// independent of what the time of flight can actually support.
	maxRevolutions = 10
	// planeDegenerateTol is the minimum acceptable magnitude of r̂1×r̂2
	// (the cross product of the unit position vectors) before the transfer
	// plane is considered undefined (~180° transfer).
	planeDegenerateTol = 1e-12
	// battinBandwidth is the half-width of the |x-1| region in which the
	// scalar kernel switches to the Battin hypergeometric form.
	battinBandwidth = 0.01
	// hypergeoMaxTerms and hypergeoTermTol bound the Pochhammer series
	// used for the Battin-form ₂F₁(3,1,5/2;z).
	hypergeoMaxTerms = 25
	hypergeoTermTol  = 1e-15
)
