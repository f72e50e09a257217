package consts

// Physical constants, CODATA 2014 values.
const (
	E    = 1.60217662e-19  // elementary charge, C
	K    = 1.38064852e-23  // Boltzmann constant, J/K
	H    = 6.62607004e-34  // Planck constant, J s
	HBAR = 1.054571800e-34 // reduced Planck constant, J s
	ME   = 9.10938356e-31  // electron rest mass, kg
	PI   = 3.14159265
)
