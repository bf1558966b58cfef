package syllabus

// physicsSyllabus is the NEET UG Physics syllabus in NCERT chapter order.
var physicsSyllabus = SubjectSyllabus{
	Class11: []Chapter{
		{
			ID:   "p11_01",
			Name: "Units and Measurements",
			Topics: []Topic{
				{ID: "p11_01_01", Name: "Units of measurement; systems of units"},
				{ID: "p11_01_02", Name: "SI units, fundamental and derived units"},
				{ID: "p11_01_03", Name: "Significant figures"},
				{ID: "p11_01_04", Name: "Dimensions of physical quantities, dimensional analysis"},
			},
		},
		{
			ID:   "p11_02",
			Name: "Kinematics",
			Topics: []Topic{
				{ID: "p11_02_01", Name: "Frame of reference, Motion in a straight line"},
				{ID: "p11_02_02", Name: "Elementary concepts of differentiation and integration"},
				{ID: "p11_02_03", Name: "Scalar and vector quantities"},
				{ID: "p11_02_04", Name: "Projectile motion"},
				{ID: "p11_02_05", Name: "Uniform circular motion"},
			},
		},
		{
			ID:   "p11_03",
			Name: "Laws of Motion",
			Topics: []Topic{
				{ID: "p11_03_01", Name: "Newton's first law of motion; momentum and Newton's second law"},
				{ID: "p11_03_02", Name: "Impulse; Newton's third law of motion"},
				{ID: "p11_03_03", Name: "Law of conservation of linear momentum"},
				{ID: "p11_03_04", Name: "Equilibrium of concurrent forces"},
				{ID: "p11_03_05", Name: "Static and kinetic friction, laws of friction"},
			},
		},
		{
			ID:   "p11_04",
			Name: "Work, Energy and Power",
			Topics: []Topic{
				{ID: "p11_04_01", Name: "Work done by a constant force and a variable force"},
				{ID: "p11_04_02", Name: "Kinetic energy, work-energy theorem, power"},
				{ID: "p11_04_03", Name: "Potential energy, conservative forces"},
				{ID: "p11_04_04", Name: "Conservation of mechanical energy"},
			},
		},
		{
			ID:   "p11_05",
			Name: "Motion of System of Particles and Rigid Body",
			Topics: []Topic{
				{ID: "p11_05_01", Name: "Centre of mass of a two-particle system"},
				{ID: "p11_05_02", Name: "Momentum conservation and centre of mass motion"},
				{ID: "p11_05_03", Name: "Moment of a force, torque, angular momentum"},
				{ID: "p11_05_04", Name: "Moment of inertia, radius of gyration"},
			},
		},
		{
			ID:   "p11_06",
			Name: "Gravitation",
			Topics: []Topic{
				{ID: "p11_06_01", Name: "Kepler's laws of planetary motion"},
				{ID: "p11_06_02", Name: "Universal law of gravitation"},
				{ID: "p11_06_03", Name: "Acceleration due to gravity and its variation"},
				{ID: "p11_06_04", Name: "Gravitational potential energy; gravitational potential"},
				{ID: "p11_06_05", Name: "Escape velocity, Orbital velocity of a satellite"},
			},
		},
		{
			ID:   "p11_07",
			Name: "Properties of Bulk Matter",
			Topics: []Topic{
				{ID: "p11_07_01", Name: "Elastic behaviour, Stress-strain relationship"},
				{ID: "p11_07_02", Name: "Hooke's law, Young's modulus, bulk modulus"},
				{ID: "p11_07_03", Name: "Pressure due to a fluid column; Pascal's law"},
				{ID: "p11_07_04", Name: "Viscosity, Stokes' law, terminal velocity"},
				{ID: "p11_07_05", Name: "Surface tension, angle of contact"},
			},
		},
		{
			ID:   "p11_08",
			Name: "Thermodynamics",
			Topics: []Topic{
				{ID: "p11_08_01", Name: "Thermal equilibrium and definition of temperature"},
				{ID: "p11_08_02", Name: "First law of thermodynamics"},
				{ID: "p11_08_03", Name: "Isothermal and adiabatic processes"},
				{ID: "p11_08_04", Name: "Second law of thermodynamics"},
			},
		},
		{
			ID:   "p11_09",
			Name: "Kinetic Theory of Gases",
			Topics: []Topic{
				{ID: "p11_09_01", Name: "Equation of state of a perfect gas"},
				{ID: "p11_09_02", Name: "Kinetic interpretation of temperature"},
				{ID: "p11_09_03", Name: "Degrees of freedom, law of equi-partition of energy"},
			},
		},
		{
			ID:   "p11_10",
			Name: "Oscillations and Waves",
			Topics: []Topic{
				{ID: "p11_10_01", Name: "Periodic motion - time period, frequency"},
				{ID: "p11_10_02", Name: "Simple harmonic motion (S.H.M) and its equation"},
				{ID: "p11_10_03", Name: "Transverse and longitudinal waves"},
				{ID: "p11_10_04", Name: "Displacement relation for a progressive wave"},
				{ID: "p11_10_05", Name: "Doppler effect"},
			},
		},
	},
	Class12: []Chapter{
		{
			ID:   "p12_01",
			Name: "Electrostatics",
			Topics: []Topic{
				{ID: "p12_01_01", Name: "Electric Charges; Conservation of charge, Coulomb's law"},
				{ID: "p12_01_02", Name: "Electric field, electric field lines"},
				{ID: "p12_01_03", Name: "Electric flux, Gauss's theorem"},
				{ID: "p12_01_04", Name: "Electric potential, potential difference"},
				{ID: "p12_01_05", Name: "Capacitors and capacitance, combination of capacitors"},
			},
		},
		{
			ID:   "p12_02",
			Name: "Current Electricity",
			Topics: []Topic{
				{ID: "p12_02_01", Name: "Electric current, drift velocity, Ohm's law"},
				{ID: "p12_02_02", Name: "Electrical resistance, V-I characteristics"},
				{ID: "p12_02_03", Name: "Internal resistance of a cell, potential difference and emf"},
				{ID: "p12_02_04", Name: "Kirchhoff's laws and simple applications"},
				{ID: "p12_02_05", Name: "Wheatstone bridge, metre bridge"},
			},
		},
		{
			ID:   "p12_03",
			Name: "Magnetic Effects of Current and Magnetism",
			Topics: []Topic{
				{ID: "p12_03_01", Name: "Biot - Savart law and its application"},
				{ID: "p12_03_02", Name: "Ampere's law and its applications"},
				{ID: "p12_03_03", Name: "Force on a moving charge in uniform magnetic and electric fields"},
				{ID: "p12_03_04", Name: "Magnetic dipole and magnetic dipole moment"},
				{ID: "p12_03_05", Name: "Para-, dia- and ferro - magnetic substances"},
			},
		},
		{
			ID:   "p12_04",
			Name: "Electromagnetic Induction and Alternating Currents",
			Topics: []Topic{
				{ID: "p12_04_01", Name: "Electromagnetic induction; Faraday's laws, induced emf and current"},
				{ID: "p12_04_02", Name: "Lenz's Law, Eddy currents. Self and mutual induction"},
				{ID: "p12_04_03", Name: "Alternating currents, peak and rms value of alternating current/voltage"},
				{ID: "p12_04_04", Name: "LC oscillations, LCR series circuit, resonance"},
				{ID: "p12_04_05", Name: "AC generator and transformer"},
			},
		},
		{
			ID:   "p12_05",
			Name: "Electromagnetic Waves",
			Topics: []Topic{
				{ID: "p12_05_01", Name: "Electromagnetic waves and their characteristics"},
				{ID: "p12_05_02", Name: "Electromagnetic spectrum"},
			},
		},
		{
			ID:   "p12_06",
			Name: "Optics",
			Topics: []Topic{
				{ID: "p12_06_01", Name: "Reflection of light, spherical mirrors, mirror formula"},
				{ID: "p12_06_02", Name: "Refraction of light, total internal reflection"},
				{ID: "p12_06_03", Name: "Refraction at spherical surfaces, lenses, thin lens formula"},
				{ID: "p12_06_04", Name: "Optical instruments: Microscopes and astronomical telescopes"},
				{ID: "p12_06_05", Name: "Wave optics: wavefront and Huygens' principle"},
				{ID: "p12_06_06", Name: "Interference, Young's double slit experiment"},
			},
		},
		{
			ID:   "p12_07",
			Name: "Dual Nature of Matter and Radiation",
			Topics: []Topic{
				{ID: "p12_07_01", Name: "Dual nature of radiation, Photoelectric effect"},
				{ID: "p12_07_02", Name: "Hertz and Lenard's observations; Einstein's photoelectric equation"},
				{ID: "p12_07_03", Name: "Matter waves-wave nature of particles, de Broglie relation"},
			},
		},
		{
			ID:   "p12_08",
			Name: "Atoms and Nuclei",
			Topics: []Topic{
				{ID: "p12_08_01", Name: "Alpha-particle scattering experiment; Rutherford's model of atom"},
				{ID: "p12_08_02", Name: "Bohr model, energy levels, hydrogen spectrum"},
				{ID: "p12_08_03", Name: "Composition and size of nucleus, atomic masses, isotopes"},
				{ID: "p12_08_04", Name: "Radioactivity, alpha, beta and gamma particles/rays"},
				{ID: "p12_08_05", Name: "Mass-energy relation, mass defect; nuclear fission and fusion"},
			},
		},
		{
			ID:   "p12_09",
			Name: "Electronic Devices",
			Topics: []Topic{
				{ID: "p12_09_01", Name: "Energy bands in solids, conductors, insulators and semiconductors"},
				{ID: "p12_09_02", Name: "Semiconductor diode: I-V characteristics in forward and reverse bias"},
				{ID: "p12_09_03", Name: "Diode as a rectifier; I-V characteristics of LED, photodiode, solar cell"},
			},
		},
	},
}
