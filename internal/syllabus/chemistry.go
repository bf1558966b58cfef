package syllabus

// chemistrySyllabus is the NEET UG Chemistry syllabus in NCERT chapter order.
var chemistrySyllabus = SubjectSyllabus{
	Class11: []Chapter{
		{
			ID:   "c11_01",
			Name: "Some Basic Concepts of Chemistry",
			Topics: []Topic{
				{ID: "c11_01_01", Name: "General Introduction: Importance and scope of chemistry"},
				{ID: "c11_01_02", Name: "Laws of chemical combination, Dalton's atomic theory"},
				{ID: "c11_01_03", Name: "Atomic and molecular masses. Mole concept and molar mass"},
				{ID: "c11_01_04", Name: "Stoichiometry and calculations based on stoichiometry"},
			},
		},
		{
			ID:   "c11_02",
			Name: "Structure of Atom",
			Topics: []Topic{
				{ID: "c11_02_01", Name: "Atomic number, isotopes and isobars"},
				{ID: "c11_02_02", Name: "Shells and subshells, dual nature of matter and light"},
				{ID: "c11_02_03", Name: "De Broglie's relationship, Heisenberg uncertainty principle"},
				{ID: "c11_02_04", Name: "Orbitals, quantum numbers, shapes of s, p and d orbitals"},
				{ID: "c11_02_05", Name: "Aufbau principle, Pauli exclusion principle and Hund's rule"},
			},
		},
		{
			ID:   "c11_03",
			Name: "Classification of Elements and Periodicity in Properties",
			Topics: []Topic{
				{ID: "c11_03_01", Name: "Modern periodic law and long form of periodic table"},
				{ID: "c11_03_02", Name: "Periodic trends in properties of elements"},
			},
		},
		{
			ID:   "c11_04",
			Name: "Chemical Bonding and Molecular Structure",
			Topics: []Topic{
				{ID: "c11_04_01", Name: "Valence electrons, ionic bond, covalent bond"},
				{ID: "c11_04_02", Name: "Lewis structure, polar character of covalent bond"},
				{ID: "c11_04_03", Name: "VSEPR theory, concept of hybridization"},
				{ID: "c11_04_04", Name: "Molecular orbital theory of homonuclear diatomic molecules"},
			},
		},
		{
			ID:   "c11_05",
			Name: "Chemical Thermodynamics",
			Topics: []Topic{
				{ID: "c11_05_01", Name: "Concepts of system, types of systems, surroundings"},
				{ID: "c11_05_02", Name: "First law of thermodynamics - internal energy and enthalpy"},
				{ID: "c11_05_03", Name: "Hess's law of constant heat summation"},
				{ID: "c11_05_04", Name: "Introduction of entropy as a state function"},
				{ID: "c11_05_05", Name: "Gibbs energy change for spontaneous and non-spontaneous process"},
			},
		},
		{
			ID:   "c11_06",
			Name: "Equilibrium",
			Topics: []Topic{
				{ID: "c11_06_01", Name: "Equilibrium in physical and chemical processes"},
				{ID: "c11_06_02", Name: "Law of chemical equilibrium, equilibrium constant"},
				{ID: "c11_06_03", Name: "Le Chatelier's principle"},
				{ID: "c11_06_04", Name: "Ionic equilibrium - ionization of acids and bases"},
				{ID: "c11_06_05", Name: "Solubility product, common ion effect"},
			},
		},
		{
			ID:   "c11_07",
			Name: "Redox Reactions",
			Topics: []Topic{
				{ID: "c11_07_01", Name: "Concept of oxidation and reduction"},
				{ID: "c11_07_02", Name: "Oxidation number, balancing redox reactions"},
			},
		},
		{
			ID:   "c11_08",
			Name: "Organic Chemistry- Some Basic Principles and Techniques",
			Topics: []Topic{
				{ID: "c11_08_01", Name: "General introduction, classification and IUPAC nomenclature"},
				{ID: "c11_08_02", Name: "Electronic displacements in a covalent bond"},
				{ID: "c11_08_03", Name: "Homolytic and heterolytic fission of a covalent bond"},
			},
		},
		{
			ID:   "c11_09",
			Name: "Hydrocarbons",
			Topics: []Topic{
				{ID: "c11_09_01", Name: "Alkanes - Nomenclature, isomerism, conformations"},
				{ID: "c11_09_02", Name: "Alkenes - Nomenclature, structure of double bond"},
				{ID: "c11_09_03", Name: "Alkynes - Nomenclature, structure of triple bond"},
				{ID: "c11_09_04", Name: "Aromatic hydrocarbons - Introduction, IUPAC nomenclature"},
			},
		},
	},
	Class12: []Chapter{
		{
			ID:   "c12_01",
			Name: "Solutions",
			Topics: []Topic{
				{ID: "c12_01_01", Name: "Types of solutions, expression of concentration of solutions"},
				{ID: "c12_01_02", Name: "Solubility of gases in liquids, solid solutions"},
				{ID: "c12_01_03", Name: "Raoult's law, Colligative properties"},
				{ID: "c12_01_04", Name: "Abnormal molecular mass, Van't Hoff factor"},
			},
		},
		{
			ID:   "c12_02",
			Name: "Electrochemistry",
			Topics: []Topic{
				{ID: "c12_02_01", Name: "Redox reactions, conductance in electrolytic solutions"},
				{ID: "c12_02_02", Name: "Kohlrausch's Law, electrolysis and laws of electrolysis"},
				{ID: "c12_02_03", Name: "Electrolytic cells and Galvanic cells"},
				{ID: "c12_02_04", Name: "Nernst equation and its application to chemical cells"},
			},
		},
		{
			ID:   "c12_03",
			Name: "Chemical Kinetics",
			Topics: []Topic{
				{ID: "c12_03_01", Name: "Rate of a reaction (average and instantaneous)"},
				{ID: "c12_03_02", Name: "Factors affecting rate of reaction"},
				{ID: "c12_03_03", Name: "Integrated rate equations and half life"},
				{ID: "c12_03_04", Name: "Collision theory"},
			},
		},
		{
			ID:   "c12_04",
			Name: "d and f Block Elements",
			Topics: []Topic{
				{ID: "c12_04_01", Name: "General introduction, electronic configuration"},
				{ID: "c12_04_02", Name: "Characteristics of transition metals (d-block)"},
				{ID: "c12_04_03", Name: "Lanthanoids and Actinoids"},
			},
		},
		{
			ID:   "c12_05",
			Name: "Coordination Compounds",
			Topics: []Topic{
				{ID: "c12_05_01", Name: "Introduction, ligands, coordination number"},
				{ID: "c12_05_02", Name: "IUPAC nomenclature of mononuclear coordination compounds"},
				{ID: "c12_05_03", Name: "Werner's theory, VBT, and CFT"},
			},
		},
		{
			ID:   "c12_06",
			Name: "Haloalkanes and Haloarenes",
			Topics: []Topic{
				{ID: "c12_06_01", Name: "Haloalkanes: Nomenclature, nature of C-X bond"},
				{ID: "c12_06_02", Name: "Haloarenes: Nature of C-X bond, substitution reactions"},
			},
		},
		{
			ID:   "c12_07",
			Name: "Alcohols, Phenols and Ethers",
			Topics: []Topic{
				{ID: "c12_07_01", Name: "Alcohols: Nomenclature, methods of preparation"},
				{ID: "c12_07_02", Name: "Phenols: Nomenclature, methods of preparation"},
				{ID: "c12_07_03", Name: "Ethers: Nomenclature, methods of preparation"},
			},
		},
		{
			ID:   "c12_08",
			Name: "Aldehydes, Ketones and Carboxylic Acids",
			Topics: []Topic{
				{ID: "c12_08_01", Name: "Aldehydes and Ketones: Nomenclature, nature of carbonyl group"},
				{ID: "c12_08_02", Name: "Carboxylic Acids: Nomenclature, acidic nature"},
			},
		},
		{
			ID:   "c12_09",
			Name: "Amines",
			Topics: []Topic{
				{ID: "c12_09_01", Name: "Amines: Nomenclature, classification, structure"},
				{ID: "c12_09_02", Name: "Cyanides and Isocyanides"},
				{ID: "c12_09_03", Name: "Diazonium salts"},
			},
		},
		{
			ID:   "c12_10",
			Name: "Biomolecules",
			Topics: []Topic{
				{ID: "c12_10_01", Name: "Carbohydrates - Classification, functions"},
				{ID: "c12_10_02", Name: "Proteins - Elementary idea of amino acids"},
				{ID: "c12_10_03", Name: "Vitamins - Classification and functions"},
				{ID: "c12_10_04", Name: "Nucleic Acids: DNA and RNA"},
			},
		},
	},
}
