package syllabus

// biologySyllabus is the NEET UG Biology syllabus in NCERT chapter order.
var biologySyllabus = SubjectSyllabus{
	Class11: []Chapter{
		{
			ID:   "b11_01",
			Name: "Diversity in Living World",
			Topics: []Topic{
				{ID: "b11_01_01", Name: "What is living? ; Biodiversity; Need for classification"},
				{ID: "b11_01_02", Name: "Five kingdom classification"},
				{ID: "b11_01_03", Name: "Salient features and classification of Monera, Protista and Fungi"},
				{ID: "b11_01_04", Name: "Salient features and classification of plants"},
				{ID: "b11_01_05", Name: "Salient features and classification of animals"},
			},
		},
		{
			ID:   "b11_02",
			Name: "Structural Organisation in Animals and Plants",
			Topics: []Topic{
				{ID: "b11_02_01", Name: "Morphology and modifications of different parts of flowering plants"},
				{ID: "b11_02_02", Name: "Anatomy and functions of different tissues and tissue systems"},
				{ID: "b11_02_03", Name: "Animal tissues; Morphology, anatomy and functions of an insect (cockroach)"},
			},
		},
		{
			ID:   "b11_03",
			Name: "Cell Structure and Function",
			Topics: []Topic{
				{ID: "b11_03_01", Name: "Cell theory and cell as the basic unit of life"},
				{ID: "b11_03_02", Name: "Structure of prokaryotic and eukaryotic cell"},
				{ID: "b11_03_03", Name: "Chemical constituents of living cells: Biomolecules"},
				{ID: "b11_03_04", Name: "Cell division: Cell cycle, mitosis and meiosis"},
			},
		},
		{
			ID:   "b11_04",
			Name: "Plant Physiology",
			Topics: []Topic{
				{ID: "b11_04_01", Name: "Photosynthesis as a means of Autotrophic nutrition"},
				{ID: "b11_04_02", Name: "Respiration: Glycolysis, fermentation, TCA cycle"},
				{ID: "b11_04_03", Name: "Plant growth and development"},
			},
		},
		{
			ID:   "b11_05",
			Name: "Human Physiology",
			Topics: []Topic{
				{ID: "b11_05_01", Name: "Breathing and Respiration"},
				{ID: "b11_05_02", Name: "Body fluids and circulation"},
				{ID: "b11_05_03", Name: "Excretory products and their elimination"},
				{ID: "b11_05_04", Name: "Locomotion and Movement"},
				{ID: "b11_05_05", Name: "Neural control and coordination"},
				{ID: "b11_05_06", Name: "Chemical coordination and regulation"},
			},
		},
	},
	Class12: []Chapter{
		{
			ID:   "b12_01",
			Name: "Reproduction",
			Topics: []Topic{
				{ID: "b12_01_01", Name: "Sexual reproduction in flowering plants"},
				{ID: "b12_01_02", Name: "Human Reproduction"},
				{ID: "b12_01_03", Name: "Reproductive health"},
			},
		},
		{
			ID:   "b12_02",
			Name: "Genetics and Evolution",
			Topics: []Topic{
				{ID: "b12_02_01", Name: "Heredity and variation: Mendelian Inheritance"},
				{ID: "b12_02_02", Name: "Molecular basis of Inheritance"},
				{ID: "b12_02_03", Name: "Evolution: Origin of life, biological evolution"},
			},
		},
		{
			ID:   "b12_03",
			Name: "Biology and Human Welfare",
			Topics: []Topic{
				{ID: "b12_03_01", Name: "Health and Disease; Pathogens; parasites causing human diseases"},
				{ID: "b12_03_02", Name: "Microbes in human welfare"},
			},
		},
		{
			ID:   "b12_04",
			Name: "Biotechnology and Its Applications",
			Topics: []Topic{
				{ID: "b12_04_01", Name: "Principles and process of Biotechnology: Genetic engineering"},
				{ID: "b12_04_02", Name: "Application of Biotechnology in health and agriculture"},
			},
		},
		{
			ID:   "b12_05",
			Name: "Ecology and Environment",
			Topics: []Topic{
				{ID: "b12_05_01", Name: "Organisms and environment: Population, interactions"},
				{ID: "b12_05_02", Name: "Ecosystem: Patterns, components; productivity and decomposition"},
				{ID: "b12_05_03", Name: "Biodiversity and its conservation"},
			},
		},
	},
}
