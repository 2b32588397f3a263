package repository

import "antique-models-store/internal/model"

// Catalog seed: the nine scanned pieces the storefront launched with.
var seedModels = []model.StoneModel{
	{
		ID:           "madonna-and-child",
		Name:         "Madonna and Child",
		Era:          "Renaissance Italy 15th Century",
		Provenance:   "Carved marble relief depicting the Virgin Mary and infant Jesus. Attributed to a workshop in Florence during the height of the Renaissance. Features classical drapery and serene facial expressions characteristic of the period.",
		Dimensions:   `24" H x 18" W x 6" D`,
		Vertices:     250000,
		FileSize:     15000000,
		FileURL:      "/models/madonna-and-child.glb",
		ThumbnailURL: "/images/madonna-and-child.jpg",
		Price:        12900,
		Published:    true,
	},
	{
		ID:           "religious-marble-relief",
		Name:         "Religious Marble Relief",
		Era:          "Gothic Period 14th Century",
		Provenance:   "Elaborate marble relief panel from a medieval cathedral in Northern France. Features intricate Gothic architectural elements and religious iconography. Recovered during 19th century cathedral restoration.",
		Dimensions:   `36" H x 28" W x 8" D`,
		Vertices:     320000,
		FileSize:     18000000,
		FileURL:      "/models/religious-marble-relief.glb",
		ThumbnailURL: "/images/religious-marble-relief.jpg",
		Price:        15600,
		Published:    true,
	},
	{
		ID:           "statue-of-grace",
		Name:         "Statue of Grace",
		Era:          "Baroque Period 17th Century",
		Provenance:   "Marble sculpture from a private chapel in Rome. Depicts an angel with flowing robes and outstretched wings. Exhibits the dramatic movement and emotional intensity characteristic of Baroque sculpture.",
		Dimensions:   `48" H x 22" W x 20" D`,
		Vertices:     280000,
		FileSize:     16000000,
		FileURL:      "/models/statue-of-grace.glb",
		ThumbnailURL: "/images/statue-of-grace.jpg",
		Price:        18900,
		Published:    true,
	},
	{
		ID:           "medieval-knight",
		Name:         "Statue of a Medieval Knight",
		Era:          "Medieval Period 13th Century",
		Provenance:   "Stone effigy of a crusader knight from a Gothic cathedral in England. Features period-accurate armor and heraldic details. Originally part of a tomb monument for a noble family.",
		Dimensions:   `72" H x 24" W x 18" D`,
		Vertices:     180000,
		FileSize:     9700000,
		FileURL:      "/models/medieval-knight.glb",
		ThumbnailURL: "/images/medieval-knight.jpg",
		Price:        9800,
		Published:    true,
	},
	{
		ID:           "warriors-majesty",
		Name:         "Warrior's Majesty",
		Era:          "Classical Roman 2nd Century AD",
		Provenance:   "Marble statue of a Roman military commander discovered in archaeological excavations near Pompeii. Depicts the subject in ceremonial armor with detailed musculature and commanding pose typical of Roman imperial portraiture.",
		Dimensions:   `66" H x 28" W x 24" D`,
		Vertices:     220000,
		FileSize:     12000000,
		FileURL:      "/models/warriors-majesty.glb",
		ThumbnailURL: "/images/warriors-majesty.jpg",
		Price:        14500,
		Published:    true,
	},
	{
		ID:           "classical-relief-panel",
		Name:         "Classical Relief Panel",
		Era:          "Hellenistic Period 3rd Century BC",
		Provenance:   "Marble relief panel from a Greek temple in Asia Minor. Features intricate acanthus leaf patterns and mythological scenes. Part of the frieze decoration from the Temple of Athena. Museum catalog DP317611.",
		Dimensions:   `42" H x 36" W x 6" D`,
		Vertices:     190000,
		FileSize:     8500000,
		FileURL:      "/models/classical-relief-panel.glb",
		ThumbnailURL: "/images/classical-relief-panel.jpg",
		Price:        11200,
		Published:    true,
	},
	{
		ID:           "ancient-funerary-stele",
		Name:         "Ancient Funerary Stele",
		Era:          "Archaic Greek 6th Century BC",
		Provenance:   "Limestone funerary monument from Athens depicting a standing warrior figure. Features archaic smile and detailed armor rendition typical of early Greek sculpture. Metropolitan Museum catalog DP_18129.",
		Dimensions:   `54" H x 20" W x 10" D`,
		Vertices:     210000,
		FileSize:     9400000,
		FileURL:      "/models/ancient-funerary-stele.glb",
		ThumbnailURL: "/images/ancient-funerary-stele.jpg",
		Price:        16800,
		Published:    true,
	},
	{
		ID:           "baroque-architectural-element",
		Name:         "Baroque Architectural Element",
		Era:          "Italian Baroque 18th Century",
		Provenance:   "Ornate marble architectural fragment from Palazzo Barberini in Rome. Features elaborate scrollwork, cherub heads, and floral motifs characteristic of late Baroque decoration. Catalog reference CDI47-101-23.",
		Dimensions:   `48" H x 32" W x 12" D`,
		Vertices:     280000,
		FileSize:     16000000,
		FileURL:      "/models/baroque-architectural-element.glb",
		ThumbnailURL: "/images/baroque-architectural-element.jpg",
		Price:        13900,
		Published:    true,
	},
	{
		ID:           "architectural-frieze",
		Name:         "Architectural Frieze Fragment",
		Era:          "Roman Imperial 1st Century AD",
		Provenance:   "Marble frieze section from a Roman public building, likely a forum or basilica. Depicts processional scene with toga-clad figures and ceremonial objects. Exhibits fine detail work and classical proportions.",
		Dimensions:   `30" H x 60" W x 8" D`,
		Vertices:     160000,
		FileSize:     6100000,
		FileURL:      "/models/architectural-frieze.glb",
		ThumbnailURL: "/images/architectural-frieze.jpg",
		Price:        10500,
		Published:    true,
	},
}

// CNC stone-carving fulfillment partners (demo data).
var seedPartners = []model.FulfillmentPartner{
	{
		ID:              "precision-stone-works",
		Name:            "Precision Stone Works",
		Location:        "Texas, USA",
		Materials:       []string{"Texas Limestone", "Oklahoma Sandstone"},
		LeadTime:        "6-8 weeks",
		PriceMultiplier: 3.2,
		Equipment:       "5-axis CNC, finishing by hand",
	},
	{
		ID:              "heritage-carving",
		Name:            "Heritage Carving Co.",
		Location:        "Carrara, Italy",
		Materials:       []string{"Carrara Marble", "Travertine"},
		LeadTime:        "10-12 weeks",
		PriceMultiplier: 4.5,
		Equipment:       "5-axis CNC, traditional finishing",
	},
	{
		ID:              "stone-artisan-cnc",
		Name:            "Stone Artisan CNC",
		Location:        "Vermont, USA",
		Materials:       []string{"Vermont Marble", "Canadian Limestone"},
		LeadTime:        "8-10 weeks",
		PriceMultiplier: 3.8,
		Equipment:       "6-axis robotic mill",
	},
	{
		ID:              "direct-quarry",
		Name:            "Direct Quarry Fabrication",
		Location:        "Indiana, USA",
		Materials:       []string{"Indiana Limestone (buff, grey)"},
		LeadTime:        "5-7 weeks",
		PriceMultiplier: 2.9,
		Equipment:       "4-axis CNC, bulk production",
	},
}
