package catalog

// Builtin returns the compiled-in catalog shipped with the site.
func Builtin() *Catalog {
	c, err := New(builtinArms)
	if err != nil {
		panic("builtin catalog: " + err.Error())
	}
	return c
}

var builtinArms = []Arm{
	{
		ID:           "ra001",
		Name:         "PrecisionBot 2000",
		Manufacturer: "RoboTech Industries",
		PayloadKg:    10,
		ReachMm:      1500,
		Speed:        7,
		PrecisionMm:  0.1,
		Applications: []string{"Packaging", "Assembly", "Material Handling"},
		Description:  "The PrecisionBot 2000 is designed for high-precision tasks in manufacturing environments. With its advanced servo motors and lightweight carbon fiber construction, it offers exceptional accuracy and speed.",
		Price:        PriceRange{Min: 25000, Max: 35000},
		Features: []string{
			"6-axis movement",
			"Advanced path planning",
			"Integrated vision system",
			"Collision detection",
			"Customizable end effectors",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra002",
		Name:         "HeavyLifter 500",
		Manufacturer: "Industrial Automation Corp",
		PayloadKg:    500,
		ReachMm:      3200,
		Speed:        4,
		PrecisionMm:  0.5,
		Applications: []string{"Heavy Material Handling", "Palletizing", "Machine Tending"},
		Description:  "The HeavyLifter 500 is built for industrial environments where heavy lifting capacity is essential. Despite its impressive payload capacity, it maintains good precision for its class.",
		Price:        PriceRange{Min: 75000, Max: 95000},
		Features: []string{
			"Reinforced steel frame",
			"High-torque motors",
			"Integrated safety systems",
			"Low maintenance design",
			"Extended warranty",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra003",
		Name:         "SpeedyAssembler Pro",
		Manufacturer: "FastBot Automation",
		PayloadKg:    3,
		ReachMm:      800,
		Speed:        10,
		PrecisionMm:  0.05,
		Applications: []string{"Electronics Assembly", "Pick and Place", "Quality Inspection"},
		Description:  "The SpeedyAssembler Pro excels in high-speed, precision applications like electronics manufacturing. Its lightweight design and advanced motion control algorithms deliver exceptional throughput.",
		Price:        PriceRange{Min: 18000, Max: 24000},
		Features: []string{
			"Ultra-high speed servos",
			"Compact footprint",
			"Built-in vision processing",
			"Pre-programmed movement patterns",
			"Energy efficient design",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra004",
		Name:         "FlexiArm 360",
		Manufacturer: "Adaptable Robotics",
		PayloadKg:    15,
		ReachMm:      1800,
		Speed:        6,
		PrecisionMm:  0.2,
		Applications: []string{"Welding", "Cutting", "Spraying", "Assembly"},
		Description:  "The FlexiArm 360 is designed for versatility across multiple applications. Its modular design allows for quick retooling and adaptation to different manufacturing processes.",
		Price:        PriceRange{Min: 30000, Max: 42000},
		Features: []string{
			"Quick-change tool system",
			"Modular design",
			"Advanced path optimization",
			"Remote monitoring capabilities",
			"Intuitive programming interface",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra005",
		Name:         "CompactBot Mini",
		Manufacturer: "Small Space Solutions",
		PayloadKg:    2,
		ReachMm:      600,
		Speed:        8,
		PrecisionMm:  0.1,
		Applications: []string{"Laboratory Automation", "Small Parts Assembly", "Testing"},
		Description:  "The CompactBot Mini is perfect for space-constrained environments that still require precision and reliability. Its small footprint hides powerful capabilities.",
		Price:        PriceRange{Min: 15000, Max: 22000},
		Features: []string{
			"Ultra-compact design",
			"Low power consumption",
			"Silent operation",
			"Desktop mounting options",
			"Simple programming interface",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra006",
		Name:         "SurgicalAssist 7000",
		Manufacturer: "MedTech Robotics",
		PayloadKg:    1,
		ReachMm:      900,
		Speed:        5,
		PrecisionMm:  0.01,
		Applications: []string{"Medical Procedures", "Laboratory Work", "Precision Assembly"},
		Description:  "The SurgicalAssist 7000 represents the pinnacle of precision robotics, designed for environments where accuracy is paramount. Its ultra-stable design virtually eliminates vibration.",
		Price:        PriceRange{Min: 120000, Max: 150000},
		Features: []string{
			"Sub-micron precision",
			"Medical-grade materials",
			"Tremor-free operation",
			"Advanced force feedback",
			"Sterile environment compatible",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra007",
		Name:         "PackMaster 3000",
		Manufacturer: "Packaging Systems Inc",
		PayloadKg:    30,
		ReachMm:      2200,
		Speed:        9,
		PrecisionMm:  0.3,
		Applications: []string{"Packaging", "Boxing", "Palletizing", "Order Fulfillment"},
		Description:  "The PackMaster 3000 is specifically designed for packaging operations, with optimized movements for picking, packing, and palletizing tasks. It's the efficiency champion in logistics operations.",
		Price:        PriceRange{Min: 40000, Max: 55000},
		Features: []string{
			"High-speed pick and place",
			"Integrated package detection",
			"Multiple gripper options",
			"Box recognition software",
			"Warehouse management integration",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra008",
		Name:         "WelderPro X",
		Manufacturer: "FabTech Solutions",
		PayloadKg:    25,
		ReachMm:      2500,
		Speed:        5,
		PrecisionMm:  0.2,
		Applications: []string{"Welding", "Metal Fabrication", "Heavy Assembly"},
		Description:  "The WelderPro X combines robust design with precision control, making it ideal for welding applications. Its specialized arm geometry provides excellent access to complex workpieces.",
		Price:        PriceRange{Min: 55000, Max: 70000},
		Features: []string{
			"Heat-resistant components",
			"Integrated welding equipment",
			"Seam tracking technology",
			"Multi-pass weld programming",
			"Spark and spatter protection",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra009",
		Name:         "CleanBot Ultra",
		Manufacturer: "Sterile Processing Technologies",
		PayloadKg:    8,
		ReachMm:      1200,
		Speed:        6,
		PrecisionMm:  0.2,
		Applications: []string{"Pharmaceutical Manufacturing", "Food Processing", "Clean Room Operations"},
		Description:  "The CleanBot Ultra is designed for environments with stringent cleanliness requirements. Its sealed joints and washdown-ready construction make it perfect for hygienic applications.",
		Price:        PriceRange{Min: 45000, Max: 60000},
		Features: []string{
			"IP69K rated components",
			"Sealed construction",
			"FDA-compliant materials",
			"Cleanroom certified",
			"Chemical resistant surfaces",
		},
		Image: "placeholder.svg",
	},
	{
		ID:           "ra010",
		Name:         "EconomyArm Basic",
		Manufacturer: "Budget Automation",
		PayloadKg:    5,
		ReachMm:      1000,
		Speed:        4,
		PrecisionMm:  0.4,
		Applications: []string{"Basic Material Handling", "Simple Assembly", "Education and Training"},
		Description:  "The EconomyArm Basic provides an affordable entry point to robotics automation. While not as feature-rich as premium models, it delivers reliable performance for standard tasks.",
		Price:        PriceRange{Min: 8000, Max: 12000},
		Features: []string{
			"Simple programming interface",
			"Standard tooling compatibility",
			"Low maintenance design",
			"Compact controller",
			"Training materials included",
		},
		Image: "placeholder.svg",
	},
}
