package catalog

import "github.com/Skotchmaster/sleepsound/internal/models"

var seedProducts = []models.Product{
	{
		ID:            1,
		Name:          "Ortho Memory Foam Mattress",
		Category:      "Mattress",
		SubCategory:   "Orthopedic Mattress",
		Price:         12999,
		OriginalPrice: 19999,
		Image:         "https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Medium firm, orthopedic support for back pain relief.",
		Badge:         "Bestseller",
		SKU:           "M72364",
		Features:      []string{"Orthopedic Support", "Memory Foam", "Medium Firm", "100 Night Trial"},
	},
	{
		ID:            2,
		Name:          "Solid Wood Bed Frame",
		Category:      "Bedroom",
		SubCategory:   "Sheesham Wood Beds",
		Price:         25999,
		OriginalPrice: 35999,
		Image:         "https://images.unsplash.com/photo-1505693416388-b0346efee535?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Queen size with storage, made of premium Sheesham wood.",
		Badge:         "New",
		SKU:           "B72364",
		Features:      []string{"Solid Wood", "Storage Space", "Queen Size", "10 Year Warranty"},
	},
	{
		ID:            3,
		Name:          "Ergonomic Office Chair",
		Category:      "Office",
		SubCategory:   "Ergonomic Chairs",
		Price:         8999,
		OriginalPrice: 12999,
		Image:         "https://images.unsplash.com/photo-1586953208448-b95a79798f07?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Lumbar support, adjustable height, and breathable mesh.",
		Badge:         "Sale",
		SKU:           "C72364",
		Features:      []string{"Lumbar Support", "Adjustable Height", "Ergonomic Design", "5 Year Warranty"},
	},
	{
		ID:            4,
		Name:          "Modular Sofa Set",
		Category:      "Living",
		SubCategory:   "L Shape Sofas",
		Price:         34999,
		OriginalPrice: 49999,
		Image:         "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "3-seater with removable covers and premium fabric.",
		Badge:         "Popular",
		SKU:           "S72364",
		Features:      []string{"Modular Design", "Removable Covers", "3-Seater", "Premium Fabric"},
	},
	{
		ID:            5,
		Name:          "Dining Table Set",
		Category:      "Dining",
		SubCategory:   "4 Seater Dining Sets",
		Price:         19999,
		OriginalPrice: 29999,
		Image:         "https://images.unsplash.com/photo-1617806118233-18e1de247200?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "4-seater solid wood dining set with cushioned chairs.",
		Badge:         "",
		SKU:           "D72364",
		Features:      []string{"Solid Wood", "4-Seater", "Durable Finish", "Easy Assembly"},
	},
	{
		ID:            6,
		Name:          "Study Desk",
		Category:      "Office",
		SubCategory:   "Study Tables",
		Price:         7999,
		OriginalPrice: 11999,
		Image:         "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Minimalist design with drawers for home office.",
		Badge:         "",
		SKU:           "SD72364",
		Features:      []string{"Minimalist Design", "Storage Drawers", "Cable Management", "Modern Style"},
	},
	{
		ID:            7,
		Name:          "Dual Comfort Mattress",
		Category:      "Mattress",
		SubCategory:   "Dual Comfort Mattress",
		Price:         6500,
		OriginalPrice: 8000,
		Image:         "https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Hard on one side, soft on the other. Usable on both sides.",
		Badge:         "Trending",
		SKU:           "DC72364",
		Features:      []string{"Dual Comfort", "Reversible", "High Density Foam", "7 Year Warranty"},
	},
	{
		ID:            8,
		Name:          "Teak Wood Bedside Table",
		Category:      "Bedroom",
		SubCategory:   "Bedside Tables",
		Price:         4500,
		OriginalPrice: 6000,
		Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Compact bedside table with single drawer storage.",
		Badge:         "",
		SKU:           "BT72364",
		Features:      []string{"Teak Wood", "Compact", "Pre-assembled", "Classic Finish"},
	},
	{
		ID:            9,
		Name:          "Recliner Sofa 1 Seater",
		Category:      "Living",
		SubCategory:   "Recliners",
		Price:         15999,
		OriginalPrice: 22999,
		Image:         "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Single seater manual recliner with plush cushioning.",
		Badge:         "Comfort",
		SKU:           "RC72364",
		Features:      []string{"Manual Recline", "High Back", "Arm Support", "Velvet Fabric"},
	},
	{
		ID:            10,
		Name:          "Bookshelf with Glass Doors",
		Category:      "Office",
		SubCategory:   "Bookshelves",
		Price:         11000,
		OriginalPrice: 16000,
		Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Spacious bookshelf with glass doors for dust protection.",
		Badge:         "",
		SKU:           "BS72364",
		Features:      []string{"Glass Doors", "Multiple Shelves", "Engineered Wood", "Walnut Finish"},
	},
	{
		ID:            11,
		Name:          "Latex Mattress",
		Category:      "Mattress",
		SubCategory:   "Latex Mattress",
		Price:         18000,
		OriginalPrice: 25000,
		Image:         "https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Natural latex layers for breathable and bouncy support.",
		Badge:         "Premium",
		SKU:           "LM72364",
		Features:      []string{"Natural Latex", "Breathable", "Hypoallergenic", "10 Year Warranty"},
	},
	{
		ID:            12,
		Name:          "Shoe Rack 4 Layer",
		Category:      "Living",
		SubCategory:   "Shoe Racks",
		Price:         5500,
		OriginalPrice: 7500,
		Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?auto=format&fit=crop&q=80&w=800&h=600",
		Description:   "Engineered wood shoe rack with ventilation.",
		Badge:         "",
		SKU:           "SR72364",
		Features:      []string{"Ventilation Cuts", "4 Shelves", "Compact Depth", "Dark Walnut"},
	},
}

type NavGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

type NavItem struct {
	Label    string     `json:"label"`
	Category string     `json:"category"`
	Groups   []NavGroup `json:"groups"`
}

var Navigation = []NavItem{
	{Label: "Mattress", Category: "Mattress", Groups: []NavGroup{
		{Label: "By Type", Items: []string{"Orthopedic Mattress", "Dual Comfort Mattress", "Latex Mattress", "Foam Spring Mattress", "Xtra Snooze Grid"}},
		{Label: "By Size", Items: []string{"King Size", "Queen Size", "Single Size", "Double Size", "Custom Size"}},
		{Label: "Bedding", Items: []string{"Mattress Protectors", "Pillows", "Comforters", "Bedsheets", "Blankets"}},
	}},
	{Label: "Bedroom", Category: "Bedroom", Groups: []NavGroup{
		{Label: "Beds", Items: []string{"Sheesham Wood Beds", "Engineered Wood Beds", "Metal Beds", "Bunk Beds", "Bedside Tables"}},
		{Label: "Wardrobes", Items: []string{"2 Door Wardrobes", "3 Door Wardrobes", "4 Door Wardrobes", "Sliding Wardrobes"}},
		{Label: "Accessories", Items: []string{"Dressing Tables", "Chest of Drawers", "Bedroom Chairs", "Bedroom Benches"}},
	}},
	{Label: "Living", Category: "Living", Groups: []NavGroup{
		{Label: "Sofas", Items: []string{"L Shape Sofas", "3 Seater Sofas", "2 Seater Sofas", "Sofa Sets", "Sofa Cum Beds"}},
		{Label: "Seating", Items: []string{"Recliners", "Accent Chairs", "Ottomans", "Bean Bags", "Stools"}},
		{Label: "Tables", Items: []string{"Coffee Tables", "Side Tables", "Console Tables", "TV Units", "Shoe Racks"}},
	}},
	{Label: "Dining", Category: "Dining", Groups: []NavGroup{
		{Label: "Dining Sets", Items: []string{"4 Seater Dining Sets", "6 Seater Dining Sets", "8 Seater Dining Sets"}},
		{Label: "Dining Tables", Items: []string{"Solid Wood Tables", "Glass Top Tables", "Marble Top Tables"}},
		{Label: "Dining Chairs", Items: []string{"Wooden Chairs", "Upholstered Chairs", "Benches"}},
	}},
	{Label: "Study", Category: "Office", Groups: []NavGroup{
		{Label: "Tables", Items: []string{"Study Tables", "Computer Tables", "Office Tables", "Adjustable Tables"}},
		{Label: "Chairs", Items: []string{"Ergonomic Chairs", "Office Chairs", "Gaming Chairs", "Study Chairs"}},
		{Label: "Storage", Items: []string{"Bookshelves", "File Cabinets", "Wall Shelves", "Office Drawers"}},
	}},
}

var DefaultBranches = []string{
	"Mumbai - Andheri",
	"Mumbai - Thane",
	"Pune - Kothrud",
	"Bengaluru - Indiranagar",
	"Delhi - Saket",
}
