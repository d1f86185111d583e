package memory

import (
	"context"

	"go-scales-backend/internal/domain"
)

// productRepository serves the static product catalog. The catalog is a
// fixed slice built at startup and read-only thereafter, so lookups are
// plain linear scans and need no locking.
type productRepository struct {
	products []domain.Product
}

// NewProductRepository builds the in-memory catalog repository.
func NewProductRepository() domain.ProductRepository {
	return &productRepository{products: catalog}
}

func (r *productRepository) ListAll(_ context.Context) []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *productRepository) FindBySlug(_ context.Context, slug string) (*domain.Product, bool) {
	for i := range r.products {
		if r.products[i].Slug == slug {
			p := r.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (r *productRepository) Categories(_ context.Context) []string {
	seen := make(map[string]bool, len(r.products))
	var categories []string
	for i := range r.products {
		c := r.products[i].Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories
}

// catalog is the complete product line-up with technical specifications
// for the listing and detail endpoints.
var catalog = []domain.Product{
	{
		ID:               "1",
		Slug:             "digital-table-top",
		Title:            "Digital Table Top Weighing Scales",
		Category:         "Retail & Laboratory",
		ShortDescription: "Compact digital weighing scales with high-precision sensors for retail and laboratory use",
		FullDescription:  "Our Digital Table Top Weighing Scales combine compact design with exceptional precision. Featuring a stainless steel top plate and advanced load cell technology, these scales are perfect for retail counters, laboratories, and quality control applications.",
		Features: []string{
			"Compact and portable design",
			"Stainless steel weighing platform",
			"High-precision load cell sensors",
			"Bright LED/LCD display",
			"AC/DC operation with rechargeable battery",
			"Tare function and unit conversion",
			"Overload protection",
		},
		Specifications: domain.Specifications{
			MaxCapacity:      "30 kg (customizable up to 60 kg)",
			MinWeight:        "5 grams",
			Accuracy:         "±1g to ±5g (depending on model)",
			WeighingRange:    "5g to 30kg",
			MaxLoadTolerance: "150% of max capacity",
			Material:         "Stainless steel platform with ABS body",
			Dimensions:       domain.Dimensions{Height: "100 mm", Width: "300 mm", Length: "350 mm"},
		},
		Images: domain.ProductImages{
			Main: "/images/products/digital-table-top/main.jpg",
			Gallery: []string{
				"/images/products/digital-table-top/front.jpg",
				"/images/products/digital-table-top/display.jpg",
				"/images/products/digital-table-top/platform.jpg",
			},
		},
		Applications: []string{"Retail shops", "Grocery stores", "Laboratories", "Quality control", "Jewellery stores"},
	},
	{
		ID:               "2",
		Slug:             "receipt-printer",
		Title:            "Receipt Printer Weighing Scales",
		Category:         "Retail & Billing",
		ShortDescription: "Advanced weighing scales with integrated thermal receipt printer for seamless billing operations",
		FullDescription:  "Transform your retail operations with our Receipt Printer Weighing Scales. These intelligent scales combine precise weighing with instant receipt printing, barcode scanning, and price computing functions.",
		Features: []string{
			"Built-in thermal receipt printer",
			"Price computing function",
			"Barcode label printing support",
			"Product database (PLU memory)",
			"RS-232/USB connectivity",
			"Dual-side display (customer & operator)",
		},
		Specifications: domain.Specifications{
			MaxCapacity:      "30 kg (models available up to 60 kg)",
			MinWeight:        "10 grams",
			Accuracy:         "±2g to ±10g",
			WeighingRange:    "10g to 30kg",
			MaxLoadTolerance: "150% of max capacity",
			Material:         "Stainless steel pan with reinforced ABS housing",
			Dimensions:       domain.Dimensions{Height: "350 mm", Width: "320 mm", Length: "420 mm"},
		},
		Images: domain.ProductImages{
			Main: "/images/products/receipt-printer/main.jpg",
			Gallery: []string{
				"/images/products/receipt-printer/front.jpg",
				"/images/products/receipt-printer/receipt.jpg",
				"/images/products/receipt-printer/panel.jpg",
			},
		},
		Applications: []string{"Supermarkets", "Grocery chains", "Delis", "Fruit and vegetable markets"},
	},
	{
		ID:               "3",
		Slug:             "industrial-platform",
		Title:            "Industrial Platform Weighing Scales",
		Category:         "Industrial",
		ShortDescription: "Heavy-duty platform scales with stainless steel construction for industrial weighing applications",
		FullDescription:  "Built for demanding industrial environments, our Platform Weighing Scales deliver reliable accuracy under continuous use. The rugged construction and sealed load cells withstand dust, moisture, and rough handling.",
		Features: []string{
			"SS304 stainless steel platform",
			"Sealed IP-rated load cells",
			"Large backlit indicator with remote mounting",
			"Wheels and ramps available",
			"Overload stoppers on all corners",
		},
		Specifications: domain.Specifications{
			MaxCapacity:      "500 kg to 3000 kg",
			MinWeight:        "100 grams",
			Accuracy:         "±50g to ±500g (based on capacity)",
			WeighingRange:    "100g to 3000kg",
			MaxLoadTolerance: "120% of max capacity",
			Material:         "SS304 stainless steel platform with powder-coated MS frame",
			Dimensions:       domain.Dimensions{Height: "120 mm", Width: "800 mm", Length: "800 mm"},
		},
		Images: domain.ProductImages{
			Main: "/images/products/industrial-platform/main.jpg",
			Gallery: []string{
				"/images/products/industrial-platform/platform.jpg",
				"/images/products/industrial-platform/indicator.jpg",
			},
		},
		Applications: []string{"Factories", "Food processing", "Chemical plants", "Packing lines"},
	},
	{
		ID:               "4",
		Slug:             "floor-weighing",
		Title:            "Floor Weighing Scales",
		Category:         "Warehouse & Logistics",
		ShortDescription: "Rugged floor scales with diamond plate platform for heavy load handling in warehouses",
		FullDescription:  "Our Floor Weighing Scales are engineered for pallet and drum weighing in warehouses and logistics hubs. The low-profile diamond plate deck takes direct trolley access and shrugs off daily abuse.",
		Features: []string{
			"Diamond plate anti-slip deck",
			"Low-profile design for trolley access",
			"Four-cell construction with corner trim",
			"Optional pit-mounting frame",
			"Ramp and railing accessories",
		},
		Specifications: domain.Specifications{
			MaxCapacity:      "1000 kg to 5000 kg",
			MinWeight:        "200 grams",
			Accuracy:         "±100g to ±1kg",
			WeighingRange:    "200g to 5000kg",
			MaxLoadTolerance: "120% of max capacity",
			Material:         "MS diamond plate with powder-coated frame",
			Dimensions:       domain.Dimensions{Height: "90 mm", Width: "1200 mm", Length: "1200 mm"},
		},
		Images: domain.ProductImages{
			Main: "/images/products/floor-weighing/main.jpg",
			Gallery: []string{
				"/images/products/floor-weighing/deck.jpg",
				"/images/products/floor-weighing/ramp.jpg",
			},
		},
		Applications: []string{"Warehouses", "Logistics hubs", "Cold storage", "Shipping docks"},
	},
	{
		ID:               "5",
		Slug:             "heavy-duty-industrial",
		Title:            "Heavy-Duty Industrial Systems",
		Category:         "Heavy Industrial",
		ShortDescription: "Extra-strong industrial weighing systems for extreme load capacity and harsh environments",
		FullDescription:  "For foundries, steel yards, and weighbridge applications, our Heavy-Duty Industrial Systems handle loads up to 100 tons. Modular construction allows on-site assembly and capacity upgrades.",
		Features: []string{
			"Capacities up to 100 tons",
			"Modular weighbridge construction",
			"SS load cells with lightning protection",
			"Remote jumbo displays",
			"Vehicle management software integration",
		},
		Specifications: domain.Specifications{
			MaxCapacity:      "5 tons to 100 tons",
			MinWeight:        "1 kg",
			Accuracy:         "±1kg to ±20kg (based on capacity)",
			WeighingRange:    "1kg to 100 tons",
			MaxLoadTolerance: "110% of max capacity",
			Material:         "Heavy MS construction with SS load cells",
			Dimensions:       domain.Dimensions{Height: "400 mm", Width: "3000 mm", Length: "9000 mm"},
		},
		Images: domain.ProductImages{
			Main: "/images/products/heavy-duty-industrial/main.jpg",
			Gallery: []string{
				"/images/products/heavy-duty-industrial/weighbridge.jpg",
				"/images/products/heavy-duty-industrial/display.jpg",
			},
		},
		Applications: []string{"Weighbridges", "Steel yards", "Foundries", "Mining", "Ports"},
	},
	{
		ID:               "6",
		Slug:             "load-cells-components",
		Title:            "Load Cells & Components",
		Category:         "Components & Custom Solutions",
		ShortDescription: "Precision load cells and industrial components for custom weighing system fabrication",
		FullDescription:  "We supply precision load cells, indicators, and junction boxes for fabricators building custom weighing systems. All cells are temperature compensated and available in multiple accuracy classes.",
		Features: []string{
			"Single point, shear beam, and compression cells",
			"C3 to C6 accuracy classes",
			"Temperature compensated",
			"Weighing indicators and junction boxes",
			"Custom fabrication support",
		},
		Specifications: domain.Specifications{
			MaxCapacity:      "0.5 kg to 100 tons (various models)",
			MinWeight:        "Depends on load cell type",
			Accuracy:         "C3 to C6 accuracy class",
			WeighingRange:    "Application specific",
			MaxLoadTolerance: "150% of rated capacity",
			Material:         "Stainless steel (SS304/SS316) or nickel-plated alloy steel",
			Dimensions:       domain.Dimensions{Height: "Varies", Width: "Varies", Length: "Varies"},
		},
		Images: domain.ProductImages{
			Main: "/images/products/load-cells-components/main.jpg",
			Gallery: []string{
				"/images/products/load-cells-components/cells.jpg",
				"/images/products/load-cells-components/indicator.jpg",
			},
		},
		Applications: []string{"System fabricators", "OEMs", "Repair workshops", "Custom projects"},
	},
}
