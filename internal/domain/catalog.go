package domain

// Product describes one loaf flavor for the marketing page.
type Product struct {
	ID          string
	Name        string
	Calories    int
	Allergens   []string
	Image       string
	AccentColor string
	StripeColor string
}

var Products = []Product{
	{
		ID:          "classic",
		Name:        "Classic Chocolate Chip",
		Calories:    290,
		Allergens:   []string{"Milk", "Eggs", "Wheat", "Soy"},
		Image:       "/images/classic-chocolate-chip.png",
		AccentColor: "#F0C75E",
		StripeColor: "#F0C75E",
	},
	{
		ID:          "blueberry",
		Name:        "Blueberry Chocolate Chip",
		Calories:    320,
		Allergens:   []string{"Milk", "Eggs", "Wheat", "Soy"},
		Image:       "/images/blueberry-chocolate-chip.png",
		AccentColor: "#B8A0CC",
		StripeColor: "#3B4D7A",
	},
	{
		ID:          "walnut",
		Name:        "Walnut Chocolate Chip",
		Calories:    340,
		Allergens:   []string{"Milk", "Eggs", "Wheat", "Soy", "Tree Nuts"},
		Image:       "/images/walnut-chocolate-chip.png",
		AccentColor: "#9CB5A0",
		StripeColor: "#9CB5A0",
	},
}

// Contact details rendered in the page footer and error panels.
const (
	ContactEmail     = "zach@brekkiebakery.com"
	ContactAddress   = "Brekkie LLC, 1580 Park Ave, New York, NY 10029"
	ContactInstagram = "https://instagram.com/brekkiebakery"
)
