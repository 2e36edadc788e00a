package content

var menu = map[Category][]MenuItem{
	CategoryRamen: {
		{
			Name:        "Tonkotsu Hana",
			Price:       "$24",
			Description: "48-hour pork bone broth, chashu, soft egg, nori, bamboo shoots. Our signature.",
		},
		{
			Name:        "Spicy Miso",
			Price:       "$23",
			Description: "House red miso, chilli oil, minced pork, corn, spring onion. Warming.",
		},
		{
			Name:        "Shoyu Tori",
			Price:       "$22",
			Description: "Chicken soy broth, roast chicken, leek oil, menma. Light yet deeply complex.",
		},
		{
			Name:        "Vegetable Shio",
			Price:       "$21",
			Description: "Kombu and vegetable broth, roasted mushrooms, yuzu, crispy shallots. Vegan.",
		},
		{
			Name:        "Black Garlic Tonkotsu",
			Price:       "$26",
			Description: "Dark, rich, smoky. Pork broth with mayu, sous vide pork belly, pickled ginger.",
		},
		{
			Name:        "Mazemen (no soup)",
			Price:       "$22",
			Description: "Dry tossed noodles, tare sauce, chashu, egg yolk, spring onion.",
		},
	},
	CategorySmallPlates: {
		{Name: "Gyoza (6pc)", Price: "$14", Description: "Pan-fried pork & cabbage, ponzu dipping sauce"},
		{Name: "Karaage Chicken", Price: "$16", Description: "Japanese fried chicken, Kewpie mayo, lemon"},
		{Name: "Takoyaki (4pc)", Price: "$13", Description: "Octopus balls, bonito flakes, okonomiyaki sauce, mayo"},
		{Name: "Edamame", Price: "$8", Description: "Sea salt, toasted sesame"},
	},
	CategoryDrinks: {
		{Name: "Japanese Sapporo Draft", Price: "$12"},
		{Name: "Yuzu Lemonade", Price: "$8", Description: "House-made, sparkling"},
		{Name: "Matcha Latte (hot/iced)", Price: "$7"},
		{Name: "Ramune Soda", Price: "$5", Description: "Original / Melon / Strawberry"},
	},
}

// Menu returns the items for c in menu order, or nil for an unknown category.
func Menu(c Category) []MenuItem {
	items, ok := menu[c]
	if !ok {
		return nil
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

// Section is one category with its items.
type Section struct {
	Category Category   `json:"category"`
	Label    string     `json:"label"`
	Items    []MenuItem `json:"items"`
}

// FullMenu returns every category with its items, in tab order.
func FullMenu() []Section {
	sections := make([]Section, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		sections = append(sections, Section{Category: c, Label: c.Label(), Items: Menu(c)})
	}
	return sections
}
