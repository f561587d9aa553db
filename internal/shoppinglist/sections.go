package shoppinglist

import "strings"

// DefaultSection is the catch-all for ingredients no trigger matches.
const DefaultSection = "Other"

// sectionRule maps a section name to its trigger substrings. Rules are
// evaluated in order and the first match wins, so ambiguous ingredients
// ("eggplant" vs "egg") break ties predictably.
type sectionRule struct {
	name     string
	triggers []string
}

var sectionRules = []sectionRule{
	{
		name: "Produce",
		triggers: []string{
			"apple", "avocado", "banana", "basil", "bell pepper", "berr",
			"broccoli", "cabbage", "carrot", "cauliflower", "celery",
			"chili", "cilantro", "corn", "cucumber", "dill", "eggplant",
			"garlic", "ginger", "grape", "green bean", "herb", "jalapeno",
			"kale", "leek", "lemon", "lettuce", "lime", "mango", "mint",
			"mushroom", "onion", "orange", "parsley", "peach", "pear",
			"pepper", "potato", "pumpkin", "radish", "rosemary", "salad",
			"scallion", "shallot", "spinach", "squash", "thyme", "tomato",
			"zucchini",
		},
	},
	{
		name: "Meat & Seafood",
		triggers: []string{
			"anchov", "bacon", "beef", "chicken", "chorizo", "cod", "crab",
			"duck", "fish", "ham", "lamb", "meat", "mussel", "pork",
			"prawn", "prosciutto", "salami", "salmon", "sardine", "sausage",
			"shrimp", "steak", "tuna", "turkey", "veal",
		},
	},
	{
		name: "Dairy & Eggs",
		triggers: []string{
			"butter", "buttermilk", "cheddar", "cheese", "cream", "creme",
			"egg", "feta", "ghee", "gouda", "margarine", "mascarpone",
			"milk", "mozzarella", "parmesan", "ricotta", "yogurt", "yoghurt",
		},
	},
	{
		name: "Bakery",
		triggers: []string{
			"bagel", "baguette", "bread", "breadcrumb", "brioche", "bun",
			"ciabatta", "croissant", "crouton", "naan", "pita", "roll",
			"tortilla", "wrap",
		},
	},
	{
		name: "Frozen",
		triggers: []string{
			"frozen", "ice cream", "popsicle", "sorbet",
		},
	},
	{
		name: "Baking & Spices",
		triggers: []string{
			"baking powder", "baking soda", "cardamom", "chili powder",
			"cinnamon", "cocoa", "coriander", "cumin", "curry", "extract",
			"flour", "nutmeg", "oregano", "paprika", "salt", "sugar",
			"turmeric", "vanilla", "yeast",
		},
	},
	{
		name: "Pantry",
		triggers: []string{
			"almond", "barley", "bean", "broth", "cashew", "cereal",
			"chickpea", "chocolate", "couscous", "honey", "jam", "ketchup",
			"lentil", "maple syrup", "mayonnaise", "mustard", "noodle",
			"nut", "oat", "oil", "olive", "pasta", "peanut", "quinoa",
			"raisin", "rice", "sauce", "seed", "spaghetti", "stock",
			"syrup", "tahini", "vinegar", "walnut",
		},
	},
	{
		name: "Beverages",
		triggers: []string{
			"beer", "coffee", "juice", "soda", "sparkling water", "tea",
			"wine",
		},
	},
}

// Classify maps a normalized ingredient string to its supermarket section.
// It is total: anything unrecognized lands in DefaultSection.
func Classify(normalized string) string {
	for _, rule := range sectionRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(normalized, trigger) {
				return rule.name
			}
		}
	}
	return DefaultSection
}
