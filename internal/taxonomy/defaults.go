package taxonomy

import "fjacquet/chat-txn/internal/models"

var defaultCategories = []Category{
	{
		Name: models.CategoryFood,
		Keywords: []string{"food", "restaurant", "grocery", "groceries", "meal", "lunch", "dinner", "breakfast",
			"snack", "ate", "eat", "pizza", "burger", "rice", "chicken", "vegetable", "fruit", "apple", "banana",
			"coffee", "tea", "cake", "bread", "milk", "fish", "meat", "cooking", "kitchen", "recipe", "dish",
			"cuisine", "menu", "cafe", "bistro", "dine", "feed"},
		Verbs: []string{"ate", "eat", "dine", "feed", "cook", "order"},
	},
	{
		Name: models.CategoryTransport,
		Keywords: []string{"transport", "uber", "taxi", "bus", "train", "rickshaw", "fuel", "petrol", "gas",
			"parking", "toll", "ride", "car", "bike", "motorcycle", "aviation", "flight", "airline", "metro",
			"subway", "ferry", "boat", "ship"},
		Verbs: []string{"drive", "ride", "travel", "commute", "fly"},
	},
	{
		Name: models.CategoryEntertainment,
		Keywords: []string{"movie", "cinema", "game", "gaming", "concert", "show", "netflix", "spotify",
			"entertainment", "fun", "party", "music", "tv", "theater", "sports", "club", "bar", "pub", "disco",
			"festival", "event"},
		Verbs: []string{"watch", "play", "enjoy", "attend", "celebrate"},
	},
	{
		Name: models.CategoryShopping,
		Keywords: []string{"shopping", "clothes", "shirt", "shoes", "dress", "mall", "online", "amazon",
			"flipkart", "fashion", "buy", "bought", "store", "shop", "market", "purchase", "retail", "brand",
			"item", "product"},
		Verbs: []string{"buy", "bought", "purchase", "shop", "order"},
	},
	{
		Name: models.CategoryBills,
		Keywords: []string{"bill", "electricity", "water", "internet", "wifi", "phone", "mobile", "rent",
			"utility", "subscription", "insurance", "loan", "mortgage", "tax", "fine", "penalty", "fee", "charge"},
		Verbs: []string{"pay", "paid", "owe", "charge"},
	},
	{
		Name: models.CategoryHealth,
		Keywords: []string{"doctor", "medicine", "hospital", "pharmacy", "medical", "health", "clinic",
			"checkup", "treatment", "surgery", "therapy", "dentist", "nurse", "patient", "diagnosis",
			"prescription"},
		Verbs: []string{"visit", "consult", "treat", "heal", "cure"},
	},
	{
		Name: models.CategoryEducation,
		Keywords: []string{"book", "course", "class", "tuition", "school", "college", "university",
			"education", "study", "learning", "lesson", "teacher", "student", "exam", "degree", "certification"},
		Verbs: []string{"study", "learn", "teach", "enroll", "graduate"},
	},
	{
		Name: models.CategorySalary,
		Keywords: []string{"salary", "wage", "paycheck", "income", "payment", "bonus", "overtime",
			"commission", "allowance", "stipend"},
		Verbs: []string{"earned", "receive", "got", "paid"},
	},
	{
		Name: models.CategoryFreelance,
		Keywords: []string{"freelance", "project", "client", "gig", "contract", "consulting", "service",
			"work", "job", "task", "assignment"},
		Verbs: []string{"work", "complete", "deliver", "provide"},
	},
	{
		Name: models.CategoryInvestment,
		Keywords: []string{"investment", "stock", "share", "mutual", "fund", "bond", "dividend", "profit",
			"capital", "trading", "portfolio"},
		Verbs: []string{"invest", "trade", "buy", "sell"},
	},
}

var builtin = mustNew(defaultCategories)

func mustNew(categories []Category) *Taxonomy {
	t, err := New(categories)
	if err != nil {
		panic("taxonomy: invalid built-in table: " + err.Error())
	}
	return t
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return builtin
}
