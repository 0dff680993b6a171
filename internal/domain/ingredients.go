package domain

// CommonIngredients backs the front end's ingredient picker. Grouped loosely
// by aisle; order here is not meaningful, the API serves a sorted copy.
var CommonIngredients = []string{
	// Proteins
	"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp", "turkey", "lamb", "tofu",
	"eggs", "beans", "lentils", "chickpeas", "quinoa", "nuts", "almonds", "peanuts",

	// Vegetables
	"tomatoes", "onions", "garlic", "carrots", "potatoes", "broccoli", "spinach", "lettuce",
	"bell peppers", "mushrooms", "zucchini", "cucumber", "celery", "corn", "peas", "cabbage",
	"cauliflower", "eggplant", "asparagus", "green beans", "sweet potatoes", "avocado",

	// Fruits
	"apples", "bananas", "oranges", "lemons", "limes", "strawberries", "blueberries",
	"grapes", "pineapple", "mango", "papaya", "kiwi", "peaches", "pears", "cherries",

	// Grains & Carbs
	"rice", "pasta", "bread", "oats", "barley", "wheat", "noodles", "couscous", "bulgur",
	"flour", "cornmeal", "crackers", "cereal",

	// Dairy & Alternatives
	"milk", "cheese", "yogurt", "butter", "cream", "sour cream", "cottage cheese",
	"mozzarella", "parmesan", "cheddar", "goat cheese", "coconut milk", "almond milk",

	// Herbs & Spices
	"basil", "oregano", "thyme", "rosemary", "parsley", "cilantro", "mint", "dill",
	"paprika", "cumin", "turmeric", "ginger", "black pepper", "salt", "cinnamon", "vanilla",

	// Oils & Condiments
	"olive oil", "vegetable oil", "coconut oil", "vinegar", "soy sauce", "honey", "maple syrup",
	"mustard", "ketchup", "mayonnaise", "hot sauce", "lemon juice",
}
