// Package menu содержит статические данные меню ресторана The Common House.
package menu

import "github.com/mmeshcher/restaurant-system/internal/model"

var starters = []model.MenuItem{
	{Name: "Truffle Fries", Description: "Parmesan, rosemary, truffle oil", Price: 12.00},
	{Name: "Spicy Tuna Tartare", Description: "Ahi tuna, avocado, sesame-soy dressing", Price: 16.00},
	{Name: "Crispy Brussels", Description: "Balsamic glaze, chili flakes, lemon zest", Price: 11.00},
	{Name: "Burrata & Tomato", Description: "Heirloom tomato, basil oil, sea salt", Price: 14.00},
	{Name: "Smoked Chicken Flatbread", Description: "Arugula, goat cheese, roasted red pepper", Price: 13.00},
}

var mains = []model.MenuItem{
	{Name: "Seared Salmon Bowl", Description: "Brown rice, avocado, miso vinaigrette", Price: 24.00},
	{Name: "Short Rib Pappardelle", Description: "Red wine braise, parmesan, gremolata", Price: 26.00},
	{Name: "Buttermilk Fried Chicken Sandwich", Description: "Pickles, garlic aioli, brioche bun", Price: 18.00},
	{Name: "Miso Glazed Cod", Description: "Snap peas, jasmine rice, sesame", Price: 28.00},
	{Name: "Steak Frites", Description: "8 oz sirloin, chimichurri, hand-cut fries", Price: 32.00},
	{Name: "House Smash Burger", Description: "Double patty, cheddar, caramelized onion", Price: 16.00},
	{Name: "Roasted Mushroom Risotto", Description: "Truffle oil, parmesan, thyme", Price: 22.00},
	{Name: "Grilled Chicken Cobb", Description: "Bacon, egg, blue cheese, avocado ranch", Price: 19.00},
	{Name: "Lobster Mac & Cheese", Description: "Cavatappi, gruyère, breadcrumbs", Price: 29.00},
	{Name: "Spaghetti Pomodoro", Description: "San Marzano tomato, basil, pecorino", Price: 17.00},
}

var desserts = []model.MenuItem{
	{Name: "Warm Chocolate Torte", Description: "Sea salt, vanilla cream", Price: 9.00},
	{Name: "Olive Oil Cake", Description: "Lemon glaze, whipped mascarpone", Price: 8.00},
	{Name: "Salted Caramel Pudding", Description: "Toasted pecans, chantilly", Price: 7.00},
}

var drinks = []model.MenuItem{
	{Name: "Old Fashioned", Description: "Bourbon, bitters, sugar, orange peel", Price: 12.00},
	{Name: "Espresso Martini", Description: "Vodka, espresso, coffee liqueur", Price: 14.00},
	{Name: "Negroni", Description: "Gin, Campari, sweet vermouth", Price: 13.00},
	{Name: "Margarita", Description: "Tequila, lime, orange liqueur", Price: 11.00},
	{Name: "Whiskey Sour", Description: "Bourbon, lemon, egg white", Price: 12.00},
}

// Category связывает название категории меню с её позициями.
type Category struct {
	Name  string
	Items []model.MenuItem
}

// Categories возвращает категории меню в порядке обхода каталога.
// Порядок фиксирован: starters, mains, desserts, drinks.
func Categories() []Category {
	return []Category{
		{Name: "starters", Items: starters},
		{Name: "mains", Items: mains},
		{Name: "desserts", Items: desserts},
		{Name: "drinks", Items: drinks},
	}
}

// Catalog возвращает полное меню с указанным названием ресторана.
func Catalog(restaurantName string) model.Menu {
	return model.Menu{
		RestaurantName: restaurantName,
		Starters:       starters,
		Mains:          mains,
		Desserts:       desserts,
		Drinks:         drinks,
	}
}
