package models

// SeedMenu returns the initial catalog loaded at startup. The store
// keeps no durable copy; a restart always begins from this list.
func SeedMenu() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Grilled Salmon", Category: CategorySeafood, Price: 1800, Rating: 4.5},
		{ID: 2, Name: "Beef Steak", Category: CategoryMainCourse, Price: 2200, Rating: 4.8},
		{ID: 3, Name: "Caesar Salad", Category: CategorySalad, Price: 850, Rating: 4.1},
		{ID: 4, Name: "Cabernet Sauvignon", Category: CategoryWine, Price: 3200, Rating: 4.9},
		{ID: 5, Name: "Chardonnay", Category: CategoryWine, Price: 2800, Rating: 4.7},
		{ID: 6, Name: "Prawn Pasta", Category: CategorySeafood, Price: 1950, Rating: 4.6},
		{ID: 7, Name: "Margarita Pizza", Category: CategoryMainCourse, Price: 1400, Rating: 4.3},
		{ID: 8, Name: "Greek Salad", Category: CategorySalad, Price: 950, Rating: 4.2},
	}
}

// SeedWines returns the wine collection shown on the wines page.
func SeedWines() []Wine {
	return []Wine{
		{ID: 1, Name: "Cabernet Sauvignon Reserve", Type: "Red", Year: 2018, Price: 85},
		{ID: 2, Name: "Chardonnay Estate", Type: "White", Year: 2020, Price: 55},
		{ID: 3, Name: "Pinot Noir", Type: "Red", Year: 2019, Price: 70},
		{ID: 4, Name: "Sauvignon Blanc", Type: "White", Year: 2021, Price: 45},
		{ID: 5, Name: "Merlot Classic", Type: "Red", Year: 2017, Price: 60},
		{ID: 6, Name: "Prosecco Brut", Type: "Sparkling", Year: 2022, Price: 40},
		{ID: 7, Name: "Rose d'Ete", Type: "Rose", Year: 2021, Price: 38},
	}
}
