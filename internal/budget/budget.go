// Package budget tallies the day's costs: priced itinerary entries
// plus the fixed off-itinerary extras from the low-cost profile.
package budget

import "github.com/sgarcia/romaday/internal/models"

// Item is one line of the breakdown.
type Item struct {
	Title string
	Price float64
	// Extra marks fixed costs that are not itinerary activities.
	Extra bool
}

// Extras are planned expenses with no time slot of their own.
func Extras() []Item {
	return []Item{
		{Title: "Desayuno (máx)", Price: 5, Extra: true},
		{Title: "Gelato (máx)", Price: 5, Extra: true},
		{Title: "Baños públicos", Price: 2, Extra: true},
	}
}

// Breakdown lists priced activities in itinerary order, then the
// fixed extras.
func Breakdown(activities []models.Activity) []Item {
	var items []Item
	for _, act := range activities {
		if act.PriceEUR > 0 {
			items = append(items, Item{Title: act.Title, Price: act.PriceEUR})
		}
	}
	return append(items, Extras()...)
}

// Total sums activities and extras.
func Total(activities []models.Activity) float64 {
	var total float64
	for _, item := range Breakdown(activities) {
		total += item.Price
	}
	return total
}
