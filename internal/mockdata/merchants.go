package mockdata

// Merchant pools keyed by category id. Categories without a pool fall back
// to the "other" list.
var merchantsByCategory = map[string][]string{
	"food-dining": {
		"Tim Hortons", "Starbucks", "McDonalds", "Subway", "Pizza Pizza",
		"Loblaws", "Metro", "Sobeys", "Farm Boy", "Swiss Chalet",
		"The Keg", "Boston Pizza", "Earls", "Jack Astors", "Moxies",
	},
	"transportation": {
		"Shell", "Esso", "Petro-Canada", "Costco Gas", "GO Transit",
		"TTC", "Uber", "Lyft", "Green P Parking", "Impark",
	},
	"shopping": {
		"Amazon.ca", "Walmart", "Canadian Tire", "Best Buy", "The Bay",
		"Winners", "Costco", "IKEA", "Home Depot", "Indigo",
	},
	"entertainment": {
		"Netflix", "Spotify", "Cineplex", "Steam", "PlayStation Store",
		"Apple App Store", "YouTube Premium", "Disney+", "Amazon Prime Video",
	},
	"health-fitness": {
		"Shoppers Drug Mart", "Rexall", "GoodLife Fitness", "Fit4Less",
		"Walk-in Clinic", "Dental Office", "Physiotherapy Clinic",
	},
	"home-garden": {
		"Hydro One", "Enbridge Gas", "Rogers", "Bell", "Home Depot",
		"Rona", "Canadian Tire", "Walmart", "Leon's",
	},
	"education": {
		"University of Toronto", "Chapters Indigo", "Amazon.ca Books",
		"Coursera", "Udemy", "LinkedIn Learning",
	},
	"travel": {
		"Air Canada", "WestJet", "Expedia.ca", "Booking.com", "Hilton",
		"Marriott", "Holiday Inn", "Budget Car Rental",
	},
	"insurance": {
		"Intact Insurance", "Aviva", "TD Insurance", "RBC Insurance",
		"State Farm", "Allstate",
	},
	"personal-care": {
		"Great Clips", "Chatters", "Sephora", "Bath & Body Works",
		"The Body Shop", "Salon", "Spa",
	},
	"gifts-donations": {
		"Toys R Us", "Amazon.ca", "The Bay", "United Way",
		"Canadian Red Cross", "Local Food Bank",
	},
	"business": {
		"Staples", "Best Buy Business", "Office Depot", "Amazon Business",
		"FedEx", "UPS", "Canada Post",
	},
	"taxes": {
		"Canada Revenue Agency", "H&R Block", "TurboTax", "Local Accountant",
	},
	"other": {
		"Miscellaneous", "Cash Withdrawal", "ATM Fee", "Bank Fee",
	},
}

var sampleDescriptions = []string{
	"Coffee and pastry",
	"Groceries for the week",
	"Gas fill-up",
	"Monthly subscription",
	"Lunch with colleagues",
	"Online shopping",
	"Dinner out",
	"Movie tickets",
	"Parking downtown",
	"Public transit",
	"Pharmacy items",
	"Home supplies",
	"Book purchase",
	"Gift for friend",
	"Utility bill payment",
	"Insurance premium",
	"Car maintenance",
	"Clothing purchase",
	"Electronics",
	"Personal care items",
}

var sampleTags = []string{
	"recurring", "work-related", "family", "emergency", "planned",
	"impulse", "necessary", "luxury", "health", "education",
	"business", "personal", "gift", "travel", "home",
}
