package geo

type Airport struct {
	Code     string
	Name     string
	Lat, Lon float64
}

// Airports is the reference table for nearest-airport search. Order matters:
// on exact distance ties the earlier entry wins.
var Airports = []Airport{
	// Texas
	{"IAH", "Houston (IAH)", 29.9844, -95.3414},
	{"HOU", "Houston Hobby", 29.6454, -95.2789},
	{"AUS", "Austin", 30.1975, -97.6664},
	{"DFW", "Dallas/Fort Worth", 32.8998, -97.0403},
	{"SAT", "San Antonio", 29.5337, -98.4698},
	{"ELP", "El Paso", 31.8072, -106.3777},

	// US east coast
	{"JFK", "New York JFK", 40.6413, -73.7781},
	{"EWR", "Newark", 40.6895, -74.1745},
	{"LGA", "New York LaGuardia", 40.7769, -73.8740},
	{"BOS", "Boston", 42.3656, -71.0096},
	{"PHL", "Philadelphia", 39.8729, -75.2437},
	{"DCA", "Washington DC (Reagan)", 38.8521, -77.0377},
	{"IAD", "Washington Dulles", 38.9531, -77.4565},
	{"BWI", "Baltimore", 39.1774, -76.6684},
	{"CLT", "Charlotte", 35.2144, -80.9473},
	{"ATL", "Atlanta", 33.6407, -84.4277},
	{"RDU", "Raleigh-Durham", 35.8776, -78.7875},

	// US midwest
	{"ORD", "Chicago O'Hare", 41.9742, -87.9073},
	{"MDW", "Chicago Midway", 41.7868, -87.7522},
	{"DTW", "Detroit", 42.2162, -83.3554},
	{"MSP", "Minneapolis", 44.8820, -93.2218},
	{"STL", "St. Louis", 38.7487, -90.3700},
	{"CLE", "Cleveland", 41.4117, -81.8498},
	{"CVG", "Cincinnati", 39.0469, -84.6678},
	{"IND", "Indianapolis", 39.7173, -86.2944},
	{"MCI", "Kansas City", 39.2976, -94.7139},

	// US west coast
	{"LAX", "Los Angeles", 33.9416, -118.4085},
	{"SFO", "San Francisco", 37.6213, -122.3790},
	{"SJC", "San Jose", 37.3639, -121.9289},
	{"SEA", "Seattle", 47.4502, -122.3088},
	{"PDX", "Portland", 45.5887, -122.5975},
	{"SAN", "San Diego", 32.7338, -117.1933},
	{"SNA", "Orange County", 33.6762, -117.8681},
	{"SMF", "Sacramento", 38.6954, -121.5901},

	// Mountain states
	{"DEN", "Denver", 39.8561, -104.6737},
	{"SLC", "Salt Lake City", 40.7899, -111.9791},
	{"PHX", "Phoenix", 33.4352, -112.0101},
	{"TUS", "Tucson", 32.1161, -110.9410},
	{"ABQ", "Albuquerque", 35.0402, -106.6090},
	{"BOI", "Boise", 43.5644, -116.2228},

	// South & southeast
	{"MIA", "Miami", 25.7959, -80.2870},
	{"FLL", "Fort Lauderdale", 26.0742, -80.1506},
	{"MCO", "Orlando", 28.4294, -81.3089},
	{"TPA", "Tampa", 27.9755, -82.5332},
	{"RSW", "Fort Myers", 26.5362, -81.7552},
	{"JAX", "Jacksonville", 30.4941, -81.6879},
	{"PBI", "West Palm Beach", 26.6832, -80.0956},
	{"MSY", "New Orleans", 29.9934, -90.2580},
	{"BNA", "Nashville", 36.1263, -86.6774},
	{"MEM", "Memphis", 35.0424, -89.9767},

	// US leisure
	{"LAS", "Las Vegas", 36.0840, -115.1537},
	{"HNL", "Honolulu", 21.3187, -157.9225},
	{"OGG", "Maui", 20.8986, -156.4306},
	{"KOA", "Kona (Big Island)", 19.7388, -156.0456},
	{"LIH", "Kauai", 21.9760, -159.3390},
	{"ANC", "Anchorage", 61.1743, -149.9963},

	// Mexico, Caribbean coast
	{"CUN", "Cancun", 21.0365, -86.8771},
	{"CZM", "Cozumel", 20.5224, -86.9256},
	{"TUL", "Tulum (Playa del Carmen)", 20.2114, -87.4654},

	// Mexico, Pacific coast
	{"SJD", "Cabo San Lucas", 23.1518, -109.7207},
	{"PVR", "Puerto Vallarta", 20.6801, -105.2544},
	{"ZIH", "Ixtapa/Zihuatanejo", 17.6016, -101.4609},
	{"HUX", "Huatulco", 15.7753, -96.2626},
	{"MZT", "Mazatlan", 23.1614, -106.2664},
	{"PXM", "Puerto Escondido", 15.8769, -97.0891},

	// Mexico, inland
	{"GDL", "Guadalajara", 20.5218, -103.3119},
	{"MEX", "Mexico City", 19.4363, -99.0721},
	{"MTY", "Monterrey", 25.7785, -100.1069},

	// Caribbean islands
	{"MBJ", "Montego Bay, Jamaica", 18.5037, -77.9134},
	{"KIN", "Kingston, Jamaica", 17.9357, -76.7875},
	{"NAS", "Nassau, Bahamas", 25.0390, -77.4662},
	{"PUJ", "Punta Cana, Dominican Republic", 18.5674, -68.3634},
	{"SDQ", "Santo Domingo, Dominican Republic", 18.4297, -69.6689},
	{"SJU", "San Juan, Puerto Rico", 18.4394, -66.0018},
	{"STT", "St. Thomas, USVI", 18.3373, -64.9733},
	{"STX", "St. Croix, USVI", 17.7019, -64.7986},
	{"AUA", "Aruba", 12.5014, -70.0152},
	{"CUR", "Curacao", 12.1889, -68.9598},
	{"GND", "Grenada", 12.0042, -61.7862},
	{"BGI", "Barbados", 13.0746, -59.4925},

	// Central America
	{"LIR", "Liberia, Costa Rica", 10.5933, -85.5444},
	{"SJO", "San Jose, Costa Rica", 9.9939, -84.2088},
	{"PTY", "Panama City, Panama", 9.0714, -79.3834},
	{"BZE", "Belize City, Belize", 17.5391, -88.3081},
	{"RTB", "Roatan, Honduras", 16.3168, -86.5230},

	// South America
	{"BOG", "Bogota, Colombia", 4.7016, -74.1469},
	{"CTG", "Cartagena, Colombia", 10.4424, -75.5130},
	{"LIM", "Lima, Peru", -12.0219, -77.1143},
	{"CUZ", "Cusco, Peru", -13.5357, -71.9388},
	{"UIO", "Quito, Ecuador", -0.1292, -78.3575},
	{"GYE", "Guayaquil, Ecuador", -2.1574, -79.8839},

	// Canada
	{"YYC", "Calgary", 51.1315, -114.0108},
	{"YVR", "Vancouver", 49.1967, -123.1815},
	{"YYZ", "Toronto", 43.6777, -79.6248},
	{"YUL", "Montreal", 45.4657, -73.7455},
}
