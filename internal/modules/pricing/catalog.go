// README: Vehicle catalog and per-class offers.
package pricing

var catalog = []VehicleClass{
	{
		ID:              "economy",
		DisplayName:     "Economy",
		MinPassengers:   1,
		MaxPassengers:   3,
		PriceMultiplier: 1.0,
		Features:        []string{"Aria condizionata", "WiFi gratuito"},
	},
	{
		ID:              "comfort",
		DisplayName:     "Comfort",
		MinPassengers:   1,
		MaxPassengers:   4,
		PriceMultiplier: 1.3,
		Features:        []string{"Sedili in pelle", "Acqua gratuita", "WiFi gratuito"},
	},
	{
		ID:              "business",
		DisplayName:     "Business",
		MinPassengers:   1,
		MaxPassengers:   3,
		PriceMultiplier: 1.8,
		Features:        []string{"Veicolo di lusso", "Giornali", "Bevande", "WiFi Premium"},
	},
	{
		ID:              "van",
		DisplayName:     "Van",
		MinPassengers:   5,
		MaxPassengers:   8,
		PriceMultiplier: 2.2,
		Features:        []string{"Spazio bagagli XL", "Sedili reclinabili", "WiFi gratuito"},
	},
}

// Catalog returns a copy of the vehicle classes in display order.
func Catalog() []VehicleClass {
	out := make([]VehicleClass, len(catalog))
	copy(out, catalog)
	return out
}

// VehicleClassByID looks up a class by id.
func VehicleClassByID(id string) (VehicleClass, bool) {
	for _, vc := range catalog {
		if vc.ID == id {
			return vc, true
		}
	}
	return VehicleClass{}, false
}

// EligibleOffers prices every class that can carry the passengers, in catalog order.
// An empty (non-nil) slice means no class fits.
func EligibleOffers(basePrice, passengers int) []VehicleOffer {
	offers := make([]VehicleOffer, 0, len(catalog))
	for _, vc := range catalog {
		if !vc.Accepts(passengers) {
			continue
		}
		offers = append(offers, VehicleOffer{
			VehicleClassID: vc.ID,
			Price:          roundHalfUp(float64(basePrice) * vc.PriceMultiplier),
			Eligible:       true,
		})
	}
	return offers
}
