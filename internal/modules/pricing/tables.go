// README: Static pricing tables for ground transportation.
package pricing

// Per-mile vehicle operating rates in dollars, averaged from the AAA 2024
// "Your Driving Costs" cents-per-mile figures: sedans for car, the SUV
// group for minivan/suv, and the pickup group for truck/van.
var vehicleRates = map[VehicleClass]VehicleRate{
	ClassCar:     {FuelPerMile: 0.1183, MaintenancePerMile: 0.1022},
	ClassMinivan: {FuelPerMile: 0.1418, MaintenancePerMile: 0.1068},
	ClassSUV:     {FuelPerMile: 0.1418, MaintenancePerMile: 0.1068},
	ClassTruck:   {FuelPerMile: 0.2049, MaintenancePerMile: 0.1038},
	ClassVan:     {FuelPerMile: 0.2049, MaintenancePerMile: 0.1038},
}

// vehicleClassOrder fixes the presentation order of rental options. The
// "car" class comes first and doubles as the unselected default.
var vehicleClassOrder = [5]VehicleClass{ClassCar, ClassMinivan, ClassSUV, ClassTruck, ClassVan}

// Bus/train dollars-per-mile by distance bucket. Longer routes get cheaper
// per-mile rates (economies of scale on long-haul coach).
//
// Bucket 0: [0, 500) miles, bucket 1: [500, 1000), bucket 2: [1000, inf).
var busRateByBucket = [3]float64{0.2794, 0.2413, 0.1905}

// busBucket maps a trip distance to its rate bucket.
func busBucket(miles float64) int {
	b := int(miles / 500)
	if b > 2 {
		b = 2
	}
	if b < 0 {
		b = 0
	}
	return b
}

// Flat fallbacks: fixed dollar constants substituted when distance-based or
// table-based computation cannot proceed. They are "no distance signal
// available" defaults, never real-time prices.
const (
	fallbackOwnCar       = 300
	fallbackRentalCar    = 600
	fallbackMovingTruck  = 600
	fallbackTrainBus     = 150
	fallbackPlane        = 450
	fallbackArrangements = 250
)
