package pricing

// Minimum Support Price per crop in Rs./quintal. Government-published floor
// prices; used as the default minimum bid threshold when a farmer does not
// state one.
var mspPrices = map[string]float64{
	"wheat": 2275,
	"rice":  2203,
	"maize": 2090,
}

// Historical market prices per district and crop.
var historicalPrices = map[string]map[string][]float64{
	"mumbai": {
		"wheat": {2300, 2350, 2400},
		"rice":  {2500, 2550, 2600},
	},
	"delhi": {
		"wheat": {2250, 2300, 2320},
		"rice":  {2450, 2480, 2510},
	},
}

// MSP returns the minimum support price for a crop, or false when the crop
// is not in the reference table.
func MSP(cropType string) (float64, bool) {
	price, ok := mspPrices[cropType]
	return price, ok
}

// Historical returns the recorded price series for a crop in a district, or
// false when no data exists for the pair.
func Historical(cropType, district string) ([]float64, bool) {
	byCrop, ok := historicalPrices[district]
	if !ok {
		return nil, false
	}
	prices, ok := byCrop[cropType]
	return prices, ok
}
