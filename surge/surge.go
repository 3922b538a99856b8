// Package surge predicts the short-term increase in hospital case load from
// ambient temperature and crowd density, so hospitals can be warned before
// the wave arrives.
package surge

import "math"

// Coefficients of the fitted linear model: one degree Celsius adds 0.8
// expected cases, one person per square meter adds 1.5.
const (
	tempCoefficient    = 0.8
	densityCoefficient = 1.5
)

const (
	// SurgeAlertThreshold is the predicted increase at which the hospital
	// gets a proactive alert.
	SurgeAlertThreshold = 15

	moderateSurgeThreshold = 5
)

type RiskBand string

const (
	BandLow      RiskBand = "LOW"
	BandModerate RiskBand = "MODERATE"
	BandHigh     RiskBand = "HIGH"
)

// Predict returns the expected additional cases over the next few hours,
// rounded and never negative. crowdDensity is persons per square meter on
// the 0-10 scale.
func Predict(temperatureC, crowdDensity float64) int {
	predicted := temperatureC*tempCoefficient + crowdDensity*densityCoefficient
	if predicted < 0 {
		return 0
	}
	return int(math.Round(predicted))
}

// Band classifies a predicted surge.
func Band(surge int) RiskBand {
	switch {
	case surge >= SurgeAlertThreshold:
		return BandHigh
	case surge > moderateSurgeThreshold:
		return BandModerate
	default:
		return BandLow
	}
}
