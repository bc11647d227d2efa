// Package heatindex computes the heat index from a temperature and a relative humidity.
package heatindex

// Compute returns the heat index for the temperature t and the relative humidity rh (0 to 100).
//
// The polynomial is a regression calibrated for Fahrenheit temperatures. The station applies it to Celsius
// temperatures unchanged, so the result is an indicator rather than a physical temperature.
func Compute(t, rh float64) float64 {
	return 16.923 +
		0.185212*t +
		5.37941*rh -
		0.100254*t*rh +
		0.00941695*t*t +
		0.00728898*rh*rh +
		0.000345372*t*t*rh -
		0.000814971*t*rh*rh +
		0.0000102102*t*t*rh*rh -
		0.000038646*t*t*t +
		0.0000291583*rh*rh*rh +
		0.00000142721*t*t*t*rh +
		0.000000197483*t*rh*rh*rh -
		0.0000000218429*t*t*t*rh*rh +
		0.000000000843296*t*t*rh*rh*rh -
		0.0000000000481975*t*t*t*rh*rh*rh
}
