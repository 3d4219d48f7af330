package domain

// Category groups units that can be converted into each other.
type Category string

const (
	// CategoryTemperature groups the absolute and relative temperature scales.
	CategoryTemperature Category = "temperature"
	// CategoryVolume groups the metric and imperial volume units.
	CategoryVolume Category = "volume"
)

// Unit is a named measurement scale. Unit names are case-sensitive.
type Unit string

// Temperature units.
const (
	Kelvin     Unit = "Kelvin"
	Celsius    Unit = "Celsius"
	Fahrenheit Unit = "Fahrenheit"
	Rankine    Unit = "Rankine"
)

// Volume units.
const (
	Liters      Unit = "liters"
	Tablespoons Unit = "tablespoons"
	CubicInches Unit = "cubic-inches"
	Cups        Unit = "cups"
	CubicFeet   Unit = "cubic-feet"
	Gallons     Unit = "gallons"
)
