package utils

// AbsDiff returns the absolute difference of two integers
func AbsDiff(number1 int, number2 int) int {
	if number1 > number2 {
		return number1 - number2
	}
	return number2 - number1
}

// WithinTolerance returns wether two numbers are up to a maximum tolerance away from each other
func WithinTolerance(number1 int, number2 int, tolerance int) bool {
	return AbsDiff(number1, number2) <= tolerance
}
