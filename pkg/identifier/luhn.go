package identifier

import (
	"errors"
)

var ErrInvalidIMEIBody = errors.New("imei body must be 14 digits")

// Luhn checks the trailing check digit of an ASCII digit string of any
// length from two up.
func Luhn(digits string) bool {
	if len(digits) < 2 || !isDigits(digits) {
		return false
	}

	last := len(digits) - 1
	check := int(digits[last] - '0')

	return (luhnSum(digits[:last])+check)%10 == 0
}

// CheckDigit returns the digit that completes a 14 digit IMEI body.
func CheckDigit(body string) (byte, error) {
	if len(body) != IMEILength-1 || !isDigits(body) {
		return 0, ErrInvalidIMEIBody
	}

	return byte('0' + (10-luhnSum(body)%10)%10), nil
}

// luhnSum doubles every second digit moving left, starting with the
// rightmost digit of body.
func luhnSum(body string) int {
	sum := 0
	double := true

	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')

		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum
}
