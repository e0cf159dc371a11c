package utils

// MaskCardNumber keeps only the last four digits of a card number.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** **** **** " + number[len(number)-4:]
}
