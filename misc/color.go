package misc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidHexColor = errors.New("invalid hex color")

// ToFullHexColor expands a 3-digit color such as "#abc" to "#aabbcc".
func ToFullHexColor(color string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, c := range strings.TrimPrefix(color, "#") {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

func CelsiusToFahrenheit(celsius float64) float64 { return celsius*9/5 + 32 }

func FahrenheitToCelsius(fahrenheit float64) float64 { return (fahrenheit - 32) * 5 / 9 }

func CelsiusToKelvin(celsius float64) float64 { return celsius + 273.15 }

func FahrenheitToKelvin(fahrenheit float64) float64 { return FahrenheitToCelsius(fahrenheit) + 273.15 }

func KelvinToCelsius(kelvin float64) float64 { return kelvin - 273.15 }

func KelvinToFahrenheit(kelvin float64) float64 { return kelvin*9/5 - 459.67 }

func RGBToHex(red, green, blue uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", red, green, blue)
}

// HexToRGB parses "#rgb" or "#rrggbb", with or without the leading '#'.
func HexToRGB(hex string) (r, g, b uint8, err error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = strings.TrimPrefix(ToFullHexColor(digits), "#")
	}
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexColor, hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexColor, hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
