package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a money amount. A decimal comma is accepted alongside
// the decimal point ("12,50" and "12.50" are equal).
func ParseAmount(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("amount is required")
	}
	if strings.Count(input, ",") == 1 && !strings.Contains(input, ".") {
		input = strings.Replace(input, ",", ".", 1)
	}

	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	return amount, nil
}

// ParseCalories parses a non-negative calorie count.
func ParseCalories(input string) (int, error) {
	input = strings.TrimSpace(input)
	calories, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid calorie count %q", input)
	}
	if calories < 0 {
		return 0, fmt.Errorf("calorie count must not be negative")
	}
	return calories, nil
}
