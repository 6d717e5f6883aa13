package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount formata um valor monetário com duas casas decimais e
// separador de milhar (ex.: 1234567.891 -> "1,234,567.89")
func FormatAmount(f float64) string {
	s := strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + "." + fracPart
}

// FormatPercent formata um percentual com duas casas decimais (ex.: "64.80%")
func FormatPercent(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64) + "%"
}
