package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents représente un montant monétaire en centimes (entier exact, pas de float).
type Cents int64

// ParseCents convertit "25", "25.5" ou "25.00" en centimes sans passer par float64.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("montant vide")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("montant invalide: %q (plus de deux décimales)", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("montant invalide: %q", s)
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("montant invalide: %q", s)
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Cents(total), nil
}

// MulCount multiplie un prix unitaire par une quantité.
func (c Cents) MulCount(count int) Cents {
	return c * Cents(count)
}

// ApplyDiscount applique une remise en pourcentage, arrondie au centime
// (demi-centime arrondi au supérieur).
func (c Cents) ApplyDiscount(percent int) Cents {
	raw := int64(c) * int64(100-percent) // en dix-millièmes d'unité
	return Cents((raw + 50) / 100)
}

func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON rend le montant en nombre JSON à deux décimales (ex: 45.00).
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepte un nombre JSON ou une chaîne décimale.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
