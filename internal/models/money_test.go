package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Cents
		wantErr bool
	}{
		{"25", 2500, false},
		{"25.00", 2500, false},
		{"25.5", 2550, false},
		{"0.99", 99, false},
		{".50", 50, false},
		{"-3.25", -325, false},
		{"100.00", 10000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.999", 0, true}, // plus de deux décimales
	}

	for _, tt := range tests {
		got, err := ParseCents(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestCentsString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "45.00", Cents(4500).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-1.20", Cents(-120).String())
}

func TestCentsJSONRoundtrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Cents(4500))
	require.NoError(t, err)
	assert.Equal(t, "45.00", string(data))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte("25.50"), &c))
	assert.Equal(t, Cents(2550), c)

	require.NoError(t, json.Unmarshal([]byte(`"10.05"`), &c))
	assert.Equal(t, Cents(1005), c)
}

func TestApplyDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		total   Cents
		percent int
		want    Cents
	}{
		{"10% sur 100.00", 10000, 10, 9000},
		{"10% sur 50.00", 5000, 10, 4500},
		{"0% ne change rien", 4200, 0, 4200},
		{"100% annule le total", 4200, 100, 0},
		{"arrondi au centime: 33% sur 9.99", 999, 33, 669}, // 6.6933 → 6.69
		{"arrondi demi-sup: 25% sur 0.02", 2, 25, 2},       // 1.5 centimes → 2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.total.ApplyDiscount(tt.percent))
		})
	}
}

func TestMulCount(t *testing.T) {
	t.Parallel()

	// 25.00 × 2 = 50.00 (scénario panier)
	assert.Equal(t, Cents(5000), Cents(2500).MulCount(2))
	assert.Equal(t, Cents(0), Cents(2500).MulCount(0))
}
