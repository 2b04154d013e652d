package footprint

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleValues() Values {
	return Values{
		Excavation:     "10",
		Transportation: "20",
		Equipment:      "5",
		Electricity:    "100",
		Heat:           "1000",
		Air:            "50",
		Other:          "2",
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"42", 42},
		{" 1.5 ", 1.5},
		{"1e3", 1000},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseValue(tt.raw), 1e-12)
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Run("end to end example", func(t *testing.T) {
		res := Calculate(context.Background(), exampleValues())

		// 8 + 2 + 12.5 + 50 + 0.1 + 1 + 2
		assert.InDelta(t, 75.6, res.TotalKg, 1e-9)
		assert.Equal(t, "75.60", FormatTotal(res.TotalKg))
		assert.Equal(t, "7.6%", FormatPercent(res.Percent))

		assert.InDelta(t, 8.0, res.Contributions[Excavation], 1e-9)
		assert.InDelta(t, 0.1, res.Contributions[Heat], 1e-9)
		assert.InDelta(t, 50.0, res.Contributions[Electricity], 1e-9)
	})

	t.Run("weighted sum of arbitrary inputs", func(t *testing.T) {
		v := []float64{3.25, 17, 0.4, 260, 12345, 9.5, 11}
		values := Values{}
		for i, c := range Categories() {
			values[c] = FormatTotal(v[i])
		}

		want := 0.8*v[0] + 0.1*v[1] + 2.5*v[2] + 0.5*v[3] + 0.0001*v[4] + 0.02*v[5] + 1*v[6]
		res := Calculate(context.Background(), values)
		assert.InDelta(t, want, res.TotalKg, 1e-9)
	})

	t.Run("all zero", func(t *testing.T) {
		res := Calculate(context.Background(), fullValues("0"))
		assert.Zero(t, res.TotalKg)
		assert.Equal(t, "0.00", FormatTotal(res.TotalKg))
		assert.Equal(t, "0.0%", FormatPercent(res.Percent))
	})

	t.Run("empty and non-numeric count as zero", func(t *testing.T) {
		values := exampleValues()
		values[Electricity] = ""
		values[Equipment] = "lots"

		res := Calculate(context.Background(), values)
		assert.InDelta(t, 75.6-50-12.5, res.TotalKg, 1e-9)
		assert.True(t, res.Coerced[Equipment])
		assert.False(t, res.Coerced[Electricity], "empty input is not a coercion")
	})

	t.Run("warns on coerced values", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		ctx := logger.WithContext(context.Background())

		values := exampleValues()
		values[Air] = "n/a"
		Calculate(ctx, values)

		assert.Contains(t, buf.String(), `"category":"air"`)
		assert.Contains(t, buf.String(), "non-numeric value counted as 0")
	})
}

func TestPercent(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{0, "0.0%"},
		{500, "50.0%"},
		{999.4, "99.9%"},
		{1000, "100.0%"},
		{2000, "100.0%"},
		{75.6, "7.6%"},
	}

	for _, tt := range tests {
		t.Run(FormatTotal(tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(Percent(tt.total)))
		})
	}
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "0", DisplayValue(""))
	assert.Equal(t, "0", DisplayValue("  "))
	assert.Equal(t, "12", DisplayValue("12"))
	assert.Equal(t, "abc", DisplayValue("abc"))
}

func TestSubmit(t *testing.T) {
	t.Run("valid form calculates", func(t *testing.T) {
		res, err := Submit(context.Background(), exampleValues())
		require.NoError(t, err)
		assert.InDelta(t, 75.6, res.TotalKg, 1e-9)
	})

	t.Run("empty field blocks submission", func(t *testing.T) {
		values := exampleValues()
		values[Other] = ""

		res, err := Submit(context.Background(), values)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequired)
		assert.Zero(t, res.TotalKg)

		var errs FieldErrors
		require.ErrorAs(t, err, &errs)
		assert.True(t, errs.Has(Other))
	})

	t.Run("negative field blocks submission", func(t *testing.T) {
		values := exampleValues()
		values[Excavation] = "-10"

		_, err := Submit(context.Background(), values)
		assert.ErrorIs(t, err, ErrNegative)
	})

	t.Run("negative beyond float range blocks submission", func(t *testing.T) {
		values := fullValues("1")
		values[Excavation] = "-1e400"

		_, err := Submit(context.Background(), values)
		require.ErrorIs(t, err, ErrNegative)

		var errs FieldErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, []Category{Excavation}, errs.Categories())
	})
}

func TestCalculate_Overflow(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	values := fullValues("1")
	values[Equipment] = "1e308"
	res := Calculate(ctx, values)

	assert.True(t, res.Overflow())
	assert.False(t, res.Coerced[Equipment], "the input itself parsed")
	assert.InDelta(t, 100.0, res.Percent, 1e-9)
	assert.Equal(t, OverflowText, FormatKg(res.TotalKg))
	assert.Equal(t, OverflowText, FormatTotal(res.Contributions[Equipment]))
	assert.Contains(t, buf.String(), "total too large to represent")
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "75.60 kg CO2e", FormatKg(75.6))
	assert.Equal(t, OverflowText, FormatKg(math.Inf(1)))
	assert.Equal(t, OverflowText, FormatKg(math.NaN()))
}

func TestPercent_NonFinite(t *testing.T) {
	assert.InDelta(t, 100.0, Percent(math.Inf(1)), 1e-9)
	assert.Zero(t, Percent(math.NaN()))
}
