package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integer valued", 42, "42"},
		{"fractional", 1.5, "1.5"},
		{"small magnitude kept", 0.000001, "1e-06"},
		{"large magnitude kept", 12345678901234, "1.2345678901234e+13"},
		{"negative", -0.25, "-0.25"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.v))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.1, -0.1, 1.0 / 3.0, math.Pi, 1e-300, 1e300,
		math.SmallestNonzeroFloat64, math.MaxFloat64,
	}
	for _, v := range values {
		got, err := ParseNumber[float64](FormatNumber(v))
		require.NoError(t, err)
		assert.Equal(t, v, got, "round trip must be exact for %v", v)
	}
}

func TestFormatParseRoundTripFloat32(t *testing.T) {
	values := []float32{0.1, -2.5, math.MaxFloat32, 1e-30}
	for _, v := range values {
		got, err := ParseNumber[float32](FormatNumber(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", FormatBool(true))
	assert.Equal(t, "false", FormatBool(false))
}

func TestParseNumberErrors(t *testing.T) {
	for _, bad := range []string{"", "abc", "1.2.3", "--4"} {
		_, err := ParseNumber[float64](bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber[float64]("-3.5e2")
	require.NoError(t, err)
	assert.Equal(t, -350.0, v)
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "kp=1.5 joint=hip", Sprintf("kp=%g joint=%s", 1.5, "hip"))
	assert.Equal(t, "", Sprintf(""))
}
