package matrix

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccessors(t *testing.T) {
	m := New(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0.0, m.At(1, 2))

	m.Set(1, 2, 42.5)
	assert.Equal(t, 42.5, m.At(1, 2))
	assert.Equal(t, []float64{0, 0, 42.5}, m.Row(1))
}

func TestNewInvalidShapePanics(t *testing.T) {
	assert.Panics(t, func() { New(0, 3) })
	assert.Panics(t, func() { New(2, -1) })
}

func TestAtOutOfRangePanics(t *testing.T) {
	m := New(2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
	assert.Panics(t, func() { m.Row(5) })
}

func TestRowReturnsCopy(t *testing.T) {
	m := New(1, 2)
	m.Set(0, 0, 1)
	row := m.Row(0)
	row[0] = 99
	assert.Equal(t, 1.0, m.At(0, 0), "mutating the returned row must not touch the matrix")
}

func TestEqual(t *testing.T) {
	a, err := Parse("[1,2,3,4]", 2, 2)
	require.NoError(t, err)
	b, err := Parse("[1,2,3,4]", 2, 2)
	require.NoError(t, err)
	c, err := Parse("[1,2,3,5]", 2, 2)
	require.NoError(t, err)
	d, err := Parse("[1,2,3,4]", 4, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d), "same elements, different shape")
}

func TestApplyDeadband(t *testing.T) {
	m, err := Parse("[0.05, -0.02, 0.1, -0.5]", 2, 2)
	require.NoError(t, err)

	m.ApplyDeadband(0.1)

	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 0.1, m.At(1, 0), "magnitude equal to the band passes through")
	assert.Equal(t, -0.5, m.At(1, 1))
}

func TestCheckShape(t *testing.T) {
	arr := [][]int{{1, 2}, {3, 4}, {5, 6}}

	tests := []struct {
		name       string
		arr        [][]int
		rows, cols int
		want       bool
	}{
		{"matching shape", arr, 3, 2, true},
		{"wrong row count", arr, 2, 2, false},
		{"wrong col count", arr, 3, 3, false},
		{"ragged inner row", [][]int{{1, 2}, {3}}, 2, 2, false},
		{"empty matches zero rows", nil, 0, 5, true},
		{"empty does not match nonzero rows", nil, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckShape(tt.arr, tt.rows, tt.cols))
		})
	}
}

func TestStringGolden(t *testing.T) {
	m, err := Parse("[1.5, -2, 0.0001, 10000000]", 2, 2)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "dense_string", []byte(m.String()))
}
