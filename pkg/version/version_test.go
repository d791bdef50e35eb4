package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want KubernetesVersion
	}{
		{"1.30", V1_30},
		{"v1.30", V1_30},
		{"1.30.2", V1_30},
		{"v1.33.1", V1_33},
		{"1.99", New(1, 99)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "latest", "1", "abc.def"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("1.29") })
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.29", V1_29.String())
	assert.Equal(t, "1.33", V1_33.String())
	assert.Equal(t, "v1-31", V1_31.Slug())
}

func TestSupported(t *testing.T) {
	got := Supported()
	require.Len(t, got, 5)
	assert.Equal(t, V1_29, got[0])
	assert.Equal(t, V1_33, got[len(got)-1])

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Semantic().LessThan(got[i].Semantic()))
	}
}

func TestDefaultIsSupported(t *testing.T) {
	assert.Equal(t, V1_32, Default)
	assert.True(t, IsSupported(Default))
	assert.False(t, IsSupported(New(1, 99)))
}

func TestMatches(t *testing.T) {
	assert.True(t, V1_30.Matches("v1.30.2"))
	assert.True(t, V1_30.Matches("v1.30.13+k3s1"))
	assert.False(t, V1_30.Matches("v1.31.0"))
	assert.False(t, V1_30.Matches("garbage"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, KubernetesVersion{}.IsZero())
	assert.False(t, V1_29.IsZero())
}
