package internet_test

import (
	"testing"

	"github.com/katalvlaran/seedmock/internet"
	"github.com/katalvlaran/seedmock/locale"
	"github.com/katalvlaran/seedmock/mersenne"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInternet(t testing.TB, seed uint32) *internet.Internet {
	t.Helper()
	reg, err := mersenne.NewRegistry(4)
	require.NoError(t, err)

	return internet.New(mersenne.NewSource(mersenne.WithSeed(seed), mersenne.WithRegistry(reg)), locale.En())
}

func TestDomainAndURI(t *testing.T) {
	in := newInternet(t, 1)
	for i := 0; i < 100; i++ {
		require.Regexp(t, `^[a-z]+-[a-z]+\.(com|biz|info|name|net|org)$`, in.Domain())
		require.Regexp(t, `^https?://[a-z]+-[a-z]+\.[a-z]+$`, in.URI())
	}
}

func TestSetLocale_Suffix(t *testing.T) {
	in := newInternet(t, 2)
	in.SetLocale(locale.Locale{Internet: locale.Internet{DomainSuffix: []string{"test"}}})
	assert.Equal(t, "test", in.DomainSuffix())
	assert.Contains(t, []string{"http", "https"}, in.Protocol())
}
