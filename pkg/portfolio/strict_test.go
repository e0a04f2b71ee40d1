package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmcfarlane/folio/pkg/yamlite"
)

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("scalar types map onto the tree", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeStrict([]byte("count: 2\nratio: 0.5\nlive: true\nnone: null\nname: folio\n"))
		require.NoError(t, err)
		want := yamlite.Mapping(
			yamlite.Pair{Key: "count", Value: yamlite.Int(2)},
			yamlite.Pair{Key: "ratio", Value: yamlite.Float(0.5)},
			yamlite.Pair{Key: "live", Value: yamlite.Bool(true)},
			yamlite.Pair{Key: "none", Value: yamlite.Null()},
			yamlite.Pair{Key: "name", Value: yamlite.String("folio")},
		)
		assert.Equal(t, want, got)
	})

	t.Run("mapping order preserved", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeStrict([]byte("z: 1\na: 2\nm: 3\n"))
		require.NoError(t, err)
		keys := make([]string, 0, len(got.Pairs))
		for _, p := range got.Pairs {
			keys = append(keys, p.Key)
		}
		assert.Equal(t, []string{"z", "a", "m"}, keys)
	})

	t.Run("agrees with the lenient parser on well-formed input", func(t *testing.T) {
		t.Parallel()

		doc := "initiatives:\n" +
			"  - title: Platform Revamp\n" +
			"    link: /platform-revamp\n" +
			"    tags: [infra, migration]\n"

		strict, err := DecodeStrict([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, yamlite.Parse(doc), strict)
	})

	t.Run("syntax errors surface", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeStrict([]byte("a: [unclosed\n"))
		require.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		got, err := DecodeStrict(nil)
		require.NoError(t, err)
		assert.Equal(t, yamlite.Mapping(), got)
	})
}
