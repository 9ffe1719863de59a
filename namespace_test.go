package sesame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandQName(t *testing.T) {
	uri, ok := ExpandQName("foaf:gender")
	assert.True(t, ok)
	assert.Equal(t, "http://xmlns.com/foaf/0.1/gender", uri)

	uri, ok = ExpandQName("unknown:thing")
	assert.False(t, ok)
	assert.Equal(t, "unknown:thing", uri)

	uri, ok = ExpandQName("nocolon")
	assert.False(t, ok)
	assert.Equal(t, "nocolon", uri)
}
