package fpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAndBase(t *testing.T) {
	p := New("/tmp/testdir").Join("foo")
	assert.Equal(t, "/tmp/testdir/foo", p.String())
	assert.Equal(t, "foo", p.Base())
	assert.Equal(t, "/tmp/testdir", p.Dir().String())
}

func TestEqualIsExact(t *testing.T) {
	a := New("/tmp/Foo")
	b := New("/tmp/foo")
	assert.False(t, a.Equal(b), "comparisons must not case-fold")
	assert.True(t, a.Equal(New("/tmp/Foo")))
}

func TestCanonicalIsAbsolute(t *testing.T) {
	p := New("relative/path")
	c, err := p.Canonical()
	require.NoError(t, err)
	assert.True(t, c.IsAbs())
}
