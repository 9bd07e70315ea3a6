package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

func TestClean_NFCEEspacos(t *testing.T) {
	// "João" com o til decomposto (a + U+0303) deve virar a forma composta.
	decomposed := "João"
	composed := "João"

	assert.Equal(t, composed, textutil.Clean(decomposed))
	assert.Equal(t, composed, textutil.Clean("  "+decomposed+"\t"))
	assert.Equal(t, "", textutil.Clean("   "))
}

func TestCleanAll(t *testing.T) {
	a, b := "  Ana ", "José"
	textutil.CleanAll(&a, &b, nil)

	assert.Equal(t, "Ana", a)
	assert.Equal(t, "José", b)
}
