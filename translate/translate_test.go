package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("opcode 0x2a", From("opcode %#x", 42))
	assert.Equal("line 7 bad", From("line %d %v", 7, "bad"))
}

func TestFrom_Grouping(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)
	assert.Equal("1,024 ticks", From("%d ticks", 1024))

	SetLanguage(language.German)
	assert.Equal("1.024 ticks", From("%d ticks", 1024))

	SetLanguage(language.AmericanEnglish)
}

func TestHostLocales(t *testing.T) {
	assert := assert.New(t)

	assert.NotEmpty(hostLocales())
}
