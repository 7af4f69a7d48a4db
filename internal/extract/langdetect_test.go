package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_JSXSnippet(t *testing.T) {
	lang := DetectLanguage("const El = () => <Button label=\"go\" />;")
	assert.Equal(t, "tsx", lang)
}

func TestDetectLanguage_PlainScript(t *testing.T) {
	lang := DetectLanguage("const a = 1;\nconsole.log(a);")
	assert.NotEmpty(t, lang)
}

func TestDetectLanguage_EmptyInput(t *testing.T) {
	assert.Equal(t, "", DetectLanguage("   \n "))
}
