package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestEnglishMessages(t *testing.T) {
	l := New("en")

	assert.Equal(t, language.English, l.Language())
	assert.Equal(t, "Step 2 of 5", l.StepProgress(2, 5))
	assert.Equal(t, "All done", l.FlowComplete())
	assert.Equal(t, "1 step", l.CriterionCount(1))
	assert.Equal(t, "3 steps", l.CriterionCount(3))
	assert.Equal(t, "Waiting for viewDidAppear, confirmed", l.CriterionSteps([]string{"viewDidAppear", "confirmed"}))
}

func TestFrenchMessages(t *testing.T) {
	l := New("fr-CA")

	assert.Equal(t, "fr", l.Language().String())
	assert.Equal(t, "Étape 1 sur 3", l.StepProgress(1, 3))
	assert.Equal(t, "Appuyez sur A pour continuer", l.PressToContinue())
	assert.Equal(t, "2 étapes", l.CriterionCount(2))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"", "xx-invalid-!!", "ja"} {
		l := New(lang)
		assert.Equal(t, "All done", l.FlowComplete(), lang)
	}
}

func TestLanguagesIncludesEmbeddedFiles(t *testing.T) {
	tags := Languages()
	assert.Contains(t, tags, language.English)
	assert.Contains(t, tags, language.French)
}
