// Package locale provides the translated labels shown by stepflow hosts and
// tooling. Message files are embedded; English is the fallback.
package locale

import (
	"embed"
	"strings"
	"sync"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := messageFS.ReadDir("messages")
		if err != nil {
			internal.GetInternalLogger().Error("Failed to list message files", "error", err)
			return
		}
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(messageFS, "messages/"+entry.Name()); err != nil {
				internal.GetInternalLogger().Error("Failed to load message file", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// Languages returns the tags with embedded translations.
func Languages() []language.Tag {
	return getBundle().LanguageTags()
}

// Localizer renders messages in one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns a Localizer for lang, a BCP 47 tag such as "fr" or "en-US".
// Unknown or malformed tags fall back to English.
func New(lang string) *Localizer {
	b := getBundle()

	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		tag = language.English
	}

	matcher := language.NewMatcher(b.LanguageTags())
	_, index, confidence := matcher.Match(tag)
	matched := language.English
	if confidence != language.No {
		matched = b.LanguageTags()[index]
	}

	return &Localizer{
		tag:       matched,
		localizer: i18n.NewLocalizer(b, matched.String(), language.English.String()),
	}
}

// Language returns the language messages are rendered in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// StepProgress renders "Step 2 of 5".
func (l *Localizer) StepProgress(current, total int) string {
	return l.localize("StepProgress", map[string]any{"Current": current, "Total": total}, nil)
}

// FlowComplete is shown after the last screen.
func (l *Localizer) FlowComplete() string {
	return l.localize("FlowComplete", nil, nil)
}

// PressToContinue is the footer hint on confirmation screens.
func (l *Localizer) PressToContinue() string {
	return l.localize("PressToContinue", nil, nil)
}

// CriterionCount renders "2 steps".
func (l *Localizer) CriterionCount(count int) string {
	return l.localize("CriterionCount", map[string]any{"Count": count}, count)
}

// CriterionSteps renders "Waiting for viewDidAppear, confirmed".
func (l *Localizer) CriterionSteps(steps []string) string {
	return l.localize("CriterionSteps", map[string]any{"Steps": strings.Join(steps, ", ")}, nil)
}

func (l *Localizer) localize(id string, data map[string]any, pluralCount any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  pluralCount,
	})
	if err != nil {
		internal.GetInternalLogger().Warn("Missing translation", "message", id, "language", l.tag.String(), "error", err)
		return id
	}
	return msg
}
