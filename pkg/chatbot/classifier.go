package chatbot

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", ";", "")

type Classifier struct {
	rules    []intentRule
	keywords []keywordRule
	contacts string
	pick     func(n int) int
}

func NewClassifier(cfg Config) *Classifier {
	contacts := strings.TrimSpace(cfg.SupportContacts)
	if contacts == "" {
		contacts = DefaultSupportContacts
	}

	pick := cfg.Pick
	if pick == nil {
		pick = rand.IntN
	}

	return &Classifier{
		rules:    intentTable,
		keywords: keywordTable,
		contacts: contacts,
		pick:     pick,
	}
}

var defaultClassifier = NewClassifier(Config{})

// Classify maps one utterance to a reply using the default support contacts.
func Classify(input string) string {
	return defaultClassifier.Classify(input)
}

// Normalize lower-cases the input, drops the characters . , ! ? ; and trims
// surrounding whitespace. Both matching tiers see this form.
func Normalize(input string) string {
	lower := cases.Lower(language.Indonesian).String(input)
	return strings.TrimSpace(punctuation.Replace(lower))
}

func (c *Classifier) Classify(input string) string {
	return c.Detect(input).Text
}

func (c *Classifier) Detect(input string) Detection {
	normalized := Normalize(input)

	detection := c.match(normalized)
	detection.Normalized = normalized
	detection.Text = c.respond(detection.Intent)

	return detection
}

func (c *Classifier) match(normalized string) Detection {
	for _, rule := range c.rules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(normalized) {
				return Detection{
					Intent:  rule.intent,
					Tier:    TierRule,
					Matched: pattern.String(),
				}
			}
		}
	}

	for _, kw := range c.keywords {
		if strings.Contains(normalized, kw.keyword) {
			return Detection{
				Intent:  kw.intent,
				Tier:    TierKeyword,
				Matched: kw.keyword,
			}
		}
	}

	return Detection{Intent: IntentUnknown, Tier: TierDefault}
}

func (c *Classifier) respond(intent Intent) string {
	if intent == IntentUnknown || intent >= intentCount {
		return c.fallback()
	}

	rule := byIntent[intent]
	variant := rule.variants[0]
	if n := len(rule.variants); n > 1 {
		idx := c.pick(n)
		if idx < 0 || idx >= n {
			idx = 0
		}
		variant = rule.variants[idx]
	}

	return strings.ReplaceAll(variant, contactsPlaceholder, c.contacts)
}

func (c *Classifier) fallback() string {
	return strings.ReplaceAll(fallbackTemplate, contactsPlaceholder, c.contacts)
}

// Fallback is the reply given when nothing matched.
func (c *Classifier) Fallback() string {
	return c.fallback()
}

// Variants lists the pre-written replies of an intent after contact
// substitution.
func (c *Classifier) Variants(intent Intent) []string {
	if intent == IntentUnknown || intent >= intentCount {
		return []string{c.fallback()}
	}

	variants := make([]string, 0, len(byIntent[intent].variants))
	for _, v := range byIntent[intent].variants {
		variants = append(variants, strings.ReplaceAll(v, contactsPlaceholder, c.contacts))
	}
	return variants
}

func (c *Classifier) QuickActions() []QuickAction {
	actions := make([]QuickAction, len(quickActions))
	copy(actions, quickActions)
	return actions
}

func (c *Classifier) QuickAction(id string) (QuickAction, bool) {
	for _, qa := range quickActions {
		if qa.ID == id {
			return qa, true
		}
	}
	return QuickAction{}, false
}
