package chatbot

type Intent uint8

const (
	IntentUnknown Intent = iota
	IntentRegistration
	IntentRequirements
	IntentCategories
	IntentEquipment
	IntentCost
	IntentConfirmation
	IntentCertificates
	IntentSpectators
	IntentRefund
	IntentGreeting
	IntentThanks
	IntentContact
	IntentTraining
	IntentRules
	IntentLocation

	intentCount
)

var intentNames = [intentCount]string{
	IntentUnknown:      "unknown",
	IntentRegistration: "registration",
	IntentRequirements: "requirements",
	IntentCategories:   "categories",
	IntentEquipment:    "equipment",
	IntentCost:         "cost",
	IntentConfirmation: "confirmation",
	IntentCertificates: "certificates",
	IntentSpectators:   "spectators",
	IntentRefund:       "refund",
	IntentGreeting:     "greeting",
	IntentThanks:       "thanks",
	IntentContact:      "contact",
	IntentTraining:     "training",
	IntentRules:        "rules",
	IntentLocation:     "location",
}

func (i Intent) String() string {
	if i >= intentCount {
		return intentNames[IntentUnknown]
	}
	return intentNames[i]
}

func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// ParseIntent resolves an intent identifier such as "cost". Unknown names
// report false.
func ParseIntent(name string) (Intent, bool) {
	for i := IntentRegistration; i < intentCount; i++ {
		if intentNames[i] == name {
			return i, true
		}
	}
	return IntentUnknown, false
}

// Tier records which matching stage selected the intent.
type Tier uint8

const (
	TierDefault Tier = iota
	TierRule
	TierKeyword
)

func (t Tier) String() string {
	switch t {
	case TierRule:
		return "rule"
	case TierKeyword:
		return "keyword"
	default:
		return "default"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type Detection struct {
	Intent     Intent `json:"intent"`
	Tier       Tier   `json:"tier"`
	Matched    string `json:"matched,omitempty"`
	Normalized string `json:"normalized"`
	Text       string `json:"text"`
}

type QuickAction struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type IClassifier interface {
	Classify(input string) string
	Detect(input string) Detection
	QuickActions() []QuickAction
	QuickAction(id string) (QuickAction, bool)
}

type Config struct {
	// SupportContacts is embedded in the fallback and contact replies,
	// e.g. "WhatsApp (0851-5695-6953) atau Sabem Danis (0882-9372-6256)".
	SupportContacts string

	// Pick returns a uniform index in [0, n). It must be safe for concurrent
	// use when the classifier is shared. Defaults to math/rand/v2.IntN.
	Pick func(n int) int
}
