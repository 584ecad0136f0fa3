package chatbot

import (
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  Terima Kasih Banyak!  ", "terima kasih banyak"},
		{"gimana cara daftar?", "gimana cara daftar"},
		{"a.b,c!d?e;f", "abcdef"},
		{"...!!!??", ""},
		{"", ""},
		{"HALO", "halo"},
		{"berat: 45kg", "berat: 45kg"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetect_RuleTier(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	tests := []struct {
		input string
		want  Intent
	}{
		{"gimana cara daftar?", IntentRegistration},
		{"bagaimana mendaftar lomba ini", IntentRegistration},
		{"prosedur pendaftaran nya apa", IntentRegistration},
		{"saya mau daftar", IntentRegistration},
		{"proses registrasi", IntentRegistration},
		{"anak saya umur 10 tahun bisa ikut?", IntentRequirements},
		{"apa persyaratan nya", IntentRequirements},
		{"batasan usia berapa", IntentRequirements},
		{"kategori lomba apa", IntentCategories},
		{"jenis pertandingan nya", IntentCategories},
		{"kyorugi atau poomsae", IntentCategories},
		{"perlu bawa apa aja", IntentEquipment},
		{"apakah wajib pakai mouthguard", IntentEquipment},
		{"head gear disediakan?", IntentEquipment},
		{"berapa biaya pendaftarannya", IntentCost},
		{"ada fee nya gak", IntentCost},
		{"mahal gak sih", IntentCost},
		{"kapan jadwal nya keluar", IntentConfirmation},
		{"jam berapa mulainya", IntentConfirmation},
		{"dapat medali gak", IntentCertificates},
		{"ada hadiah nya?", IntentCertificates},
		{"orang tua boleh nonton?", IntentSpectators},
		{"penonton bayar gak", IntentSpectators},
		{"bisa refund?", IntentRefund},
		{"kalau gak jadi ikut gimana", IntentRefund},
		{"halo", IntentGreeting},
		{"Halo!", IntentGreeting},
		{"selamat pagi", IntentGreeting},
		{"halo bot apa kabar", IntentGreeting},
		{"terima kasih banyak!", IntentThanks},
		{"makasih ya", IntentThanks},
		{"nomor admin berapa", IntentContact},
		{"customer service", IntentContact},
		{"tips latihan dong", IntentTraining},
		{"sistem penilaian nya gimana", IntentRules},
		{"peraturan nya apa", IntentRules},
		{"alamat nya di mana", IntentLocation},
		{"gedung apa", IntentLocation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := c.Detect(tt.input)
			if got.Intent != tt.want {
				t.Errorf("Detect(%q).Intent = %s (matched %q), want %s", tt.input, got.Intent, got.Matched, tt.want)
			}
			if got.Tier != TierRule {
				t.Errorf("Detect(%q).Tier = %s, want rule", tt.input, got.Tier)
			}
		})
	}
}

func TestDetect_DeclarationOrderWins(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	tests := []struct {
		name  string
		input string
		want  Intent
	}{
		// cost would match "berapa biaya" but registration is declared first.
		{"registration before cost", "cara daftar dan berapa biaya nya", IntentRegistration},
		// location lists venue too; confirmation comes first.
		{"confirmation before location", "venue nya di mana", IntentConfirmation},
		// "hub" is a greeting pattern, so it shadows the contact keyword.
		{"greeting shadows hubungi", "hubungi", IntentGreeting},
		{"quick action label hubungi admin", "Hubungi admin", IntentGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Detect(tt.input).Intent; got != tt.want {
				t.Errorf("Detect(%q).Intent = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetect_KeywordTier(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	for _, kw := range keywordTable {
		got := c.Detect(kw.keyword)
		if got.Tier == TierRule {
			// The keyword is itself a pattern of some intent.
			continue
		}
		if got.Tier != TierKeyword || got.Intent != kw.intent {
			t.Errorf("Detect(%q) = %s/%s, want %s/keyword", kw.keyword, got.Intent, got.Tier, kw.intent)
		}
		if got.Matched != kw.keyword {
			t.Errorf("Detect(%q).Matched = %q", kw.keyword, got.Matched)
		}
	}

	got := c.Detect("info jadwal dong")
	if got.Intent != IntentConfirmation || got.Tier != TierKeyword {
		t.Fatalf("Detect(info jadwal dong) = %s/%s, want confirmation/keyword", got.Intent, got.Tier)
	}
}

func TestDetect_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	inputs := []string{
		"",
		"   ",
		"...!!!??",
		"xyz123 random gibberish",
		`(.*[ regex \d+ $^`,
		"haloo",
		"\x00\xff\xfe",
	}

	for _, in := range inputs {
		got := c.Detect(in)
		if got.Intent != IntentUnknown || got.Tier != TierDefault {
			t.Errorf("Detect(%q) = %s/%s, want unknown/default", in, got.Intent, got.Tier)
		}
		if got.Text != c.Fallback() {
			t.Errorf("Detect(%q).Text = %q, want fallback", in, got.Text)
		}
	}
}

func TestClassify_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		contains string
	}{
		{"gimana cara daftar?", `halaman "Pendaftaran"`},
		{"anak saya umur 10 tahun bisa ikut?", "berdasarkan usia"},
		{"berapa biaya pendaftarannya", "Biaya pendaftaran"},
		{"xyz123 random gibberish", "0851-5695-6953"},
		{"terima kasih banyak!", "Sama-sama!"},
	}

	for _, tt := range tests {
		got := Classify(tt.input)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("Classify(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
		}
	}

	greetings := NewClassifier(Config{}).Variants(IntentGreeting)
	if got := Classify("halo"); !slices.Contains(greetings, got) {
		t.Errorf("Classify(halo) = %q, not a greeting variant", got)
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	inputs := []string{"", "?", "daftar", "halo", "🥋🥋🥋", strings.Repeat("a", 4096)}
	for _, in := range inputs {
		if c.Classify(in) == "" {
			t.Errorf("Classify(%q) returned empty text", in)
		}
	}
}

func TestClassify_IdempotentForFixedResponses(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	for _, in := range []string{"berapa biaya pendaftarannya", "bisa refund?", "xyz", "kontak"} {
		first, second := c.Classify(in), c.Classify(in)
		if first != second {
			t.Errorf("Classify(%q) not stable: %q vs %q", in, first, second)
		}
	}
}

func TestClassify_GreetingCoversAllVariants(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	variants := c.Variants(IntentGreeting)
	if len(variants) < 2 {
		t.Fatalf("greeting should be randomized, got %d variants", len(variants))
	}

	seen := make(map[string]int)
	for range 200 {
		got := c.Classify("halo")
		if !slices.Contains(variants, got) {
			t.Fatalf("Classify(halo) = %q, not a declared variant", got)
		}
		seen[got]++
	}
	for _, v := range variants {
		if seen[v] == 0 {
			t.Errorf("variant never returned in 200 trials: %q", v)
		}
	}
}

func TestClassify_InjectedPick(t *testing.T) {
	t.Parallel()

	variants := NewClassifier(Config{}).Variants(IntentGreeting)
	for i, want := range variants {
		c := NewClassifier(Config{Pick: func(int) int { return i }})
		if got := c.Classify("hai"); got != want {
			t.Errorf("pick %d: got %q, want %q", i, got, want)
		}
	}

	// Out-of-range picks are clamped to the first variant.
	c := NewClassifier(Config{Pick: func(n int) int { return n + 3 }})
	if got := c.Classify("hai"); got != variants[0] {
		t.Errorf("out-of-range pick: got %q, want %q", got, variants[0])
	}

	// Randomness never changes the selected intent.
	det := c.Detect("hai")
	if det.Intent != IntentGreeting {
		t.Errorf("Detect(hai).Intent = %s, want greeting", det.Intent)
	}
}

func TestClassify_CustomContacts(t *testing.T) {
	t.Parallel()

	const contacts = "WhatsApp (0812-0000-0000)"
	c := NewClassifier(Config{SupportContacts: contacts})

	for _, in := range []string{"qwerty", "nomor admin berapa"} {
		got := c.Classify(in)
		if !strings.Contains(got, contacts) {
			t.Errorf("Classify(%q) = %q, want contacts %q", in, got, contacts)
		}
		if strings.Contains(got, contactsPlaceholder) || strings.Contains(got, DefaultSupportContacts) {
			t.Errorf("Classify(%q) leaked default contacts: %q", in, got)
		}
	}
}

func TestClassify_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	want := c.Classify("berapa biaya pendaftarannya")

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Classify("berapa biaya pendaftarannya"); got != want {
				errs <- got
			}
			c.Classify("halo")
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Classify returned %q, want %q", got, want)
	}
}

func TestTables(t *testing.T) {
	t.Parallel()

	for i := IntentRegistration; i < intentCount; i++ {
		rule := byIntent[i]
		if rule == nil || len(rule.patterns) == 0 || len(rule.variants) == 0 {
			t.Errorf("intent %s lacks patterns or responses", i)
		}
		parsed, ok := ParseIntent(i.String())
		if !ok || parsed != i {
			t.Errorf("ParseIntent(%q) = %s, %v", i.String(), parsed, ok)
		}
	}

	if _, ok := ParseIntent("unknown"); ok {
		t.Error("ParseIntent(unknown) should report false")
	}
	if got := Intent(200).String(); got != "unknown" {
		t.Errorf("Intent(200).String() = %q", got)
	}
	if got := len(keywordTable); got != 17 {
		t.Errorf("keyword table has %d entries, want 17", got)
	}
}

func TestQuickActions(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Config{})
	actions := c.QuickActions()
	if len(actions) != 5 {
		t.Fatalf("QuickActions() returned %d entries, want 5", len(actions))
	}

	actions[0].Text = "mutated"
	if c.QuickActions()[0].Text == "mutated" {
		t.Fatal("QuickActions() exposes the shared menu")
	}

	wantIntent := map[string]Intent{
		"registration": IntentRegistration,
		"requirements": IntentRequirements,
		"cost":         IntentCost,
		"categories":   IntentCategories,
		// The label "Hubungi admin" is caught by the greeting pattern "hub".
		"contact": IntentGreeting,
	}
	for id, want := range wantIntent {
		qa, ok := c.QuickAction(id)
		if !ok {
			t.Errorf("QuickAction(%q) not found", id)
			continue
		}
		if got := c.Detect(qa.Text).Intent; got != want {
			t.Errorf("quick action %q (%q) detected %s, want %s", id, qa.Text, got, want)
		}
	}

	if _, ok := c.QuickAction("nope"); ok {
		t.Error("QuickAction(nope) should not exist")
	}
}
