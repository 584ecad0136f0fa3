package chatbot

import (
	"fmt"
	"regexp"
)

const (
	DefaultSupportContacts = "WhatsApp (0851-5695-6953) atau Sabem Danis (0882-9372-6256)"

	WelcomeMessage = "Halo! 👋 Saya asisten virtual Competition Hub. Ada yang bisa saya bantu?"

	contactsPlaceholder = "{{contacts}}"

	fallbackTemplate = "Hmm, pertanyaan yang menarik! 🤔 Saya belum bisa menjawab pertanyaan spesifik itu, tapi jangan khawatir! " +
		"Tim admin kami siap membantu langsung di " + contactsPlaceholder + ". Mereka pasti bisa kasih jawaban yang lebih detail! 💪✨"
)

type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
	variants []string
}

type keywordRule struct {
	keyword string
	intent  Intent
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// intentTable is evaluated top to bottom; the first intent with a matching
// pattern wins.
var intentTable = []intentRule{
	{
		intent: IntentRegistration,
		patterns: compile(
			`cara.*daftar`,
			`gimana.*daftar`,
			`bagaimana.*mendaftar`,
			`bagaimana.*cara.*mendaftar`,
			`prosedur.*pendaftaran`,
			`langkah.*daftar`,
			`proses.*registrasi`,
			`daftar.*gimana`,
			`daftar.*bagaimana`,
			`mau.*daftar`,
			`ingin.*daftar`,
			`pendaftaran.*gimana`,
		),
		variants: []string{
			`Kamu bisa langsung daftar lewat website kami di halaman "Pendaftaran". Isi data lengkap peserta, pilih kategori kejuaraan, dan ikuti langkah-langkah yang tersedia. Jangan lupa konfirmasi pembayaran yaa biar data kamu masuk ke sistem! 💻✅`,
		},
	},
	{
		intent: IntentRequirements,
		patterns: compile(
			`syarat.*peserta`,
			`siapa.*bisa.*ikut`,
			`persyaratan`,
			`kriteria.*peserta`,
			`boleh.*ikut`,
			`bisa.*ikut`,
			`syarat.*untuk.*mendaftar`,
			`apa.*saja.*syarat`,
			`umur.*\d+`,
			`anak.*umur`,
			`berumur.*\d+`,
			`usia.*\d+`,
			`tahun.*bisa`,
			`bisa.*bertanding`,
			`boleh.*bertanding`,
			`ikut.*lomba`,
			`minimal.*umur`,
			`maksimal.*umur`,
			`batasan.*usia`,
			`syarat.*usia`,
			`ketentuan.*peserta`,
		),
		variants: []string{
			"Kejuaraan ini terbuka untuk seluruh atlet taekwondo dari berbagai usia dan tingkatan sabuk, baik dari klub, sekolah, maupun mandiri. Untuk anak umur 10 tahun pasti bisa ikut! Kategori dibagi berdasarkan usia, jadi anak kamu akan bertanding dengan peserta seusianya. Pastikan sudah mendapatkan izin dari pelatih atau dojang ya! 🥋🔥",
		},
	},
	{
		intent: IntentCategories,
		patterns: compile(
			`kategori.*lomba`,
			`jenis.*lomba`,
			`kategori.*tersedia`,
			`divisi.*apa`,
			`kelas.*lomba`,
			`kyorugi.*poomsae`,
			`kategori.*apa.*saja`,
			`pembagian.*kategori`,
			`kelompok.*umur`,
			`kelas.*usia`,
			`macam.*kategori`,
			`ada.*kategori.*apa`,
			`jenis.*pertandingan`,
		),
		variants: []string{
			"Terdapat beberapa kategori seperti Kyorugi (tarung), Poomsae (jurus), dan Festival Taekwondo. Masing-masing kategori dibagi berdasarkan usia, berat badan, dan tingkat sabuk. Untuk anak-anak ada kategori khusus sesuai kelompok umur. Pilih sesuai kemampuan ya! 💥",
		},
	},
	{
		intent: IntentEquipment,
		patterns: compile(
			`perlengkapan.*lomba`,
			`peralatan.*bawa`,
			`body.*protector`,
			`head.*gear`,
			`mouthguard`,
			`equipment`,
			`peserta.*harus.*membawa`,
			`alat.*pelindung`,
			`gear.*apa`,
			`atlet.*wajib.*membawa`,
			`wajib.*bawa.*peralatan`,
			`peralatan.*sendiri`,
			`perlengkapan.*sendiri`,
			`bawa.*perlengkapan`,
			`perlu.*bawa.*apa`,
			`harus.*bawa.*apa`,
			`pelindung.*badan`,
			`safety.*gear`,
			`protective.*gear`,
		),
		variants: []string{
			"Peserta tidak diwajibkan membawa perlengkapan sendiri, karena perlengkapan standar akan disediakan oleh klub atau dojang masing-masing. Namun, jika peserta memiliki perlengkapan pribadi yang sesuai standar, diperbolehkan untuk membawanya dan menggunakannya dalam pertandingan. 🥋✅",
		},
	},
	{
		intent: IntentCost,
		patterns: compile(
			`biaya.*pendaftaran`,
			`harga.*daftar`,
			`berapa.*bayar`,
			`tarif.*lomba`,
			`ongkos.*ikut`,
			`fee`,
			`ada.*biaya`,
			`berapa.*biaya`,
			`mahal.*gak`,
			`murah.*gak`,
			`harga.*berapa`,
			`bayar.*berapa`,
			`cost`,
			`price`,
			`gratis.*gak`,
			`berbayar.*gak`,
		),
		variants: []string{
			`Biaya pendaftaran berbeda tergantung kejuaraan nya, kategori dan jumlah yang diikuti. Info lengkap bisa kamu lihat di halaman "Biaya & Pembayaran" di website kami. Biasanya ada diskon untuk pendaftaran early bird lho! 💸📝`,
		},
	},
	{
		intent: IntentConfirmation,
		patterns: compile(
			`konfirmasi.*pendaftaran`,
			`tahu.*berhasil`,
			`jadwal.*lengkap`,
			`email.*konfirmasi`,
			`whatsapp.*konfirmasi`,
			`pendaftaran.*berhasil`,
			`kapan.*jadwal`,
			`jadwal.*kapan`,
			`tanggal.*berapa`,
			`hari.*apa`,
			`waktu.*pelaksanaan`,
			`jam.*berapa`,
			`lokasi.*dimana`,
			`tempat.*lomba`,
			`venue`,
		),
		variants: []string{
			"Setelah kamu mengisi formulir dan melakukan pembayaran, kamu akan menerima email atau WhatsApp konfirmasi dari panitia. Jadwal lengkap akan diumumkan H-3 sebelum acara via email dan juga diposting di website resmi. Info lokasi dan rundown acara juga akan disertakan! 📧📅",
		},
	},
	{
		intent: IntentCertificates,
		patterns: compile(
			`sertifikat`,
			`medali`,
			`piagam`,
			`penghargaan`,
			`juara`,
			`hadiah`,
			`peserta.*mendapatkan`,
			`dapat.*apa`,
			`reward`,
			`prize`,
			`trophy`,
			`trofi`,
			`dapat.*sertifikat`,
			`dapat.*medali`,
			`semua.*peserta.*dapat`,
		),
		variants: []string{
			"Semua peserta akan mendapatkan e-sertifikat partisipasi. Untuk yang juara 1, 2, dan 3 akan mendapatkan medali dan piagam penghargaan. Ada juga hadiah menarik untuk kategori tertentu! Jadi, semangat terus yaa buat jadi yang terbaik! 🏅📜",
		},
	},
	{
		intent: IntentSpectators,
		patterns: compile(
			`penonton`,
			`suporter`,
			`bawa.*teman`,
			`keluarga.*nonton`,
			`tiket.*penonton`,
			`boleh.*bawa`,
			`orang.*tua.*nonton`,
			`pendamping`,
			`supporter`,
			`audience`,
			`bisa.*ditonton`,
			`boleh.*nonton`,
		),
		variants: []string{
			"Boleh banget! Keluarga dan teman-teman bisa datang untuk memberikan support. Pastikan mengikuti aturan venue dan menjaga ketertiban ya. Biasanya ada tiket atau ID khusus untuk penonton yang dibagikan sebelum hari-H. 🎫🙌",
		},
	},
	{
		intent: IntentRefund,
		patterns: compile(
			`refund`,
			`pembatalan`,
			`batal.*ikut`,
			`kembalikan.*uang`,
			`cancel`,
			`sudah.*daftar.*batal`,
			`uang.*kembali`,
			`bisa.*dibatalkan`,
			`gak.*jadi.*ikut`,
			`tidak.*jadi.*ikut`,
		),
		variants: []string{
			"Sayangnya, biaya pendaftaran yang sudah dibayarkan tidak bisa dikembalikan. Tapi tenang, nama kamu tetap akan terdaftar dan dapat e-sertifikat partisipasi jika diminta. Kalau ada force majeure, akan ada kebijakan khusus dari panitia. 🙏",
		},
	},
	{
		intent: IntentGreeting,
		patterns: compile(
			`^(halo|hai|hello|hi|hey)$`,
			`selamat (pagi|siang|sore|malam)`,
			`assalamualaikum`,
			`permisi`,
			`ada.*yang.*bisa.*bantu`,
			`hub`,
			`halo.*bot`,
			`hai.*bot`,
			`test`,
			`testing`,
		),
		variants: []string{
			"Halo! 👋 Selamat datang di Competition Hub! Ada yang bisa saya bantu tentang kejuaraan taekwondo?",
			"Hi! 🌟 Senang bertemu dengan Anda! Mau tanya tentang perlombaan apa hari ini?",
			"Selamat datang! 🎉 Silakan tanyakan apa saja tentang kejuaraan taekwondo!",
			"Halo! 🥋 Saya siap membantu Anda dengan informasi lengkap tentang kompetisi taekwondo!",
		},
	},
	{
		intent:   IntentThanks,
		patterns: compile(`terima kasih`, `makasih`, `thanks`, `thank you`, `thx`, `tengkyu`),
		variants: []string{
			"Sama-sama! 🙏 Senang bisa membantu. Jangan ragu bertanya lagi ya! Semoga sukses di perlombaan! 🏆",
		},
	},
	{
		intent: IntentContact,
		patterns: compile(
			`hubungi.*admin`,
			`kontak.*admin`,
			`cara.*menghubungi`,
			`bagaimana.*cara.*menghubungi`,
			`nomor.*admin`,
			`whatsapp.*admin`,
			`telepon.*admin`,
			`contact`,
			`cs`,
			`customer.*service`,
			`bantuan.*langsung`,
		),
		variants: []string{
			"Kamu bisa langsung hubungi admin kami di " + contactsPlaceholder + ". Tim kami siap membantu kamu 24/7! Jangan ragu untuk bertanya ya! 📞💬",
		},
	},
	{
		intent: IntentTraining,
		patterns: compile(
			`latihan`,
			`training`,
			`persiapan.*lomba`,
			`gimana.*persiapan`,
			`tips.*latihan`,
			`cara.*latihan`,
			`persiapan.*fisik`,
			`mental.*preparation`,
		),
		variants: []string{
			"Untuk persiapan lomba, pastikan latihan rutin minimal 3x seminggu. Fokus pada teknik dasar, stamina, dan mental. Konsultasi dengan pelatih untuk program latihan yang tepat. Jangan lupa istirahat cukup dan nutrisi seimbang! 💪🥋",
		},
	},
	{
		intent: IntentRules,
		patterns: compile(
			`peraturan`,
			`rules`,
			`aturan.*lomba`,
			`ketentuan.*lomba`,
			`regulasi`,
			`tata.*tertib`,
			`aturan.*pertandingan`,
			`sistem.*penilaian`,
		),
		variants: []string{
			"Peraturan lomba mengikuti standar nasional dan internasional taekwondo. Akan ada briefing teknis sebelum pertandingan dimulai. Semua aturan detail akan diberikan saat konfirmasi pendaftaran. Pastikan baca dengan teliti ya! 📋⚖️",
		},
	},
	{
		intent: IntentLocation,
		patterns: compile(
			`lokasi`,
			`tempat`,
			`dimana.*lomba`,
			`venue`,
			`alamat`,
			`gedung.*apa`,
			`hall.*apa`,
			`tempat.*pertandingan`,
		),
		variants: []string{
			"Lokasi lomba akan diinformasikan setelah pendaftaran dikonfirmasi. Biasanya di gedung olahraga atau hall yang memadai. Info lengkap termasuk alamat, peta, dan akses transportasi akan dikirim via email/WA! 📍🏢",
		},
	},
}

// keywordTable is only consulted when no pattern matched. Order matters.
var keywordTable = []keywordRule{
	{"daftar", IntentRegistration},
	{"syarat", IntentRequirements},
	{"kategori", IntentCategories},
	{"peralatan", IntentEquipment},
	{"perlengkapan", IntentEquipment},
	{"biaya", IntentCost},
	{"harga", IntentCost},
	{"jadwal", IntentConfirmation},
	{"sertifikat", IntentCertificates},
	{"medali", IntentCertificates},
	{"penonton", IntentSpectators},
	{"lokasi", IntentLocation},
	{"tempat", IntentLocation},
	{"latihan", IntentTraining},
	{"peraturan", IntentRules},
	{"kontak", IntentContact},
	{"hubungi", IntentContact},
}

var quickActions = []QuickAction{
	{ID: IntentRegistration.String(), Text: "Cara mendaftar kompetisi", Icon: "📝"},
	{ID: IntentRequirements.String(), Text: "Syarat peserta", Icon: "✅"},
	{ID: IntentCost.String(), Text: "Biaya pendaftaran", Icon: "💰"},
	{ID: IntentCategories.String(), Text: "Kategori lomba", Icon: "🏆"},
	{ID: IntentContact.String(), Text: "Hubungi admin", Icon: "📞"},
}

// byIntent indexes intentTable. Built once; init panics on a table that
// misses an intent, declares one twice, or routes a keyword nowhere.
var byIntent [intentCount]*intentRule

func init() {
	for i := range intentTable {
		rule := &intentTable[i]
		if rule.intent == IntentUnknown || rule.intent >= intentCount {
			panic(fmt.Sprintf("chatbot: invalid intent %d in rule table", rule.intent))
		}
		if byIntent[rule.intent] != nil {
			panic(fmt.Sprintf("chatbot: intent %s declared twice", rule.intent))
		}
		if len(rule.patterns) == 0 || len(rule.variants) == 0 {
			panic(fmt.Sprintf("chatbot: intent %s needs patterns and responses", rule.intent))
		}
		byIntent[rule.intent] = rule
	}

	for i := IntentRegistration; i < intentCount; i++ {
		if byIntent[i] == nil {
			panic(fmt.Sprintf("chatbot: intent %s has no rules", i))
		}
	}

	for _, kw := range keywordTable {
		if kw.intent == IntentUnknown || kw.intent >= intentCount {
			panic(fmt.Sprintf("chatbot: keyword %q routes to an undeclared intent", kw.keyword))
		}
	}
}
