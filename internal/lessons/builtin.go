// Package lessons holds the Inscript practice lesson catalog.
package lessons

import "github.com/verte-zerg/akshara/internal/model"

// Stage identifiers used by the built-in lessons.
const (
	StageHomeRow   = "home-row"
	StageUpperRow  = "upper-row"
	StageBottomRow = "bottom-row"
	StageShift     = "shift"
	StageConjuncts = "conjuncts"
	StageWords     = "words"
)

var builtin = []model.Lesson{
	{
		ID:      1,
		Stage:   StageHomeRow,
		LabelHi: "होम रो — व्यंजन",
		LabelEn: "Home Row — Consonants",
		Keys:    []string{"प", "र", "क", "त", "च", "ट"},
	},
	{
		ID:      2,
		Stage:   StageHomeRow,
		LabelHi: "होम रो — मात्राएँ",
		LabelEn: "Home Row — Matras",
		Keys:    []string{"ो", "े", "्", "ि", "ु"},
	},
	{
		ID:      3,
		Stage:   StageHomeRow,
		LabelHi: "होम रो — संयोजन",
		LabelEn: "Home Row — Combinations",
		Keys:    []string{"क", "प", "र", "त", "च", "ट"},
		Combos: []string{
			"का", "कि", "कु", "के", "को",
			"पा", "पि", "पु", "पे", "पो",
			"रा", "रि", "रु", "रे", "रो",
			"ता", "ति", "तु", "ते", "तो",
			"चा", "चि", "चु", "चे", "चो",
			"टा", "टि", "टु", "टे", "टो",
		},
	},
	{
		ID:      4,
		Stage:   StageUpperRow,
		LabelHi: "ऊपरी रो — व्यंजन",
		LabelEn: "Upper Row — Consonants",
		Keys:    []string{"ब", "ह", "ग", "द", "ज", "ड"},
	},
	{
		ID:      5,
		Stage:   StageUpperRow,
		LabelHi: "ऊपरी रो — मात्राएँ",
		LabelEn: "Upper Row — Matras",
		Keys:    []string{"ौ", "ै", "ा", "ी", "ू"},
	},
	{
		ID:      6,
		Stage:   StageUpperRow,
		LabelHi: "ऊपरी + होम संयोजन",
		LabelEn: "Upper + Home Combos",
		Keys:    []string{"ब", "ह", "ग", "द", "ज", "ड"},
		Combos: []string{
			"बा", "बि", "बु", "बे", "बो",
			"हा", "ही", "हु", "हे", "हो",
			"गा", "गि", "गु", "गे", "गो",
			"दा", "दि", "दु", "दे", "दो",
			"जा", "जि", "जु", "जे", "जो",
			"डा", "डि", "डु", "डे", "डो",
		},
	},
	{
		ID:      7,
		Stage:   StageBottomRow,
		LabelHi: "निचली रो",
		LabelEn: "Bottom Row",
		Keys:    []string{"म", "न", "व", "ल", "स", "य", "ं"},
	},
	{
		ID:      8,
		Stage:   StageShift,
		LabelHi: "शिफ़्ट — स्वर व महाप्राण",
		LabelEn: "Shift — Vowels & Aspirates",
		Keys: []string{
			"अ", "आ", "इ", "ई", "उ", "ऊ", "ए", "ऐ", "ओ", "औ",
			"ख", "घ", "छ", "झ", "फ", "थ", "ठ", "ढ",
		},
	},
	{
		ID:      9,
		Stage:   StageConjuncts,
		LabelHi: "सामान्य संयुक्ताक्षर",
		LabelEn: "Common Conjuncts",
		Keys:    []string{"क", "त", "ज", "श", "्"},
		Combos: []string{
			"क्ष", "त्र", "ज्ञ", "श्र",
			"क्क", "त्त", "प्र", "स्त",
			"न्द", "न्त", "म्ब", "ल्ल",
			"द्ध", "द्व", "ट्ठ", "ड्ड",
		},
	},
	{
		ID:      10,
		Stage:   StageWords,
		LabelHi: "छोटे शब्द",
		LabelEn: "Short Words",
		Keys:    []string{},
		Words: []string{
			"नम", "कर", "घर", "पर", "जल", "फल", "वन", "दल", "मन", "तन",
			"रात", "दिन", "काम", "नाम", "दाम", "राम", "बात", "हाथ", "साथ", "पाठ",
			"चार", "पाँच", "सात", "दस", "सब", "अब", "तब", "जब", "कब", "यह",
			"वह", "इस", "उस", "कुछ", "बहुत", "लोग", "देश", "काल", "गाँव", "शहर",
			"पानी", "खाना", "जाना", "आना", "करना", "देना", "लेना", "कहना", "सुनना", "पढ़ना",
		},
	},
	{
		ID:      11,
		Stage:   StageWords,
		LabelHi: "बड़े शब्द",
		LabelEn: "Long Words",
		Keys:    []string{},
		Words: []string{
			"विद्यालय", "पुस्तकालय", "अध्यापक", "विद्यार्थी", "परिवार",
			"सरकार", "व्यापार", "अस्पताल", "समाचार", "स्वतंत्रता",
			"प्रधानमंत्री", "लोकतंत्र", "गणतंत्र", "अभिनेता", "कार्यक्रम",
			"शिक्षाक्रम", "परिस्थिति", "अनुभव", "प्रयोगशाला", "सहयोग",
			"प्रतिनिधि", "उत्तरदायी", "महाविद्यालय", "राजधानी", "उपलब्ध",
			"संस्कृत", "व्याकरण", "अभ्यास", "विज्ञान", "प्रकृति",
		},
	},
	{
		ID:      12,
		Stage:   StageWords,
		LabelHi: "मिश्रित अभ्यास",
		LabelEn: "Mixed Practice",
		Keys:    []string{},
		Words: []string{
			"नम", "कर", "घर", "पर", "जल", "फल", "वन", "दल", "मन", "तन",
			"रात", "दिन", "काम", "नाम", "बात", "हाथ", "साथ", "पाठ", "देश", "गाँव",
			"पानी", "खाना", "जाना", "आना", "करना", "देना", "लेना",
			"विद्यालय", "अध्यापक", "विद्यार्थी", "परिवार", "सरकार",
			"व्यापार", "समाचार", "अभ्यास", "संस्कृत", "व्याकरण",
			"प्रकृति", "अनुभव", "राजधानी", "कार्यक्रम", "लोकतंत्र",
		},
	},
}

// Builtin returns a copy of the built-in lesson table.
func Builtin() []model.Lesson {
	out := make([]model.Lesson, len(builtin))
	copy(out, builtin)
	return out
}
