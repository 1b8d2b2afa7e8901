package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_NoKeywordsFallsBackToGeneral(t *testing.T) {
	for _, text := range []string{"", "   ", "hello there", "سلام، حالش خوبه", "!!!"} {
		assert.Equal(t, CategoryGeneral, Classify(text), "text %q", text)
	}
}

func TestClassify_SingleCategoryKeywords(t *testing.T) {
	tests := []struct {
		text string
		want Category
	}{
		{"از دیشب سه بار استفراغ کرده", CategoryGI},
		{"مدفوعش شل شده و اسهال داره", CategoryGI},
		{"my dog keeps vomiting", CategoryGI},
		{"سرفه می‌کنه", CategoryResp},
		{"خس‌خس داره", CategoryResp},
		{"coughing and wheezing at night", CategoryResp},
		{"خیلی بی‌حال شده", CategoryGeneral},
		{"seems lethargic", CategoryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), "text %q", tt.text)
	}
}

func TestClassify_TieGoesToFirstCategory(t *testing.T) {
	// GI=1, RESP=1
	assert.Equal(t, CategoryGI, Classify("استفراغ و سرفه"))
	// RESP=1, GENERAL=1
	assert.Equal(t, CategoryResp, Classify("cough and fever"))
}

func TestClassify_CountsDistinctKeywordsNotOccurrences(t *testing.T) {
	// اسهال repetido cuenta una vez (GI=1); سرفه + تنگی نفس => RESP=2
	assert.Equal(t, CategoryResp, Classify("اسهال اسهال اسهال، سرفه و تنگی نفس"))
}

func TestClassify_IsDeterministic(t *testing.T) {
	text := "بی‌حاله و استفراغ می‌کنه"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestKeywordClassifierWith_NormalizesLists(t *testing.T) {
	c := NewKeywordClassifierWith(map[Category][]string{
		CategoryResp: {"عطسه‌ها", "SNEEZE", "sneeze", "  "},
	})
	assert.Equal(t, CategoryResp, c.Classify("عطسه ها زیاد شده"))
	assert.Equal(t, 1, c.Score(CategoryResp, Normalize("Sneeze!")))
	assert.Equal(t, CategoryGeneral, c.Classify("استفراغ"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "نفس نفس", Normalize("نفس‌نفس"))
	assert.Equal(t, "no blood", Normalize("No Blood"))
}

func TestFollowup(t *testing.T) {
	p, err := Followup(CategoryGI, 2)
	require.NoError(t, err)
	assert.Contains(t, p.Text, "خون")
	assert.NotEmpty(t, p.Choices)

	_, err = Followup(CategoryGI, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Followup(CategoryGI, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// categoría desconocida => guion GENERAL
	unknown, err := Followup(Category("DERM"), 1)
	require.NoError(t, err)
	general, _ := Followup(CategoryGeneral, 1)
	assert.Equal(t, general, unknown)
	assert.Equal(t, Intro(CategoryGeneral), Intro(Category("DERM")))
}

func TestScripts_EveryCategoryHasThreeFollowups(t *testing.T) {
	for _, cat := range Categories {
		s := ScriptFor(cat)
		assert.NotEmpty(t, s.Intro, "category %s", cat)
		for i, p := range s.Followups {
			assert.NotEmpty(t, p.Text, "category %s followup %d", cat, i+1)
			assert.NotEmpty(t, p.Choices, "category %s followup %d", cat, i+1)
		}
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryGI, ParseCategory("GI"))
	assert.Equal(t, CategoryResp, ParseCategory("RESP"))
	assert.Equal(t, CategoryGeneral, ParseCategory("gi"))
	assert.Equal(t, CategoryGeneral, ParseCategory(""))
}
