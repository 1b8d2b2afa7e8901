package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_IsPure(t *testing.T) {
	inputs := [][4]string{
		{"GI", "۳ بار یا بیشتر", "رد خون دیدم", "تقریباً نمی‌خورد و نمی‌نوشد"},
		{"RESP", "نمی‌دانم", "نفس‌نفس با دهان باز", ""},
		{"GENERAL", "بی‌حالی شدید", "اشتها طبیعی است", "هیچ علامت دیگری ندیدم"},
		{"GENERAL", "", "", ""},
	}
	for _, in := range inputs {
		cat := Category(in[0])
		a := Decide(cat, in[1], in[2], in[3])
		b := Decide(cat, in[1], in[2], in[3])
		assert.Equal(t, a, b)
		assert.NotEmpty(t, a.Reasons)
		assert.NotEmpty(t, a.Advice)
	}
}

func TestDecide_GI_BloodNeverHomeCare(t *testing.T) {
	bloodAnswers := []string{
		"رد خون دیدم", "blood in the stool", "کمی خون بود",
		"no blood yesterday, but today there is blood in the stool",
		"دیروز خون ندیدم ولی امروز خون تو مدفوعش بود",
	}
	others := []string{"", "۱-۲ بار", "می‌خورد و می‌نوشد", "eating normally", "نمی‌دانم"}

	for _, f2 := range bloodAnswers {
		for _, f1 := range others {
			for _, f3 := range others {
				res := Decide(CategoryGI, f1, f2, f3)
				assert.NotEqual(t, LevelHomeCare, res.Level, "f1=%q f2=%q f3=%q", f1, f2, f3)
				assert.Equal(t, giRules[0].reason, res.Reasons[0])
			}
		}
	}
}

func TestDecide_GI_NegatedBloodDoesNotEscalate(t *testing.T) {
	for _, f2 := range []string{"خون ندیدم", "no blood seen", "بدون خون", "no blood, didn't see blood either"} {
		res := Decide(CategoryGI, "۱-۲ بار", f2, "می‌خورد و می‌نوشد")
		assert.Equal(t, LevelHomeCare, res.Level, "f2=%q", f2)
		assert.Equal(t, []string{reasonGIDefault}, res.Reasons)
		assert.Equal(t, adviceGIHomeCare, res.Advice)
	}
}

func TestDecide_GI_FrequencyOnly(t *testing.T) {
	res := Decide(CategoryGI, "3+ times", "no blood seen", "eating normally")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{giRules[1].reason}, res.Reasons)
	assert.Equal(t, adviceGIVisitSoon, res.Advice)

	// misma corrida con las opciones sugeridas
	res = Decide(CategoryGI, "۳ بار یا بیشتر", "خون ندیدم", "می‌خورد و می‌نوشد")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{giRules[1].reason}, res.Reasons)
}

func TestDecide_GI_ReasonsKeepCheckOrder(t *testing.T) {
	res := Decide(CategoryGI, "۳ بار یا بیشتر", "رد خون دیدم", "تقریباً نمی‌خورد و نمی‌نوشد")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{giRules[0].reason, giRules[1].reason, giRules[2].reason}, res.Reasons)
}

func TestDecide_GI_NegatedRefusalDoesNotEscalate(t *testing.T) {
	res := Decide(CategoryGI, "۱-۲ بار", "خون ندیدم", "not refusing, eating fine")
	assert.Equal(t, LevelHomeCare, res.Level)

	res = Decide(CategoryGI, "۱-۲ بار", "خون ندیدم", "was not refusing yesterday, refuses food today")
	assert.Equal(t, LevelVisitSoon, res.Level)
}

func TestDecide_General_NegatedSeverityThenSevere(t *testing.T) {
	res := Decide(CategoryGeneral, "not severe yesterday, severe today", "", "")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{generalRules[0].reason}, res.Reasons)

	res = Decide(CategoryGeneral, "not severe", "", "")
	assert.Equal(t, LevelHomeCare, res.Level)
}

func TestDecide_Resp_NegatedGumColourStillEmergency(t *testing.T) {
	// sin negaciones en RESP: ante la duda, emergencia
	res := Decide(CategoryResp, "", "gums are not pale or blue", "")
	assert.Equal(t, LevelEmergency, res.Level)
}

func TestDecide_GI_ReducedIntakeIsNotRefusal(t *testing.T) {
	res := Decide(CategoryGI, "۱-۲ بار", "خون ندیدم", "کمتر از معمول می‌خورد/می‌نوشد")
	assert.Equal(t, LevelHomeCare, res.Level)
}

func TestDecide_Resp_CyanosisAlwaysEmergency(t *testing.T) {
	for _, f3 := range []string{"", "راه می‌رود و رفتار نسبتاً طبیعی دارد", "walking normally", "زمین‌گیر شده / گاهی انگار غش می‌کند"} {
		res := Decide(CategoryResp, "تنفس فقط تندتر شده", "لب‌ها یا لثه‌ها کبود یا خیلی سفید به‌نظر می‌رسند", f3)
		assert.Equal(t, LevelEmergency, res.Level, "f3=%q", f3)
		assert.Equal(t, respRules[0].reason, res.Reasons[0])
		assert.Equal(t, adviceRespEmergency, res.Advice)
	}
}

func TestDecide_Resp_AllTriggersAccumulate(t *testing.T) {
	res := Decide(CategoryResp, "", "blue gums, open mouth breathing", "collapsed twice")
	assert.Equal(t, LevelEmergency, res.Level)
	assert.Equal(t, []string{respRules[0].reason, respRules[1].reason, respRules[2].reason}, res.Reasons)
}

func TestDecide_Resp_NeverHomeCare(t *testing.T) {
	res := Decide(CategoryResp, "", "", "")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{reasonRespPromptExam}, res.Reasons)
	assert.Equal(t, adviceRespPromptExam, res.Advice)

	res = Decide(CategoryResp, "تنفس فقط تندتر شده", "دهان بسته / رنگ لثه‌ها طبیعی است", "راه می‌رود و رفتار نسبتاً طبیعی دارد")
	assert.Equal(t, LevelVisitSoon, res.Level)
}

func TestDecide_General_OneTriggerSuffices(t *testing.T) {
	res := Decide(CategoryGeneral, "severe", "normal appetite", "")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{generalRules[0].reason}, res.Reasons)
	assert.Equal(t, adviceGeneralVisitSoon, res.Advice)

	res = Decide(CategoryGeneral, "بی‌حالی خفیف", "تقریباً نمی‌خورد", "")
	assert.Equal(t, LevelVisitSoon, res.Level)
	assert.Equal(t, []string{generalRules[1].reason}, res.Reasons)
}

func TestDecide_MissingAnswersFailSafe(t *testing.T) {
	gi := Decide(CategoryGI, "", "", "")
	assert.Equal(t, LevelHomeCare, gi.Level)
	assert.Equal(t, []string{reasonGIDefault}, gi.Reasons)

	gen := Decide(CategoryGeneral, "", "", "")
	assert.Equal(t, LevelHomeCare, gen.Level)
	assert.Equal(t, []string{reasonGeneralDefault}, gen.Reasons)
	assert.Equal(t, adviceGeneralHomeCare, gen.Advice)
}

func TestDecide_UnknownCategoryUsesGeneralRules(t *testing.T) {
	assert.Equal(t,
		Decide(CategoryGeneral, "بی‌حالی شدید", "", ""),
		Decide(Category("DERM"), "بی‌حالی شدید", "", ""),
	)
	assert.Equal(t,
		Decide(CategoryGeneral, "", "", ""),
		Decide(Category(""), "", "", ""),
	)
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, LevelHomeCare.Rank(), LevelVisitSoon.Rank())
	assert.Less(t, LevelVisitSoon.Rank(), LevelEmergency.Rank())
	assert.Equal(t, LevelEmergency, Max(LevelEmergency, LevelVisitSoon))
	assert.Equal(t, LevelVisitSoon, Max(LevelHomeCare, LevelVisitSoon))
	assert.Equal(t, LevelHomeCare, Max(LevelHomeCare, LevelHomeCare))
}
