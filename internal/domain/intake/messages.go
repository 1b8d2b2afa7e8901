package intake

import (
	"strings"

	"pet-triage/internal/domain/pets"
	"pet-triage/internal/domain/triage"
)

// Disparadores y comandos reconocidos.
const (
	TriggerBegin   = "شروع"
	TriggerRestart = "شروع مجدد"
	TriggerCall    = "درخواست تماس با دامپزشک"
	TriggerChat    = "درخواست چت آنلاین با دامپزشک"

	CmdBegin   = "/begin"
	CmdRestart = "/restart"
	CmdCancel  = "/cancel"
	CmdStart   = "/start"
	CmdMenu    = "/menu"
)

// Etiquetas de especie ofrecidas en el paso SPECIES.
const (
	LabelDog = "سگ"
	LabelCat = "گربه"
)

// ParseSpecies solo acepta exactamente una de las dos etiquetas.
func ParseSpecies(label string) (pets.Species, bool) {
	switch label {
	case LabelDog:
		return pets.SpeciesDog, true
	case LabelCat:
		return pets.SpeciesCat, true
	default:
		return "", false
	}
}

var (
	mainMenuKeyboard   = [][]string{{TriggerBegin}}
	speciesKeyboard    = [][]string{{LabelDog, LabelCat}}
	postResultKeyboard = [][]string{{TriggerRestart}, {TriggerCall, TriggerChat}}
)

const (
	textMainMenu  = "برای شروع ارزیابی حیوان خانگی، روی دکمه «شروع» بزن."
	textBegin     = "خیلی خوب، از ابتدا شروع می‌کنیم 🌱"
	textSpecies   = "گونه حیوان رو انتخاب کن:"
	textName      = "اسم حیوانت چیه؟"
	textAge       = "سن تقریبی حیوان چقدره؟ (مثلاً: ۲ سال، ۸ ماه)"
	textWeight    = "وزن حدودی حیوان چقدره؟ (به کیلوگرم، مثلاً: ۴.۵)"
	textCondition = "آیا بیماری زمینه‌ای مهمی داره؟ (مثلاً بیماری قلبی، کلیوی و ...)\n" +
		"اگر نداره بنویس: " + pets.NoConditions
	textComplaint = "خیلی هم خوب ✅\n" +
		"حالا لطفاً مشکل فعلی حیوانت رو کامل برام توضیح بده.\n" +
		"هرچیزی به ذهنت می‌رسه بنویس: از کی شروع شده، چه علامت‌هایی داره، رفتارش چطوره و ..."
	textCancelled = "فرایند ثبت اطلاعات متوقف شد. هر زمان خواستی دوباره /start رو بزن."

	textProfileNotSaved = "⚠️ ذخیره مشخصات حیوان با خطا مواجه شد، ولی ارزیابی ادامه پیدا می‌کنه."
	textCaseNotSaved    = "⚠️ این پرونده ذخیره نشد؛ نتیجه ارزیابی فقط همین‌جا نمایش داده می‌شود."

	headlineEmergency = "🔴 سطح تریاژ: اورژانسی"
	headlineVisitSoon = "🟠 سطح تریاژ: نیازمند ویزیت در اولین فرصت"
	headlineHomeCare  = "🟢 سطح تریاژ: قابل پیگیری با مراقبت خانگی (در حال حاضر)"

	textNextSteps = "اگر دوست داری می‌تونی از همین‌جا:\n" +
		"• یک مورد جدید را شروع کنی\n" +
		"• یا برای مشاوره مستقیم با دامپزشک درخواست تماس/چت بدهی."
)

func mainMenuMessage() Message {
	return Message{Text: textMainMenu, Keyboard: mainMenuKeyboard}
}

func speciesMessage() Message {
	return Message{Text: textSpecies, Keyboard: speciesKeyboard}
}

func promptMessage(p triage.Prompt) Message {
	return Message{Text: p.Text, Keyboard: p.Choices}
}

// Headline es la línea de nivel del mensaje de resultado.
func Headline(level triage.Level) string {
	switch level {
	case triage.LevelEmergency:
		return headlineEmergency
	case triage.LevelVisitSoon:
		return headlineVisitSoon
	default:
		return headlineHomeCare
	}
}

// FormatResult arma el mensaje final; caseID vacío se muestra como "—".
func FormatResult(caseID string, res triage.Result) string {
	if caseID == "" {
		caseID = "—"
	}
	reasons := "—"
	if len(res.Reasons) > 0 {
		lines := make([]string, 0, len(res.Reasons))
		for _, r := range res.Reasons {
			lines = append(lines, "• "+r)
		}
		reasons = strings.Join(lines, "\n")
	}

	var b strings.Builder
	b.WriteString(Headline(res.Level))
	b.WriteString("\n\nشناسه این پرونده:\n")
	b.WriteString(caseID)
	b.WriteString("\n\nدلایل این ارزیابی:\n")
	b.WriteString(reasons)
	b.WriteString("\n\n")
	b.WriteString(res.Advice)
	b.WriteString("\n\n")
	b.WriteString(textNextSteps)
	return b.String()
}
