package triage

import "fmt"

// Prompt es una pregunta con opciones sugeridas (no se validan).
type Prompt struct {
	Text    string     `json:"text"`
	Choices [][]string `json:"choices,omitempty"`
}

// Script es el guion de seguimiento de una categoría: intro + tres preguntas.
type Script struct {
	Intro     string
	Followups [3]Prompt
}

var scripts = map[Category]Script{
	CategoryGI: {
		Intro: "بر اساس توضیحاتت، به‌نظر می‌رسه مشکل بیشتر در دسته علائم گوارشی باشه.\n" +
			"الان چند سؤال دقیق‌تر می‌پرسم:",
		Followups: [3]Prompt{
			{
				Text:    "در ۲۴ ساعت گذشته تقریباً چند بار استفراغ یا اسهال داشته؟",
				Choices: [][]string{{"۱-۲ بار", "۳ بار یا بیشتر"}, {"نمی‌دانم"}},
			},
			{
				Text:    "تا جایی که دیدی، در استفراغ یا مدفوع خون وجود داشته؟",
				Choices: [][]string{{"خون ندیدم"}, {"رد خون دیدم"}, {"مشکوکم / مطمئن نیستم"}},
			},
			{
				Text: "در حال حاضر وضعیت خوردن و نوشیدن چطوره؟",
				Choices: [][]string{
					{"می‌خورد و می‌نوشد"},
					{"کمتر از معمول می‌خورد/می‌نوشد"},
					{"تقریباً نمی‌خورد و نمی‌نوشد"},
				},
			},
		},
	},
	CategoryResp: {
		Intro: "بر اساس توضیحت، احتمالاً با علائم تنفسی طرف هستیم.\n" +
			"الان چند سؤال دقیق‌تر می‌پرسم:",
		Followups: [3]Prompt{
			{
				Text:    "تنفس حیوان را چطور توصیف می‌کنی؟",
				Choices: [][]string{{"تنفس فقط تندتر شده"}, {"سختی واضح در نفس کشیدن"}, {"نمی‌دانم"}},
			},
			{
				Text: "وضعیت دهان و لثه‌ها چطوره؟",
				Choices: [][]string{
					{"دهان بسته / رنگ لثه‌ها طبیعی است"},
					{"نفس‌نفس با دهان باز"},
					{"لب‌ها یا لثه‌ها کبود یا خیلی سفید به‌نظر می‌رسند"},
				},
			},
			{
				Text: "از نظر توان حرکت و وضعیت عمومی چطور است؟",
				Choices: [][]string{
					{"راه می‌رود و رفتار نسبتاً طبیعی دارد"},
					{"بی‌حال و کم‌تحرک شده"},
					{"زمین‌گیر شده / گاهی انگار غش می‌کند"},
				},
			},
		},
	},
	CategoryGeneral: {
		Intro: "از توضیحت برمی‌آد بیشتر با علائم عمومی/سیستمی (بی‌حالی، تغییر اشتها و ...) طرف هستیم.\n" +
			"چند سؤال تکمیلی می‌پرسم:",
		Followups: [3]Prompt{
			{
				Text:    "شدت بی‌حالی را چطور ارزیابی می‌کنی؟",
				Choices: [][]string{{"بی‌حالی خفیف"}, {"بی‌حالی متوسط"}, {"بی‌حالی شدید"}},
			},
			{
				Text:    "اشتها در این یکی‌دو روز چطور بوده؟",
				Choices: [][]string{{"اشتها طبیعی است"}, {"اشتها کمتر از معمول شده"}, {"تقریباً نمی‌خورد"}},
			},
			{
				Text: "آیا علامت دیگری هم همراه بی‌حالی وجود دارد؟",
				Choices: [][]string{
					{"هیچ علامت دیگری ندیدم"},
					{"استفراغ یا اسهال هم دارد"},
					{"سرفه/عطسه یا علائم تنفسی دارد"},
					{"سایر علائم (مثلاً لنگش، درد موضعی و ...)"},
				},
			},
		},
	},
}

// ScriptFor devuelve el guion de la categoría; categorías desconocidas usan GENERAL.
func ScriptFor(cat Category) Script {
	s, ok := scripts[cat]
	if !ok {
		return scripts[CategoryGeneral]
	}
	return s
}

// Intro es la línea que precede a la primera pregunta de seguimiento.
func Intro(cat Category) string {
	return ScriptFor(cat).Intro
}

// Followup devuelve la pregunta index (1..3) de la categoría.
func Followup(cat Category, index int) (Prompt, error) {
	if index < 1 || index > len(Script{}.Followups) {
		return Prompt{}, fmt.Errorf("followup %d: %w", index, ErrInvalidInput)
	}
	return ScriptFor(cat).Followups[index-1], nil
}
