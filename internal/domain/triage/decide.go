package triage

import "strings"

// rule es un test de substring sobre una respuesta ya normalizada.
// Las frases de negación se borran antes de buscar los tokens: "no blood
// yesterday, blood today" sigue disparando.
type rule struct {
	answer    int // 1..3
	tokens    []string
	negations []string
	level     Level
	reason    string
}

func (r rule) matches(answers [3]string) bool {
	a := answers[r.answer-1]
	if a == "" {
		return false
	}
	a = stripNegations(a, r.negations)
	for _, t := range r.tokens {
		if strings.Contains(a, t) {
			return true
		}
	}
	return false
}

func stripNegations(answer string, negations []string) string {
	if len(negations) == 0 {
		return answer
	}
	pairs := make([]string, 0, 2*len(negations))
	for _, n := range negations {
		pairs = append(pairs, n, " ")
	}
	return strings.NewReplacer(pairs...).Replace(answer)
}

// refusalNegations: "not refusing" no es rechazo.
var refusalNegations = []string{
	"not refusing", "isn't refusing", "is not refusing", "no refusal",
}

var refusalTokens = []string{
	"نمی خورد", "نمیخورد", "نمی خوره", "نمی نوشد", "نمینوشد",
	"not eating", "not drinking", "won't eat", "won't drink", "refus",
	"stopped eating", "stopped drinking",
}

var giRules = []rule{
	{
		answer:    2,
		tokens:    []string{"خون", "blood"},
		negations: []string{"خون ندیدم", "بدون خون", "خون نبود", "خون نداشت", "no blood", "without blood", "not seen blood", "didn't see blood", "did not see blood"},
		level:     LevelVisitSoon,
		reason:    "وجود خون در استفراغ یا مدفوع می‌تواند نشانه مشکل جدی باشد.",
	},
	{
		answer: 1,
		tokens: []string{"۳ بار", "سه بار", "بیشتر", "۳+", "3+", "3 times", "three times", "more"},
		level:  LevelVisitSoon,
		reason: "استفراغ/اسهال مکرر در ۲۴ ساعت نیازمند بررسی دامپزشکی است.",
	},
	{
		answer:    3,
		tokens:    refusalTokens,
		negations: refusalNegations,
		level:     LevelVisitSoon,
		reason: "کاهش شدید خوردن و نوشیدن می‌تواند باعث کم‌آبی و بدتر شدن وضعیت شود.",
	},
}

var respRules = []rule{
	{
		answer: 2,
		tokens: []string{"کبود", "خیلی سفید", "خیلی سفيد", "blue", "cyano", "pale", "very white"},
		level:  LevelEmergency,
		reason: "تغییر رنگ لثه‌ها به سمت کبود/خیلی سفید می‌تواند نشانه کمبود اکسیژن یا شوک باشد.",
	},
	{
		answer: 2,
		tokens: []string{"دهان باز", "open mouth", "open-mouth", "mouth open"},
		level:  LevelEmergency,
		reason: "تنفس با دهان باز در حالت استراحت می‌تواند علامت اورژانسی باشد.",
	},
	{
		answer: 3,
		tokens: []string{"زمین گیر", "زمینگیر", "غش", "collapse", "faint", "can't stand", "cannot stand", "unable to stand"},
		level:  LevelEmergency,
		reason: "بی‌ثباتی وضعیت عمومی و عدم توانایی حرکت می‌تواند بسیار خطرناک باشد.",
	},
}

var generalRules = []rule{
	{
		answer:    1,
		tokens:    []string{"شدید", "severe"},
		negations: []string{"not severe", "غیر شدید"},
		level:     LevelVisitSoon,
		reason:    "بی‌حالی شدید نیازمند معاینه حضوری است.",
	},
	{
		answer:    2,
		tokens:    append([]string{"no appetite"}, refusalTokens...),
		negations: refusalNegations,
		level:     LevelVisitSoon,
		reason: "قطع اشتها برای بیش از ۲۴ ساعت (خصوصاً در گربه‌ها) می‌تواند خطرناک باشد.",
	},
}

const (
	reasonGIDefault      = "در حال حاضر علامت واضح اورژانسی گزارش نشده است."
	reasonRespPromptExam = "علائم تنفسی معمولاً نیازمند معاینه نسبتاً سریع دامپزشکی هستند."
	reasonGeneralDefault = "علائم توصیف‌شده در حال حاضر بیشتر خفیف تا متوسط هستند و می‌توانند تحت نظر گرفته شوند."

	adviceGIHomeCare = "فعلاً می‌توان با مراقبت خانگی حیوان را تحت نظر گرفت:\n" +
		"• ۱۲ ساعت غذای جامد را قطع کنید اما آب در دسترس باشد.\n" +
		"• اگر استفراغ/اسهال ادامه‌دار شد یا بدتر شد، حتماً برای معاینه حضوری مراجعه کنید.\n" +
		"• در صورت مشاهده خون، بی‌حالی شدید یا قطع کامل خوردن/نوشیدن، مراجعه اورژانسی لازم است."
	adviceGIVisitSoon = "با توجه به توضیحات شما، بهتر است در اولین فرصت (امروز یا حداکثر فردا) " +
		"برای معاینه حضوری دامپزشکی مراجعه کنید.\n" +
		"در صورت بدتر شدن علائم، مراجعه اورژانسی را در نظر بگیرید."
	adviceRespEmergency = "این وضعیت به‌عنوان اورژانس تنفسی در نظر گرفته می‌شود.\n" +
		"• در اسرع وقت به نزدیک‌ترین مرکز دامپزشکی مراجعه کنید.\n" +
		"• از وارد کردن استرس و جابجایی غیرضروری خودداری کنید.\n" +
		"• حیوان را در وضعیت راحت و با حداقل فشار روی قفسه سینه نگه دارید."
	adviceRespPromptExam = "در حال حاضر علائم نیازمند معاینه نسبتاً سریع دامپزشکی هستند.\n" +
		"توصیه می‌شود امروز یا در اولین فرصت برای معاینه حضوری مراجعه کنید.\n" +
		"در صورت بدتر شدن تنفس، کبودی لثه‌ها یا بی‌حالی شدید، مراجعه اورژانسی لازم است."
	adviceGeneralHomeCare = "فعلاً می‌توانید حیوان را در منزل تحت نظر نگه دارید.\n" +
		"اگر بی‌حالی بیش از ۲۴ ساعت ادامه داشت یا علائم جدیدی اضافه شد " +
		"(استفراغ، اسهال، تنفس غیرطبیعی)، برای معاینه حضوری مراجعه کنید."
	adviceGeneralVisitSoon = "با توجه به توضیحات شما، بهتر است در اولین فرصت برای معاینه حضوری " +
		"به دامپزشک مراجعه کنید تا علت بی‌حالی بررسی شود."
)

// Decide es función pura de (categoría, f1, f2, f3).
// Respuestas vacías no disparan reglas: el resultado cae en el default de la categoría.
func Decide(cat Category, f1, f2, f3 string) Result {
	answers := [3]string{
		strings.TrimSpace(Normalize(f1)),
		strings.TrimSpace(Normalize(f2)),
		strings.TrimSpace(Normalize(f3)),
	}

	switch cat {
	case CategoryGI:
		level, reasons := evaluate(giRules, answers)
		if level == LevelHomeCare {
			return Result{Level: level, Reasons: append(reasons, reasonGIDefault), Advice: adviceGIHomeCare}
		}
		return Result{Level: level, Reasons: reasons, Advice: adviceGIVisitSoon}

	case CategoryResp:
		level, reasons := evaluate(respRules, answers)
		if level == LevelEmergency {
			return Result{Level: level, Reasons: reasons, Advice: adviceRespEmergency}
		}
		// lo respiratorio nunca queda en home_care
		return Result{
			Level:   LevelVisitSoon,
			Reasons: append(reasons, reasonRespPromptExam),
			Advice:  adviceRespPromptExam,
		}

	default:
		level, reasons := evaluate(generalRules, answers)
		if level == LevelHomeCare {
			return Result{Level: level, Reasons: append(reasons, reasonGeneralDefault), Advice: adviceGeneralHomeCare}
		}
		return Result{Level: level, Reasons: reasons, Advice: adviceGeneralVisitSoon}
	}
}

// evaluate aplica todas las reglas en orden; cada regla que dispara suma una razón.
func evaluate(rules []rule, answers [3]string) (Level, []string) {
	level := LevelHomeCare
	reasons := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		if !r.matches(answers) {
			continue
		}
		level = Max(level, r.level)
		reasons = append(reasons, r.reason)
	}
	return level, reasons
}
