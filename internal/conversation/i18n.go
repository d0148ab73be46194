package conversation

import "github.com/kyawzl/mahabote-bot/internal/mahabote"

// chatText holds every chat prompt in both languages. Lookups fall back to
// Myanmar when a key is missing on the English side.
var chatText = map[mahabote.Language]map[string]string{
	mahabote.LangMyanmar: {
		"greeting": "🔮 မင်္ဂလာပါ! **Su Mon Myint Oo မဟာဘုတ် ဗေဒင် & Tarot** မှ ကြိုဆိုပါတယ်။\n\n" +
			"သင့်ရဲ့ မွေးနေ့ ဗေဒင် ဟောစာတမ်း ပြုစုပေးပါမယ်။\n" +
			"ကျေးဇူးပြု၍ သင့်ရဲ့ **အမည်** ကို ရိုက်ထည့်ပေးပါ။ 🙏",
		"ask_name": "ကျေးဇူးပြု၍ သင့်ရဲ့ အမည်ကို ရိုက်ထည့်ပေးပါ။ 🙏",
		"ask_dob": "ကျေးဇူးတင်ပါတယ် **%s** ရှင့်!\n\n" +
			"သင့်ရဲ့ **မွေးနေ့ရက်စွဲ** ကို ပေးပါ။\n" +
			"ဥပမာ - `1990-05-15` (နှစ်-လ-ရက်) ပုံစံဖြင့် ရိုက်ထည့်ပေးပါ။ 📅",
		"invalid_date": "❌ ရက်စွဲ ပုံစံ မမှန်ပါ။\n\n" +
			"ကျေးဇူးပြု၍ `YYYY-MM-DD` ပုံစံဖြင့် ထပ်မံ ရိုက်ထည့်ပေးပါ။\n" +
			"ဥပမာ: `1990-05-15` 📅",
		"ask_wednesday": "သင် **ဗုဒ္ဓဟူးနေ့** ဖွားဖြစ်ပါတယ်!\n\n" +
			"မဟာဘုတ် ဗေဒင်တွင် ဗုဒ္ဓဟူးနေ့ကို နှစ်ပိုင်း ခွဲပါတယ်:\n" +
			"• **နံနက်** (မွန်းတည့်မတိုင်မီ) = ဗုဒ္ဓဂြိုဟ်\n" +
			"• **ညနေ** (မွန်းတည့်ပြီးနောက်) = ရာဟုဂြိုဟ်\n\n" +
			"သင် **နံနက်** ဖွားလား၊ **ညနေ** ဖွားလား?\n" +
			"(`နံနက်` သို့မဟုတ် `ညနေ` ဟု ရိုက်ထည့်ပေးပါ) ⏰",
		"wednesday_invalid": "ကျေးဇူးပြု၍ `နံနက်` (morning) သို့မဟုတ် `ညနေ` (afternoon) " +
			"ဟု ရိုက်ထည့်ပေးပါ။ ⏰",
		"calc_error": "❌ တွက်ချက်ရာတွင် အမှားရှိပါသည်: %s\nကျေးဇူးပြု၍ ထပ်မံ ကြိုးစားပါ။",
		"forecast_done": "၆ လ ဟောစာတမ်းကို ပြသပေးခဲ့ပြီး ဖြစ်ပါတယ်။\n\n" +
			"ပိုမိုတိကျသော Tarot မေးခွန်းများ မေးမြန်းရန် ရက်ချိန်း ယူနိုင်ပါသည်:\n" +
			"👉 **[Tarot ရက်ချိန်း ယူရန် နှိပ်ပါ](/booking)** 🙏",
		"thank_response": "ရပါတယ်ရှင်၊ အချိန်မရွေး ထပ်မံ မေးမြန်းနိုင်ပါတယ်။\n\n" +
			"👉 **[Tarot ရက်ချိန်း ယူရန် နှိပ်ပါ](/booking)** 🙏",
		"other_response": "👉 **[Tarot ရက်ချိန်း ယူရန် နှိပ်ပါ](/booking)**\n\n" +
			"အခြား မေးခွန်း ရှိပါက မေးမြန်းနိုင်ပါတယ်။ 🙏",
		"booking_link": "📅 **Tarot ရက်ချိန်း** ယူရန် အောက်ပါ link ကို နှိပ်ပါ:\n\n" +
			"👉 [ရက်ချိန်း ယူရန်](/booking)\n\n" +
			"Su Mon Myint Oo နှင့် ဗေဒင် တိုက်ရိုက် ဆွေးနွေးနိုင်ပါမည်။ 🔮",
		"refresh":       "🙏 ကျေးဇူးပြု၍ ထပ်မံ စတင်ရန် စာမျက်နှာကို refresh လုပ်ပါ။",
		"server_error":  "❌ ဆာဗာနှင့် ချိတ်ဆက်၍ မရပါ။ ထပ်မံကြိုးစားပါ။",
		"generic_error": "❌ တစ်စုံတစ်ခု မှားယွင်းနေပါသည်။ ထပ်မံကြိုးစားပါ။",
	},
	mahabote.LangEnglish: {
		"greeting": "🔮 Welcome to **Su Mon Myint Oo Mahabote Astrology & Tarot**!\n\n" +
			"I will prepare your birth-day astrology reading.\n" +
			"Please type your **name** to begin. 🙏",
		"ask_name": "Please enter your name. 🙏",
		"ask_dob": "Thank you, **%s**!\n\n" +
			"Please enter your **date of birth**.\n" +
			"Example: `1990-05-15` (YYYY-MM-DD) 📅",
		"invalid_date": "❌ Invalid date format.\n\n" +
			"Please enter in `YYYY-MM-DD` format.\n" +
			"Example: `1990-05-15` 📅",
		"ask_wednesday": "You were born on a **Wednesday**!\n\n" +
			"In Mahabote astrology, Wednesday is split into two parts:\n" +
			"• **Morning** (before noon) = Mercury\n" +
			"• **Afternoon** (after noon) = Rahu\n\n" +
			"Were you born in the **morning** or **afternoon**?\n" +
			"(Type `morning` or `afternoon`) ⏰",
		"wednesday_invalid": "Please type `morning` or `afternoon`. ⏰",
		"calc_error":        "❌ Calculation error: %s\nPlease try again.",
		"forecast_done": "Your 6-month forecast has been displayed.\n\n" +
			"For more precise Tarot readings, book an appointment:\n" +
			"👉 **[Book a Tarot Session](/booking)** 🙏",
		"thank_response": "You're welcome! Feel free to ask anytime.\n\n" +
			"👉 **[Book a Tarot Session](/booking)** 🙏",
		"other_response": "👉 **[Book a Tarot Session](/booking)**\n\n" +
			"If you have other questions, feel free to ask. 🙏",
		"booking_link": "📅 To book a **Tarot session**, click the link below:\n\n" +
			"👉 [Book Appointment](/booking)\n\n" +
			"Consult directly with Su Mon Myint Oo. 🔮",
		"refresh":       "🙏 Please refresh the page to start again.",
		"server_error":  "❌ Cannot connect to server. Please try again.",
		"generic_error": "❌ Something went wrong. Please try again.",
	},
}

// text returns the chat prompt for key, falling back to Myanmar.
func text(lang mahabote.Language, key string) string {
	if s, ok := chatText[lang][key]; ok {
		return s
	}
	return chatText[mahabote.LangMyanmar][key]
}

// inputHints tell the frontend what kind of input each state expects.
var inputHints = map[mahabote.Language]map[State]string{
	mahabote.LangMyanmar: {
		StateGreeting:      "သင့်ရဲ့ အမည်ကို ရိုက်ထည့်ပေးပါ",
		StateAskDob:        "မွေးနေ့ ရက်စွဲကို YYYY-MM-DD ပုံစံဖြင့် ရိုက်ထည့်ပါ",
		StateAskWednesday:  "နံနက် သို့မဟုတ် ညနေ ဟု ရိုက်ထည့်ပါ",
		StateReadingShown:  "ဟုတ်ကဲ့ (ဟောစာတမ်း) ဟု ရိုက်ထည့်ပါ",
		StateForecastShown: "ရက်ချိန်း ဟု ရိုက်ထည့်၍ ရက်ချိန်း ယူပါ",
	},
	mahabote.LangEnglish: {
		StateGreeting:      "Type your name",
		StateAskDob:        "Enter date of birth in YYYY-MM-DD format",
		StateAskWednesday:  "Type morning or afternoon",
		StateReadingShown:  "Type yes to see the 6-month forecast",
		StateForecastShown: "Type appointment to book a session",
	},
}

// Hint returns the input hint for a state.
func Hint(lang mahabote.Language, state State) string {
	if h, ok := inputHints[lang][state]; ok {
		return h
	}
	return inputHints[mahabote.LangMyanmar][state]
}

// readingLabels are the section labels of the formatted reading.
type readingLabels struct {
	title           string // %s = name
	birthDate       string
	myanmarDate     string
	myanmarEra      string
	eraSuffix       string // %d = remainder
	currentAge      string
	ageFormat       string // %d age, %d era year
	currentFortune  string
	moonPhase       string
	houseLabel      string
	houseIndex      string
	natureLabel     string
	birthDayLabel   string
	planetLabel     string
	animalLabel     string
	directionLabel  string
	personality     string
	strengths       string
	forecastTitle   string // %s = name
	forecastAge     string // %d age, %d era year
	forecastFortune string
	forecastHouse   string
	doLabel         string
	dontLabel       string
}

var labels = map[mahabote.Language]readingLabels{
	mahabote.LangMyanmar: {
		title:           "🌟 **%s** ၏ မဟာဘုတ် ဗေဒင် ဟောစာတမ်း 🌟",
		birthDate:       "📅 **မွေးနေ့**",
		myanmarDate:     "🗓️ **မြန်မာရက်စွဲ**",
		myanmarEra:      "📆 **မြန်မာသက္ကရာဇ်**",
		eraSuffix:       "ခုနှစ် (ကြွင်း %d)",
		currentAge:      "🎂 **လက်ရှိအသက်**",
		ageFormat:       "%d နှစ် (မြန်မာသက္ကရာဇ် %d အရ)",
		currentFortune:  "🔮 **ယခုနှစ်ကံကြမ္မာ (သက်ရောက်အိမ်)**",
		moonPhase:       "🌙 **လ အလင်း**",
		houseLabel:      "🏠 **မဟာဘုတ်အိမ်**",
		houseIndex:      "🔢 **အိမ်ညွှန်းကိန်း**",
		natureLabel:     "📊 **သဘာဝ**",
		birthDayLabel:   "☀️ **မွေးနေ့**",
		planetLabel:     "🪐 **မွေးနေ့ဂြိုဟ်**",
		animalLabel:     "🐾 **ရာသီတိရစ္ဆာန်**",
		directionLabel:  "🧭 **ကံကောင်းသော ဦးတည်ရာ**",
		personality:     "**🧬 ကိုယ်ရည်ကိုယ်သွေး ဖတ်ခြင်း:**",
		strengths:       "**💪 အားသာချက်များ:**",
		forecastTitle:   "📅 **%s** ၏ ၆ လ ဟောစာတမ်း",
		forecastAge:     "🎂 **လက်ရှိအသက်**: %d နှစ် (မြန်မာသက္ကရာဇ် %d အရ)",
		forecastFortune: "🔮 **ယခုနှစ်ကံကြမ္မာ (သက်ရောက်အိမ်)**",
		forecastHouse:   "🏠 မူလအိမ်",
		doLabel:         "  ✅ လုပ်သင့်သည်",
		dontLabel:       "  ❌ ရှောင်ကြဉ်ရန်",
	},
	mahabote.LangEnglish: {
		title:           "🌟 Mahabote Astrology Reading for **%s** 🌟",
		birthDate:       "📅 **Birth Date**",
		myanmarDate:     "🗓️ **Myanmar Date**",
		myanmarEra:      "📆 **Myanmar Era**",
		eraSuffix:       "ME (remainder %d)",
		currentAge:      "🎂 **Current Age**",
		ageFormat:       "%d years (Myanmar Era %d)",
		currentFortune:  "🔮 **This Year's Fortune (Current House)**",
		moonPhase:       "🌙 **Moon Phase**",
		houseLabel:      "🏠 **Mahabote House**",
		houseIndex:      "🔢 **House Index**",
		natureLabel:     "📊 **Nature**",
		birthDayLabel:   "☀️ **Birth Day**",
		planetLabel:     "🪐 **Birth Planet**",
		animalLabel:     "🐾 **Zodiac Animal**",
		directionLabel:  "🧭 **Lucky Direction**",
		personality:     "**🧬 Personality Reading:**",
		strengths:       "**💪 Strengths:**",
		forecastTitle:   "📅 6-Month Forecast for **%s**",
		forecastAge:     "🎂 **Current Age**: %d years (Myanmar Era %d)",
		forecastFortune: "🔮 **This Year's Fortune (Current House)**",
		forecastHouse:   "🏠 Birth House",
		doLabel:         "  ✅ DO",
		dontLabel:       "  ❌ DON'T",
	},
}

// promo is appended after the forecast to pitch the paid Tarot session.
var promo = map[mahabote.Language]string{
	mahabote.LangMyanmar: "\n═══════════════════════════════════\n" +
		"🔮 **Tarot vs မဟာဘုတ် — ဘာကွာလဲ?**\n" +
		"═══════════════════════════════════\n\n" +
		"📖 **မဟာဘုတ် ဗေဒင်** (အခမဲ့ — ယခု ရရှိပြီး)\n" +
		"• မွေးနေ့ အခြေပြု ယေဘူယျ ဟောကိန်းများ\n" +
		"• ၆ လ ခန့်မှန်းခြင်း (အထွေထွေ)\n" +
		"• ကံကြမ္မာ လမ်းကြောင်း အကြမ်းဖျင်း\n\n" +
		"🃏 **Tarot ကတ် ဖတ်ခြင်း** (30,000 ကျပ်)\n" +
		"• သင့်ဘဝ အခြေအနေ တိတိပပ ဖတ်ခြင်း\n" +
		"• အချစ်ရေး၊ အလုပ်၊ ငွေကြေး → တိကျသော အဖြေများ\n" +
		"• ရှောင်ရန်/လုပ်ရန် အသေးစိတ် လမ်းညွှန်ချက်\n" +
		"• Su Mon Myint Oo နှင့် တိုက်ရိုက် ဆွေးနွေး (၃၅ မိနစ်)\n\n" +
		"💰 **အထူးစျေးနှုန်း: ၃၀,၀၀၀ ကျပ် (KPay ဖြင့် ပေးချေနိုင်ပါသည်)** 💰\n\n" +
		"🎯 မဟာဘုတ်က ကံကြမ္မာ လမ်းကြောင်းကို ပြပါတယ်...\n" +
		"🃏 Tarot က **ဘယ်လို ရွေးချယ်ရမလဲ** ကို ပြပါတယ်!\n\n" +
		"👉 **[Tarot ရက်ချိန်း ယူရန် နှိပ်ပါ](/booking)**",
	mahabote.LangEnglish: "\n═══════════════════════════════════\n" +
		"🔮 **Tarot vs Mahabote — What's the difference?**\n" +
		"═══════════════════════════════════\n\n" +
		"📖 **Mahabote Astrology** (Free — you just received it)\n" +
		"• General predictions based on birth day\n" +
		"• 6-month forecast (general guidance)\n" +
		"• Rough destiny path overview\n\n" +
		"🃏 **Tarot Card Reading** (30,000 MMK)\n" +
		"• Precise reading of your current life situation\n" +
		"• Love, career, finances → specific answers\n" +
		"• Detailed do/don't guidance\n" +
		"• Direct consultation with Su Mon Myint Oo (35 min)\n\n" +
		"💰 **Special price: 30,000 MMK (Pay via KPay)** 💰\n\n" +
		"🎯 Mahabote shows you the path of destiny...\n" +
		"🃏 Tarot shows you **how to choose**!\n\n" +
		"👉 **[Book a Tarot Session](/booking)**",
}
