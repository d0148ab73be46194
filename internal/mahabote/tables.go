package mahabote

// Traditional planet numbering: Saturn=0, Sun=1, Moon=2, Mars=3, Mercury=4,
// Jupiter=5, Venus=6, Rahu=7. Rahu stands in for the Wednesday afternoon
// birth; in the 7-house chart layout it behaves like Mercury.
const (
	PlanetSaturn  = 0
	PlanetSun     = 1
	PlanetMoon    = 2
	PlanetMars    = 3
	PlanetMercury = 4
	PlanetJupiter = 5
	PlanetVenus   = 6
	PlanetRahu    = 7
)

// RahuIndex is the weekdayPlanets slot for the Wednesday-afternoon birth.
const RahuIndex = 7

// WeekdayPlanet describes one entry of the eight-day week: the weekday name,
// its ruling planet, zodiac animal and lucky direction.
type WeekdayPlanet struct {
	NameMM      string
	NameEN      string
	PlanetMM    string
	PlanetEN    string
	AnimalMM    string
	AnimalEN    string
	DirectionMM string
	DirectionEN string
	PlanetID    int
}

// House is one of the seven Mahabote houses with its personality profile.
type House struct {
	ID            string
	NameMM        string
	NameEN        string
	Nature        string
	PersonalityMM string
	PersonalityEN string
	StrengthsMM   []string
	StrengthsEN   []string
	WeaknessesMM  []string
	WeaknessesEN  []string
}

// ForecastRuleSet holds the Do/Don't guidance lists for one house.
type ForecastRuleSet struct {
	DoMM   []string
	DontMM []string
	DoEN   []string
	DontEN []string
}

// weekdayPlanets is indexed by the calendar weekday (0=Saturday .. 6=Friday),
// with slot 7 for Rahu, the Wednesday-afternoon birth.
var weekdayPlanets = [8]WeekdayPlanet{
	{
		NameMM: "စနေ", NameEN: "Saturday",
		PlanetMM: "စနေဂြိုဟ်", PlanetEN: "Saturn",
		AnimalMM: "နဂါး", AnimalEN: "Dragon/Naga",
		DirectionMM: "အနောက်တောင်", DirectionEN: "Southwest",
		PlanetID: PlanetSaturn,
	},
	{
		NameMM: "တနင်္ဂနွေ", NameEN: "Sunday",
		PlanetMM: "နေဂြိုဟ်", PlanetEN: "Sun",
		AnimalMM: "ဂဠုန်", AnimalEN: "Garuda",
		DirectionMM: "အရှေ့မြောက်", DirectionEN: "Northeast",
		PlanetID: PlanetSun,
	},
	{
		NameMM: "တနင်္လာ", NameEN: "Monday",
		PlanetMM: "လဂြိုဟ်", PlanetEN: "Moon",
		AnimalMM: "ကျား", AnimalEN: "Tiger",
		DirectionMM: "အရှေ့", DirectionEN: "East",
		PlanetID: PlanetMoon,
	},
	{
		NameMM: "အင်္ဂါ", NameEN: "Tuesday",
		PlanetMM: "အင်္ဂါဂြိုဟ်", PlanetEN: "Mars",
		AnimalMM: "ခြင်္သေ့", AnimalEN: "Lion",
		DirectionMM: "အရှေ့တောင်", DirectionEN: "Southeast",
		PlanetID: PlanetMars,
	},
	{
		NameMM: "ဗုဒ္ဓဟူး", NameEN: "Wednesday",
		PlanetMM: "ဗုဒ္ဓဂြိုဟ်", PlanetEN: "Mercury",
		AnimalMM: "ဆင်(အစွယ်ရှိ)", AnimalEN: "Tusked Elephant",
		DirectionMM: "တောင်", DirectionEN: "South",
		PlanetID: PlanetMercury,
	},
	{
		NameMM: "ကြာသပတေး", NameEN: "Thursday",
		PlanetMM: "ကြာသပတေးဂြိုဟ်", PlanetEN: "Jupiter",
		AnimalMM: "ကြွက်", AnimalEN: "Rat",
		DirectionMM: "အနောက်", DirectionEN: "West",
		PlanetID: PlanetJupiter,
	},
	{
		NameMM: "သောကြာ", NameEN: "Friday",
		PlanetMM: "သောကြာဂြိုဟ်", PlanetEN: "Venus",
		AnimalMM: "ပူးဂဗ်", AnimalEN: "Guinea Pig",
		DirectionMM: "မြောက်", DirectionEN: "North",
		PlanetID: PlanetVenus,
	},
	{
		NameMM: "ရာဟု", NameEN: "Rahu (Wed PM)",
		PlanetMM: "ရာဟုဂြိုဟ်", PlanetEN: "Rahu",
		AnimalMM: "ဆင်(အစွယ်မဲ့)", AnimalEN: "Tuskless Elephant",
		DirectionMM: "အနောက်မြောက်", DirectionEN: "Northwest",
		PlanetID: PlanetRahu,
	},
}

// houses is the seven-house table, indexed by house index 0..6.
var houses = [7]House{
	{
		ID:     "binga",
		NameMM: "ဘင်္ဂအိမ်",
		NameEN: "Binga",
		Nature: "Impermanence/Change",
		PersonalityMM: "ဗင်္ဂအိမ်ဖွား ပုဂ္ဂိုလ်များသည် လွတ်လပ်မှုကို နှစ်သက်ပြီး စိတ်ဓာတ်တွင် " +
			"မတည်ငြိမ်မှုများ ရှိတတ်ပါသည်။ ကျန်းမာရေးနှင့် ချမ်းသာကြွယ်ဝမှု " +
			"အတက်အကျ ရှိတတ်ပြီး ဘဝနောက်ပိုင်းတွင် ဆရာအတတ်ပညာဖြင့် " +
			"အောင်မြင်တတ်ပါသည်။ စိတ်ရှည်သည်းခံမှုနှင့် တည်ငြိမ်မှုကို " +
			"လေ့ကျင့်ရန် လိုအပ်ပါသည်။",
		PersonalityEN: "People born in the House of Impermanence (Binga) value independence and may " +
			"experience nervous tension. Health and wealth tend to fluctuate. Success often " +
			"comes later in life, especially in teaching and mentoring roles.",
		StrengthsMM:  []string{"စိတ်ဓာတ်ကြံ့ခိုင်မှု", "အလုပ်ကြိုးစားမှု", "ဆရာအတတ်ပညာ"},
		StrengthsEN:  []string{"Mental Strength", "Hardworking", "Teaching"},
		WeaknessesMM: []string{"စိတ်မတည်ငြိမ်မှု", "ငွေကြေးအတက်အကျ", "စိတ်ပူပန်မှု"},
		WeaknessesEN: []string{"Restlessness", "Financial Fluctuation", "Anxiety"},
	},
	{
		ID:     "puti",
		NameMM: "ပုတိအိမ်",
		NameEN: "Puti",
		Nature: "Decomposition/Impurity",
		PersonalityMM: "ပုတိအိမ်ဖွား ပုဂ္ဂိုလ်များသည် ကျန်းမာရေး စိန်ခေါ်မှုများ " +
			"ကြုံတွေ့ရတတ်ပြီး ကိုယ်ခန္ဓာ၊ စိတ်ပိုင်း သို့မဟုတ် " +
			"စိတ်ခံစားချက်ပိုင်း ဒုက္ခများ ရှိတတ်ပါသည်။ " +
			"ဂုဏ်သိက္ခာကို ထိန်းသိမ်းရန် အထူးဂရုစိုက်ရန် လိုအပ်ပြီး " +
			"သမာဓိရှိရှိ နေထိုင်ခြင်းဖြင့် အောင်မြင်နိုင်ပါသည်။",
		PersonalityEN: "House of Reputation/Impurity (Puti) natives may face scrutiny or physical stress. " +
			"Maintaining integrity and health is their primary life lesson. They have deep hidden wisdom.",
		StrengthsMM:  []string{"ခံနိုင်ရည်ရှိမှု", "နက်နဲသောဉာဏ်", "သမာဓိ"},
		StrengthsEN:  []string{"Endurance", "Deep Wisdom", "Integrity"},
		WeaknessesMM: []string{"ကျန်းမာရေးပြဿနာ", "အတင်းအဖျင်းခံရမှု", "စိတ်ဖိစီးမှု"},
		WeaknessesEN: []string{"Health Problems", "Exposure to Gossip", "Stress"},
	},
	{
		ID:     "thike",
		NameMM: "သိုက်အိမ်",
		NameEN: "Thike",
		Nature: "Treasure/Wealth",
		PersonalityMM: "သိုက်အိမ်ဖွား ပုဂ္ဂိုလ်များသည် မိသားစုနှင့် ငွေရေးကြေးရေးကို " +
			"တန်ဖိုးထားသူများ ဖြစ်ကြသည်။ လုံခြုံမှုကို နှစ်သက်ပြီး " +
			"စုဆောင်းတတ်သော အလေ့အကျင့် ရှိပါသည်။ မိသားစု အမွေအနှစ်ကို ထိန်းသိမ်းသူများ ဖြစ်သည်။",
		PersonalityEN: "Born in the House of Accumulation/Treasure (Thike), you value security and family. " +
			"You are a natural steward of resources and deeply connected to your roots.",
		StrengthsMM:  []string{"ငွေစုဆောင်းနိုင်မှု", "မိသားစုကိုတန်ဖိုးထားမှု", "တည်ငြိမ်မှု"},
		StrengthsEN:  []string{"Saving Ability", "Family Values", "Stability"},
		WeaknessesMM: []string{"စိုးရိမ်ပူပန်မှု", "အစွဲအလမ်းကြီးမှု"},
		WeaknessesEN: []string{"Worry", "Attachment"},
	},
	{
		ID:     "marana",
		NameMM: "မရဏအိမ်",
		NameEN: "Marana",
		Nature: "Death/Transformation",
		PersonalityMM: "မရဏအိမ်ဖွား ပုဂ္ဂိုလ်များသည် ဘဝတွင် စုန်ချီတက်ချီ " +
			"အပြင်းအထန် ကြုံတွေ့ရတတ်သော်လည်း နက်နဲသော ဉာဏ်ပညာ " +
			"ရရှိသူများ ဖြစ်သည်။ အစွန်းရောက်တတ်သော သဘောရှိပြီး " +
			"ဝိညာဉ်ရေးရာတွင် ထူးချွန်တတ်ပါသည်။",
		PersonalityEN: "House of Transformation/Death (Marana) natives face steep life lessons. They live " +
			"on the edge but possess remarkable depth. Surviving challenges brings them unique wisdom.",
		StrengthsMM:  []string{"ခံနိုင်ရည်ရှိမှု", "နက်နဲသောအမြင်", "ဝိညာဉ်ရေး"},
		StrengthsEN:  []string{"Endurance", "Deep Insight", "Spirituality"},
		WeaknessesMM: []string{"ကျန်းမာရေးအန္တရာယ်", "စိတ်ဖိစီးမှု", "ဆုံးရှုံးလွယ်မှု"},
		WeaknessesEN: []string{"Health Risks", "Stress", "Prone to Loss"},
	},
	{
		ID:     "adhipati",
		NameMM: "အဓိပတိအိမ်",
		NameEN: "Adhipati",
		Nature: "Supreme Ruler",
		PersonalityMM: "အဓိပတိအိမ်ဖွား ပုဂ္ဂိုလ်များသည် အာဏာနှင့် လုပ်ပိုင်ခွင့်ကို " +
			"ရရှိတတ်သူများ ဖြစ်သည်။ တာဝန်ယူမှု မြင့်မားပြီး " +
			"လူအများကို စီမံခန္ဓဲမှု အရည်အချင်းရှိသူများ ဖြစ်တတ်ပါသည်။",
		PersonalityEN: "House of Supreme Power (Adhipati) natives are natural leaders and managers. " +
			"They command respect and take on heavy responsibilities with ease, often reaching the top.",
		StrengthsMM:  []string{"အာဏာ", "စီမံခန့်ခွဲမှု", "ပြတ်သားမှု"},
		StrengthsEN:  []string{"Power", "Management", "Decisiveness"},
		WeaknessesMM: []string{"မာနကြီးမှု", "တင်းကျပ်မှု"},
		WeaknessesEN: []string{"Pride", "Rigidity"},
	},
	{
		ID:     "yarza",
		NameMM: "ရာဇအိမ်",
		NameEN: "Yarza",
		Nature: "Nobility/King",
		PersonalityMM: "ရာဇအိမ်ဖွား ပုဂ္ဂိုလ်များသည် ရိုသေလေးစားမှု ရှိပြီး " +
			"ခေါင်းဆောင်မှု အရည်အချင်းရှိသူများ ဖြစ်တတ်ပါသည်။ " +
			"ရက်ရောလောင်းလှဲမှုနှင့် ရည်မှန်းချက်မြင့်မားမှု ရှိပြီး " +
			"ချမ်းသာကြွယ်ဝမှုကို ဆွဲဆောင်နိုင်စွမ်း ရှိပါသည်။",
		PersonalityEN: "House of Wealth/Nobility (Yarza) natives are respected, logical, and often lead others. " +
			"They attract success through dignity and exert a natural influence on their surroundings.",
		StrengthsMM:  []string{"ဂုဏ်သိက္ခာ", "ရက်ရောမှု", "ခေါင်းဆောင်မှု"},
		StrengthsEN:  []string{"Dignity", "Generosity", "Leadership"},
		WeaknessesMM: []string{"မာနကြီးမှု", "လွှမ်းမိုးလိုမှု"},
		WeaknessesEN: []string{"Pride", "Domineering"},
	},
	{
		ID:     "ahtun",
		NameMM: "အထွန်းအိမ်",
		NameEN: "Ahtun",
		Nature: "Brilliance/Exaltation",
		PersonalityMM: "အထွန်းအိမ်ဖွား ပုဂ္ဂိုလ်များသည် စွန့်ဦးထွင်သူများ ဖြစ်တတ်ပြီး " +
			"ဘဝတွင် အောင်မြင်မှုများကို လွယ်ကူစွာ ရရှိတတ်ပါသည်။ " +
			"ထက်မြက်ဖျတ်လတ်ပြီး တီထွင်ဖန်တီးနိုင်စွမ်း ရှိပါသည်။",
		PersonalityEN: "House of Success/Exaltation (Ahtun) natives are pioneers. They achieve brilliance " +
			"through creativity and quick thinking, often rising rapidly in their chosen fields.",
		StrengthsMM:  []string{"တီထွင်ဖန်တီးနိုင်မှု", "အောင်မြင်မှု", "ထက်မြက်မှု"},
		StrengthsEN:  []string{"Creativity", "Success", "Intelligence"},
		WeaknessesMM: []string{"စိတ်မြန်လက်မြန်ဖြစ်မှု", "ပေါ့ဆမှု"},
		WeaknessesEN: []string{"Impulsiveness", "Carelessness"},
	},
}

// forecastRules is the per-house Do/Don't guidance, indexed by house index.
var forecastRules = [7]ForecastRuleSet{
	{ // binga
		DoMM: []string{
			"တရားထိုင်ခြင်းနှင့် စိတ်ငြိမ်သက်မှု ရှာဖွေပါ",
			"ငွေကြေးစုဆောင်းပြီး ချွေတာပါ",
			"ပညာသင်ကြားပေးခြင်း လုပ်ပါ",
			"ကျန်းမာရေး စစ်ဆေးမှု ခံယူပါ",
			"ရေရှည် ရင်းနှီးမြှုပ်နှံမှု ပြုလုပ်ပါ",
			"မိသားစု ဆက်ဆံရေး ခိုင်မြဲအောင် ထိန်းသိမ်းပါ",
		},
		DontMM: []string{
			"ရေတိုလောင်းကစားမှု ရှောင်ကြဉ်ပါ",
			"အလွန်အကျွံ သုံးစွဲခြင်း မပြုပါနှင့်",
			"စနေနေ့တွင် ခရီးအဝေးမသွားပါနှင့်",
			"စိတ်လိုက်မာန်ပါ ဆုံးဖြတ်ချက်များ မချပါနှင့်",
			"ငွေချေးခြင်း ရှောင်ကြဉ်ပါ",
			"အငြင်းအခုံ ရှောင်ကြဉ်ပါ",
		},
		DoEN: []string{
			"Meditate and seek inner peace",
			"Save money and be frugal",
			"Teach and share your knowledge",
			"Get a health checkup",
			"Make long-term investments",
			"Strengthen family bonds",
		},
		DontEN: []string{
			"Avoid short-term gambling",
			"Don't overspend",
			"Avoid long trips on Saturday",
			"Don't make impulsive decisions",
			"Avoid lending money",
			"Avoid arguments",
		},
	},
	{ // puti
		DoMM: []string{
			"ကျန်းမာရေးကို အထူးဂရုစိုက်ပါ",
			"သမာဓိရှိရှိ နေထိုင်ပါ",
			"ဘာသာရေး ကုသိုလ် ပြပါ",
			"နှိမ့်ချစွာ ဆက်ဆံပါ",
			"အတွင်းစိတ် ငြိမ်းချမ်းမှုကို ရှာပါ",
			"ပညာရှာမှီးပါ",
		},
		DontMM: []string{
			"အတင်းအဖျင်း ပြောခြင်း ရှောင်ပါ",
			"ကျန်းမာရေး ထိခိုက်မည့် အလုပ်များ ရှောင်ပါ",
			"ဒေါသထွက်ခြင်း ရှောင်ပါ",
			"မောဟဖုံးလွှမ်းသော အလုပ်များ ရှောင်ပါ",
			"လိမ်လည်မှု ရှောင်ပါ",
			"ရန်ဖြစ်ခြင်း ရှောင်ပါ။",
		},
		DoEN: []string{
			"Pay special attention to your health",
			"Live with integrity",
			"Perform religious merit",
			"Be humble in interactions",
			"Seek inner peace",
			"Pursue education",
		},
		DontEN: []string{
			"Avoid gossip and slander",
			"Avoid work that harms your health",
			"Avoid anger",
			"Avoid work driven by delusion",
			"Avoid deception",
			"Avoid conflict",
		},
	},
	{ // thike
		DoMM: []string{
			"မိသားစုရေးရာများ ဂရုစိုက်ပါ",
			"ငွေစုဆောင်းမှု အသစ်စတင်ပါ",
			"ရှေးဟောင်းပစ္စည်းများ သို့မဟုတ် အမွေအနှစ်များ ထိန်းသိမ်းပါ",
			"အလှူအတန်း ပြုလုပ်ပါ",
			"ဘာသာရေး လုပ်ငန်းများတွင် ပါဝင်ပါ",
			"နေအိမ် ပြင်ဆင်မှုများ လုပ်ပါ",
		},
		DontMM: []string{
			"တနင်္လာနေ့တွင် အနောက်ဘက် ခရီးမသွားပါနှင့်",
			"အမွေအနှစ်များ အလွယ်တကူ မရောင်းပါနှင့်",
			"မိသားစုဝင်များနှင့် စိတ်ဝမ်းကွဲခြင်း ရှောင်ပါ",
			"ရန်လိုမှု ထိန်းချုပ်ပါ",
			"အဓိပ္ပာယ်မဲ့ အသုံးစရိတ်များ ရှောင်ပါ",
		},
		DoEN: []string{
			"Take care of family matters",
			"Start new savings plans",
			"Preserve heirlooms and heritage",
			"Make charitable donations",
			"Participate in religious activities",
			"Make home improvements",
		},
		DontEN: []string{
			"Avoid traveling west on Monday",
			"Don't sell heirlooms easily",
			"Avoid falling out with family",
			"Control hostility",
			"Avoid unnecessary expenses",
		},
	},
	{ // marana
		DoMM: []string{
			"တရားထိုင်ခြင်းနှင့် ဝိပဿနာ ကျင့်ကြံပါ",
			"ကျန်းမာရေးကို အထူးဂရုစိုက်ပါ",
			"ဘဝအပြောင်းအလဲများကို လက်ခံပါ",
			"ကုသိုလ်ကောင်းမှု များများလုပ်ပါ",
			"အေးဆေးစွာ နေထိုင်ပါ",
			"စိတ်ကို တည်ငြိမ်အောင် ထားပါ",
		},
		DontMM: []string{
			"သောကြာနေ့တွင် ခရီးအဝေးမသွားပါနှင့်",
			"အစွန်းရောက်သော ဆုံးဖြတ်ချက်များ မချပါနှင့်",
			"အန္တရာယ်ရှိသော အလုပ်များ ရှောင်ပါ",
			"အမှားဟောင်းများ ပြန်မလုပ်မိပါစေနှင့်",
			"စိတ်လှုပ်ရှားဖွယ်ရာများ ရှောင်ပါ",
		},
		DoEN: []string{
			"Practice meditation and insight (Vipassana)",
			"Pay special attention to your health",
			"Accept life changes",
			"Perform many meritorious deeds",
			"Live peacefully",
			"Keep your mind steady",
		},
		DontEN: []string{
			"Avoid long trips on Friday",
			"Don't make extreme decisions",
			"Avoid dangerous activities",
			"Don't repeat past mistakes",
			"Avoid emotionally triggering situations",
		},
	},
	{ // adhipati
		DoMM: []string{
			"စီမံခန့်ခွဲမှု အသစ်များ လုပ်ကိုင်ပါ",
			"ခေါင်းဆောင်မှု နေရာကို ရယူပါ",
			"လုပ်ငန်းသစ်များ စတင်ပါ",
			"လူအများနှင့် ပူးပေါင်း ဆောင်ရွက်ပါ",
			"ပြတ်သားစွာ ဆုံးဖြတ်ပါ",
			"အောင်မြင်မှုကို ခံစားပါ",
		},
		DontMM: []string{
			"ကြာသပတေးနေ့တွင် တောင်ဘက် ခရီးမသွားပါနှင့်",
			"မာနထောင်လွှားခြင်း ရှောင်ပါ",
			"တင်းကျပ်လွန်းသော စည်းကမ်းများ မထားပါနှင့်",
			"အာဏာရှင်ဆန်မှု ရှောင်ပါ",
			"တပါးသူ၏ အခွင့်အရေးကို မပိတ်ပင်ပါနှင့်",
		},
		DoEN: []string{
			"Take on new management roles",
			"Assume leadership positions",
			"Start new ventures",
			"Collaborate with others",
			"Make decisive choices",
			"Embrace your success",
		},
		DontEN: []string{
			"Avoid traveling south on Thursday",
			"Avoid arrogance",
			"Don't be overly strict",
			"Avoid being authoritarian",
			"Don't suppress others' rights",
		},
	},
	{ // yarza
		DoMM: []string{
			"ရဲရင့်စွာ ဆုံးဖြတ်ပါ",
			"ကိုယ်ကာယ လေ့ကျင့်ခန်း လုပ်ပါ",
			"ဘာသာရေး ကုသိုလ် ပြပါ",
			"ရင်းနှီးမြှုပ်နှံမှု လုပ်ကိုင်ပါ",
			"အိမ်ခြံမြေ ကိစ္စများ ဆောင်ရွက်ပါ",
			"ခေါင်းဆောင်ဖြစ်ရန် ကြိုးစားပါ",
		},
		DontMM: []string{
			"အင်္ဂါနေ့တွင် ထက်ရှသော လက်နက် ကိုင်တွယ်ခြင်း ရှောင်ကြဉ်ပါ",
			"ဒေါသထွက်ခြင်း ရှောင်ကြဉ်ပါ",
			"စစ်ခင်းခြင်းနှင့် ပဋိပက္ခ ရှောင်ကြဉ်ပါ",
			"မီးဘေး သတိထားပါ",
			"အလွန်အကျွံ စွန့်စားခြင်း ရှောင်ကြဉ်ပါ",
			"ရန်လိုမှု ထိန်းချုပ်ပါ",
		},
		DoEN: []string{
			"Make bold decisions",
			"Exercise regularly",
			"Perform religious merit",
			"Make investments",
			"Handle real estate matters",
			"Strive for leadership",
		},
		DontEN: []string{
			"Avoid handling sharp weapons on Tuesday",
			"Avoid anger",
			"Avoid war and conflict",
			"Be cautious of fire hazards",
			"Avoid excessive risk-taking",
			"Control hostility",
		},
	},
	{ // ahtun
		DoMM: []string{
			"ခေါင်းဆောင်မှု စွမ်းရည်ကို ဖော်ထုတ်ပါ",
			"ပရဟိတ လှူဒါန်းပါ",
			"ကိုယ်ကာယ ကျန်းမာရေး ဂရုစိုက်ပါ",
			"အသစ်အဆန်း စွန့်စားလုပ်ကိုင်ပါ",
			"ယုံကြည်မှုရှိစွာ ဆုံးဖြတ်ပါ",
			"အားကစား လေ့ကျင့်ပါ",
		},
		DontMM: []string{
			"တနင်္ဂနွေနေ့တွင် အရှေ့ဘက် ခရီးမသွားပါနှင့်",
			"အစွန်းရောက်သော ဆုံးဖြတ်ချက်များ ရှောင်ကြဉ်ပါ",
			"ကျော်ကြားလိုစိတ်ကို ထိန်းချုပ်ပါ",
			"အလျင်စလို ဆုံးဖြတ်ချက်များ မချပါနှင့်",
			"ဘဝင်မြင့်ခြင်း ရှောင်ပါ",
		},
		DoEN: []string{
			"Develop your leadership abilities",
			"Make charitable donations",
			"Take care of your physical health",
			"Boldly pursue new ventures",
			"Make confident decisions",
			"Practice sports and exercise",
		},
		DontEN: []string{
			"Avoid traveling east on Sunday",
			"Avoid extreme decisions",
			"Control your desire for fame",
			"Don't make hasty decisions",
			"Avoid vanity",
		},
	},
}

// monthModifiersMM and monthModifiersEN color each of the six forecast months.
var monthModifiersMM = [6]string{
	"ဤလတွင် စိတ်အားထက်သန်မှု ပိုမိုရရှိမည်",
	"ဤလတွင် ငွေကြေးကံ ပွင့်လန်းမည်",
	"ဤလတွင် ဆက်ဆံရေး ပိုမိုခိုင်မြဲမည်",
	"ဤလတွင် အလုပ်အကိုင် အခွင့်အလမ်း ရရှိမည်",
	"ဤလတွင် ကျန်းမာရေး အထူးဂရုစိုက်ရန် လိုအပ်မည်",
	"ဤလတွင် ပညာရေးနှင့် သုတေသန ကံကောင်းမည်",
}

var monthModifiersEN = [6]string{
	"This month brings heightened enthusiasm",
	"Financial luck is bright this month",
	"Relationships grow stronger this month",
	"Career opportunities await this month",
	"Extra health care is needed this month",
	"Education and research luck is good this month",
}

// Weekday returns the eight-day-week record for the given calendar weekday
// (0=Saturday .. 6=Friday), substituting Rahu for a Wednesday-afternoon birth.
func Weekday(weekday int, wednesdayPM bool) (WeekdayPlanet, bool) {
	if weekday < 0 || weekday > 6 {
		return WeekdayPlanet{}, false
	}
	if weekday == 4 && wednesdayPM {
		return weekdayPlanets[RahuIndex], true
	}
	return weekdayPlanets[weekday], true
}

// HouseByIndex returns the house record for index 0..6.
func HouseByIndex(i int) (House, bool) {
	if i < 0 || i >= len(houses) {
		return House{}, false
	}
	return houses[i], true
}

// RulesByIndex returns the forecast rules for house index 0..6.
func RulesByIndex(i int) (ForecastRuleSet, bool) {
	if i < 0 || i >= len(forecastRules) {
		return ForecastRuleSet{}, false
	}
	return forecastRules[i], true
}

func init() {
	for i, wp := range weekdayPlanets {
		if wp.NameMM == "" || wp.PlanetMM == "" {
			panic("mahabote: incomplete weekday table")
		}
		if i < 7 && wp.PlanetID == PlanetRahu {
			panic("mahabote: Rahu outside slot 7")
		}
	}
	if weekdayPlanets[RahuIndex].PlanetID != PlanetRahu {
		panic("mahabote: slot 7 must be Rahu")
	}
	for _, h := range houses {
		if h.ID == "" || h.PersonalityMM == "" || len(h.StrengthsMM) == 0 {
			panic("mahabote: incomplete house table")
		}
	}
	for _, r := range forecastRules {
		if len(r.DoMM) == 0 || len(r.DontMM) == 0 || len(r.DoEN) == 0 || len(r.DontEN) == 0 {
			panic("mahabote: incomplete forecast rules")
		}
	}
}
