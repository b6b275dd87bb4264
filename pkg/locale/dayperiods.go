package locale

import "golang.org/x/text/language"

// dayPeriods holds the abbreviated AM/PM strings (CLDR "abbreviated" width)
// by base language. x/text does not ship calendar data.
var dayPeriods = map[string][2]string{
	"ar": {"ص", "م"},
	"cs": {"dop.", "odp."},
	"da": {"AM", "PM"},
	"de": {"AM", "PM"},
	"el": {"π.μ.", "μ.μ."},
	"en": {"AM", "PM"},
	"es": {"a. m.", "p. m."},
	"fi": {"ap.", "ip."},
	"fr": {"AM", "PM"},
	"he": {"לפנה״צ", "אחה״צ"},
	"hi": {"am", "pm"},
	"hu": {"de.", "du."},
	"id": {"AM", "PM"},
	"it": {"AM", "PM"},
	"ja": {"午前", "午後"},
	"ko": {"오전", "오후"},
	"nb": {"a.m.", "p.m."},
	"nl": {"a.m.", "p.m."},
	"pl": {"AM", "PM"},
	"pt": {"AM", "PM"},
	"ru": {"AM", "PM"},
	"sv": {"fm", "em"},
	"th": {"ก่อนเที่ยง", "หลังเที่ยง"},
	"tr": {"ÖÖ", "ÖS"},
	"uk": {"дп", "пп"},
	"vi": {"SA", "CH"},
	"zh": {"上午", "下午"},
}

func dayPeriodsFor(tag language.Tag) [2]string {
	base, _ := tag.Base()
	return dayPeriods[base.String()]
}
