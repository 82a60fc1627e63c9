package textproc

// stopWords is the fixed Spanish stopword set, matched case-insensitively.
// Built once at init; never mutated.
var stopWords = map[string]struct{}{
	"a": {}, "al": {}, "algo": {}, "algunas": {}, "algunos": {}, "ante": {},
	"antes": {}, "como": {}, "con": {}, "contra": {}, "cual": {}, "cuando": {},
	"de": {}, "del": {}, "desde": {}, "donde": {}, "durante": {}, "e": {},
	"el": {}, "ella": {}, "ellas": {}, "ellos": {}, "en": {}, "entre": {},
	"era": {}, "erais": {}, "eran": {}, "eras": {}, "eres": {}, "es": {},
	"esa": {}, "esas": {}, "ese": {}, "eso": {}, "esos": {}, "esta": {},
	"estaba": {}, "estado": {}, "estamos": {}, "estar": {}, "estas": {},
	"este": {}, "esto": {}, "estos": {}, "estoy": {}, "fue": {}, "fueron": {},
	"fui": {}, "fuimos": {}, "ha": {}, "haber": {}, "habia": {}, "había": {},
	"han": {}, "has": {}, "hasta": {}, "hay": {}, "haya": {}, "he": {},
	"hemos": {}, "hube": {}, "la": {}, "las": {}, "le": {}, "les": {},
	"lo": {}, "los": {}, "mas": {}, "más": {}, "me": {}, "mi": {}, "mis": {},
	"mucho": {}, "muchos": {}, "muy": {}, "nada": {}, "ni": {}, "no": {},
	"nos": {}, "nosotras": {}, "nosotros": {}, "nuestra": {}, "nuestras": {},
	"nuestro": {}, "nuestros": {}, "o": {}, "os": {}, "otra": {}, "otras": {},
	"otro": {}, "otros": {}, "para": {}, "pero": {}, "poco": {}, "por": {},
	"porque": {}, "que": {}, "qué": {}, "quien": {}, "quienes": {}, "se": {},
	"sea": {}, "sean": {}, "segun": {}, "según": {}, "ser": {}, "si": {},
	"sí": {}, "sido": {}, "siendo": {}, "sin": {}, "sobre": {}, "sois": {},
	"somos": {}, "son": {}, "soy": {}, "su": {}, "sus": {}, "suya": {},
	"suyas": {}, "suyo": {}, "suyos": {}, "tambien": {}, "también": {},
	"tanto": {}, "te": {}, "tendra": {}, "tendrá": {}, "tenemos": {},
	"tener": {}, "tengo": {}, "tenia": {}, "tenía": {}, "ti": {}, "tiene": {},
	"tienen": {}, "todo": {}, "todos": {}, "tu": {}, "tus": {}, "un": {},
	"una": {}, "uno": {}, "unos": {}, "vosotras": {}, "vosotros": {},
	"vuestra": {}, "vuestro": {}, "y": {}, "ya": {}, "yo": {},
}

// IsStopWord reports whether the lowercased token belongs to the stopword set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
