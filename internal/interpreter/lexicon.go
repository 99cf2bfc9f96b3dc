package interpreter

import "regexp"

var wordToken = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

// verbForms is the curated verb lexicon: intent verbs, taxonomy verbs and
// their common inflections.
var verbForms = toSet(
	"earn", "earns", "earned", "earning",
	"receive", "receives", "received", "receiving",
	"get", "gets", "got", "gotten", "getting",
	"make", "makes", "made", "making",
	"sell", "sells", "sold", "selling",
	"buy", "buys", "bought", "buying",
	"purchase", "purchases", "purchased", "purchasing",
	"pay", "pays", "paid", "paying",
	"spend", "spends", "spent", "spending",
	"cost", "costs", "costing",
	"give", "gives", "gave", "given", "giving",
	"order", "orders", "ordered", "ordering",
	"eat", "eats", "ate", "eaten", "eating",
	"dine", "dines", "dined", "dining",
	"feed", "feeds", "fed", "feeding",
	"cook", "cooks", "cooked", "cooking",
	"drive", "drives", "drove", "driven", "driving",
	"ride", "rides", "rode", "riding",
	"travel", "travels", "traveled", "travelled", "traveling", "travelling",
	"commute", "commutes", "commuted", "commuting",
	"fly", "flies", "flew", "flown", "flying",
	"watch", "watches", "watched", "watching",
	"play", "plays", "played", "playing",
	"enjoy", "enjoys", "enjoyed", "enjoying",
	"attend", "attends", "attended", "attending",
	"celebrate", "celebrates", "celebrated", "celebrating",
	"shop", "shops", "shopped",
	"owe", "owes", "owed", "owing",
	"charge", "charges", "charged", "charging",
	"visit", "visits", "visited", "visiting",
	"consult", "consults", "consulted", "consulting",
	"treat", "treats", "treated", "treating",
	"heal", "heals", "healed", "healing",
	"cure", "cures", "cured", "curing",
	"study", "studies", "studied", "studying",
	"learn", "learns", "learned", "learnt", "learning",
	"teach", "teaches", "taught", "teaching",
	"enroll", "enrolls", "enrolled", "enrolling",
	"graduate", "graduates", "graduated", "graduating",
	"work", "works", "worked", "working",
	"complete", "completes", "completed", "completing",
	"deliver", "delivers", "delivered", "delivering",
	"provide", "provides", "provided", "providing",
	"invest", "invests", "invested", "investing",
	"trade", "trades", "traded", "trading",
	"go", "goes", "went", "gone",
	"take", "takes", "took", "taken",
	"send", "sends", "sent", "sending",
	"transfer", "transfers", "transferred",
	"lend", "lent", "borrow", "borrowed",
	"win", "won", "donate", "donated",
	"withdraw", "withdrew", "deposit", "deposited",
)

// A lexicon verb right after one of these is read as a noun ("my work", "the ride").
var determiners = toSet("a", "an", "the", "my", "your", "our", "his", "her", "their", "this", "that", "some")

// functionWords never count as nouns.
var functionWords = toSet(
	"i", "me", "my", "mine", "we", "us", "our", "you", "your", "he", "him", "his",
	"she", "her", "it", "its", "they", "them", "their", "a", "an", "the", "this",
	"that", "these", "those", "some", "any", "and", "or", "but", "for", "at", "from",
	"in", "on", "to", "of", "with", "by", "into", "about", "as", "is", "am", "are",
	"was", "were", "be", "been", "being", "has", "have", "had", "do", "does", "did",
	"just", "so", "very", "too", "also", "then", "now", "not", "no", "yes",
	"today", "yesterday", "tonight", "tomorrow",
	"i'm", "i've", "i'd", "it's", "we've", "don't", "didn't",
)

// lexicon holds the lexical artifacts shared by every later stage.
type lexicon struct {
	tokens []string
	verbs  []string
	nouns  []string
}

// analyze tokenizes lower-cased text and splits the tokens into recognized
// verbs and nouns, each deduplicated in order of first appearance.
func analyze(cleaned string) lexicon {
	tokens := wordToken.FindAllString(cleaned, -1)
	lex := lexicon{tokens: tokens}
	seenVerb := map[string]bool{}
	seenNoun := map[string]bool{}

	for i, tok := range tokens {
		_, isVerb := verbForms[tok]
		if isVerb && i > 0 {
			if _, det := determiners[tokens[i-1]]; det {
				isVerb = false
			}
		}
		switch {
		case isVerb:
			if !seenVerb[tok] {
				seenVerb[tok] = true
				lex.verbs = append(lex.verbs, tok)
			}
		case isNoun(tok):
			if !seenNoun[tok] {
				seenNoun[tok] = true
				lex.nouns = append(lex.nouns, tok)
			}
		}
	}
	return lex
}

func isNoun(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	_, fn := functionWords[tok]
	return !fn
}

func (l lexicon) hasVerb(verb string) bool {
	return contains(l.verbs, verb)
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
