package nlp

import (
	"strings"
	"unicode"
)

// irregular maps inflected forms that no suffix rule recovers to their
// lemmas.
var irregular = map[string]string{
	// be
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be", "isn't": "be", "aren't": "be", "wasn't": "be",
	// have
	"has": "have", "had": "have", "having": "have", "hasn't": "have", "hadn't": "have",
	// do
	"does": "do", "did": "do", "done": "do", "doing": "do", "doesn't": "do", "didn't": "do", "don't": "do",
	// common irregular verbs
	"went": "go", "gone": "go", "going": "go", "goes": "go",
	"said": "say", "says": "say", "saying": "say",
	"got": "get", "gotten": "get", "getting": "get",
	"made": "make", "making": "make", "makes": "make",
	"took": "take", "taken": "take", "taking": "take", "takes": "take",
	"came": "come", "coming": "come", "comes": "come",
	"saw": "see", "seen": "see", "seeing": "see", "sees": "see",
	"knew": "know", "known": "know", "knowing": "know", "knows": "know",
	"thought": "think", "thinking": "think", "thinks": "think",
	"gave": "give", "given": "give", "giving": "give", "gives": "give",
	"found": "find", "finding": "find", "finds": "find",
	"told": "tell", "telling": "tell", "tells": "tell",
	"felt": "feel", "feeling": "feel", "feels": "feel",
	"left": "leave", "leaving": "leave", "leaves": "leave",
	"kept": "keep", "keeping": "keep", "keeps": "keep",
	"began": "begin", "begun": "begin", "beginning": "begin", "begins": "begin",
	"wrote": "write", "written": "write", "writing": "write", "writes": "write",
	"ran": "run", "running": "run", "runs": "run",
	"brought": "bring", "bringing": "bring", "brings": "bring",
	"held": "hold", "holding": "hold", "holds": "hold",
	"stood": "stand", "standing": "stand", "stands": "stand",
	"heard": "hear", "hearing": "hear", "hears": "hear",
	"let": "let", "letting": "let", "lets": "let",
	"meant": "mean", "meaning": "mean", "means": "mean",
	"met": "meet", "meeting": "meet", "meets": "meet",
	"paid": "pay", "paying": "pay", "pays": "pay",
	"put": "put", "putting": "put", "puts": "put",
	"lost": "lose", "losing": "lose", "loses": "lose",
	"sat": "sit", "sitting": "sit", "sits": "sit",
	"spoke": "speak", "spoken": "speak", "speaking": "speak", "speaks": "speak",
	// modals and contractions
	"can't": "can", "cannot": "can", "won't": "will", "couldn't": "could",
	"wouldn't": "would", "shouldn't": "should",
	// irregular plurals
	"children": "child", "men": "man", "women": "woman", "people": "person",
	"feet": "foot", "teeth": "tooth", "mice": "mouse", "geese": "goose",
	"lives": "life", "wives": "wife", "knives": "knife",
}

// lemmaOf maps a lowercased word to its lemma, or "" when no lemma can
// be produced (no letters at all, e.g. numbers).
func lemmaOf(word string) string {
	if lemma, ok := irregular[word]; ok {
		return lemma
	}
	if !hasLetter(word) {
		return ""
	}
	return suffixLemma(word)
}

func hasLetter(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// suffixLemma strips regular inflectional endings. It is intentionally
// conservative: when no rule safely applies the word is its own lemma.
func suffixLemma(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		return undouble(w[:len(w)-3])
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		return undouble(w[:len(w)-2])
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s") && len(w) > 3:
		return w[:len(w)-1]
	}
	return w
}

// undouble collapses a trailing doubled consonant left by stripping
// -ed/-ing (runn → run), except for ll/ss/zz which are legitimate
// word endings.
func undouble(w string) string {
	r := []rune(w)
	n := len(r)
	if n >= 2 && r[n-1] == r[n-2] && !strings.ContainsRune("lsz", r[n-1]) {
		return string(r[:n-1])
	}
	return w
}
