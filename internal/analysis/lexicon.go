package analysis

// Closed lexicons for keyword filtering and sentiment scoring. These are
// constant configuration, not tunable state.

var stopWords = toSet([]string{
	"a", "an", "the", "and", "or", "but", "if", "because", "as", "what",
	"which", "this", "that", "these", "those", "then", "just", "so", "than",
	"such", "both", "through", "about", "for", "is", "of", "while", "during",
	"to", "from", "in", "out", "on", "off", "over", "under", "again", "further",
	"once", "here", "there", "when", "where", "why", "how", "all", "any",
	"each", "few", "more", "most", "other", "some", "no", "nor",
	"not", "only", "own", "same", "too", "very", "can", "will",
	"should", "now",
})

var positiveWords = toSet([]string{
	"good", "great", "excellent", "outstanding", "amazing", "wonderful", "fantastic",
	"positive", "success", "successful", "benefit", "beneficial", "advantage",
	"profit", "profitable", "gain", "improve", "improvement", "increase",
	"happy", "pleased", "satisfied", "satisfaction", "enjoy", "enjoyable",
	"recommend", "recommended", "approve", "approved", "agree", "agreed",
})

var negativeWords = toSet([]string{
	"bad", "poor", "terrible", "awful", "horrible", "disappointing", "disappointed",
	"negative", "failure", "fail", "failed", "problem", "issue", "concern",
	"loss", "lose", "decrease", "decline", "reduce", "reduction",
	"unhappy", "dissatisfied", "dissatisfaction", "dislike", "hate",
	"reject", "rejected", "deny", "denied", "disagree", "disagreed",
})

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
