// Package analysis implements the heuristic NLP core of the document
// pipeline: type classification, entity and keyword extraction, sentiment
// scoring, summarization and tag generation. Every stage is a pure, total
// function over any string, including the empty string; lexicons are
// process-wide immutable data. Nothing here performs I/O.
package analysis

// Engine groups the analysis stages behind one receiver. It is stateless
// and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
