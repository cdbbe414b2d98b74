package diagnosis

// Classifier is one rule in the mistake-detection chain. Classify
// returns a kind with a confidence from 0.0 to 1.0, or ("", 0) when
// the rule does not apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (ErrorKind, float64)
}

// DefaultClassifiers returns the standard chain.
func DefaultClassifiers() []Classifier {
	return ClassifiersWithBand(0)
}

// ClassifiersWithBand returns the default chain with a custom arithmetic
// band; zero keeps ArithmeticBand. Order matters: one wrong answer can
// trip several rules and the first match wins, so the chain runs from
// the narrowest rule (inverted formula) to the widest (arithmetic).
func ClassifiersWithBand(band float64) []Classifier {
	return []Classifier{
		&InvertedFormulaClassifier{},
		&UnitFactorClassifier{},
		&SignErrorClassifier{},
		&ArithmeticClassifier{Band: band},
	}
}

// RunClassifiers tries each rule in order and returns the first match,
// or ("", 0, "") when none fires.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ErrorKind, float64, string) {
	for _, c := range classifiers {
		kind, conf := c.Classify(input)
		if kind != "" {
			return kind, conf, c.Name()
		}
	}
	return "", 0, ""
}
