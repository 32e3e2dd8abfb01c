package classify

import (
	"os"
	"path/filepath"
	"testing"
)

// Artefak kecil untuk tes: model biner negative/positive.
const (
	testVectorizer = `{
		"vocabulary": {"great": 0, "service": 1, "bad": 2},
		"idf": [1.0, 1.2, 1.5]
	}`
	testModel = `{
		"classes": ["negative", "positive"],
		"coef": [[2.0, 0.5, -3.0]],
		"intercept": [-0.1]
	}`
)

func writeArtifacts(t *testing.T, vectorizer, model string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "vectorizer.json")
	mp := filepath.Join(dir, "model.json")
	if err := os.WriteFile(vp, []byte(vectorizer), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mp, []byte(model), 0o644); err != nil {
		t.Fatal(err)
	}
	return vp, mp
}

func loadTestService(t *testing.T) *Service {
	t.Helper()
	vp, mp := writeArtifacts(t, testVectorizer, testModel)
	s, err := Load(vp, mp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func inClasses(s *Service, label string) bool {
	for _, c := range s.Classes() {
		if c == label {
			return true
		}
	}
	return false
}

func TestPredictKnownText(t *testing.T) {
	s := loadTestService(t)
	if got := s.Predict("great service"); got != "positive" {
		t.Fatalf("Predict(great service) = %q, want positive", got)
	}
	if got := s.Predict("bad bad bad"); got != "negative" {
		t.Fatalf("Predict(bad...) = %q, want negative", got)
	}
}

func TestPredictEmptyInput(t *testing.T) {
	s := loadTestService(t)
	got := s.Predict("")
	if !inClasses(s, got) {
		t.Fatalf("Predict(\"\") = %q, not in class set %v", got, s.Classes())
	}
	// vektor nol -> intercept -0.1 -> negative
	if got != "negative" {
		t.Fatalf("Predict(\"\") = %q, want negative", got)
	}
}

func TestPredictDeterministic(t *testing.T) {
	s := loadTestService(t)
	for _, text := range []string{"", "great service", "unknown words only", "GREAT Service!!"} {
		a, b := s.Predict(text), s.Predict(text)
		if a != b {
			t.Fatalf("Predict(%q) not deterministic: %q vs %q", text, a, b)
		}
		if !inClasses(s, a) {
			t.Fatalf("Predict(%q) = %q outside class set", text, a)
		}
	}
}

func TestPredictCaseAndTokenization(t *testing.T) {
	s := loadTestService(t)
	// lowercase + token >= 2 karakter word: tanda baca tidak berpengaruh
	if s.Predict("GREAT, service!") != s.Predict("great service") {
		t.Fatal("tokenization should normalize case and punctuation")
	}
}

func TestPredictMulticlass(t *testing.T) {
	model := `{
		"classes": ["negative", "neutral", "positive"],
		"coef": [[-1.0, 0.0, 2.0], [0.1, 0.1, 0.1], [2.0, 0.5, -3.0]],
		"intercept": [0.0, 0.05, -0.1]
	}`
	vp, mp := writeArtifacts(t, testVectorizer, model)
	s, err := Load(vp, mp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.Predict("great"); got != "positive" {
		t.Fatalf("Predict(great) = %q, want positive", got)
	}
	if got := s.Predict("bad"); got != "negative" {
		t.Fatalf("Predict(bad) = %q, want negative", got)
	}
	// vektor nol: intercept tertinggi menang
	if got := s.Predict(""); got != "neutral" {
		t.Fatalf("Predict(\"\") = %q, want neutral", got)
	}
}

func TestLoadMissingArtifactFails(t *testing.T) {
	vp, _ := writeArtifacts(t, testVectorizer, testModel)
	if _, err := Load(vp, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing model file")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), vp); err == nil {
		t.Fatal("expected error for missing vectorizer file")
	}
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	// idf lebih pendek dari vocabulary
	vp, mp := writeArtifacts(t,
		`{"vocabulary": {"a": 0, "bb": 1}, "idf": [1.0]}`, testModel)
	if _, err := Load(vp, mp); err == nil {
		t.Fatal("expected dimension error for vectorizer")
	}

	// coef row tidak cocok dengan jumlah term
	vp, mp = writeArtifacts(t, testVectorizer,
		`{"classes": ["negative","positive"], "coef": [[1.0]], "intercept": [0.0]}`)
	if _, err := Load(vp, mp); err == nil {
		t.Fatal("expected dimension error for model")
	}

	// kurang dari 2 kelas
	vp, mp = writeArtifacts(t, testVectorizer,
		`{"classes": ["only"], "coef": [[1.0, 1.0, 1.0]], "intercept": [0.0]}`)
	if _, err := Load(vp, mp); err == nil {
		t.Fatal("expected class-count error")
	}
}
