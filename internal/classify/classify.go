package classify

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// Dua artefak hasil training offline, dimuat sekali saat startup dan
// read-only seumur proses. Formatnya JSON milik pipeline trainer:
//
//	vectorizer.json: {"vocabulary": {"great": 0, ...}, "idf": [1.2, ...]}
//	model.json:      {"classes": ["negative","positive"],
//	                  "coef": [[...]], "intercept": [0.1]}
//
// Satu baris coef = model biner (threshold 0, skor positif -> classes[1]);
// lebih dari satu baris = multiclass argmax.

type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

type Model struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

type Service struct {
	vec   Vectorizer
	model Model
}

// Token = dua karakter word atau lebih, lowercase (sama dengan tokenizer
// yang dipakai saat training).
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

// Load membaca kedua artefak dan memvalidasi dimensinya sekali di awal.
// Error dari sini fatal untuk proses — jangan lanjut serve tanpa model.
func Load(vectorizerPath, modelPath string) (*Service, error) {
	var s Service
	if err := readJSON(vectorizerPath, &s.vec); err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	if err := readJSON(modelPath, &s.model); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	if len(s.vec.IDF) != len(s.vec.Vocabulary) {
		return nil, fmt.Errorf("vectorizer: %d idf weights for %d terms",
			len(s.vec.IDF), len(s.vec.Vocabulary))
	}
	for term, i := range s.vec.Vocabulary {
		if i < 0 || i >= len(s.vec.IDF) {
			return nil, fmt.Errorf("vectorizer: term %q maps to index %d out of range", term, i)
		}
	}
	if len(s.model.Classes) < 2 {
		return nil, fmt.Errorf("model: need at least 2 classes, got %d", len(s.model.Classes))
	}
	if len(s.model.Coef) != 1 && len(s.model.Coef) != len(s.model.Classes) {
		return nil, fmt.Errorf("model: %d coef rows for %d classes",
			len(s.model.Coef), len(s.model.Classes))
	}
	if len(s.model.Coef) == 1 && len(s.model.Classes) != 2 {
		return nil, fmt.Errorf("model: single coef row needs exactly 2 classes")
	}
	if len(s.model.Intercept) != len(s.model.Coef) {
		return nil, fmt.Errorf("model: %d intercepts for %d coef rows",
			len(s.model.Intercept), len(s.model.Coef))
	}
	for i, row := range s.model.Coef {
		if len(row) != len(s.vec.IDF) {
			return nil, fmt.Errorf("model: coef row %d has %d weights, vectorizer has %d terms",
				i, len(row), len(s.vec.IDF))
		}
	}
	return &s, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// Classes mengembalikan label set tetap milik model.
func (s *Service) Classes() []string {
	return append([]string(nil), s.model.Classes...)
}

// Predict: transform lalu skor linear. Deterministik dan bebas side effect;
// input kosong valid (vektor nol, intercept yang menentukan).
func (s *Service) Predict(text string) string {
	x := s.transform(text)

	if len(s.model.Coef) == 1 {
		if dot(s.model.Coef[0], x)+s.model.Intercept[0] > 0 {
			return s.model.Classes[1]
		}
		return s.model.Classes[0]
	}

	best, bestScore := 0, math.Inf(-1)
	for i, row := range s.model.Coef {
		if score := dot(row, x) + s.model.Intercept[i]; score > bestScore {
			best, bestScore = i, score
		}
	}
	return s.model.Classes[best]
}

// transform: term frequency * idf, lalu normalisasi l2 — sama dengan
// transform milik vectorizer di pipeline training.
func (s *Service) transform(text string) []float64 {
	x := make([]float64, len(s.vec.IDF))
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if i, ok := s.vec.Vocabulary[tok]; ok {
			x[i] += s.vec.IDF[i]
		}
	}
	var sq float64
	for _, v := range x {
		sq += v * v
	}
	if sq > 0 {
		norm := math.Sqrt(sq)
		for i := range x {
			x[i] /= norm
		}
	}
	return x
}

func dot(w, x []float64) float64 {
	var sum float64
	for i := range w {
		sum += w[i] * x[i]
	}
	return sum
}
