package headings

import (
	"math/rand"
	"testing"

	"github.com/tsawler/outliner/model"
)

func TestClassifyRunSizeBands(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile() // 10pt body

	tests := []struct {
		name      string
		text      string
		size      float64
		font      string
		wantLevel model.Level
		wantOK    bool
	}{
		{"band one", "Major Section", 15, "Helvetica", model.LevelH1, true},
		{"band two", "Minor Section", 13, "Helvetica", model.LevelH2, true},
		{"bold fallback", "Emphasized Note", 11, "Helvetica-Bold", model.LevelH3, true},
		{"qualified no band", "Slightly Larger", 11.6, "Helvetica", model.LevelH3, true},
		{"body size", "Ordinary Sentence Case Line", 10, "Helvetica", model.LevelNone, false},
		{"body size bold", "Inline Emphasis Run", 10, "Helvetica-Bold", model.LevelNone, false},
		{"small non-bold bump", "Barely Larger Line", 11, "Helvetica", model.LevelNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := leftRun(tt.text, tt.size, 1, 700)
			run.FontName = tt.font

			cand, ok := c.ClassifyRun(run, profile)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && cand.Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", cand.Level, tt.wantLevel)
			}
		})
	}
}

func TestClassifyRunProminenceWins(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile()

	// "1.1.1" suggests H3 by depth, but a 1.5x-body size is band one;
	// the more prominent level wins.
	oversized := leftRun("1.1.1 Oversized Subsection", 15, 3, 700)
	cand, ok := c.ClassifyRun(oversized, profile)
	if !ok {
		t.Fatal("expected a heading")
	}
	if cand.Level != model.LevelH1 {
		t.Errorf("level = %v, want H1 over the marker's H3", cand.Level)
	}

	// The reverse case: a 1.4x bold run lands in band two, but its
	// single-segment chapter number promotes it to H1.
	numbered := leftRun("1. Introduction", 14, 2, 700)
	numbered.FontName = "Helvetica-Bold"
	cand, ok = c.ClassifyRun(numbered, profile)
	if !ok {
		t.Fatal("expected a heading")
	}
	if cand.Level != model.LevelH1 {
		t.Errorf("level = %v, want H1 over the band's H2", cand.Level)
	}
}

func TestClassifyRunMarkerBreaksBandGap(t *testing.T) {
	c := NewClassifier()

	// 1.2x body is heading-sized but below every band; the marker
	// depth decides the level.
	run := leftRun("2.3 Methods", 12, 2, 700)
	cand, ok := c.ClassifyRun(run, bodyProfile())
	if !ok {
		t.Fatal("expected a heading")
	}
	if cand.Level != model.LevelH2 {
		t.Errorf("level = %v, want H2 from marker depth", cand.Level)
	}
}

func TestClassifyRunPatternAtBodySize(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile()

	numbered := leftRun("1. Introduction", 10, 1, 700)
	cand, ok := c.ClassifyRun(numbered, profile)
	if !ok || cand.Level != model.LevelH1 {
		t.Errorf("numbered body-size run: got (%v, %v), want H1", cand.Level, ok)
	}

	keyword := leftRun("References", 10, 9, 700)
	cand, ok = c.ClassifyRun(keyword, profile)
	if !ok || cand.Level != model.LevelH1 {
		t.Errorf("keyword run: got (%v, %v), want H1", cand.Level, ok)
	}
	if len(cand.Signals) != 1 || cand.Signals[0] != SignalKeyword {
		t.Errorf("signals = %v, want [keyword]", cand.Signals)
	}
}

func TestClassifyRunMonotonicBanding(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile()

	// Growing the font size of otherwise identical runs never yields a
	// deeper heading level.
	prevDepth := 4
	for _, size := range []float64{11.6, 12.0, 12.5, 13.0, 14.0, 14.5, 15.0, 18.0} {
		run := leftRun("Quarterly Overview", size, 1, 700)
		cand, ok := c.ClassifyRun(run, profile)
		if !ok {
			t.Fatalf("size %v not classified", size)
		}
		depth := cand.Level.Depth()
		if depth > prevDepth {
			t.Errorf("size %v gave deeper level %v than a smaller run", size, cand.Level)
		}
		prevDepth = depth
	}
}

func TestClassifyRunNoiseRejected(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile()

	tests := []string{
		"the cat sat.",
		"42",
		"...",
		"A long line of body prose that wraps and wraps across the column,",
	}

	for _, text := range tests {
		run := leftRun(text, 16, 1, 700)
		if _, ok := c.ClassifyRun(run, profile); ok {
			t.Errorf("noise text %q classified as heading", text)
		}
	}
}

func TestClassifyRunIdempotent(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile()
	run := leftRun("1.1 Background", 13, 2, 640)

	first, ok1 := c.ClassifyRun(run, profile)
	second, ok2 := c.ClassifyRun(run, profile)

	if ok1 != ok2 || first.Level != second.Level {
		t.Errorf("classification not idempotent: (%v,%v) vs (%v,%v)",
			first.Level, ok1, second.Level, ok2)
	}
}

func TestClassifyReadingOrder(t *testing.T) {
	c := NewClassifier()

	runs := []model.TextRun{
		leftRun("2. Second Chapter", 15, 2, 700),
		leftRun("1. First Chapter", 15, 1, 700),
		leftRun("1.2 Lower Section", 13, 1, 400),
		leftRun("1.1 Upper Section", 13, 1, 600),
	}

	result, err := c.Classify(runs, bodyProfile())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	want := []string{
		"1. First Chapter",
		"1.1 Upper Section",
		"1.2 Lower Section",
		"2. Second Chapter",
	}
	if len(result.Candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(result.Candidates), len(want))
	}
	for i, cand := range result.Candidates {
		if cand.Run.Text != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, cand.Run.Text, want[i])
		}
	}
}

func TestClassifySkipsInvalidRuns(t *testing.T) {
	c := NewClassifier()

	runs := []model.TextRun{
		leftRun("1. First Chapter", 15, 1, 700),
		{Text: "No Geometry Heading", FontSize: 15},
		leftRun("2. Second Chapter", 15, 1, 500),
	}

	result, err := c.Classify(runs, bodyProfile())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if len(result.Candidates) != 2 {
		t.Errorf("got %d candidates, want 2", len(result.Candidates))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("got %d skipped, want 1", len(result.Skipped))
	}
	if result.Skipped[0].Index != 1 {
		t.Errorf("skipped index = %d, want 1", result.Skipped[0].Index)
	}
}

func TestClassifyPermutationInvariant(t *testing.T) {
	c := NewClassifier()
	profile := bodyProfile()

	runs := []model.TextRun{
		leftRun("1. Introduction", 15, 1, 700),
		leftRun("1.1 Background", 13, 1, 600),
		leftRun("Conclusion", 15, 8, 700),
		leftRun("plain prose that should never classify as anything", 10, 4, 500),
	}

	base, err := c.Classify(runs, profile)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	levels := func(r Result) map[model.Level]int {
		counts := make(map[model.Level]int)
		for _, cand := range r.Candidates {
			counts[cand.Level]++
		}
		return counts
	}
	wantLevels := levels(base)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.TextRun, len(runs))
		copy(shuffled, runs)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := c.Classify(shuffled, profile)
		if err != nil {
			t.Fatalf("Classify shuffled: %v", err)
		}

		gotLevels := levels(got)
		for level, count := range wantLevels {
			if gotLevels[level] != count {
				t.Fatalf("level %v count changed under shuffle: %d vs %d",
					level, gotLevels[level], count)
			}
		}
		for i := 1; i < len(got.Candidates); i++ {
			a, b := got.Candidates[i-1].Run, got.Candidates[i].Run
			if a.Page > b.Page {
				t.Fatal("candidates out of page order after shuffle")
			}
		}
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	if _, err := NewClassifier().Classify(nil, bodyProfile()); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestNewClassifierWithInvalidConfig(t *testing.T) {
	// Non-decreasing bands are invalid; the constructor falls back to
	// defaults rather than producing a broken classifier.
	bad := DefaultConfig()
	bad.Bands = []Band{
		{Ratio: 1.25, Level: model.LevelH2},
		{Ratio: 1.45, Level: model.LevelH1},
	}

	c := NewClassifierWithConfig(bad)
	run := leftRun("Major Section", 15, 1, 700)
	cand, ok := c.ClassifyRun(run, bodyProfile())
	if !ok || cand.Level != model.LevelH1 {
		t.Errorf("got (%v, %v), want H1 from default bands", cand.Level, ok)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"title ratio too low", func(c *Config) { c.TitleSizeRatio = 1.0 }},
		{"negative tolerance", func(c *Config) { c.CenterTolerance = -0.1 }},
		{"min ratio too low", func(c *Config) { c.MinSizeRatio = 0.9 }},
		{"zero min chars", func(c *Config) { c.MinHeadingChars = 0 }},
		{"zero max words", func(c *Config) { c.MaxHeadingWords = 0 }},
		{"band ratio too low", func(c *Config) { c.Bands[0].Ratio = 0.8 }},
		{"non-heading band level", func(c *Config) { c.Bands[0].Level = model.LevelTitle }},
		{"non-decreasing bands", func(c *Config) { c.Bands[1].Ratio = c.Bands[0].Ratio }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	c := NewClassifier()
	profile := bodyProfile()

	runs := make([]model.TextRun, 0, 400)
	for page := 1; page <= 20; page++ {
		runs = append(runs, leftRun("1. Chapter Opening", 15, page, 720))
		for i := 0; i < 19; i++ {
			runs = append(runs, leftRun("a line of ordinary body prose for the benchmark", 10, page, 700-float64(i)*14))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(runs, profile)
	}
}
