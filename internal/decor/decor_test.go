package decor

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	apperrors "github.com/Zachkp/portfolio/internal/platform/errors"
)

func TestGenerateFooterGolden(t *testing.T) {
	t.Parallel()

	got, err := Generate("footer", 3)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := []Particle{
		{ID: 0, Size: 10.558468780480325, X: 23.000076785683632, Delay: 5.1958254324272275, Duration: 16.55055896937847},
		{ID: 1, Size: 11.058628607541323, X: 54.17913314886391, Delay: 3.262691009324044, Duration: 14.779065554961562},
		{ID: 2, Size: 11.844033671543002, X: 95.58173809200525, Delay: 4.337488825432956, Duration: 12.259654672816396},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Generate(footer, 3) = %+v, want %+v", got, want)
	}
}

func TestSeedString(t *testing.T) {
	t.Parallel()

	if got := SeedString("footer", 3); got != "bubbles:footer:3" {
		t.Fatalf("SeedString() = %q", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	property := func(seedKey string, n uint8) bool {
		count := int(n) % 51
		a, errA := Generate(seedKey, count)
		b, errB := Generate(seedKey, count)
		return errA == nil && errB == nil && len(a) == count && reflect.DeepEqual(a, b)
	}
	cfg := &quick.Config{MaxCount: 300, Rand: rand.New(rand.NewSource(7))}
	if err := quick.Check(property, cfg); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateRanges(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "hero", "footer", "mobile-hero", "vr:cta", "日本"} {
		particles, err := Generate(key, 200)
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", key, err)
		}
		for i, p := range particles {
			if p.ID != i {
				t.Fatalf("particle %d has ID %d", i, p.ID)
			}
			if p.Size < 8 || p.Size >= 20 {
				t.Fatalf("size %v out of [8,20)", p.Size)
			}
			if p.X < 0 || p.X >= 100 {
				t.Fatalf("x %v out of [0,100)", p.X)
			}
			if p.Delay < 0 || p.Delay >= 6 {
				t.Fatalf("delay %v out of [0,6)", p.Delay)
			}
			if p.Duration < 10 || p.Duration >= 18 {
				t.Fatalf("duration %v out of [10,18)", p.Duration)
			}
		}
	}
}

func TestGenerateDistinctSeeds(t *testing.T) {
	t.Parallel()

	a, _ := Generate("a", 5)
	b, _ := Generate("b", 5)
	if reflect.DeepEqual(a, b) {
		t.Fatal("expected different sequences for different seed keys")
	}
}

func TestGenerateCountIsPartOfSeed(t *testing.T) {
	t.Parallel()

	three, _ := Generate("footer", 3)
	four, _ := Generate("footer", 4)
	if three[0] == four[0] {
		t.Fatal("expected count to change the sequence")
	}
}

func TestGenerateZero(t *testing.T) {
	t.Parallel()

	got, err := Generate("hero", 0)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	t.Parallel()

	got, err := Generate("hero", -1)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != nil {
		t.Fatalf("expected nil particles, got %v", got)
	}
	if !apperrors.HasCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParticleStyle(t *testing.T) {
	t.Parallel()

	p := Particle{Size: 10.5, X: 23, Delay: 5.25, Duration: 16}
	got := string(p.Style())
	for _, want := range []string{
		"--bubble-size: 10.500px",
		"--bubble-x: 23.000%",
		"--bubble-delay: 5.250s",
		"--bubble-duration: 16.000s",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("Style() = %q, missing %q", got, want)
		}
	}
}
