package bigint

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestFFTLen(t *testing.T) {
	t.Parallel()

	type TC struct {
		a, b int
		want int
	}

	tcs := []TC{
		{1, 1, 2},
		{2, 2, 4},
		{3, 2, 8},
		{4, 4, 8},
		{5, 4, 16},
		{100, 100, 256},
	}

	for _, tc := range tcs {
		if got := fftLen(tc.a, tc.b); got != tc.want {
			t.Errorf("fftLen(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFFTTransformRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	data := make([]complex128, 64)
	original := make([]complex128, len(data))
	for i := range data {
		data[i] = complex(float64(r.Intn(splitBase)), 0)
		original[i] = data[i]
	}

	fftTransform(data, false)
	fftTransform(data, true)

	for i := range data {
		if math.Abs(real(data[i])-real(original[i])) > 1e-6 {
			t.Fatalf("coefficient %d drifted: got %g, want %g", i, real(data[i]), real(original[i]))
		}
		if math.Abs(imag(data[i])) > 1e-6 {
			t.Fatalf("coefficient %d gained an imaginary part: %g", i, imag(data[i]))
		}
	}
}

func TestMulFFTLargeKnownProduct(t *testing.T) {
	t.Parallel()

	a := MustParse(strings.Repeat("1234567890", 4))
	b := MustParse(strings.Repeat("9876543210", 4))
	want := "12193263113702179522618503273386678859448712086533622923332237463801111263526900"

	if got := mulFFT(a, b); got.String() != want {
		t.Errorf("mulFFT = %s, want %s", got, want)
	}
}

// TestMulFFTCarryMerge targets the sub-digit merge: products whose
// convolution columns exceed one base-10^4 sub-digit must carry cleanly
// into higher blocks.
func TestMulFFTCarryMerge(t *testing.T) {
	t.Parallel()

	type TC struct {
		a, b string
		want string
	}

	tcs := []TC{
		{"99999999", "99999999", "9999999800000001"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
		{"10000", "10000", "100000000"},
		{"12345678", "1", "12345678"},
	}

	for _, tc := range tcs {
		got := mulFFT(MustParse(tc.a), MustParse(tc.b))
		if got.String() != tc.want {
			t.Errorf("mulFFT(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestMulFFTScratchReuse runs a sequence of multiplications of growing
// size through the pooled scratch path and checks each against the
// schoolbook reference. Growing sizes force the pooled buffer to resize.
func TestMulFFTScratchReuse(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	for _, blocks := range []int{1, 8, 64, 200, 300} {
		a := randInt(r, blocks)
		b := randInt(r, blocks)
		if got, want := mulFFT(a, b), mulSchoolbook(a, b); !got.Equal(want) {
			t.Fatalf("mulFFT disagrees with schoolbook at %d blocks", blocks)
		}
	}
}

func TestKaratsubaSplit(t *testing.T) {
	t.Parallel()

	x := FromBlocks(Positive, []uint32{1, 2, 3, 4, 5})

	hi, lo := splitAt(x, 2)
	if want := FromBlocks(Positive, []uint32{3, 4, 5}); !hi.Equal(want) {
		t.Errorf("high half = %v", hi.Blocks())
	}
	if want := FromBlocks(Positive, []uint32{1, 2}); !lo.Equal(want) {
		t.Errorf("low half = %v", lo.Blocks())
	}

	// Splitting past the end leaves everything in the low half.
	hi, lo = splitAt(x, 9)
	if !hi.IsZero() || !lo.Equal(x) {
		t.Errorf("oversized split: hi=%v lo=%v", hi.Blocks(), lo.Blocks())
	}

	// Reassembly: hi*Base^m + lo == x.
	hi, lo = splitAt(x, 2)
	if back := shiftBlocks(hi, 2).Add(lo); !back.Equal(x) {
		t.Errorf("split does not reassemble: %v", back.Blocks())
	}
}
