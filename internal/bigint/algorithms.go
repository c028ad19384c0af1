package bigint

import "fmt"

// AlgorithmNames lists the multiplication algorithms accepted by
// MulWith, in dispatch order.
func AlgorithmNames() []string {
	names := make([]string, len(mulTiers))
	for i, tier := range mulTiers {
		names[i] = tier.name
	}
	return names
}

// MulWith multiplies with a specific algorithm instead of the size
// dispatcher. Every algorithm is exact at any size up to the global
// operand ceiling, so forcing one only changes performance.
//
// Parameters:
//   - name: One of the AlgorithmNames entries.
//   - x, y: The factors.
//
// Returns:
//   - *Int: The product.
//   - error: A descriptive error if the algorithm name is unknown.
//
// MulWith panics with SizeLimitError beyond the operand ceiling, like
// Mul.
func MulWith(name string, x, y *Int) (*Int, error) {
	if x.IsZero() || y.IsZero() {
		return Zero(), nil
	}
	n := max(x.BlockCount(), y.BlockCount())
	if n > fftMaxBlocks {
		panic(SizeLimitError{Blocks: n, Limit: fftMaxBlocks})
	}
	for _, tier := range mulTiers {
		if tier.name == name {
			return tier.mul(x, y).withSign(xorSign(x.sign, y.sign)), nil
		}
	}
	return nil, fmt.Errorf("unknown multiplication algorithm %q", name)
}
