// Package allele provides nucleotide complement operations for strand-flip
// handling.
package allele

import "fmt"

// complement maps each valid base to its complementary base. A zero value
// means the byte is not a valid allele symbol.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// InvalidAlleleError reports an allele string containing a symbol outside
// {A, C, G, T}.
type InvalidAlleleError struct {
	Allele string
	Symbol byte
}

func (e *InvalidAlleleError) Error() string {
	return fmt.Sprintf("invalid allele %q: symbol %q is not one of A, C, G, T", e.Allele, string(e.Symbol))
}

// Complement returns the base-wise complement of an allele string (A<->T,
// C<->G), preserving order. This flips the strand of a single-strand
// representation; it is not a reverse complement.
// Any symbol outside {A, C, G, T} returns an *InvalidAlleleError and no
// partial result.
func Complement(a string) (string, error) {
	buf := make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		c := complement[a[i]]
		if c == 0 {
			return "", &InvalidAlleleError{Allele: a, Symbol: a[i]}
		}
		buf[i] = c
	}
	return string(buf), nil
}
