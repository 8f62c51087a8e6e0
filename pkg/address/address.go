package address

import (
	"fmt"
	"strings"
)

// Separator joins tokens in the text form of an Address.
// Tokens themselves must not contain the separator.
const Separator = "/"

// Address is an immutable ordered sequence of opaque tokens identifying a
// scoring entity. The zero value is the root address (no tokens), which is
// a prefix of every address.
type Address struct {
	tokens []string
}

// New constructs an Address from the given tokens. The token slice is copied;
// callers may reuse their slice afterwards. Tokens containing the separator
// are rejected.
func New(tokens ...string) (Address, error) {
	for i, tok := range tokens {
		if strings.Contains(tok, Separator) {
			return Address{}, fmt.Errorf("address token %d contains separator %q: %q", i, Separator, tok)
		}
	}
	copied := make([]string, len(tokens))
	copy(copied, tokens)
	return Address{tokens: copied}, nil
}

// MustNew is like New but panics on invalid tokens. Intended for constants
// and tests.
func MustNew(tokens ...string) Address {
	a, err := New(tokens...)
	if err != nil {
		panic(err)
	}
	return a
}

// Parse parses the text form of an Address. The empty string parses to the
// root address.
func Parse(s string) Address {
	if s == "" {
		return Address{}
	}
	return Address{tokens: strings.Split(s, Separator)}
}

// Tokens returns a copy of the address tokens.
func (a Address) Tokens() []string {
	if len(a.tokens) == 0 {
		return nil
	}
	copied := make([]string, len(a.tokens))
	copy(copied, a.tokens)
	return copied
}

// Len returns the number of tokens.
func (a Address) Len() int {
	return len(a.tokens)
}

// IsRoot reports whether the address has no tokens.
func (a Address) IsRoot() bool {
	return len(a.tokens) == 0
}

// String returns the text form of the address: tokens joined by Separator.
// The root address renders as the empty string.
func (a Address) String() string {
	return strings.Join(a.tokens, Separator)
}

// Equal reports whether two addresses have identical token sequences.
func (a Address) Equal(b Address) bool {
	if len(a.tokens) != len(b.tokens) {
		return false
	}
	for i := range a.tokens {
		if a.tokens[i] != b.tokens[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p's tokens are a leading subsequence of a's
// tokens. Every address has itself and the root address as prefixes. The
// relation is not symmetric. Runs in O(p.Len()).
func (a Address) HasPrefix(p Address) bool {
	if len(p.tokens) > len(a.tokens) {
		return false
	}
	for i := range p.tokens {
		if a.tokens[i] != p.tokens[i] {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler, enabling direct use of
// Address in YAML and JSON documents.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	*a = Parse(string(text))
	return nil
}

// CommonPrefixPair scans addrs for a pair in the prefix relation (either
// direction, duplicates included) and returns the indices of the first such
// pair found. ok is false if no pair conflicts. O(n²) over the input; n is
// the number of policy entries, which is small and human-authored.
func CommonPrefixPair(addrs []Address) (i, j int, ok bool) {
	for x := 0; x < len(addrs); x++ {
		for y := x + 1; y < len(addrs); y++ {
			if addrs[x].HasPrefix(addrs[y]) || addrs[y].HasPrefix(addrs[x]) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// AnyCommonPrefixes reports whether any two addresses in the input are in
// the prefix relation with each other. The result does not depend on input
// order.
func AnyCommonPrefixes(addrs []Address) bool {
	_, _, ok := CommonPrefixPair(addrs)
	return ok
}
