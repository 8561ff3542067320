package booking

import (
	"crypto/rand"
	"math/big"
)

// no 0/O or 1/I to keep codes readable over the phone
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const codeLength = 8

type CodeGenerator interface {
	Generate() (string, error)
}

type randomCodeGenerator struct {
	prefix string
}

// NewCodeGenerator returns codes like "RB-7KQ2M9XA".
func NewCodeGenerator(prefix string) CodeGenerator {
	return &randomCodeGenerator{prefix: prefix}
}

func (g *randomCodeGenerator) Generate() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return g.prefix + "-" + string(buf), nil
}
