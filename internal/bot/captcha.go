package bot

import (
	"fmt"
	"math/rand"
)

// mathProblem is the human-verification task: two small integers and one of
// a fixed operator set, evaluated directly. User input is only ever parsed
// as a number and compared.
type mathProblem struct {
	A  int
	B  int
	Op byte
}

func newMathProblem() mathProblem {
	ops := []byte{'+', '-'}
	return mathProblem{
		A:  rand.Intn(10) + 1,
		B:  rand.Intn(10) + 1,
		Op: ops[rand.Intn(len(ops))],
	}
}

func (p mathProblem) Answer() int {
	if p.Op == '-' {
		return p.A - p.B
	}
	return p.A + p.B
}

func (p mathProblem) String() string {
	return fmt.Sprintf("%d %c %d", p.A, p.Op, p.B)
}
