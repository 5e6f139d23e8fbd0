// Package questions supplies fill-in-the-blank arithmetic questions to the
// game engine. One operand of a generated equation is hidden behind a "?"
// token; the answer is the sequence of hidden values in equation order.
package questions

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"

	"api/game"
)

type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewGeneratorWithRand fixes the random source, for deterministic tests.
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) Next(difficulty game.Difficulty) (game.Question, error) {
	var equation []string
	var answer []float64

	switch difficulty {
	case game.DIFFICULTY_EASY:
		equation, answer = g.singleOp([]string{"+", "-"}, 10)
	case game.DIFFICULTY_MEDIUM:
		equation, answer = g.singleOp([]string{"+", "-", "*"}, 25)
	case game.DIFFICULTY_HARD:
		equation, answer = g.doubleOp()
	default:
		equation, answer = g.singleOp([]string{"+", "-"}, 10)
	}

	return game.Question{
		Id:         uuid.NewString(),
		Equation:   equation,
		Difficulty: difficulty,
		Answer:     answer,
	}, nil
}

// singleOp builds "a op b = r" with one operand blanked out. Subtractions
// are arranged so results stay non-negative, multiplications keep operands
// small enough for mental math.
func (g *Generator) singleOp(ops []string, limit int) ([]string, []float64) {
	op := ops[g.rng.IntN(len(ops))]

	var a, b, r int
	switch op {
	case "+":
		a = 1 + g.rng.IntN(limit)
		b = 1 + g.rng.IntN(limit)
		r = a + b
	case "-":
		a = 1 + g.rng.IntN(limit)
		b = 1 + g.rng.IntN(a)
		r = a - b
	case "*":
		a = 2 + g.rng.IntN(11)
		b = 2 + g.rng.IntN(11)
		r = a * b
	}

	tokens := []string{strconv.Itoa(a), op, strconv.Itoa(b), "=", strconv.Itoa(r)}
	blank := g.rng.IntN(2) * 2 // index of a or b
	hidden, _ := strconv.ParseFloat(tokens[blank], 64)
	tokens[blank] = "?"
	return tokens, []float64{hidden}
}

// doubleOp builds "a ox b oa c = r" where ox is multiplicative and oa is
// additive, so operator precedence reads naturally. Divisions always divide
// evenly.
func (g *Generator) doubleOp() ([]string, []float64) {
	ox := []string{"*", "/"}[g.rng.IntN(2)]
	oa := []string{"+", "-"}[g.rng.IntN(2)]

	var a, b, partial int
	switch ox {
	case "*":
		a = 2 + g.rng.IntN(11)
		b = 2 + g.rng.IntN(11)
		partial = a * b
	case "/":
		b = 2 + g.rng.IntN(11)
		quotient := 2 + g.rng.IntN(11)
		a = b * quotient
		partial = quotient
	}

	var c, r int
	switch oa {
	case "+":
		c = 1 + g.rng.IntN(25)
		r = partial + c
	case "-":
		c = 1 + g.rng.IntN(partial)
		r = partial - c
	}

	tokens := []string{strconv.Itoa(a), ox, strconv.Itoa(b), oa, strconv.Itoa(c), "=", strconv.Itoa(r)}
	blank := []int{0, 2, 4}[g.rng.IntN(3)]
	hidden, _ := strconv.ParseFloat(tokens[blank], 64)
	tokens[blank] = "?"
	return tokens, []float64{hidden}
}
