package hasher

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
)

const poseidonFullRounds = 8

// partial rounds per state width, as in circomlib
var poseidonPartialRounds = map[int]int{3: 57, 4: 56}

type poseidonHex struct {
	C, S []string
	M, P [][]string
}

type poseidonParams struct {
	c, s []*big.Int
	m, p [][]*big.Int
}

var poseidonParamsByWidth = func() map[int]*poseidonParams {
	out := make(map[int]*poseidonParams, len(poseidonTables))
	for t, tab := range poseidonTables {
		out[t] = &poseidonParams{
			c: parseHex(tab.C),
			s: parseHex(tab.S),
			m: parseHexMatrix(tab.M),
			p: parseHexMatrix(tab.P),
		}
	}
	return out
}()

func parseHex(in []string) []*big.Int {
	out := make([]*big.Int, len(in))
	for i, s := range in {
		v, ok := new(big.Int).SetString(s, 16)
		if !ok {
			panic(fmt.Sprintf("hasher: bad poseidon constant %q", s))
		}
		out[i] = v
	}
	return out
}

func parseHexMatrix(in [][]string) [][]*big.Int {
	out := make([][]*big.Int, len(in))
	for i, row := range in {
		out[i] = parseHex(row)
	}
	return out
}

func exp5(api frontend.API, x frontend.Variable) frontend.Variable {
	x2 := api.Mul(x, x)
	x4 := api.Mul(x2, x2)
	return api.Mul(x4, x)
}

func ark(api frontend.API, state []frontend.Variable, c []*big.Int, offset int) {
	for i := range state {
		state[i] = api.Add(state[i], c[offset+i])
	}
}

func sbox(api frontend.API, state []frontend.Variable) {
	for i := range state {
		state[i] = exp5(api, state[i])
	}
}

// mix returns m^T * state.
func mix(api frontend.API, state []frontend.Variable, m [][]*big.Int) []frontend.Variable {
	out := make([]frontend.Variable, len(state))
	for i := range state {
		acc := frontend.Variable(0)
		for j := range state {
			acc = api.Add(acc, api.Mul(m[j][i], state[j]))
		}
		out[i] = acc
	}
	return out
}

// poseidon is circomlib's optimized Poseidon permutation with a zero
// capacity element, returning the first state word.
func poseidon(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	t := len(inputs) + 1
	prm, ok := poseidonParamsByWidth[t]
	if !ok {
		return nil, fmt.Errorf("hasher: poseidon over %d inputs is not supported", len(inputs))
	}
	nP := poseidonPartialRounds[t]
	half := poseidonFullRounds / 2

	state := make([]frontend.Variable, t)
	state[0] = 0
	copy(state[1:], inputs)

	ark(api, state, prm.c, 0)
	for i := 0; i < half-1; i++ {
		sbox(api, state)
		ark(api, state, prm.c, (i+1)*t)
		state = mix(api, state, prm.m)
	}
	sbox(api, state)
	ark(api, state, prm.c, half*t)
	state = mix(api, state, prm.p)

	for i := 0; i < nP; i++ {
		state[0] = api.Add(exp5(api, state[0]), prm.c[(half+1)*t+i])

		row := (2*t - 1) * i
		next := frontend.Variable(0)
		for j := range state {
			next = api.Add(next, api.Mul(prm.s[row+j], state[j]))
		}
		for k := 1; k < t; k++ {
			state[k] = api.Add(state[k], api.Mul(state[0], prm.s[row+t+k-1]))
		}
		state[0] = next
	}

	for i := 0; i < half-1; i++ {
		sbox(api, state)
		ark(api, state, prm.c, (half+1)*t+nP+i*t)
		state = mix(api, state, prm.m)
	}
	sbox(api, state)
	state = mix(api, state, prm.m)

	return state[0], nil
}
