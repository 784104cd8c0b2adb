// Package exercise defines the request and response shapes of the four
// exercise endpoints and the client-side parsing and formatting around them.
package exercise

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"carfleet/internal/validation"
)

// VotingInput is the body of POST /exercises/voting.
type VotingInput struct {
	TotalVoters int `json:"totalEleitores" validate:"min=1"`
	ValidVotes  int `json:"votosValidos" validate:"min=0"`
	BlankVotes  int `json:"votosBrancos" validate:"min=0"`
	NullVotes   int `json:"votosNulos" validate:"min=0"`
}

// VotingResult holds the percentages computed by the server.
type VotingResult struct {
	ValidPercent float64 `json:"percentualVotosValidos"`
	BlankPercent float64 `json:"percentualVotosBrancos"`
	NullPercent  float64 `json:"percentualVotosNulos"`
}

// MultiplesInput is the body of POST /exercises/multiplos.
type MultiplesInput struct {
	Number int `json:"numero" validate:"min=1"`
}

// MultiplesResult is the sum of multiples of 3 or 5 below Limit.
type MultiplesResult struct {
	Limit int   `json:"numeroLimite"`
	Sum   int64 `json:"somaMultiplos"`
}

// FactorialInput is the body of POST /exercises/fatorial.
type FactorialInput struct {
	Number int `json:"numero" validate:"min=0"`
}

// FactorialResult keeps the factorial as the server wrote it; it routinely
// exceeds 64 bits.
type FactorialResult struct {
	Number    int         `json:"numero"`
	Factorial json.Number `json:"fatorial"`
}

// BubbleSortInput is the body of POST /exercises/bubble-sort.
type BubbleSortInput struct {
	Vector []int `json:"vetor"`
}

// BubbleSortResult echoes the input next to the sorted vector.
type BubbleSortResult struct {
	Original []int `json:"vetorOriginal"`
	Sorted   []int `json:"vetorOrdenado"`
}

// ErrInvalidNumber is the panel message for inputs that are not integers.
const ErrInvalidNumber = "Informe um número inteiro válido"

// Check validates an exercise input against the form constraints and
// returns a user-facing message, or "" when the input may be submitted.
func Check(in any) string {
	failed := validation.Fields(in)
	if len(failed) == 0 {
		return ""
	}
	for _, field := range []string{"totalEleitores", "votosValidos", "votosBrancos", "votosNulos", "numero"} {
		if _, ok := failed[field]; !ok {
			continue
		}
		switch field {
		case "totalEleitores":
			return "Total de eleitores deve ser maior que zero"
		case "numero":
			if _, isMultiples := in.(MultiplesInput); isMultiples {
				return "O número deve ser maior que zero"
			}
			return "O número não pode ser negativo"
		default:
			return "A quantidade de votos não pode ser negativa"
		}
	}
	return ErrInvalidNumber
}

// ParseNumbers parses each raw value as an integer. It reports false when
// any value is blank or not a number.
func ParseNumbers(raw ...string) ([]int, bool) {
	out := make([]int, len(raw))
	for i, s := range raw {
		n, ok := validation.ParseInt(s)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// ParseVector splits a comma-separated list into integers, dropping tokens
// that are not numbers. The result is never nil.
func ParseVector(s string) []int {
	out := []int{}
	for _, tok := range strings.Split(s, ",") {
		if n, ok := validation.ParseInt(tok); ok {
			out = append(out, n)
		}
	}
	return out
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}

// FormatVector renders a vector as "[a, b, c]".
func FormatVector(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
