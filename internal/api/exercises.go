package api

import (
	"context"
	"net/http"

	"carfleet/internal/exercise"
)

const (
	votingRoute     = "/api/v1/exercises/voting"
	multiplesRoute  = "/api/v1/exercises/multiplos"
	factorialRoute  = "/api/v1/exercises/fatorial"
	bubbleSortRoute = "/api/v1/exercises/bubble-sort"
)

// Voting returns the valid, blank and null vote percentages.
func (c *Client) Voting(ctx context.Context, in exercise.VotingInput) (exercise.VotingResult, error) {
	var out exercise.VotingResult
	err := c.do(ctx, call{method: http.MethodPost, route: votingRoute, path: votingRoute, body: in, schema: "voting", out: &out})
	return out, err
}

// Multiples sums the multiples of 3 or 5 below the given limit.
func (c *Client) Multiples(ctx context.Context, in exercise.MultiplesInput) (exercise.MultiplesResult, error) {
	var out exercise.MultiplesResult
	err := c.do(ctx, call{method: http.MethodPost, route: multiplesRoute, path: multiplesRoute, body: in, schema: "multiples", out: &out})
	return out, err
}

// Factorial keeps the result as a json.Number so large values survive.
func (c *Client) Factorial(ctx context.Context, in exercise.FactorialInput) (exercise.FactorialResult, error) {
	var out exercise.FactorialResult
	err := c.do(ctx, call{method: http.MethodPost, route: factorialRoute, path: factorialRoute, body: in, schema: "factorial", out: &out})
	return out, err
}

// BubbleSort returns the sorted vector.
func (c *Client) BubbleSort(ctx context.Context, in exercise.BubbleSortInput) (exercise.BubbleSortResult, error) {
	var out exercise.BubbleSortResult
	err := c.do(ctx, call{method: http.MethodPost, route: bubbleSortRoute, path: bubbleSortRoute, body: in, schema: "bubbleSort", out: &out})
	return out, err
}
