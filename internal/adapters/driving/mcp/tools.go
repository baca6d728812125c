package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ivergara/skym/internal/core/domain"
)

// FuzzyMatchInput is the input schema for the fuzzy_match tool.
type FuzzyMatchInput struct {
	Query string   `json:"query" jsonschema:"the text to look for; empty keeps every item in input order"`
	Items []string `json:"items" jsonschema:"the candidate strings to rank"`
	Limit int      `json:"limit,omitempty" jsonschema:"maximum number of matches to return (0 returns all)"`
}

// FuzzyMatchOutput is the output schema for the fuzzy_match tool.
type FuzzyMatchOutput struct {
	Matches []MatchOutput `json:"matches"`
	Count   int           `json:"count"`
	Total   int           `json:"total"`
}

// MatchOutput describes one ranked candidate.
type MatchOutput struct {
	Text    string `json:"text"`
	Index   int    `json:"index"`
	Class   string `json:"class"`
	Score   int64  `json:"score"`
	Offsets []int  `json:"offsets"`
}

// ScoreInput is the input schema for the score tool.
type ScoreInput struct {
	Query     string `json:"query" jsonschema:"the text to look for"`
	Candidate string `json:"candidate" jsonschema:"the string to score"`
}

// ScoreOutput is the output schema for the score tool.
type ScoreOutput struct {
	Matched bool   `json:"matched"`
	Class   string `json:"class"`
	Score   int64  `json:"score"`
	Offsets []int  `json:"offsets"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "fuzzy_match",
		Description: "Rank strings against a query. Exact matches come first, then " +
			"contiguous substrings, then ordered subsequences. Non-matching items are dropped.",
	}, s.handleFuzzyMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score",
		Description: "Score a single candidate against a query and report the matched byte offsets",
	}, s.handleScore)
}

// handleFuzzyMatch handles the fuzzy_match tool invocation.
func (s *Server) handleFuzzyMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FuzzyMatchInput,
) (*mcp.CallToolResult, FuzzyMatchOutput, error) {
	ranked, err := s.ports.Match.Rank(ctx, input.Query, domain.NewCandidates(input.Items))
	if err != nil {
		return nil, FuzzyMatchOutput{}, fmt.Errorf("ranking items: %w", err)
	}
	if input.Limit > 0 && len(ranked) > input.Limit {
		ranked = ranked[:input.Limit]
	}

	output := FuzzyMatchOutput{
		Matches: make([]MatchOutput, len(ranked)),
		Count:   len(ranked),
		Total:   len(input.Items),
	}
	for i, r := range ranked {
		output.Matches[i] = MatchOutput{
			Text:    r.Candidate.Text,
			Index:   r.Candidate.Index,
			Class:   r.Result.Class.String(),
			Score:   r.Result.Score,
			Offsets: offsetsOrEmpty(r.Result.Offsets),
		}
	}

	return nil, output, nil
}

// handleScore handles the score tool invocation.
func (s *Server) handleScore(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScoreInput,
) (*mcp.CallToolResult, ScoreOutput, error) {
	res := s.ports.Match.Score(input.Query, input.Candidate)
	return nil, ScoreOutput{
		Matched: res.Matched,
		Class:   res.Class.String(),
		Score:   res.Score,
		Offsets: offsetsOrEmpty(res.Offsets),
	}, nil
}

// offsetsOrEmpty keeps JSON output as [] rather than null.
func offsetsOrEmpty(offsets []int) []int {
	if offsets == nil {
		return []int{}
	}
	return offsets
}
