// Package prompt holds the intent-classification system prompt and the
// parser for the structured response it asks models to produce.
package prompt

import (
	"encoding/json"
	"fmt"
)

// System is the instruction block sent ahead of every query. It pins
// the closed category set and the exact JSON shape of the reply.
const System = `You are an intent classification tool. Your job is to identify the user's intent behind a query and output the result in strict JSON format with two keys: 'intent' and 'confidence'.

Output format:
{ "intent": "<one of: weather, time, map, llm, web_search, math, date, unknown>", "confidence": <float between 0 and 1> }

Intent categories:
- 'weather': Questions about current or future weather conditions.
- 'time': Requests for current local time in a location or time zone.
- 'map': Queries about places, locations, countries, directions, or geography.
- 'llm': Questions that can be answered with general world knowledge or historical facts (e.g. capital cities, famous people, events). Do NOT use this intent for recent or changing information.
- 'web_search': Questions that require real-time or up-to-date information (e.g. latest news, sports scores, live data, current population or stock prices).
- 'math': Requests for numeric calculations or arithmetic.
- 'date': Questions about today's date, holidays, or date math (e.g. how many days until...).
- 'unknown': Use this if the query is vague, conversational, or doesn't match any known category.

IMPORTANT:
- If a question asks about something recent or dynamic (e.g. 'Who won the Super Bowl?', 'What's the stock price?'), classify it as 'web_search'.
- If a question asks about something timeless or historical (e.g. 'What is the capital of France?', 'Who discovered gravity?'), classify it as 'llm'.
- Return ONLY a single JSON object with the predicted intent and confidence score. Do not include explanations, comments, or extra text.

Examples:
User: What is the capital of France?
{ "intent": "llm", "confidence": 0.9 }

User: Who won the last Super Bowl?
{ "intent": "web_search", "confidence": 0.8 }
`

// Build combines the system prompt with one user query.
func Build(query string) string {
	return fmt.Sprintf("%s\nUser: %s", System, query)
}

// Classification is a parsed model reply.
type Classification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Parse decodes a model reply into a Classification. An absent intent
// field decodes to the empty string; callers apply the record defaults.
// Any reply that is not a JSON object with the expected field types is
// an error, which the runner records with the sentinel label.
func Parse(text string) (Classification, error) {
	var c Classification
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return Classification{}, fmt.Errorf("response is not the expected JSON object: %w", err)
	}
	return c, nil
}
