package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Question is one entry of a topic's question bank.
type Question struct {
	ID       QuestionID `json:"id"`
	Topic    string     `json:"topic"`
	Question string     `json:"question"`
	Solution Solution   `json:"solution"`
}

// QuestionID accepts both string and numeric ids in the bank files.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = QuestionID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("question id must be a string or number, got %s", data)
		}
		*id = QuestionID(n.String())
	}
	return nil
}

// SolutionKind tags the shape of a Solution.
type SolutionKind int

const (
	SolutionUnavailable SolutionKind = iota
	SolutionText
	SolutionCode
	SolutionMarkdown
)

func (k SolutionKind) String() string {
	switch k {
	case SolutionText:
		return "text"
	case SolutionCode:
		return "code"
	case SolutionMarkdown:
		return "markdown"
	default:
		return "unavailable"
	}
}

// Solution is either prose, a code block, markdown, or unavailable. Any
// JSON shape other than a string, {"type":"code","code":"..."} or
// {"type":"markdown","text":"..."} decodes as unavailable rather than
// failing the whole bank.
type Solution struct {
	Kind     SolutionKind
	Text     string
	Code     string
	Language string
}

// TextSolution returns a prose solution.
func TextSolution(text string) Solution {
	return Solution{Kind: SolutionText, Text: text}
}

// MarkdownSolution returns a solution rendered as markdown.
func MarkdownSolution(text string) Solution {
	return Solution{Kind: SolutionMarkdown, Text: text}
}

// CodeSolution returns a code solution; language may be empty.
func CodeSolution(code, language string) Solution {
	return Solution{Kind: SolutionCode, Code: code, Language: language}
}

func (s *Solution) UnmarshalJSON(data []byte) error {
	*s = Solution{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = TextSolution(text)
	case '{':
		var rec struct {
			Type     string  `json:"type"`
			Code     *string `json:"code"`
			Text     *string `json:"text"`
			Language string  `json:"language"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil
		}
		switch {
		case rec.Type == "code" && rec.Code != nil:
			*s = CodeSolution(*rec.Code, rec.Language)
		case rec.Type == "markdown" && rec.Text != nil:
			*s = MarkdownSolution(*rec.Text)
		}
	}
	return nil
}

func (s Solution) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SolutionText:
		return json.Marshal(s.Text)
	case SolutionCode:
		rec := struct {
			Type     string `json:"type"`
			Code     string `json:"code"`
			Language string `json:"language,omitempty"`
		}{"code", s.Code, s.Language}
		return json.Marshal(rec)
	case SolutionMarkdown:
		return json.Marshal(struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{"markdown", s.Text})
	default:
		return []byte("null"), nil
	}
}

// DecodeBank parses a JSON array of questions.
func DecodeBank(data []byte) ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decoding question bank: %w", err)
	}
	if questions == nil {
		return nil, fmt.Errorf("decoding question bank: expected a JSON array, got %s", firstToken(data))
	}
	return questions, nil
}

func firstToken(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > 16 {
		data = data[:16]
	}
	if len(data) == 0 {
		return "empty document"
	}
	return string(data)
}
