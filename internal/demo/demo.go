// Package demo provides an offline llm.Provider that answers with canned
// fine analyses, cancellation letters and contest arguments. It lets the CLI
// and the API run end to end without an API key.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"
	"unicode"

	"github.com/abhisek/finecheck/internal/llm"
)

// Provider is the offline provider.
type Provider struct {
	now func() time.Time
}

// New returns a demo provider.
func New() *Provider {
	return &Provider{now: time.Now}
}

// Name reports the vendor label used in request events.
func (p *Provider) Name() string { return "demo" }

// ModelID returns "demo".
func (p *Provider) ModelID() string { return "demo" }

// Generate picks a canned answer from the request purpose and language.
// The same prompt always yields the same analysis.
func (p *Provider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hebrew := isHebrew(req.System)
	user := lastUserMessage(req)

	var (
		content json.RawMessage
		err     error
	)
	switch {
	case req.Schema != nil && req.Schema.Name == llm.PurposeContestArguments:
		args := argumentsEN
		if hebrew {
			args = argumentsHE
		}
		content, err = json.Marshal(map[string][]string{"arguments": args})
	case llm.PurposeFrom(ctx) == llm.PurposeCancellationLetter:
		content, err = json.Marshal(p.letter(user, hebrew))
	default:
		set := analysesEN
		if hebrew {
			set = analysesHE
		}
		h := fnv.New32a()
		h.Write([]byte(user))
		content, err = json.Marshal(set[h.Sum32()%uint32(len(set))].text())
	}
	if err != nil {
		return nil, err
	}

	in, out := len(strings.Fields(req.System+" "+user)), len(strings.Fields(string(content)))
	return &llm.Response{
		Content:    content,
		Model:      "demo",
		StopReason: "end",
		Usage:      llm.Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
	}, nil
}

func (p *Provider) letter(prompt string, hebrew bool) string {
	tmpl := letterEN
	if hebrew {
		tmpl = letterHE
	}
	r := strings.NewReplacer(
		"{today}", p.now().Format("2006-01-02"),
		"{report}", promptField(prompt, "Fine Report #", "דוח מספר ", "דוח קנס מספר "),
		"{date}", promptField(prompt, "Date:", "תאריך:"),
		"{violation}", promptField(prompt, "Violation:", "עבירה:", "סוג העבירה:"),
		"{location}", promptField(prompt, "Location:", "מיקום:"),
	)
	return r.Replace(tmpl)
}

// promptField returns the value of the first prompt line that starts with
// one of the labels.
func promptField(prompt string, labels ...string) string {
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		for _, l := range labels {
			if strings.HasPrefix(line, l) {
				return strings.TrimSpace(strings.TrimPrefix(line, l))
			}
		}
	}
	return ""
}

func lastUserMessage(req llm.Request) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == llm.RoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}

func isHebrew(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hebrew, r) {
			return true
		}
	}
	return false
}

type cannedAnalysis struct {
	summary        string
	keyPoints      []string
	recommendation string
	result         string
	labels         [4]string
}

// text renders the analysis in the sectioned layout the prompts ask for.
func (a cannedAnalysis) text() string {
	var b strings.Builder
	b.WriteString(a.labels[0] + ": " + a.summary + "\n\n")
	b.WriteString(a.labels[1] + ":\n")
	for i, kp := range a.keyPoints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, kp)
	}
	b.WriteString("\n" + a.labels[2] + ": " + a.recommendation + "\n\n")
	b.WriteString(a.labels[3] + ": " + a.result)
	return b.String()
}
