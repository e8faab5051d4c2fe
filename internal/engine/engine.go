// Package engine generates the bar's content with Gemini and falls back to
// embedded tables whenever the model is not configured or misbehaves.
package engine

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	mathrand "math/rand"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/api/option"
)

//go:embed prompts/*.txt
var promptFS embed.FS

var prompts = template.Must(template.ParseFS(promptFS, "prompts/*.txt"))

var errOffline = errors.New("no API key configured")

// Engine implements game.ContentProvider. It is safe for concurrent use.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
	// lively is the same model at a higher temperature, for customers.
	lively *genai.GenerativeModel

	tables *tables

	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewEngine connects to Gemini. With an empty apiKey the engine runs offline
// and serves everything from the fallback tables.
func NewEngine(ctx context.Context, apiKey, modelName string, rng *mathrand.Rand) (*Engine, error) {
	t, err := loadTables()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{tables: t, rng: rng}
	if apiKey == "" {
		return e, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	e.client = client
	e.model = client.GenerativeModel(modelName)
	e.model.ResponseMIMEType = "application/json"
	e.lively = client.GenerativeModel(modelName)
	e.lively.ResponseMIMEType = "application/json"
	e.lively.SetTemperature(1.1)
	return e, nil
}

// Online reports whether the engine talks to the model at all.
func (e *Engine) Online() bool { return e.client != nil }

func (e *Engine) Close() {
	if e.client != nil {
		e.client.Close()
	}
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) float() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) perm(n int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Perm(n)
}

func (e *Engine) pick(lines []string) string {
	if len(lines) == 0 {
		return "..."
	}
	return lines[e.intn(len(lines))]
}

// ask renders a prompt, sends it and decodes the validated answer into out.
func (e *Engine) ask(ctx context.Context, model *genai.GenerativeModel, prompt string, data any, schema *jsonschema.Schema, out any) error {
	if e.client == nil {
		return errOffline
	}

	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, prompt, data); err != nil {
		return err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return fmt.Errorf("unexpected response type from Gemini")
	}
	return decode(string(text), schema, out)
}

// decode strips a markdown fence, checks the document against schema and
// unmarshals it into out.
func decode(text string, schema *jsonschema.Schema, out any) error {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	dec := json.NewDecoder(strings.NewReader(clean))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func warn(op string, err error) {
	if errors.Is(err, errOffline) {
		return
	}
	log.Printf("engine: %s: %v; using fallback", op, err)
}
