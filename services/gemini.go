package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	genai "google.golang.org/genai"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// guidanceFallback is what the assistant says when the gateway is unreachable.
// Gateway failures never surface as raw errors to the UI layer.
const guidanceFallback = "I'm having a brief connection surge. Please try again, I am here to help!"

const guidanceSystemInstruction = `You are 'CivicGuide', the AI assistant for CivicFlow.
Your goal is to help citizens report municipal issues.

LANGUAGE INSTRUCTIONS:
- You must support English, Hindi, Tamil, Malayalam, Telugu, Bengali, and Punjabi.
- The user's preferred language is: %s.
- Always respond in the language the user is using or their preferred language.
- Be culturally aware and use appropriate honorifics for the region.

CORE GOALS:
- Help users report potholes, broken lights, illegal dumping and water leaks.
- Help users identify which category their issue belongs to.
- Summarize descriptions for formal work orders.
- Remind users the target resolution time is under 7 days.`

const classifyPrompt = "Analyze this image. What kind of public works issue is this? " +
	"(Pothole, Streetlight, Illegal Dumping, Water Leak, or Other). " +
	"Provide a brief 1-sentence description and categorize it."

// contentGenerator is the single call the adapter makes against the external
// model. Tests substitute a fake.
type contentGenerator interface {
	generateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type genaiGenerator struct {
	cli *genai.Client
}

func (g *genaiGenerator) generateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.cli.Models.GenerateContent(ctx, model, contents, cfg)
}

// GeminiService adapts the three application-level intents (guidance,
// classification, image synthesis) onto the external generative model. It
// holds no conversation state; history is passed in by the caller on every
// guidance call. Synthesized images are memoised so a card re-render does not
// re-bill the model.
type GeminiService struct {
	gen        contentGenerator
	textModel  string
	imageModel string
	imageCache *lru.Cache[string, string]
}

func NewGeminiService(ctx context.Context, apiKey, textModel, imageModel string) (*GeminiService, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return newGeminiService(&genaiGenerator{cli: cli}, textModel, imageModel)
}

func newGeminiService(gen contentGenerator, textModel, imageModel string) (*GeminiService, error) {
	cache, err := lru.New[string, string](64)
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		gen:        gen,
		textModel:  textModel,
		imageModel: imageModel,
		imageCache: cache,
	}, nil
}

// RequestGuidance sends the conversation history plus the new message and
// returns the assistant's reply. Any transport or service failure collapses
// to the fixed fallback string; the second return reports which one the
// caller got.
func (s *GeminiService) RequestGuidance(ctx context.Context, message string, history []models.ChatMessage, language models.SupportedLanguage) (string, bool) {
	if !language.Valid() {
		language = models.LangEnglish
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.RoleModel
		if turn.Role == models.RoleUser {
			role = genai.RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: fmt.Sprintf(guidanceSystemInstruction, language)}},
		},
		Temperature: genai.Ptr[float32](0.8),
		TopP:        genai.Ptr[float32](0.95),
	}

	resp, err := s.gen.generateContent(ctx, s.textModel, contents, cfg)
	if err != nil {
		log.Printf("[GeminiService] guidance request failed: %v", err)
		return guidanceFallback, true
	}
	text := firstText(resp)
	if text == "" {
		return guidanceFallback, true
	}
	return text, false
}

// ClassifyIssueImage asks the model to categorize a photographed issue under
// a closed response schema. A response that does not conform to the schema
// fails with ClassificationError; the caller then falls back to manual entry.
func (s *GeminiService) ClassifyIssueImage(ctx context.Context, image []byte, mimeType string) (models.Classification, error) {
	if len(image) == 0 {
		return models.Classification{}, &ClassificationError{Detail: "empty image"}
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	categoryEnum := make([]string, 0, 5)
	for _, c := range models.Categories() {
		categoryEnum = append(categoryEnum, string(c))
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
			{Text: classifyPrompt},
		},
	}}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category":    {Type: genai.TypeString, Enum: categoryEnum},
				"description": {Type: genai.TypeString},
			},
			Required: []string{"category", "description"},
		},
	}

	resp, err := s.gen.generateContent(ctx, s.textModel, contents, cfg)
	if err != nil {
		return models.Classification{}, &ClassificationError{Detail: err.Error()}
	}
	return parseClassification(firstText(resp))
}

// parseClassification checks the raw model output against the closed schema.
func parseClassification(raw string) (models.Classification, error) {
	if strings.TrimSpace(raw) == "" {
		return models.Classification{}, &ClassificationError{Detail: "empty response"}
	}
	var out models.Classification
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return models.Classification{}, &ClassificationError{Detail: "malformed JSON: " + err.Error()}
	}
	if !out.Category.Valid() {
		return models.Classification{}, &ClassificationError{Detail: "category outside supported set: " + string(out.Category)}
	}
	if strings.TrimSpace(out.Description) == "" {
		return models.Classification{}, &ClassificationError{Detail: "missing description"}
	}
	return out, nil
}

// SynthesizeIssueImage best-effort generates an illustrative photo for a
// report without one. Any failure, and any response without inline image
// data, yields the empty string so callers fall back to a placeholder.
func (s *GeminiService) SynthesizeIssueImage(ctx context.Context, category, description string) string {
	key := category + "|" + description
	if cached, ok := s.imageCache.Get(key); ok {
		return cached
	}

	prompt := fmt.Sprintf("A realistic high-quality photo of a municipal infrastructure issue: %s. %s. Urban setting, real-world detail.", category, description)
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := s.gen.generateContent(ctx, s.imageModel, contents, nil)
	if err != nil {
		log.Printf("[GeminiService] image synthesis failed: %v", err)
		return ""
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				uri := "data:" + part.InlineData.MIMEType + ";base64," +
					base64.StdEncoding.EncodeToString(part.InlineData.Data)
				s.imageCache.Add(key, uri)
				return uri
			}
		}
	}
	return ""
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return ""
	}
	return cand.Content.Parts[0].Text
}
