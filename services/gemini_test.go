package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// fakeGenerator scripts the external model for tests.
type fakeGenerator struct {
	resp  *genai.GenerateContentResponse
	err   error
	calls int

	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
}

func (f *fakeGenerator) generateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastModel = model
	f.lastContents = contents
	f.lastConfig = cfg
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func imageResponse(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
			}},
		}},
	}
}

func newTestService(t *testing.T, gen contentGenerator) *GeminiService {
	t.Helper()
	svc, err := newGeminiService(gen, "text-model", "image-model")
	require.NoError(t, err)
	return svc
}

func TestRequestGuidanceCarriesHistoryAndLanguage(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("File it under Pothole.")}
	svc := newTestService(t, gen)

	history := []models.ChatMessage{
		{Role: models.RoleUser, Text: "There is a hole in my street"},
		{Role: models.RoleModel, Text: "Can you describe it?"},
	}
	text, fellBack := svc.RequestGuidance(context.Background(), "It is about a meter wide", history, models.LangTamil)

	assert.Equal(t, "File it under Pothole.", text)
	assert.False(t, fellBack)
	assert.Equal(t, "text-model", gen.lastModel)
	require.Len(t, gen.lastContents, 3, "history turns plus the new message")
	assert.Equal(t, "It is about a meter wide", gen.lastContents[2].Parts[0].Text)
	require.NotNil(t, gen.lastConfig.SystemInstruction)
	assert.Contains(t, gen.lastConfig.SystemInstruction.Parts[0].Text, "Tamil")
}

func TestRequestGuidanceFallsBackOnTransportFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := newTestService(t, gen)

	text, fellBack := svc.RequestGuidance(context.Background(), "hello", nil, models.LangEnglish)
	assert.Equal(t, guidanceFallback, text)
	assert.True(t, fellBack)
}

func TestRequestGuidanceFallsBackOnEmptyResponse(t *testing.T) {
	gen := &fakeGenerator{resp: &genai.GenerateContentResponse{}}
	svc := newTestService(t, gen)

	text, fellBack := svc.RequestGuidance(context.Background(), "hello", nil, models.LangEnglish)
	assert.Equal(t, guidanceFallback, text)
	assert.True(t, fellBack)
}

func TestClassifyIssueImageParsesConformingResponse(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(`{"category":"Water Leak","description":"Burst pipe flooding the sidewalk."}`)}
	svc := newTestService(t, gen)

	result, err := svc.ClassifyIssueImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryWaterLeak, result.Category)
	assert.Equal(t, "Burst pipe flooding the sidewalk.", result.Description)

	require.NotNil(t, gen.lastConfig.ResponseSchema)
	assert.Equal(t, "application/json", gen.lastConfig.ResponseMIMEType)
	assert.Contains(t, gen.lastConfig.ResponseSchema.Properties["category"].Enum, "Illegal Dumping")
}

func TestClassifyIssueImageRejectsNonconformingResponses(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"category outside enum", `{"category":"Sinkhole","description":"a hole"}`},
		{"missing description", `{"category":"Pothole","description":""}`},
		{"malformed json", `category: Pothole`},
		{"empty body", ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{resp: textResponse(tc.raw)}
			svc := newTestService(t, gen)

			_, err := svc.ClassifyIssueImage(context.Background(), []byte{0x01}, "")
			var cErr *ClassificationError
			assert.ErrorAs(t, err, &cErr, "must fail with ClassificationError, not a raw parse panic")
		})
	}
}

func TestClassifyIssueImageRejectsEmptyImage(t *testing.T) {
	svc := newTestService(t, &fakeGenerator{})
	_, err := svc.ClassifyIssueImage(context.Background(), nil, "")
	var cErr *ClassificationError
	assert.ErrorAs(t, err, &cErr)
}

func TestSynthesizeIssueImageReturnsDataURI(t *testing.T) {
	gen := &fakeGenerator{resp: imageResponse("image/png", []byte{0x89, 0x50})}
	svc := newTestService(t, gen)

	uri := svc.SynthesizeIssueImage(context.Background(), "Pothole", "Main St crater")
	assert.Equal(t, "data:image/png;base64,iVA=", uri)
	assert.Equal(t, "image-model", gen.lastModel)
}

func TestSynthesizeIssueImageSwallowsFailures(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := newTestService(t, gen)

	uri := svc.SynthesizeIssueImage(context.Background(), "Pothole", "Main St crater")
	assert.Equal(t, "", uri)
}

func TestSynthesizeIssueImageReturnsEmptyWhenNoInlineData(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("sorry, text only")}
	svc := newTestService(t, gen)

	uri := svc.SynthesizeIssueImage(context.Background(), "Pothole", "Main St crater")
	assert.Equal(t, "", uri)
}

func TestSynthesizeIssueImageCachesResults(t *testing.T) {
	gen := &fakeGenerator{resp: imageResponse("image/png", []byte{0x01})}
	svc := newTestService(t, gen)

	first := svc.SynthesizeIssueImage(context.Background(), "Pothole", "Main St crater")
	second := svc.SynthesizeIssueImage(context.Background(), "Pothole", "Main St crater")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls, "second call must be served from cache")
}
