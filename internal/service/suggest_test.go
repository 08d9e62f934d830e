package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nyaya-ai/legal-voice-api/internal/catalog"
	"github.com/nyaya-ai/legal-voice-api/internal/llm"
)

func newTestSuggestService(provider llm.Provider) *SuggestService {
	router := llm.NewRouter("mock")
	if provider != nil {
		router.RegisterProvider(provider)
	}
	return NewSuggestService(catalog.New(catalog.Personas()), router)
}

func TestSuggestEmptyNotesUsesFallback(t *testing.T) {
	svc := newTestSuggestService(nil)

	suggestions := svc.Suggest(context.Background(), "   ")
	assert.Len(t, suggestions, 3)
	assert.Equal(t, catalog.Personas()[0].ID, suggestions[0].ID)
}

func TestSuggestReanchorsToCatalog(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Generate", mock.Anything, mock.Anything, "").Return(&llm.Response{
		// Paraphrased descriptions must not leak through; only id/specialist
		// are trusted, and the persona is re-read from the catalog.
		Content: `[{"id":2,"specialist":"Criminal Lawyer","description":"made up"},{"id":999,"specialist":"Family Lawyer"}]`,
	}, nil)

	svc := newTestSuggestService(provider)

	suggestions := svc.Suggest(context.Background(), "I was arrested")
	assert.Len(t, suggestions, 2)

	c := catalog.New(catalog.Personas())
	want, _ := c.ByID(2)
	assert.Equal(t, *want, suggestions[0])

	byName, _ := c.BySpecialist("Family Lawyer")
	assert.Equal(t, *byName, suggestions[1])
}

func TestSuggestStripsFences(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Generate", mock.Anything, mock.Anything, "").Return(&llm.Response{
		Content: "```json\n[{\"id\":1,\"specialist\":\"General Lawyer\"}]\n```",
	}, nil)

	svc := newTestSuggestService(provider)

	suggestions := svc.Suggest(context.Background(), "not sure what I need")
	assert.Len(t, suggestions, 1)
	assert.Equal(t, 1, suggestions[0].ID)
}

func TestSuggestUnparseableFallsBack(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Generate", mock.Anything, mock.Anything, "").Return(&llm.Response{
		Content: "I suggest you talk to a criminal lawyer.",
	}, nil)

	svc := newTestSuggestService(provider)

	suggestions := svc.Suggest(context.Background(), "arrested")
	assert.Len(t, suggestions, 3)
}

func TestSuggestProviderErrorFallsBack(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Generate", mock.Anything, mock.Anything, "").Return(nil, errors.New("timeout"))

	svc := newTestSuggestService(provider)

	suggestions := svc.Suggest(context.Background(), "arrested")
	assert.Len(t, suggestions, 3)
}

func TestSuggestCapsAtThree(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Generate", mock.Anything, mock.Anything, "").Return(&llm.Response{
		Content: `[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5}]`,
	}, nil)

	svc := newTestSuggestService(provider)

	suggestions := svc.Suggest(context.Background(), "many problems")
	assert.Len(t, suggestions, 3)
}
