package usecase_test

import (
	"errors"
	"fmt"
	"testing"

	portmocks "github.com/bnema/atlas/internal/application/port/mocks"
	"github.com/bnema/atlas/internal/application/usecase"
	"github.com/bnema/atlas/internal/domain/autocomplete"
	"github.com/bnema/atlas/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const googleTemplate = "https://www.google.com/search?q="

func TestSuggestUseCase_EmptyQuery(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	assert.Empty(t, uc.Suggest(testContext(), "", autocomplete.LocalData{}, googleTemplate))
	assert.Empty(t, uc.Suggest(testContext(), "   ", autocomplete.LocalData{}, googleTemplate))
}

func TestSuggestUseCase_LocalThenRemote(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	provider.EXPECT().Suggest(mock.Anything, "go", "google").
		Return([]string{"golang", "go tutorial", " "}, nil).Once()

	data := autocomplete.LocalData{
		Bookmarks: []entity.Bookmark{{URL: "https://go.dev", Title: "Go"}},
	}

	got := uc.Suggest(testContext(), "go", data, googleTemplate)

	require.Len(t, got, 3)
	assert.Equal(t, autocomplete.Suggestion{Source: autocomplete.SourceBookmark, Text: "Go", URL: "https://go.dev"}, got[0])
	assert.Equal(t, autocomplete.Suggestion{Source: autocomplete.SourceSearch, Text: "golang"}, got[1])
	assert.Equal(t, autocomplete.Suggestion{Source: autocomplete.SourceSearch, Text: "go tutorial"}, got[2])
}

func TestSuggestUseCase_RemoteDuplicatesOfLocalAreDropped(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	provider.EXPECT().Suggest(mock.Anything, "rust", "google").
		Return([]string{"Rust lang", "rust book"}, nil).Once()

	data := autocomplete.LocalData{
		History: []entity.HistoryEntry{{ID: 1, URL: "https://www.google.com/search?q=rust+lang", Title: "rust lang - Google Search"}},
	}

	got := uc.Suggest(testContext(), "rust", data, googleTemplate)

	require.Len(t, got, 2)
	assert.Equal(t, "rust lang", got[0].Text)
	assert.Equal(t, autocomplete.SourceHistory, got[0].Source)
	assert.Equal(t, "rust book", got[1].Text)
}

func TestSuggestUseCase_ShortQuerySkipsRemote(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	data := autocomplete.LocalData{
		Shortcuts: []entity.Shortcut{{ID: "s1", Title: "GitHub", URL: "https://github.com"}},
	}

	got := uc.Suggest(testContext(), "g", data, googleTemplate)

	require.Len(t, got, 1)
	assert.Equal(t, autocomplete.SourceShortcut, got[0].Source)
}

func TestSuggestUseCase_SetMinQueryLength(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	uc.SetMinQueryLength(4)
	assert.Empty(t, uc.Suggest(testContext(), "abc", autocomplete.LocalData{}, googleTemplate))

	provider.EXPECT().Suggest(mock.Anything, "abcd", "google").Return([]string{"abcde"}, nil).Once()
	got := uc.Suggest(testContext(), "abcd", autocomplete.LocalData{}, googleTemplate)
	require.Len(t, got, 1)
}

func TestSuggestUseCase_RemoteErrorDegradesToLocal(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	provider.EXPECT().Suggest(mock.Anything, "git", "google").Return(nil, errors.New("timeout")).Once()

	data := autocomplete.LocalData{
		Shortcuts: []entity.Shortcut{{ID: "s1", Title: "GitHub", URL: "https://github.com"}},
	}

	got := uc.Suggest(testContext(), "git", data, googleTemplate)

	require.Len(t, got, 1)
	assert.Equal(t, "GitHub", got[0].Text)
}

func TestSuggestUseCase_EngineFollowsTemplate(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	provider.EXPECT().Suggest(mock.Anything, "weather", "duckduckgo").Return([]string{"weather today"}, nil).Once()

	got := uc.Suggest(testContext(), "weather", autocomplete.LocalData{}, "https://duckduckgo.com/?q=")

	require.Len(t, got, 1)
	assert.Equal(t, "weather today", got[0].Text)
}

func TestSuggestUseCase_CapsCombinedResults(t *testing.T) {
	provider := portmocks.NewMockSuggestionProvider(t)
	uc := usecase.NewSuggestUseCase(provider, 0)

	phrases := make([]string, 0, 12)
	for i := range 12 {
		phrases = append(phrases, fmt.Sprintf("news %d", i))
	}
	provider.EXPECT().Suggest(mock.Anything, "news", "google").Return(phrases, nil).Once()

	got := uc.Suggest(testContext(), "news", autocomplete.LocalData{}, googleTemplate)

	assert.Len(t, got, autocomplete.MaxCombined)
}

func TestSuggestUseCase_NilProviderIsLocalOnly(t *testing.T) {
	uc := usecase.NewSuggestUseCase(nil, 0)

	data := autocomplete.LocalData{
		Bookmarks: []entity.Bookmark{{URL: "https://news.ycombinator.com", Title: "Hacker News"}},
	}

	got := uc.Suggest(testContext(), "hack", data, googleTemplate)

	require.Len(t, got, 1)
	assert.Equal(t, "Hacker News", got[0].Text)
}
