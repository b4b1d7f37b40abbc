package acl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/randquote/internal/domain"
)

func setupHapesire(t *testing.T, handler http.HandlerFunc) *HapesireClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHapesireClient(newTestClient(t, HapesireName, server.URL+"/api/quote"), testLogger())
}

func TestHapesire_RequestPath(t *testing.T) {
	for _, lang := range []domain.Language{domain.LanguageEnglish, domain.LanguageRussian} {
		t.Run(lang.String(), func(t *testing.T) {
			var path string

			c := setupHapesire(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				_, _ = io.WriteString(w, `{"data":{"attributes":{"text":"t","author":null}}}`)
			})

			_, err := c.FetchQuote(context.Background(), lang)
			require.NoError(t, err)
			assert.Equal(t, "/api/quote/"+lang.String(), path)
		})
	}
}

func TestHapesire_FetchQuote(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  *domain.Quote
		isErr func(error) bool
	}{
		{
			name: "with author",
			body: `{"data":{"attributes":{"text":"Be brief.","author":"Anon"}}}`,
			want: &domain.Quote{Text: "Be brief.", Author: "Anon"},
		},
		{
			name: "null author",
			body: `{"data":{"attributes":{"text":"Be brief.","author":null}}}`,
			want: &domain.Quote{Text: "Be brief."},
		},
		{
			name: "empty author",
			body: `{"data":{"attributes":{"text":"Be brief.","author":""}}}`,
			want: &domain.Quote{Text: "Be brief."},
		},
		{
			name:  "backslash apostrophe is not repaired",
			body:  `{"data":{"attributes":{"text":"Don\'t","author":null}}}`,
			isErr: domain.IsParse,
		},
		{
			name:  "missing data",
			body:  `{"meta":{}}`,
			isErr: domain.IsParse,
		},
		{
			name:  "missing attributes",
			body:  `{"data":{"id":"1"}}`,
			isErr: domain.IsParse,
		},
		{
			name:  "missing text",
			body:  `{"data":{"attributes":{"author":"A"}}}`,
			isErr: domain.IsParse,
		},
		{
			name:  "author wrong type",
			body:  `{"data":{"attributes":{"text":"x","author":7}}}`,
			isErr: domain.IsParse,
		},
		{
			name:  "data is array",
			body:  `{"data":[]}`,
			isErr: domain.IsParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupHapesire(t, respond(http.StatusOK, tt.body))

			got, err := c.FetchQuote(context.Background(), domain.LanguageEnglish)
			if tt.isErr != nil {
				require.Error(t, err)
				assert.True(t, tt.isErr(err), "unexpected error kind: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHapesire_ErrorStatus(t *testing.T) {
	c := setupHapesire(t, respond(http.StatusNotFound, `{"error":"no"}`))

	_, err := c.FetchQuote(context.Background(), domain.LanguageRussian)
	require.Error(t, err)
	assert.True(t, domain.IsRequest(err))
	assert.Contains(t, err.Error(), HapesireName)
}
