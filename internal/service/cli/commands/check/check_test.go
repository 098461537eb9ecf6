package check

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/myyachtvalue/modelsvc/internal/openai/general"
	openaiMock "github.com/myyachtvalue/modelsvc/internal/openai/mock"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/render/prompt"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/streams"
	"github.com/myyachtvalue/modelsvc/internal/service/models"
)

const testBaseURL = "https://api.openai.com/v1"

func newTestRenderer(out *bytes.Buffer) *prompt.Renderer {
	return prompt.NewRenderer(streams.NewOut(out), false)
}

func TestRunCheck(t *testing.T) {
	type testCase struct {
		name           string
		mockFunc       func(api *openaiMock.API)
		expectedError  string
		expectedOutput string
	}

	testCases := []testCase{
		{
			name: "Model is available",
			mockFunc: func(api *openaiMock.API) {
				api.
					On("Models", mock.Anything).
					Return([]openai.Model{{ID: "gpt-4.1"}, {ID: "gpt-4.1-mini"}}, nil)
			},
			expectedOutput: "Checking Open AI API at https://api.openai.com/v1\n" +
				"Open AI API at https://api.openai.com/v1 is reachable, model \"gpt-4.1-mini\" is available\n",
		},
		{
			name: "Model is not available",
			mockFunc: func(api *openaiMock.API) {
				api.
					On("Models", mock.Anything).
					Return([]openai.Model{{ID: "gpt-4.1"}}, nil)
			},
			expectedError:  `model "gpt-4.1-mini" is not available at https://api.openai.com/v1`,
			expectedOutput: "Checking Open AI API at https://api.openai.com/v1\n",
		},
		{
			name: "API is unreachable",
			mockFunc: func(api *openaiMock.API) {
				api.
					On("Models", mock.Anything).
					Return(nil, errors.New("failed to get openai models: connection refused"))
			},
			expectedError:  "Open AI API at https://api.openai.com/v1 is unreachable: failed to get openai models",
			expectedOutput: "Checking Open AI API at https://api.openai.com/v1\n",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		api := openaiMock.NewAPI(t)
		api.On("GetBaseURL").Return(testBaseURL)
		api.On("GetModel").Return("gpt-4.1-mini")
		tc.mockFunc(api)

		out := new(bytes.Buffer)

		err := runCheck(context.Background(), out, &checkOptions{
			openAI:   api,
			renderer: newTestRenderer(out),
			timeout:  time.Second,
		})

		if tc.expectedError == "" {
			require.NoError(t, err)
		} else {
			require.ErrorContains(t, err, tc.expectedError)
		}

		require.Equal(t, tc.expectedOutput, out.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestNewCheckCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4.1","object":"model"}]}`))
	}))
	defer server.Close()

	type testCase struct {
		name          string
		model         string
		expectedError bool
	}

	testCases := []testCase{
		{
			name:          "Served model",
			model:         "gpt-4.1",
			expectedError: false,
		},
		{
			name:          "Not served model",
			model:         "gpt-4.1-mini",
			expectedError: true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		out := new(bytes.Buffer)

		cliOpts := &options.CliOptions{}
		cliOpts.SetOut(streams.NewOut(out))
		cliOpts.SetRenderer(newTestRenderer(out))
		cliOpts.SetOpenAI(general.NewOpenAIAPI(models.OpenAI{
			APIKey:  "sk-test",
			BaseURL: server.URL + "/v1",
			Model:   tc.model,
		}))

		cmd := NewCheckCommand(cliOpts)
		cmd.SetArgs([]string{"--timeout", "2s"})

		err := cmd.Execute()

		require.Equal(t, tc.expectedError, err != nil, err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
