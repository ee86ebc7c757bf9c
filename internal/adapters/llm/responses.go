package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/adapters/providers"
	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4.1-mini"
)

var _ domain.ReportGenerator = (*ResponsesClient)(nil)

// ResponsesClient generates coach reports through the OpenAI Responses API.
type ResponsesClient struct {
	apiKey string
	model  string
	client openai.Client
	log    *zap.Logger
}

func NewResponsesClient(apiKey, model, baseURL string, httpClient *http.Client, log *zap.Logger) *ResponsesClient {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/"),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &ResponsesClient{
		apiKey: apiKey,
		model:  model,
		client: client,
		log:    log,
	}
}

// Generate makes one request. Every failure, including a reply without text, is
// reported as ("", false).
func (c *ResponsesClient) Generate(ctx context.Context, prompt domain.ReportPrompt) (string, bool) {
	text, err := c.generate(ctx, prompt)
	providers.Observe(c.log, providers.SourceOpenAI, err)
	if err != nil {
		return "", false
	}
	return text, true
}

func (c *ResponsesClient) generate(ctx context.Context, prompt domain.ReportPrompt) (string, error) {
	if c.apiKey == "" {
		return "", providers.ErrMissingCredential
	}

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				inputMessage(responses.EasyInputMessageRoleSystem, prompt.System),
				inputMessage(responses.EasyInputMessageRoleUser, prompt.User),
			},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: responses returned %d", providers.ErrUnexpectedStatus, apiErr.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", providers.ErrTransport, err)
	}

	text, ok := ExtractText([]byte(resp.RawJSON()))
	if !ok {
		return "", fmt.Errorf("%w: response carries no text", providers.ErrNoContent)
	}
	return text, nil
}

func inputMessage(role responses.EasyInputMessageRole, content string) responses.ResponseInputItemUnionParam {
	return responses.ResponseInputItemUnionParam{
		OfMessage: &responses.EasyInputMessageParam{
			Role:    role,
			Content: responses.EasyInputMessageContentUnionParam{OfString: openai.String(content)},
		},
	}
}

// ExtractText recovers the reply from either response shape: the top-level
// output_text string, or the text fragments of output[].content[] items of type
// output_text or text, joined with newlines in order.
func ExtractText(body []byte) (string, bool) {
	root := gjson.ParseBytes(body)

	if direct := root.Get("output_text"); direct.Type == gjson.String && direct.Str != "" {
		text := strings.TrimSpace(direct.Str)
		return text, text != ""
	}

	var chunks []string
	root.Get("output").ForEach(func(_, item gjson.Result) bool {
		item.Get("content").ForEach(func(_, part gjson.Result) bool {
			kind := part.Get("type").String()
			fragment := part.Get("text")
			if (kind == "output_text" || kind == "text") && fragment.Type == gjson.String {
				chunks = append(chunks, fragment.Str)
			}
			return true
		})
		return true
	})

	text := strings.TrimSpace(strings.Join(chunks, "\n"))
	return text, text != ""
}
