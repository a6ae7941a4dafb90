package whisper

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kbukum/speechkit/config"
	"github.com/kbukum/speechkit/errors"
	"github.com/kbukum/speechkit/httpclient"
	"github.com/kbukum/speechkit/logger"
	"github.com/kbukum/speechkit/provider"
	"github.com/kbukum/speechkit/transcription"
	"github.com/kbukum/speechkit/util"
	"github.com/kbukum/speechkit/validation"
)

const (
	// ProviderName is the registered name for the Whisper provider.
	ProviderName = "whisper"

	// DefaultBaseURL points at Groq's OpenAI-compatible API.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the transcription model used when none is configured.
	DefaultModel = "whisper-large-v3"
	// DefaultResponseFormat requests the compact JSON schema.
	DefaultResponseFormat = "json"

	defaultRequestTimeout  = 30 * time.Second
	defaultTransferTimeout = 60 * time.Second

	transcriptionsPath = "/audio/transcriptions"
	modelsPath         = "/models"
)

// Config holds configuration for the Whisper transcription provider.
type Config struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Model   string `mapstructure:"model" validate:"required"`
	// Language constrains transcription to a language code (e.g. "en").
	// Empty means auto-detect; the form part is then omitted entirely.
	Language       string `mapstructure:"language"`
	ResponseFormat string `mapstructure:"response_format" validate:"oneof=json verbose_json"`
	// APIKey is the packaged credential. The environment variable and a
	// runtime override are consulted when it is empty or the placeholder.
	APIKey string `mapstructure:"api_key"`
	// APIKeyEnvVar overrides the environment variable consulted for the
	// credential. Defaults to config.DefaultAPIKeyEnvVar.
	APIKeyEnvVar string `mapstructure:"api_key_env_var"`
	// RequestTimeout bounds the wait for response headers.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	// TransferTimeout bounds the entire upload and download.
	TransferTimeout time.Duration `mapstructure:"transfer_timeout" validate:"gte=0"`
}

// ApplyDefaults fills zero fields with production defaults.
func (c *Config) ApplyDefaults() {
	c.BaseURL = util.Coalesce(c.BaseURL, DefaultBaseURL)
	c.Model = util.Coalesce(c.Model, DefaultModel)
	c.ResponseFormat = util.Coalesce(c.ResponseFormat, DefaultResponseFormat)
	c.RequestTimeout = util.Coalesce(c.RequestTimeout, defaultRequestTimeout)
	c.TransferTimeout = util.Coalesce(c.TransferTimeout, defaultTransferTimeout)
}

// Provider implements transcription.Provider against an
// OpenAI-compatible transcriptions endpoint.
type Provider struct {
	cfg    Config
	client *httpclient.Client
	keys   *config.APIKeyResolver
	log    *logger.Logger
}

// NewProvider creates a Whisper transcription provider.
func NewProvider(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL:         cfg.BaseURL,
		RequestTimeout:  cfg.RequestTimeout,
		TransferTimeout: cfg.TransferTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		cfg:    cfg,
		client: client,
		keys: &config.APIKeyResolver{
			Packaged: cfg.APIKey,
			EnvVar:   cfg.APIKeyEnvVar,
		},
		log: logger.Get("whisper"),
	}, nil
}

// Factory returns a provider.Factory that creates Whisper providers
// from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		wc := Config{}
		if v, ok := cfg["base_url"].(string); ok {
			wc.BaseURL = v
		}
		if v, ok := cfg["model"].(string); ok {
			wc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			wc.Language = v
		}
		if v, ok := cfg["response_format"].(string); ok {
			wc.ResponseFormat = v
		}
		if v, ok := cfg["api_key"].(string); ok {
			wc.APIKey = v
		}
		if v, ok := cfg["api_key_env_var"].(string); ok {
			wc.APIKeyEnvVar = v
		}
		if v, ok := cfg["request_timeout"].(time.Duration); ok {
			wc.RequestTimeout = v
		}
		if v, ok := cfg["transfer_timeout"].(time.Duration); ok {
			wc.TransferTimeout = v
		}
		return NewProvider(wc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// SetAPIKey installs a runtime credential override, e.g. a key entered
// in a settings screen.
func (p *Provider) SetAPIKey(key string) {
	p.keys.SetOverride(key)
}

// IsAvailable reports whether the API accepts the configured credential.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	key := p.keys.Resolve()
	if key == "" {
		return false
	}
	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   modelsPath,
		Auth:   httpclient.BearerAuth(key),
	})
	return err == nil && resp.IsSuccess()
}

// Transcribe uploads the audio file and returns the transcript. Exactly
// one attempt is made; retry policy belongs to the caller.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Response, error) {
	key := p.keys.Resolve()
	if key == "" {
		return nil, errors.APIKeyMissing()
	}

	audio, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, errors.EmptyOrCorrupt(req.AudioPath).WithCause(err)
	}
	if len(audio) == 0 {
		return nil, errors.EmptyOrCorrupt(req.AudioPath)
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	lang := p.cfg.Language
	if req.Language != "" {
		lang = req.Language
	}
	format := p.cfg.ResponseFormat
	if req.Format != "" {
		format = req.Format
	}

	fields := []httpclient.FormField{
		{Name: "model", Value: model},
	}
	if lang != "" {
		fields = append(fields, httpclient.FormField{Name: "language", Value: lang})
	}
	fields = append(fields, httpclient.FormField{Name: "response_format", Value: format})

	body := &httpclient.MultipartBody{
		Fields: fields,
		Files: []httpclient.FileField{
			{
				FieldName:   "file",
				FileName:    "audio.m4a",
				ContentType: "audio/m4a",
				Data:        audio,
			},
		},
	}

	p.log.Debug("uploading audio", logger.Fields(
		logger.FieldSizeBytes, int64(len(audio)),
		"model", model,
	))

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   transcriptionsPath,
		Body:   body,
		Auth:   httpclient.BearerAuth(key),
	})
	if err != nil {
		return nil, p.classify(resp, err)
	}

	return parseTranscript(resp.Body)
}

// classify maps transport and status failures onto the error taxonomy.
// Any status outside 2xx, redirects included, is a server error.
func (p *Provider) classify(resp *httpclient.Response, err error) *errors.AppError {
	switch {
	case httpclient.IsTimeout(err):
		return errors.Timeout("transcription").WithCause(err)
	case httpclient.IsConnection(err):
		return errors.NetworkUnavailable(err)
	case resp != nil && !resp.IsSuccess():
		return errors.ServerError(resp.StatusCode, serverMessage(resp.Body))
	default:
		return errors.InvalidResponse(err)
	}
}

// serverMessage extracts the human-readable message from an
// OpenAI-style error body, falling back to the raw body.
func serverMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return strings.TrimSpace(string(body))
}

// parseTranscript decodes a 2xx response body into a Response,
// normalizing whitespace-only transcripts to NO_SPEECH_DETECTED.
func parseTranscript(body []byte) (*transcription.Response, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, errors.NoData()
	}

	var result transcription.Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.InvalidResponse(err)
	}

	result.Text = strings.TrimSpace(result.Text)
	if result.Text == "" {
		return nil, errors.NoSpeechDetected()
	}
	return &result, nil
}
