package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"catalog-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// CloudinaryClient implements AssetHost against Cloudinary's unsigned upload
// endpoint: one multipart POST, the response carries the durable public URL.
type CloudinaryClient struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewCloudinaryClient creates a client for the given cloud and unsigned
// upload preset.
func NewCloudinaryClient(cloudName, uploadPreset string, logger zerolog.Logger) ports.AssetHost {
	return &CloudinaryClient{
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		logger:       logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file and returns its public URL.
func (c *CloudinaryClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("filename", filename).
			Str("message", parsed.Error.Message).
			Msg("Asset host rejected upload")
		return "", fmt.Errorf("asset host returned %d: %s", resp.StatusCode, parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("asset host response missing secure_url")
	}

	return parsed.SecureURL, nil
}
