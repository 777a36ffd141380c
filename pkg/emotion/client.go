package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrNoFace is returned when the inference service cannot locate a face
// in the submitted image.
var ErrNoFace = errors.New("no face detected in image")

// Prediction holds the per-label confidences returned by the inference
// service. Labels are the Indonesian emotion names the model was
// trained on (Marah, Jijik, Takut, Senang, Sedih, Terkejut, Netral).
type Prediction struct {
	Emotions      map[string]float64 `json:"emotions"`
	MaxEmotion    string             `json:"max_emotion"`
	MaxPercentage float64            `json:"max_percentage"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// noFaceMessage is the exact error body the inference service returns
// when face detection fails on the uploaded image.
const noFaceMessage = "Tidak ada wajah terdeteksi pada gambar"

// Client talks to the external emotion-inference HTTP service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Predict uploads the image bytes as a multipart form and returns the
// parsed prediction. A 400 from the service with a face-detection
// message maps to ErrNoFace so callers can answer with a client error.
func (c *Client) Predict(ctx context.Context, filename string, image io.Reader) (*Prediction, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("emotion service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read emotion service response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error == noFaceMessage {
			return nil, ErrNoFace
		}
		return nil, fmt.Errorf("emotion service rejected request: %s", string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("emotion service returned status %d", resp.StatusCode)
	}

	var prediction Prediction
	if err := json.Unmarshal(respBody, &prediction); err != nil {
		return nil, fmt.Errorf("failed to decode emotion service response: %w", err)
	}

	return &prediction, nil
}
