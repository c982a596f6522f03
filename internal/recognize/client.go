// Package recognize turns a meal photo into a food entry through an
// external dish recognition service.
//
// The pipeline is: normalize the image (see NormalizeImage), upload it as
// a multipart form, take the first recognition candidate, and resolve its
// calorie count, falling back to a per-dish detail lookup when the
// candidate omits nutritional info. Failures are typed (ErrImageTooLarge,
// TransportError, ParseError) and never retried automatically; the caller
// decides whether to store the result and must surface failures to the
// user.
package recognize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/daybook-cli/daybook/internal/logging"
	"github.com/daybook-cli/daybook/internal/model"
)

const (
	recognitionPath = "/recognition/dish"
	dishInfoPath    = "/dish/%d/info"

	defaultTimeout = 30 * time.Second
)

// Client calls the dish recognition service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userKey    string
}

// Options configures a Client.
type Options struct {
	// BaseURL is the service root, without a trailing slash.
	BaseURL string
	// Token is the bearer token sent with every request.
	Token string
	// UserKey is the per-user form field sent with uploads.
	UserKey string
	// HTTPClient overrides the default client (30s timeout). Used in tests.
	HTTPClient *http.Client
}

// NewClient creates a recognition client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		token:      opts.Token,
		userKey:    opts.UserKey,
	}
}

// Configured reports whether the client has the credentials it needs.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.token != "" && c.userKey != ""
}

type nutritionalInfo struct {
	Calories *float64 `json:"calories"`
}

type candidate struct {
	ID              *int64           `json:"id"`
	Name            string           `json:"name"`
	NutritionalInfo *nutritionalInfo `json:"nutritional_info"`
}

type recognitionResponse struct {
	RecognitionResults []candidate `json:"recognition_results"`
}

type dishInfoResponse struct {
	NutritionalInfo nutritionalInfo `json:"nutritional_info"`
}

// Recognize uploads a photo and returns the food entry it resolves to.
// The photo bytes are normalized first; no network call is made when
// normalization fails. The entry is not stored - that is the caller's job.
func (c *Client) Recognize(ctx context.Context, photo []byte) (model.FoodEntry, error) {
	normalized, err := NormalizeImage(photo)
	if err != nil {
		return model.FoodEntry{}, err
	}

	resp, err := c.upload(ctx, normalized)
	if err != nil {
		return model.FoodEntry{}, err
	}

	if len(resp.RecognitionResults) == 0 {
		return model.FoodEntry{}, &ParseError{Reason: "no recognition candidates"}
	}
	best := resp.RecognitionResults[0]
	if best.Name == "" {
		return model.FoodEntry{}, &ParseError{Reason: "candidate has no name"}
	}
	if best.ID == nil {
		return model.FoodEntry{}, &ParseError{Reason: "candidate has no id"}
	}

	calories := c.resolveCalories(ctx, best)
	return model.NewFoodEntry(best.Name, calories, time.Now()), nil
}

func (c *Client) upload(ctx context.Context, image []byte) (*recognitionResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("user_key", c.userKey); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("image", "photo.jpg")
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recognitionPath, &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &TransportError{Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(payload))}
	}

	var parsed recognitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	return &parsed, nil
}

// resolveCalories takes the candidate's inline nutritional info when
// present, otherwise asks the per-dish detail endpoint. The detail lookup
// is best-effort: any failure there resolves to 0 calories rather than
// failing the whole pipeline.
func (c *Client) resolveCalories(ctx context.Context, best candidate) int {
	if best.NutritionalInfo != nil && best.NutritionalInfo.Calories != nil {
		return int(math.Round(*best.NutritionalInfo.Calories))
	}

	calories, err := c.dishCalories(ctx, *best.ID)
	if err != nil {
		logging.Debug("dish detail lookup failed, defaulting calories to 0",
			"dish_id", *best.ID, "error", err)
		return 0
	}
	return calories
}

func (c *Client) dishCalories(ctx context.Context, id int64) (int, error) {
	url := c.baseURL + fmt.Sprintf(dishInfoPath, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var parsed dishInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}
	if parsed.NutritionalInfo.Calories == nil {
		return 0, fmt.Errorf("detail response has no calories")
	}
	return int(math.Round(*parsed.NutritionalInfo.Calories)), nil
}
