package video

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/context"
	"golang.org/x/time/rate"
)

// ErrEmptyKeyword is returned before any network call when the search term
// is blank.
var ErrEmptyKeyword = errors.New("search keyword is empty")

const maxResults = 10

type Result struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type Service interface {
	// Search returns up to ten video results for the keyword.
	Search(ctx context.Context, keyword string) ([]Result, error)
}

type service struct {
	http    *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

var _ Service = (*service)(nil)

// NewService expects a resty client with the API base URL already set.
func NewService(client *resty.Client, apiKey string) Service {
	return &service{
		http:    client,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

type APIError struct {
	Inner struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Inner.Code, e.Inner.Message)
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

func (s *service) Search(ctx context.Context, keyword string) ([]Result, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	response := &searchResponse{}
	responseError := &APIError{}
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"type":       "video",
			"maxResults": strconv.Itoa(maxResults),
			"q":          keyword,
			"key":        s.apiKey,
		}).
		SetResult(response).
		SetError(responseError).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("video search failed: %w", responseError)
	}

	results := make([]Result, 0, len(response.Items))
	for _, item := range response.Items {
		if len(results) == maxResults {
			break
		}
		results = append(results, Result{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.Default.URL,
		})
	}
	return results, nil
}
