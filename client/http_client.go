package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/idamrohim/cgv-promo/constant"
	"github.com/idamrohim/cgv-promo/debuglog"
	"github.com/idamrohim/cgv-promo/entities"
	"github.com/idamrohim/cgv-promo/header"
)

// API is the upstream ticketing surface the rest of the tool depends on.
// Implementations return an error for transport/decode/envelope failures;
// callers downgrade those to empty results.
type API interface {
	GetCinemas(ctx context.Context) ([]entities.Cinema, error)
	GetMovies(ctx context.Context, locationID string) ([]entities.Movie, error)
	GetSchedules(ctx context.Context, movieID, locationID, date string) (*entities.SchedulePayload, error)
	GetSeats(ctx context.Context, scheduleID string) (*entities.SeatPayload, error)
}

type Client struct {
	client  *http.Client
	tokens  *header.TokenManager
	sink    debuglog.Sink
	baseURL string
}

// Each request is bounded by this timeout; a slow date in a scan simply
// drops out instead of stalling the fan-out.
const requestTimeout = 10 * time.Second

func New(tokens *header.TokenManager, sink debuglog.Sink) *Client {
	if sink == nil {
		sink = debuglog.Nop{}
	}
	return &Client{
		client:  &http.Client{Timeout: requestTimeout},
		tokens:  tokens,
		sink:    sink,
		baseURL: constant.API_BASE,
	}
}

// WithBaseURL points the client somewhere else, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

func (c *Client) GetCinemas(ctx context.Context) ([]entities.Cinema, error) {
	env, err := c.doGet(ctx, c.baseURL+"/api/cinemas")
	if err != nil {
		return nil, err
	}
	var cinemas []entities.Cinema
	if err := json.Unmarshal(env.Data, &cinemas); err != nil {
		return nil, fmt.Errorf("failed to parse cinemas: %w", err)
	}
	return cinemas, nil
}

// GetMovies fetches playing and upcoming titles for a location concurrently
// and merges them, playing first. Either half failing yields an empty half,
// not a failed call.
func (c *Client) GetMovies(ctx context.Context, locationID string) ([]entities.Movie, error) {
	var wg sync.WaitGroup
	var playing, upcoming []entities.Movie

	fetch := func(path string, status entities.MovieStatus, out *[]entities.Movie) {
		defer wg.Done()
		u := fmt.Sprintf("%s/api/movies/%s?location_id=%s", c.baseURL, path, url.QueryEscape(locationID))
		env, err := c.doGet(ctx, u)
		if err != nil {
			c.sink.Log("MOVIES_FETCH_ERROR", map[string]any{"status": string(status), "error": err.Error()})
			return
		}
		var movies []entities.Movie
		if err := json.Unmarshal(env.Data, &movies); err != nil {
			c.sink.Log("MOVIES_PARSE_ERROR", map[string]any{"status": string(status), "error": err.Error()})
			return
		}
		for i := range movies {
			title := movies[i].DisplayTitle()
			movies[i].Name = title
			movies[i].Title = title
			movies[i].Status = status
		}
		*out = movies
	}

	wg.Add(2)
	go fetch("playing", entities.StatusPlaying, &playing)
	go fetch("upcoming", entities.StatusUpcoming, &upcoming)
	wg.Wait()

	return append(playing, upcoming...), nil
}

func (c *Client) GetSchedules(ctx context.Context, movieID, locationID, date string) (*entities.SchedulePayload, error) {
	u := fmt.Sprintf("%s/api/movies/%s/schedules?location_id=%s&date=%s",
		c.baseURL, url.PathEscape(movieID), url.QueryEscape(locationID), url.QueryEscape(date))
	env, err := c.doGet(ctx, u)
	if err != nil {
		return nil, err
	}
	var payload entities.SchedulePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse schedules for %s: %w", date, err)
	}
	return &payload, nil
}

func (c *Client) GetSeats(ctx context.Context, scheduleID string) (*entities.SeatPayload, error) {
	u := fmt.Sprintf("%s/api/movie-schedules/%s/seats", c.baseURL, url.PathEscape(scheduleID))
	c.sink.Log("SEATS_API_REQUEST", map[string]any{"scheduleId": scheduleID, "hasAuthToken": c.tokens.HasToken()})
	env, err := c.doGet(ctx, u)
	if err != nil {
		c.sink.Log("SEATS_API_ERROR", map[string]any{"scheduleId": scheduleID, "error": err.Error()})
		return nil, err
	}
	var payload entities.SeatPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		c.sink.Log("SEATS_API_ERROR", map[string]any{"scheduleId": scheduleID, "error": err.Error()})
		return nil, fmt.Errorf("failed to parse seats for %s: %w", scheduleID, err)
	}
	return &payload, nil
}

// doGet performs one authenticated GET and unwraps the response envelope.
// A non-200 envelope status is an error here; callers decide how far to
// degrade.
func (c *Client) doGet(ctx context.Context, url string) (*entities.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.tokens.Headers() {
		req.Header.Set(k, v)
	}
	c.sink.Log("API_REQUEST", map[string]any{"url": url, "hasAuthHeader": c.tokens.HasToken()})

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env entities.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.sink.Log("PARSE_ERROR", map[string]any{"url": url, "body": truncate(string(body), 500)})
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	c.sink.Log("API_RESPONSE", map[string]any{"url": url, "httpStatus": resp.StatusCode, "statusCode": env.StatusCode, "message": env.Message})

	if !env.OK() {
		return nil, fmt.Errorf("upstream status %d: %s", env.StatusCode, env.Message)
	}
	return &env, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
