package kreta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/kretatools/internal/credentials"
)

var (
	ErrUnauthorized                  = errors.New("session token rejected, run login again")
	ErrCredentialsMissingFromContext = errors.New("credentials missing from context")
)

// CookieName carries the session token extracted from the browser.
var CookieName = "kreta.application"

const DefaultBaseURL = "https://vszc-petofi.e-kreta.hu/api/CalendarApi/GetTanariOrarendOrarendiorakEsTanorak"

// baseParams are sent verbatim on every schedule request. The service
// expects Python-style boolean literals, do not lowercase them.
var baseParams = map[string]string{
	"osztalyCsoportId":               "-1",
	"tanuloId":                       "-1",
	"teremId":                        "-1",
	"kellCsengetesiRendMegjelenites": "True",
	"csakOrarendiOra":                "False",
	"kellTanoranKivuliFoglalkozasok": "False",
	"kellTevekenysegek":              "False",
	"kellTanevRendje":                "True",
	"szuresTanevRendjeAlapjan":       "False",
	"kellOraTemaTooltip":             "True",
}

type Client struct {
	logger     *slog.Logger
	httpClient http.Client
	baseURL    string
}

func NewClient(logger *slog.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		logger:     logger,
		httpClient: http.Client{},
		baseURL:    baseURL,
	}
}

type ScheduleInput struct {
	From time.Time
	To   time.Time
}

// Schedule fetches raw calendar entries for the current teacher between
// From inclusive and To exclusive.
func (c *Client) Schedule(ctx context.Context, input ScheduleInput) ([]Entry, error) {
	creds, ok := credentials.FromContext(ctx)
	if !ok {
		return nil, ErrCredentialsMissingFromContext
	}

	values := url.Values{}
	for name, value := range baseParams {
		values.Set(name, value)
	}
	values.Set("start", input.From.Format(time.DateOnly))
	values.Set("end", input.To.Format(time.DateOnly))
	values.Set("tanarId", creds.TeacherID)

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s?%s", c.baseURL, values.Encode()),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.AddCookie(&http.Cookie{Name: CookieName, Value: creds.Token})

	c.logger.Info("requesting schedule",
		"from", input.From.Format(time.DateOnly),
		"to", input.To.Format(time.DateOnly))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusUnauthorized,
		response.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case response.StatusCode < 200 || response.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status: %s", response.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(response.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return entries, nil
}

// MonthWindow returns the range covering a calendar month, from the first
// day inclusive to the first day of the next month exclusive.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
