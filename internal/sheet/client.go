package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/drgmb/revisa/internal/domain"
)

// Client is the boundary to the external spreadsheet backend, the system of
// record for both logs and the schedule. The wire shape is owned by the
// backend; this client only requires the envelope below plus rows it can map
// onto the domain records.
type Client interface {
	FetchPlanned(ctx context.Context) ([]domain.PlannedEntry, error)
	FetchActual(ctx context.Context) ([]domain.ActualEntry, error)
	SaveTopic(ctx context.Context, t *domain.ScheduledTopic) error
	SaveSchedule(ctx context.Context, s *domain.ScheduleState) error
	AppendPlanned(ctx context.Context, e domain.PlannedEntry) error
	EditPlanned(ctx context.Context, topic, action string, oldDate, newDate time.Time) error
	RemovePlanned(ctx context.Context, topic, action string, date time.Time) error
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// New creates a Client for the configured backend URL.
func New(cfg Config) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// envelope is the uniform backend response wrapper: an explicit success flag,
// a human-readable message on error and the payload under data.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type plannedRow struct {
	Date   string `json:"date"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Week   *int   `json:"week,omitempty"`
}

type actualRow struct {
	Topic              string `json:"topic"`
	AttendedLecture    bool   `json:"attendedLecture"`
	Timestamp          string `json:"timestamp"`
	QuestionsAttempted int    `json:"questionsAttempted"`
	QuestionsCorrect   int    `json:"questionsCorrect"`
}

func (c *httpClient) FetchPlanned(ctx context.Context) ([]domain.PlannedEntry, error) {
	data, err := c.get(ctx, "plannedLog")
	if err != nil {
		return nil, err
	}
	var rows []plannedRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: planned log: %v", ErrBadPayload, err)
	}
	entries := make([]domain.PlannedEntry, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: planned row %d: %v", ErrBadPayload, i, err)
		}
		entries = append(entries, domain.PlannedEntry{
			Date:      date,
			TopicName: row.Topic,
			Action:    row.Action,
			Week:      row.Week,
		})
	}
	return entries, nil
}

func (c *httpClient) FetchActual(ctx context.Context) ([]domain.ActualEntry, error) {
	data, err := c.get(ctx, "actualLog")
	if err != nil {
		return nil, err
	}
	var rows []actualRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: actual log: %v", ErrBadPayload, err)
	}
	entries := make([]domain.ActualEntry, 0, len(rows))
	for i, row := range rows {
		ts, err := time.Parse(time.RFC3339, row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: actual row %d: %v", ErrBadPayload, i, err)
		}
		entries = append(entries, domain.ActualEntry{
			TopicName:          row.Topic,
			AttendedLecture:    row.AttendedLecture,
			Timestamp:          ts,
			QuestionsAttempted: row.QuestionsAttempted,
			QuestionsCorrect:   row.QuestionsCorrect,
		})
	}
	return entries, nil
}

func (c *httpClient) SaveTopic(ctx context.Context, t *domain.ScheduledTopic) error {
	_, err := c.post(ctx, map[string]any{
		"action": "saveTopic",
		"topic":  topicPayload(t),
	})
	return err
}

func (c *httpClient) SaveSchedule(ctx context.Context, s *domain.ScheduleState) error {
	weeks := make([]map[string]any, len(s.Weeks))
	for i := range s.Weeks {
		w := &s.Weeks[i]
		topics := make([]map[string]any, len(w.Topics))
		for j, t := range w.Topics {
			topics[j] = topicPayload(t)
		}
		weeks[i] = map[string]any{
			"number":    w.Number,
			"startDate": w.StartDate.Format("2006-01-02"),
			"endDate":   w.EndDate.Format("2006-01-02"),
			"topics":    topics,
		}
	}
	_, err := c.post(ctx, map[string]any{
		"action": "saveSchedule",
		"schedule": map[string]any{
			"createdAt":     s.CreatedAt.Format(time.RFC3339),
			"lastUpdatedAt": s.LastUpdatedAt.Format(time.RFC3339),
			"weeks":         weeks,
		},
	})
	return err
}

func (c *httpClient) AppendPlanned(ctx context.Context, e domain.PlannedEntry) error {
	body := map[string]any{
		"action":      "appendPlanned",
		"topic":       e.TopicName,
		"entryAction": e.Action,
		"date":        e.Date.Format("2006-01-02"),
	}
	if e.Week != nil {
		body["week"] = *e.Week
	}
	_, err := c.post(ctx, body)
	return err
}

func (c *httpClient) EditPlanned(ctx context.Context, topic, action string, oldDate, newDate time.Time) error {
	_, err := c.post(ctx, map[string]any{
		"action":      "editPlanned",
		"topic":       topic,
		"entryAction": action,
		"oldDate":     oldDate.Format("2006-01-02"),
		"newDate":     newDate.Format("2006-01-02"),
	})
	return err
}

func (c *httpClient) RemovePlanned(ctx context.Context, topic, action string, date time.Time) error {
	_, err := c.post(ctx, map[string]any{
		"action":      "removePlanned",
		"topic":       topic,
		"entryAction": action,
		"date":        date.Format("2006-01-02"),
	})
	return err
}

func topicPayload(t *domain.ScheduledTopic) map[string]any {
	p := map[string]any{
		"id":                 t.ID,
		"name":               t.Name,
		"color":              string(t.Color),
		"originalWeek":       t.OriginalWeek,
		"currentWeek":        t.CurrentWeek,
		"studied":            t.Studied,
		"lectureOnly":        t.LectureOnly,
		"lectureAndReview":   t.LectureAndReview,
		"reviewOnly":         t.ReviewOnly,
		"studyDates":         formatTimes(t.StudyDates),
		"reviewsTotal":       t.ReviewsTotal,
		"reviewsCompleted":   t.ReviewsCompleted,
		"reviewDates":        formatTimes(t.ReviewDates),
		"questionsAttempted": t.QuestionsAttempted,
		"questionsCorrect":   t.QuestionsCorrect,
		"questionsWrong":     t.QuestionsWrong,
		"composite":          t.Composite,
	}
	if t.FirstSeenAt != nil {
		p["firstSeenAt"] = t.FirstSeenAt.Format(time.RFC3339)
	}
	if t.Difficulty != nil {
		p["difficulty"] = *t.Difficulty
	}
	if len(t.MigrationLog) > 0 {
		migrations := make([]map[string]any, len(t.MigrationLog))
		for i, m := range t.MigrationLog {
			migrations[i] = map[string]any{
				"from": m.FromWeek,
				"to":   m.ToWeek,
				"at":   m.At.Format(time.RFC3339),
			}
		}
		p["migrationLog"] = migrations
	}
	if len(t.SourceTopicIDs) > 0 {
		p["sourceTopicIds"] = t.SourceTopicIDs
	}
	return p
}

func (c *httpClient) get(ctx context.Context, action string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?action=%s", c.cfg.BaseURL, url.QueryEscape(action))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(ctx, req)
}

func (c *httpClient) post(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, req)
}

func (c *httpClient) do(ctx context.Context, req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("sheet request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRejected, env.Message)
	}
	return env.Data, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func formatTimes(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format(time.RFC3339)
	}
	return out
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return isConnectionError(urlErr.Err) || urlErr.Timeout()
	}
	return false
}
