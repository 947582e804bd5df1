// file: internals/features/schedules/service/optimizer_client.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"kampusku_backend/internals/configs"
)

// OptimizerClient bicara ke service optimasi jadwal eksternal.
// Engine ini cuma kirim graph input ternormalisasi dan terima daftar
// assignment flat — optimasi kombinatorialnya bukan urusan repo ini.
type OptimizerClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewOptimizerClient() *OptimizerClient {
	return &OptimizerClient{
		BaseURL:    configs.SchedulerBaseURL,
		APIKey:     configs.SchedulerAPIKey,
		HTTPClient: &http.Client{Timeout: 120 * time.Second}, // solver bisa lama
	}
}

// ====== WIRE TYPES ======

type OptimizerCourse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	DaysPerWeek int    `json:"days_per_week"`
	HoursPerDay int    `json:"hours_per_day"`
	Year        int    `json:"year"`
	Instructor  string `json:"instructor,omitempty"`
}

type OptimizerInstructor struct {
	Name  string `json:"name"`
	Day   string `json:"day,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type OptimizerRoom struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

type OptimizerGroup struct {
	Name         string `json:"name"`
	Year         int    `json:"year"`
	StudentCount int    `json:"student_count"`
}

type OptimizerInput struct {
	Semester    string                `json:"semester"`
	Courses     []OptimizerCourse     `json:"courses"`
	Instructors []OptimizerInstructor `json:"instructors"`
	Rooms       []OptimizerRoom       `json:"rooms"`
	Groups      []OptimizerGroup      `json:"groups"`
}

type OptimizerOutput struct {
	Assignments []AssignmentLine `json:"assignments"`
}

// GenerateSchedule POST input graph, balikin daftar assignment flat.
func (cl *OptimizerClient) GenerateSchedule(ctx context.Context, input OptimizerInput) (*OptimizerOutput, error) {
	body, err := sonic.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode optimizer input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.BaseURL+"/optimize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cl.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cl.APIKey)
	}

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call optimizer: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read optimizer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("optimizer status %d: %s", resp.StatusCode, truncate(string(raw), 300))
	}

	var out OptimizerOutput
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode optimizer response: %w", err)
	}
	return &out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
