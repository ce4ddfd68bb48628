package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "http://localhost:8080"
	healthTimeout     = 5 * time.Second
	slowResponseLimit = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server [base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := os.Getenv("API_URL")
	if len(args) > 0 {
		baseURL = args[0]
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: healthTimeout}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(client, baseURL+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		duration := time.Since(start)

		if duration > slowResponseLimit {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
