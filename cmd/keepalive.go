package main

import (
	"fmt"
	"net/http"
	"time"
)

const (
	keepAliveInterval   = 13 * time.Minute
	keepAliveRetries    = 3
	keepAliveRetryDelay = 5 * time.Second
)

// startKeepAlive pings the public health endpoint on an interval so the
// hosting platform does not idle the instance out. It runs for the life of
// the process and is deliberately not tracked by the shutdown wait group.
func (app *application) startKeepAlive() {
	if app.config.Env != "production" || app.config.BaseURL == "" {
		app.logger.Info("keep-alive pinger disabled",
			"env", app.config.Env)
		return
	}

	url := fmt.Sprintf("%s/health", app.config.BaseURL)
	client := &http.Client{Timeout: 10 * time.Second}

	app.logger.Info("starting keep-alive pinger",
		"url", url,
		"interval", keepAliveInterval.String())

	go func() {
		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for range ticker.C {
			app.pingWithRetry(client, url)
		}
	}()
}

func (app *application) pingWithRetry(client *http.Client, url string) {
	for attempt := 1; attempt <= keepAliveRetries; attempt++ {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
			err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		app.logger.Warn("keep-alive ping failed",
			"url", url,
			"attempt", attempt,
			"error", err.Error())

		if attempt < keepAliveRetries {
			time.Sleep(keepAliveRetryDelay)
		}
	}
}
