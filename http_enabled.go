//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/marisvali/counters/world"
	"go.uber.org/zap"
)

const uploadUrl = "https://playful-patterns.com/submit-playthrough-counters.php"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string,
	files map[string][]byte) (string, error) {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", err
		}
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		if err != nil {
			return "", err
		}
		if _, err = part.Write(v); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	request, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", err
	}
	request.Header.Set("content-type", writer.FormDataContentType())

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer func() { _ = response.Body.Close() }()
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http request failed: %d", response.StatusCode)
	}
	data, err := io.ReadAll(response.Body)
	return string(data), err
}

func UploadPlaythroughHttp(user string, p *world.Playthrough) error {
	_, err := makeHttpRequest(uploadUrl,
		map[string]string{
			"user":               user,
			"release_version":    strconv.FormatInt(p.ReleaseVersion, 10),
			"simulation_version": strconv.FormatInt(p.SimulationVersion, 10),
			"input_version":      strconv.FormatInt(p.InputVersion, 10),
			"id":                 p.Id.String()},
		map[string][]byte{"playthrough": p.Serialize()})
	return err
}

// UploadPlaythroughs sends every playthrough it receives until ch is closed.
// A failed upload is logged and the game goes on.
func UploadPlaythroughs(user string, ch <-chan *world.Playthrough,
	log *zap.Logger) {
	for p := range ch {
		if err := UploadPlaythroughHttp(user, p); err != nil {
			log.Warn("upload failed", zap.String("playthrough", p.Id.String()),
				zap.Error(err))
			continue
		}
		log.Debug("playthrough uploaded",
			zap.String("playthrough", p.Id.String()),
			zap.Int("frames", len(p.History)))
	}
}
