// ABOUTME: Medical report upload against POST /report-analyze/
// ABOUTME: Streams a multipart file and returns the free-text analysis

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/doctalk/doctalk-cli/models"
)

// AnalyzeReport uploads a report file (PDF or image) for analysis. The file
// content is read fully into the multipart body; reports are small.
func (c *Client) AnalyzeReport(ctx context.Context, filename string, content io.Reader) (*models.ReportAnalysis, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/report-analyze/", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var analysis models.ReportAnalysis
	if err := c.send(req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}
