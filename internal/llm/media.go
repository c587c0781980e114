package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/firebase/genkit/go/ai"
)

const (
	// maxImageBytes caps downloaded attachments (CWE-400).
	maxImageBytes = 20 << 20 // 20 MiB

	fetchTimeout = 30 * time.Second
)

// fetchImagePart downloads an image attachment and wraps it as a Genkit
// media part. Content type is detected from the actual bytes, not the URL,
// and must be an image type.
func fetchImagePart(ctx context.Context, url string) (*ai.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building image request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image body: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("attachment is not an image (detected %s)", mediaType)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return ai.NewMediaPart(mediaType, "data:"+mediaType+";base64,"+encoded), nil
}
