// Package sink hands the finished export document to the chat-automation
// host. The host exposes two scripting operations: appending a chat message
// and triggering a named automation. When no host is reachable the payload
// degrades to the console so an export never silently disappears.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// TriggerCommand is the automation fired after the setup message is posted.
const TriggerCommand = "/trigger"

// WrapPrompt embeds the rendered YAML in the instruction template the host's
// narrator script expects.
func WrapPrompt(yaml string) string {
	return "```yaml\n" + yaml + "\n```\n\n---\n" +
		"Using the character data, spawn location, assets and chosen opening " +
		"scenario defined in the YAML above, generate a matching opening scene. " +
		"Include every starting weapon, piece of equipment, skill and ship in " +
		"full — no feature or description may be omitted. Initialize {{user}}'s " +
		"HP, MP and SP to 9999999; a script will set them to their correct values."
}

// Host is the client for the chat host's scripting surface.
type Host struct {
	baseURL  string
	client   *http.Client
	fallback io.Writer
}

// New builds a Host client. An empty baseURL means no host is configured and
// every delivery goes straight to the fallback writer.
func New(baseURL string, fallback io.Writer) *Host {
	return &Host{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: fallback,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type triggerRequest struct {
	Command string `json:"command"`
}

// Deliver posts the payload as a user chat message and fires the trigger
// automation. It reports whether the host accepted the export; on any
// failure the payload is written to the fallback writer instead and the
// caller should tell the user where to find it. Deliver never returns an
// error: sink unavailability is a degraded mode, not a failure.
func (h *Host) Deliver(ctx context.Context, payload string) bool {
	if h.baseURL == "" {
		h.toFallback(payload)
		return false
	}

	if err := h.post(ctx, "/api/chat/messages", []chatMessage{{Role: "user", Message: payload}}); err != nil {
		log.Warn().Err(err).Msg("chat host rejected export message; falling back to console")
		h.toFallback(payload)
		return false
	}
	if err := h.post(ctx, "/api/slash", triggerRequest{Command: TriggerCommand}); err != nil {
		// The message is already posted; the trigger failing is worth a
		// warning but not a fallback dump.
		log.Warn().Err(err).Msg("chat host trigger failed")
	}

	log.Info().Str("host", h.baseURL).Msg("export delivered to chat host")
	return true
}

func (h *Host) post(ctx context.Context, path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (h *Host) toFallback(payload string) {
	fmt.Fprintln(h.fallback, "=============== EXPORT PAYLOAD ===============")
	fmt.Fprintln(h.fallback, payload)
	fmt.Fprintln(h.fallback, "==============================================")
}
