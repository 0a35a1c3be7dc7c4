package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	domain "github.com/marketping/marketping/pkg/types"
)

const (
	defaultDiscordAPIURL = "https://discord.com/api/v10"

	colorBlue = 0x3498DB
)

// DiscordNotifier implements Notifier by DMing users through the Discord bot
// REST API: open (or reuse) the DM channel for the user, then post a message.
type DiscordNotifier struct {
	botToken string
	apiURL   string
	client   *http.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithAPIURL overrides the Discord API base URL.
func WithAPIURL(u string) DiscordOption {
	return func(d *DiscordNotifier) {
		d.apiURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(botToken string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		botToken: botToken,
		apiURL:   defaultDiscordAPIURL,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type dmChannelRequest struct {
	RecipientID string `json:"recipient_id"`
}

type dmChannelResponse struct {
	ID string `json:"id"`
}

type messagePayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// PriceChange DMs the user about a price change.
func (d *DiscordNotifier) PriceChange(ctx context.Context, ev domain.PriceChange) error {
	channelID, err := d.openDMChannel(ctx, ev.UserID)
	if err != nil {
		return err
	}

	payload := messagePayload{
		Embeds: []discordEmbed{buildEmbed(ev)},
	}
	return d.post(ctx, d.apiURL+"/channels/"+channelID+"/messages", payload, nil)
}

func (d *DiscordNotifier) openDMChannel(ctx context.Context, userID int64) (string, error) {
	var ch dmChannelResponse
	err := d.post(
		ctx,
		d.apiURL+"/users/@me/channels",
		dmChannelRequest{RecipientID: strconv.FormatInt(userID, 10)},
		&ch,
	)
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}

func buildEmbed(ev domain.PriceChange) discordEmbed {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Price change: %s", ev.ItemName),
		Color:       colorBlue,
		Description: FormatPriceChange(ev),
		Fields: []discordEmbedField{
			{Name: "Item", Value: ev.ItemID, Inline: true},
			{Name: "Price", Value: strconv.FormatInt(ev.NewPrice, 10), Inline: true},
		},
	}
	if ev.OldPrice != nil {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Previous",
			Value:  strconv.FormatInt(*ev.OldPrice, 10),
			Inline: true,
		})
	}
	return embed
}

func (d *DiscordNotifier) post(ctx context.Context, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bot "+d.botToken)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("parsing discord response: %w", err)
		}
		return nil

	// 403: user blocked DMs or the bot. 404: unknown user or channel.
	// Both mean this recipient cannot be reached right now.
	case resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w (status %d)", ErrUnreachable, resp.StatusCode)

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("discord rate limited (429)")

	default:
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}
}
