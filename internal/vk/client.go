package vk

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	apiURL     = "https://api.vk.com/method"
	apiVersion = "5.199"
)

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: apiURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SendMessage delivers text to a peer, optionally attaching a keyboard.
// A nil keyboard leaves whatever keyboard the client currently shows.
func (c *Client) SendMessage(peerID int64, text string, kb *Keyboard) error {
	params := url.Values{}
	params.Set("peer_id", strconv.FormatInt(peerID, 10))
	params.Set("message", text)
	params.Set("random_id", strconv.FormatInt(int64(rand.Int32()), 10))

	if kb != nil {
		data, err := json.Marshal(kb)
		if err != nil {
			return fmt.Errorf("marshaling keyboard: %w", err)
		}
		params.Set("keyboard", string(data))
	}

	return c.call("messages.send", params)
}

func (c *Client) call(method string, params url.Values) error {
	params.Set("access_token", c.token)
	params.Set("v", apiVersion)

	resp, err := c.http.PostForm(c.baseURL+"/"+method, params)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s status %d: %s", method, resp.StatusCode, body)
	}

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if result.Error != nil {
		return fmt.Errorf("%s API error %d: %s", method, result.Error.Code, result.Error.Message)
	}
	return nil
}
