package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhatsAppSendText(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody whatsAppMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &WhatsAppClient{
		Token:         "tok",
		PhoneNumberID: "12345",
		BaseURL:       srv.URL,
		HTTP:          srv.Client(),
	}

	err := c.SendText(context.Background(), "919812345678", "hello there")
	require.NoError(t, err)

	require.Equal(t, "/12345/messages", gotPath)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "whatsapp", gotBody.MessagingProduct)
	require.Equal(t, "919812345678", gotBody.To)
	require.Equal(t, "text", gotBody.Type)
	require.Equal(t, "hello there", gotBody.Text.Body)
}

func TestWhatsAppSendText_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid recipient","code":131026}}`))
	}))
	defer srv.Close()

	c := &WhatsAppClient{
		Token:         "tok",
		PhoneNumberID: "12345",
		BaseURL:       srv.URL,
		HTTP:          srv.Client(),
	}

	err := c.SendText(context.Background(), "000", "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "131026")
	require.Contains(t, err.Error(), "Invalid recipient")
}

func TestWhatsAppSendText_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := &WhatsAppClient{Token: "tok", PhoneNumberID: "1", BaseURL: srv.URL, HTTP: srv.Client()}

	err := c.SendText(context.Background(), "919812345678", "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream unavailable")
}
