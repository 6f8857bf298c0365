package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaferClient(t *testing.T) {
	client := NewSaferClient(30 * time.Second)
	require.NotNil(t, client)
	assert.Equal(t, 30*time.Second, client.Timeout)
	assert.Equal(t, 10, client.maxRedirects)
	assert.True(t, client.blockPrivateIP)
	assert.True(t, client.Handles("HTTPS"))
	assert.False(t, client.Handles("s3"))
}

func TestValidateURL(t *testing.T) {
	client := NewSaferClient(30 * time.Second)

	tests := []struct {
		name        string
		url         string
		errContains string
	}{
		{"https allowed", "https://example.org/sot/graph.nt", ""},
		{"public IP allowed", "http://8.8.8.8/graph.nt", ""},
		{"file scheme blocked", "file:///etc/passwd", "scheme"},
		{"ftp scheme blocked", "ftp://example.org/graph.nt", "scheme"},
		{"localhost blocked", "http://localhost/graph.nt", "localhost"},
		{"localhost subdomain blocked", "http://data.localhost/", "localhost"},
		{"loopback blocked", "http://127.0.0.1/", "private IP"},
		{"private network blocked", "http://192.168.1.1/", "private IP"},
		{"metadata endpoint blocked", "http://169.254.169.254/latest", "private IP"},
		{"host confusion blocked", "http://example.org@10.0.0.1/", "@"},
		{"missing hostname", "http:///graph.nt", "hostname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.ValidateURL(tt.url)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip        string
		isPrivate bool
	}{
		{"10.0.0.1", true},
		{"172.31.255.255", true},
		{"127.0.0.1", true},
		{"0.0.0.0", true},
		{"224.0.0.1", true},
		{"8.8.8.8", false},
		{"93.184.216.34", false},
		{"::1", true},
		{"fe80::1", true},
		{"fc00::1", true},
		{"2001:db8::1", true},
		{"2606:4700:4700::1111", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			assert.Equal(t, tt.isPrivate, isPrivateIP(ip))
		})
	}
}

func TestRedirects(t *testing.T) {
	allow := false
	client := NewSaferClientWithOptions(5*time.Second, SaferClientOptions{BlockPrivateIP: &allow})

	t.Run("redirect to localhost is blocked once blocking is on", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "http://localhost/admin", http.StatusFound)
		}))
		defer server.Close()

		client.blockPrivateIP = true
		defer func() { client.blockPrivateIP = false }()

		_, err := client.Client.Get(server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redirect blocked")
	})

	t.Run("redirect loops stop", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/again", http.StatusFound)
		}))
		defer server.Close()

		_, err := client.Get(server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stopped after 10 redirects")
	})
}

func TestSaferClientOptions(t *testing.T) {
	maxRedirects := 5
	block := false
	client := NewSaferClientWithOptions(30*time.Second, SaferClientOptions{
		AllowedSchemes: []string{"https"},
		MaxRedirects:   &maxRedirects,
		BlockPrivateIP: &block,
	})

	assert.Equal(t, []string{"https"}, client.allowedSchemes)
	assert.Equal(t, 5, client.maxRedirects)
	assert.False(t, client.blockPrivateIP)

	_, err := client.ValidateURL("http://example.org")
	assert.Error(t, err)
}

func TestWrapClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := WrapClient(server.Client())
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
