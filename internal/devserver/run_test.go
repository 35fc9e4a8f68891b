package devserver

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_AnswersUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- New(Options{}).Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/auth/api/mobile/generate-otp/"
	resp, err := http.Post(url, "application/json", strings.NewReader(`{"phone_number":"9876543210"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServe_BadAddress(t *testing.T) {
	err := New(Options{}).ListenAndServe(context.Background(), "256.0.0.1:bad")
	require.Error(t, err)
}
