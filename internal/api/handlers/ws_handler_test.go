package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/internal/repository"
	"github.com/quickhire/quickhire-api/internal/repository/mock"
)

// An idle admin console must keep receiving frames indefinitely: the server
// pings before the read deadline and the client's default handler pongs back.
func TestStreamApplicationsSurvivesIdleClient(t *testing.T) {
	origWrite, origPong, origPing, origPush := writeWait, pongWait, pingPeriod, pushPeriod
	writeWait = 2 * time.Second
	pongWait = 1 * time.Second
	pingPeriod = (pongWait * 9) / 10
	pushPeriod = 100 * time.Millisecond
	t.Cleanup(func() {
		writeWait, pongWait, pingPeriod, pushPeriod = origWrite, origPong, origPing, origPush
	})

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockApp.EXPECT().FindAll().Return(nil, nil).AnyTimes()
	repos := &repository.Repos{Application: mockApp}

	h := NewApplicationHandler(application.NewSubmissionService(repos))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/applications", h.StreamApplications)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/applications"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	// The client sends nothing. Reading must outlast several pong windows.
	deadline := time.Now().Add(3 * pongWait)
	frames := 0
	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("feed died after %d frames: %v", frames, err)
		}
		frames++
	}
	if frames < 3 {
		t.Fatalf("expected a steady stream of frames, got %d", frames)
	}
}
