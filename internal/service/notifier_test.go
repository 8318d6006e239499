package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

type sentMessage struct {
	Path      string
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// telegramStub 模擬 Bot API，記錄收到的訊息
type telegramStub struct {
	*httptest.Server

	mu       sync.Mutex
	messages []sentMessage
	status   int
	body     string
}

func newTelegramStub(t *testing.T) *telegramStub {
	t.Helper()
	stub := &telegramStub{status: http.StatusOK, body: `{"ok":true}`}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg sentMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		msg.Path = r.URL.Path

		stub.mu.Lock()
		stub.messages = append(stub.messages, msg)
		status, body := stub.status, stub.body
		stub.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(stub.Close)
	return stub
}

func (s *telegramStub) respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body = status, body
}

func (s *telegramStub) sent() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.messages...)
}

func newTestNotifier(stub *telegramStub, fallbacks ...CredentialSource) *NotifierService {
	return NewNotifierService(NewCredentialChain(fallbacks...),
		WithTelegramAPIBase(stub.URL),
		WithSendInterval(0),
	)
}

var enabledTelegram = domain.TelegramConfig{Enabled: true, BotToken: "123:abc", ChatID: "42"}

func TestSendPostsToBotAPI(t *testing.T) {
	stub := newTelegramStub(t)
	n := newTestNotifier(stub)

	res := n.Send(context.Background(), enabledTelegram, "<b>hi</b>")
	require.True(t, res.Success, res.Error)

	msgs := stub.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "/bot123:abc/sendMessage", msgs[0].Path)
	assert.Equal(t, "42", msgs[0].ChatID)
	assert.Equal(t, "<b>hi</b>", msgs[0].Text)
	assert.Equal(t, "HTML", msgs[0].ParseMode)
}

func TestSendReportsTelegramDescription(t *testing.T) {
	stub := newTelegramStub(t)
	stub.respond(http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	n := newTestNotifier(stub)

	res := n.Send(context.Background(), enabledTelegram, "x")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "Bad Request: chat not found")
	assert.ErrorIs(t, res.Err, domain.ErrUpstream)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, res.Err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
}

func TestSendUnknownErrorBody(t *testing.T) {
	stub := newTelegramStub(t)
	stub.respond(http.StatusBadGateway, `<html>oops</html>`)
	n := newTestNotifier(stub)

	res := n.Send(context.Background(), enabledTelegram, "x")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "unknown error")
}

func TestSendMissingCredentialsSkipsHTTP(t *testing.T) {
	stub := newTelegramStub(t)
	n := newTestNotifier(stub, CredentialSource{Name: SourcePlatform}, CredentialSource{Name: SourceDefault})

	res := n.Send(context.Background(), domain.TelegramConfig{Enabled: true}, "x")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, domain.ErrMissingBotToken)
	assert.Empty(t, stub.sent())
}

func TestSendUsesFallbackCredentials(t *testing.T) {
	stub := newTelegramStub(t)
	n := newTestNotifier(stub, CredentialSource{Name: SourcePlatform, BotToken: "env:tok", ChatID: "7"})

	res := n.Send(context.Background(), domain.TelegramConfig{Enabled: true}, "x")
	require.True(t, res.Success)

	msgs := stub.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "/botenv:tok/sendMessage", msgs[0].Path)
	assert.Equal(t, "7", msgs[0].ChatID)
}

func TestSendTestRequiresEnabled(t *testing.T) {
	stub := newTelegramStub(t)
	n := newTestNotifier(stub)

	res := n.SendTest(context.Background(), domain.TelegramConfig{BotToken: "t", ChatID: "c"})
	assert.ErrorIs(t, res.Err, domain.ErrTelegramOff)
	assert.Empty(t, stub.sent())

	res = n.SendTest(context.Background(), enabledTelegram)
	require.True(t, res.Success)
	assert.Equal(t, testMessage, stub.sent()[0].Text)
}

func TestSendIntervalSpacesMessages(t *testing.T) {
	stub := newTelegramStub(t)
	n := NewNotifierService(nil, WithTelegramAPIBase(stub.URL), WithSendInterval(50*time.Millisecond))

	start := time.Now()
	for range 3 {
		require.True(t, n.Send(context.Background(), enabledTelegram, "x").Success)
	}
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestSendHonoursCancelledContext(t *testing.T) {
	stub := newTelegramStub(t)
	n := NewNotifierService(nil, WithTelegramAPIBase(stub.URL), WithSendInterval(time.Hour))

	require.True(t, n.Send(context.Background(), enabledTelegram, "first").Success)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res := n.Send(ctx, enabledTelegram, "second")
	assert.False(t, res.Success)
	assert.Len(t, stub.sent(), 1)
}
