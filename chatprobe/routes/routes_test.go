package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"chatprobe/chatprobe/scenario"
	"chatprobe/chatprobe/services/chatapi"
	"chatprobe/chatprobe/services/smoke"
	"chatprobe/chatprobe/sources/memstore"
	"chatprobe/chatprobe/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(memstore.New(), zap.NewNop(), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *chatapi.Client {
	t.Helper()
	c, err := chatapi.New(chatapi.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func post(t *testing.T, url, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestClientAgainstStub_FullFlow(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)
	ctx := context.Background()

	userID, err := c.Signup(ctx, "testuser")
	require.NoError(t, err)
	_, err = uuid.Parse(string(userID))
	assert.NoError(t, err)

	chatID, err := c.CreateChat(ctx, userID)
	require.NoError(t, err)

	first, err := c.CreateMessage(ctx, types.NewMessage{ChatID: chatID, Sender: "USER", Content: "hello"})
	require.NoError(t, err)
	second, err := c.CreateMessage(ctx, types.NewMessage{ChatID: chatID, Sender: "ASSISTANT", Content: "hi, how can I help?"})
	require.NoError(t, err)

	messages, err := c.ChatMessages(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, first, messages[0].ID)
	assert.Equal(t, second, messages[1].ID)
	assert.Equal(t, chatID, messages[0].ChatID)
	assert.Equal(t, "hello", messages[0].Content)
	assert.NotEmpty(t, messages[0].CreatedAt)

	chats, err := c.UserChats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []types.ChatID{chatID}, chats)
}

func TestClientAgainstStub_SignupReturnsSameUser(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)

	a, err := c.Signup(context.Background(), "Cherry")
	require.NoError(t, err)
	b, err := c.Signup(context.Background(), "Cherry")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClientAgainstStub_CreateChatTwiceMakesTwo(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)
	ctx := context.Background()

	userID, err := c.Signup(ctx, "testuser")
	require.NoError(t, err)
	a, err := c.CreateChat(ctx, userID)
	require.NoError(t, err)
	b, err := c.CreateChat(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	chats, err := c.UserChats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []types.ChatID{a, b}, chats)
}

func TestClientAgainstStub_Failures(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)
	ctx := context.Background()

	_, err := c.CreateChat(ctx, "43f022db-0741-44e9-9bb1-a8df17c47f60")
	var reqErr *chatapi.RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, "chat creation failed: Internal Server Error - Unable to create chat.", err.Error())

	_, err = c.CreateMessage(ctx, types.NewMessage{ChatID: "9df43e61-f6b8-4e65-8c73-0af755514199", Sender: "USER", Content: "x"})
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Unable to create message.", reqErr.Detail)

	_, err = c.ChatMessages(ctx, "not-a-uuid")
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)
	assert.Contains(t, err.Error(), "Unprocessable Entity")
}

func TestClientAgainstStub_UnknownChatHasNoMessages(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)

	messages, err := c.ChatMessages(context.Background(), types.ChatID(uuid.NewString()))
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSmokeRunAgainstStub(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)

	report, err := smoke.New(c, zap.NewNop()).Run(context.Background(), scenario.Default())
	require.NoError(t, err)
	require.Len(t, report.History, 1)
	assert.Equal(t, scenario.Default().Messages[0].Content, report.History[0].Content)
	assert.Equal(t, []types.ChatID{report.ChatID}, report.UserChatIDs)
}

func TestSignup_WireFormat(t *testing.T) {
	srv := newStub(t)

	resp, body := post(t, srv.URL+"/signup", `{"username":"testuser"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var id string
	require.NoError(t, json.Unmarshal([]byte(body), &id))
	assert.NotEmpty(t, id)
}

func TestUserChats_WireFormatIsEnvelope(t *testing.T) {
	srv := newStub(t)

	resp, body := get(t, srv.URL+"/chats/nobody")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"chat_ids": []}`, body)
}

func TestValidationErrors(t *testing.T) {
	srv := newStub(t)
	tests := []struct {
		name string
		path string
		body string
	}{
		{"signup missing field", "/signup", `{}`},
		{"signup empty body", "/signup", ``},
		{"signup bad json", "/signup", `{"username":`},
		{"chat missing user", "/chats/", `{"userId":"u-1"}`},
		{"message missing content", "/messages/", `{"chat_id":"c-1","sender":"USER"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+tt.path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			var payload struct {
				Detail []types.ValidationIssue `json:"detail"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &payload))
			require.NotEmpty(t, payload.Detail)
			assert.Equal(t, "body", payload.Detail[0].Loc[0])
		})
	}
}

func decodeIssues(t *testing.T, body string) []types.ValidationIssue {
	t.Helper()
	var payload struct {
		Detail []types.ValidationIssue `json:"detail"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload), body)
	return payload.Detail
}

func TestValidationErrors_ReportEveryMissingField(t *testing.T) {
	srv := newStub(t)

	resp, body := post(t, srv.URL+"/messages/", `{"sender":"USER"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	issues := decodeIssues(t, body)
	require.Len(t, issues, 2)
	assert.Equal(t, []string{"body", "chat_id"}, issues[0].Loc)
	assert.Equal(t, []string{"body", "content"}, issues[1].Loc)
	for _, is := range issues {
		assert.Equal(t, "field required", is.Msg)
		assert.Equal(t, "value_error.missing", is.Type)
	}
}

func TestValidationErrors_NullFieldIsMissing(t *testing.T) {
	srv := newStub(t)

	resp, body := post(t, srv.URL+"/signup", `{"username":null}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	issues := decodeIssues(t, body)
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"body", "username"}, issues[0].Loc)
}

func TestValidation_EmptyStringsAreAccepted(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)
	ctx := context.Background()

	userID, err := c.Signup(ctx, "testuser")
	require.NoError(t, err)
	chatID, err := c.CreateChat(ctx, userID)
	require.NoError(t, err)

	_, err = c.CreateMessage(ctx, types.NewMessage{ChatID: chatID, Sender: "", Content: ""})
	require.NoError(t, err)
}

func TestChatMessages_PathMustBeUUID(t *testing.T) {
	srv := newStub(t)

	resp, body := get(t, srv.URL+"/chats/not-a-uuid/messages")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	issues := decodeIssues(t, body)
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"path", "chat_id"}, issues[0].Loc)
	assert.Equal(t, "type_error.uuid", issues[0].Type)
}

func TestClientAgainstStub_ConcurrentCallsAreIndependent(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv)
	ctx := context.Background()

	const workers = 16
	userIDs := make([]types.UserID, workers)
	chatIDs := make([]types.ChatID, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID, err := c.Signup(ctx, "user-"+string(rune('a'+i)))
			if err != nil {
				errs[i] = err
				return
			}
			chatID, err := c.CreateChat(ctx, userID)
			userIDs[i], chatIDs[i], errs[i] = userID, chatID, err
		}(i)
	}
	wg.Wait()

	seen := map[types.ChatID]bool{}
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[chatIDs[i]], "chat id handed out twice")
		seen[chatIDs[i]] = true

		chats, err := c.UserChats(ctx, userIDs[i])
		require.NoError(t, err)
		assert.Equal(t, []types.ChatID{chatIDs[i]}, chats)
	}
}

func TestHealth(t *testing.T) {
	srv := newStub(t)

	resp, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}
